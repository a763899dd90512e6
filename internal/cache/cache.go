package cache

import (
	"errors"
	"time"
)

// ErrorNotFound indicates the requested key is absent or has expired
var ErrorNotFound = errors.New("cache_key_not_found")

type Cache interface {
	Set(key string, value string, ttl time.Duration) (err error)
	Get(key string) (value string, err error)
	Scan(prefix string) (keys []string, err error)
	Del(key string) (err error)
}
