package cache

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v7"

	"github.com/rpribau/cm-admin-sub000/internal/common"
)

// NewRedisOpts configures the NewRedis method
type NewRedisOpts struct {
	Addr        string
	Password    string
	ServiceLogs chan<- common.ServiceLog
}

// NewRedis initialises a Redis-backed Cache and verifies the connection
func NewRedis(opts NewRedisOpts) (Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
	})
	if err := client.Ping().Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis at addr[%s]: %w", opts.Addr, err)
	}
	opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "connected to redis at addr[%s]", opts.Addr)
	return &redisCache{client: client}, nil
}

type redisCache struct {
	client *redis.Client
}

func (c *redisCache) Set(key string, value string, ttl time.Duration) error {
	return c.client.Set(key, value, ttl).Err()
}

func (c *redisCache) Get(key string) (string, error) {
	value, err := c.client.Get(key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrorNotFound
		}
		return "", err
	}
	return value, nil
}

func (c *redisCache) Scan(prefix string) ([]string, error) {
	keys := []string{}
	var cursor uint64
	for {
		batch, next, err := c.client.Scan(cursor, prefix+"*", 64).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)
		if next == 0 {
			break
		}
		cursor = next
	}
	return keys, nil
}

func (c *redisCache) Del(key string) error {
	return c.client.Del(key).Err()
}
