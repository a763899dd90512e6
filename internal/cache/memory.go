package cache

import (
	"strings"
	"sync"
	"time"
)

// NewMemory returns an in-process Cache for development setups and
// tests where a Redis instance isn't available
func NewMemory() Cache {
	return &memoryCache{entries: map[string]memoryEntry{}}
}

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memoryCache struct {
	mutex   sync.Mutex
	entries map[string]memoryEntry
}

func (c *memoryCache) Set(key string, value string, ttl time.Duration) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.entries[key] = entry
	return nil
}

func (c *memoryCache) Get(key string) (string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	entry, ok := c.entries[key]
	if !ok {
		return "", ErrorNotFound
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return "", ErrorNotFound
	}
	return entry.value, nil
}

func (c *memoryCache) Scan(prefix string) ([]string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	keys := []string{}
	now := time.Now()
	for key, entry := range c.entries {
		if !entry.expiresAt.IsZero() && now.After(entry.expiresAt) {
			continue
		}
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (c *memoryCache) Del(key string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.entries, key)
	return nil
}
