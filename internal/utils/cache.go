package utils

import (
	"fmt"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem wraps cached data with its expiry.
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// ResponseCache is a bounded LRU of rendered responses with per-entry TTL.
// It is safe for concurrent use.
type ResponseCache struct {
	lruCache   *lru.Cache[string, CacheItem]
	generation atomic.Uint64
}

func NewResponseCache(size int) (*ResponseCache, error) {
	if size <= 0 {
		size = 500
	}
	l, err := lru.New[string, CacheItem](size)
	if err != nil {
		return nil, err
	}
	return &ResponseCache{lruCache: l}, nil
}

// Set stores data for ttl. A non-positive ttl stores nothing.
func (c *ResponseCache) Set(key string, data interface{}, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.lruCache.Add(key, CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get returns nil when the key is missing or expired.
func (c *ResponseCache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}

	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}

	return val.Data
}

func (c *ResponseCache) Delete(key string) {
	c.lruCache.Remove(key)
}

// Generation identifies the current cache contents. Keys built with
// GenerationKey from an older generation are never read again.
func (c *ResponseCache) Generation() uint64 {
	return c.generation.Load()
}

func (c *ResponseCache) GenerationKey(gen uint64, key string) string {
	return fmt.Sprintf("g%d:%s", gen, key)
}

// Invalidate starts a new generation and drops every entry. A reader that
// computed its value under the previous generation stores it under a key
// nobody looks up anymore.
func (c *ResponseCache) Invalidate() {
	c.generation.Add(1)
	c.lruCache.Purge()
}

// Purge drops every entry.
func (c *ResponseCache) Purge() {
	c.lruCache.Purge()
}
