// Package cache is a bounded in-memory cache with per-entry expiry.
package cache

import (
	"context"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// InMemoryCache evicts least recently used entries once size is reached and
// expires every entry ttl after it was written.
type InMemoryCache struct {
	entries *lru.LRU[string, any]
}

func NewInMemoryCache(size int, ttl time.Duration) *InMemoryCache {
	if size <= 0 {
		size = 1
	}
	return &InMemoryCache{
		entries: lru.NewLRU[string, any](size, nil, ttl),
	}
}

func (c *InMemoryCache) Set(_ context.Context, key string, value any) {
	c.entries.Add(key, value)
}

func (c *InMemoryCache) Get(_ context.Context, key string) (any, bool) {
	return c.entries.Get(key)
}

func (c *InMemoryCache) Delete(_ context.Context, key string) {
	c.entries.Remove(key)
}

// DeletePrefix drops every live key starting with prefix.
func (c *InMemoryCache) DeletePrefix(_ context.Context, prefix string) {
	for _, key := range c.entries.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.entries.Remove(key)
		}
	}
}

func (c *InMemoryCache) Len() int {
	return c.entries.Len()
}

func (c *InMemoryCache) Purge() {
	c.entries.Purge()
}
