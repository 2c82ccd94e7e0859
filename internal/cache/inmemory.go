package cache

import (
	"context"
	"strings"
	"time"

	goCache "github.com/patrickmn/go-cache"
)

// DefaultExpiration bounds how long an entry lives when a caller
// passes a zero TTL
const DefaultExpiration = 30 * time.Minute

// DefaultCleanupInterval is how often expired entries are swept out
const DefaultCleanupInterval = 1 * time.Hour

// InMemoryCache backs the Cache interface with github.com/patrickmn/go-cache.
// A single process-wide instance is shared by all repositories so that
// invalidation in one repository is visible to the others.
type InMemoryCache struct {
	cache *goCache.Cache
}

var globalCache *InMemoryCache

// InitializeInMemoryCache sets up the shared instance if it does not exist yet
func InitializeInMemoryCache() {
	if globalCache == nil {
		globalCache = &InMemoryCache{
			cache: goCache.New(DefaultExpiration, DefaultCleanupInterval),
		}
	}
}

// GetInMemoryCache returns the shared instance, creating it on first use
func GetInMemoryCache() *InMemoryCache {
	if globalCache == nil {
		InitializeInMemoryCache()
	}
	return globalCache
}

func (c *InMemoryCache) Get(_ context.Context, key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *InMemoryCache) Set(_ context.Context, key string, value interface{}, expiration time.Duration) {
	c.cache.Set(key, value, expiration)
}

func (c *InMemoryCache) Delete(_ context.Context, key string) {
	c.cache.Delete(key)
}

// DeleteByPrefix removes every key carrying the given prefix. Used when an
// entity mutation must evict both ID and lookup-key entries at once.
func (c *InMemoryCache) DeleteByPrefix(_ context.Context, prefix string) {
	for k := range c.cache.Items() {
		if strings.HasPrefix(k, prefix) {
			c.cache.Delete(k)
		}
	}
}

func (c *InMemoryCache) Flush(_ context.Context) {
	c.cache.Flush()
}
