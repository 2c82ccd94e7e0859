package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Cache is the read-through cache the ent repositories sit on top of
type Cache interface {
	// Get returns the cached value and whether the key was present
	Get(ctx context.Context, key string) (interface{}, bool)

	// Set stores a value under key for the given TTL. A zero TTL
	// falls back to the cache's default expiration.
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration)

	// Delete evicts a single key
	Delete(ctx context.Context, key string)

	// DeleteByPrefix evicts every key carrying the given prefix
	DeleteByPrefix(ctx context.Context, prefix string)

	// Flush evicts everything
	Flush(ctx context.Context)
}

// Key prefixes per cached entity. The version segment lets a cached
// shape change without serving stale entries.
const (
	PrefixCustomer = "customer:v1:"
	PrefixSchedule = "schedule:v1:"
	PrefixInvoice  = "invoice:v1:"
	PrefixPayment  = "payment:v1:"
)

// ExpiryDefaultInMemory is the TTL repositories use for entity entries
const ExpiryDefaultInMemory = 5 * time.Minute

// GenerateKey joins a prefix and its parameters with colons into a cache key
func GenerateKey(prefix string, params ...interface{}) string {
	parts := make([]string, len(params)+1)
	parts[0] = prefix

	for i, param := range params {
		parts[i+1] = fmt.Sprintf("%v", param)
	}

	return strings.Join(parts, ":")
}
