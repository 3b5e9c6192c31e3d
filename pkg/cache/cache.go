package cache

import (
	"context"
	"time"
)

// DefaultTTL is how long a cached summary lives when no TTL is given.
const DefaultTTL = 500 * time.Second

// SummaryCache is a TTL-bounded key/value store for derived coin prompts.
// Implementations must be safe for concurrent use; the store is shared
// across chat sessions and list requests.
type SummaryCache interface {
	// Get returns the cached value for key. An expired entry behaves as absent.
	Get(ctx context.Context, key string) (string, bool)

	// Set stores value under key with the cache's default TTL.
	Set(ctx context.Context, key, value string) error

	// SetWithTTL stores value under key with an explicit TTL.
	// A non-positive TTL stores the entry without expiry.
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error

	// Delete removes the given keys and returns how many were present.
	Delete(ctx context.Context, keys ...string) int

	// Close releases any resources held by the cache.
	Close() error
}
