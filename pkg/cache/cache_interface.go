package cache

import (
	"context"
	"time"
)

// Cache is the contract for the cache layer. Implementations must be safe
// for concurrent use; the process shares a single instance across requests.
type Cache interface {
	// Get looks up key and unmarshals the stored value into dest.
	// Returns found=false on a cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes the given keys.
	Delete(ctx context.Context, keys ...string) error

	// Ping verifies the connection.
	Ping(ctx context.Context) error
}
