package cache

import (
	"context"
	"time"
)

// Backend is the storage interface the API client reads through. A zero
// ttl on Set stores the entry without expiry.
type Backend interface {
	// Get returns the stored value for key, or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Close releases backend resources.
	Close() error
}
