package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a backend on a Redis server; expiry is delegated to Redis.
type Redis struct {
	client redis.UniversalClient
}

// NewRedis connects to the Redis server at addr (host:port).
func NewRedis(addr string) (*Redis, error) {
	if addr == "" {
		return nil, errors.New("cache: redis address is required")
	}
	return &Redis{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}, nil
}

// Get implements Backend.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: redis get: %w", err)
	}
	return value, nil
}

// Set implements Backend.
func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("cache: redis set: %w", err)
	}
	return nil
}

// Close implements Backend.
func (r *Redis) Close() error {
	return r.client.Close()
}
