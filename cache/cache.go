// Package cache provides pluggable storage for API responses. Backends
// store raw response bodies keyed by request URL with a per-entry TTL.
package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrMiss is returned by Get when the key is absent or its entry has
// expired.
var ErrMiss = errors.New("cache: miss")

// BackendNames lists the valid Options.Backend values.
var BackendNames = []string{"none", "memory", "sqlite", "redis", "badger"}

// Options selects and configures a backend.
type Options struct {
	// Backend is one of "none", "memory", "sqlite", "redis", "badger".
	// Empty means "none".
	Backend string

	// Dir is the directory for file-backed backends (sqlite, badger).
	Dir string

	// RedisAddr is the host:port of the Redis server.
	RedisAddr string
}

// New builds the configured backend. The "none" backend disables caching
// and returns a nil Backend; callers treat nil as cache-off.
func New(opts Options) (Backend, error) {
	switch opts.Backend {
	case "", "none":
		return nil, nil
	case "memory":
		return NewMemory(), nil
	case "sqlite":
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("cache: create dir: %w", err)
		}
		return OpenSQLite(filepath.Join(opts.Dir, "responses.db"))
	case "redis":
		return NewRedis(opts.RedisAddr)
	case "badger":
		return OpenBadger(filepath.Join(opts.Dir, "badger"))
	default:
		return nil, fmt.Errorf("cache: unknown backend %q", opts.Backend)
	}
}
