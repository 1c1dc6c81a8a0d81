package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS responses (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	expires_at INTEGER NOT NULL DEFAULT 0
);`

// SQLite is a file-backed backend on a single responses table. Expired
// rows are removed lazily when read.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the cache database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("cache: exec pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: exec schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Get implements Backend.
func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var expiresAt int64
	err := s.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM responses WHERE key = ?", key).
		Scan(&value, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache: query: %w", err)
	}

	if expiresAt > 0 && time.Now().Unix() > expiresAt {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM responses WHERE key = ?", key); err != nil {
			return nil, fmt.Errorf("cache: delete expired: %w", err)
		}
		return nil, ErrMiss
	}
	return value, nil
}

// Set implements Backend.
func (s *SQLite) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl).Unix()
	}
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO responses (key, value, expires_at) VALUES (?, ?, ?)",
		key, value, expiresAt)
	if err != nil {
		return fmt.Errorf("cache: insert: %w", err)
	}
	return nil
}

// Close implements Backend.
func (s *SQLite) Close() error {
	return s.db.Close()
}
