// Package sqlite provides a SQLite-backed storage.Backend.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/aliskhannn/wordly/internal/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Store persists values in a single SQLite table.
type Store struct {
	db *sqlx.DB
}

// Open opens or creates the database file at path and applies the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// SQLite doesn't support multiple writers.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create kv_store table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	var value []byte
	err := s.db.GetContext(ctx, &value, `SELECT value FROM kv_store WHERE key = ?`, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}

	return value, nil
}

// Put inserts or replaces the value under key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is required")
	}
	if value == nil {
		value = []byte{}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}

	return nil
}

// Clear deletes every row.
func (s *Store) Clear(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv_store`); err != nil {
		return fmt.Errorf("clear kv_store: %w", err)
	}
	return nil
}

// keys lists the stored keys in order.
func (s *Store) keys(ctx context.Context) ([]string, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	var keys []string
	if err := s.db.SelectContext(ctx, &keys, `SELECT key FROM kv_store ORDER BY key`); err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}

var _ storage.Backend = (*Store)(nil)
