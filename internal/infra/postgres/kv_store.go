package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/wordly/internal/storage"
)

// KVStore keeps the engine's values in the kv_store table.
type KVStore struct {
	db DBTX
}

// NewKVStore creates a KVStore over db.
func NewKVStore(db DBTX) *KVStore {
	return &KVStore{db: db}
}

// Migrate creates the kv_store table if needed.
func (s *KVStore) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      BYTEA NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`

	if _, err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("create kv_store: %w", err)
	}

	return nil
}

// Get returns the value stored under key.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_store WHERE key = $1`

	var value []byte
	if err := s.db.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}

	return value, nil
}

// Put inserts or replaces the value under key.
func (s *KVStore) Put(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is required")
	}
	if value == nil {
		value = []byte{}
	}

	query := `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := s.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}

	return nil
}

// Clear deletes every stored value.
func (s *KVStore) Clear(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM kv_store`); err != nil {
		return fmt.Errorf("clear kv_store: %w", err)
	}
	return nil
}
