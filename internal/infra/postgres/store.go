package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aliskhannn/wordly/internal/storage"
)

// Store is a storage.Backend that owns its connection pool.
type Store struct {
	*KVStore
	pool *pgxpool.Pool
}

// Open connects to dsn and prepares the schema.
func Open(ctx context.Context, dsn string, cfg PoolConfig) (*Store, error) {
	pool, err := NewPool(ctx, dsn, cfg)
	if err != nil {
		return nil, err
	}

	kv := NewKVStore(pool)
	if err := kv.Migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{KVStore: kv, pool: pool}, nil
}

// Close closes the pool.
func (s *Store) Close() error {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
	return nil
}

var _ storage.Backend = (*Store)(nil)
