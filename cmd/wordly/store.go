package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aliskhannn/wordly/internal/config"
	"github.com/aliskhannn/wordly/internal/infra/postgres"
	"github.com/aliskhannn/wordly/internal/storage"
	"github.com/aliskhannn/wordly/internal/storage/bbolt"
	"github.com/aliskhannn/wordly/internal/storage/sqlite"
)

// openBackend opens the storage backend selected by the configuration.
func openBackend(ctx context.Context, cfg config.Storage) (storage.Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return storage.NewMemoryBackend(), nil

	case config.DriverBolt, config.DriverSQLite:
		path := cfg.FilePath()
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		if cfg.Driver == config.DriverSQLite {
			store, err := sqlite.Open(path)
			if err != nil {
				return nil, err
			}
			return store, nil
		}
		store, err := bbolt.Open(path)
		if err != nil {
			return nil, err
		}
		return store, nil

	case config.DriverPostgres:
		dsn, err := cfg.DSN()
		if err != nil {
			return nil, err
		}
		store, err := postgres.Open(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.MaxConnections),
			MaxConnLifetime: cfg.MaxConnLifetime,
		})
		if err != nil {
			return nil, err
		}
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
