package bbolt

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/aliskhannn/wordly/internal/storage"
)

const valuesBucket = "wordly"

// Store is a BoltDB-backed storage.Backend.
type Store struct {
	db *bbolt.DB
}

// Open opens or creates a BoltDB file at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	db, err := bbolt.Open(filepath.Clean(path), 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(valuesBucket))
		if bucket == nil {
			return fmt.Errorf("values bucket is missing")
		}
		raw := bucket.Get([]byte(key))
		if raw == nil {
			return storage.ErrNotFound
		}
		// raw is only valid inside the transaction.
		value = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Put stores value under key.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("key is required")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(valuesBucket))
		if bucket == nil {
			return fmt.Errorf("values bucket is missing")
		}
		return bucket.Put([]byte(key), value)
	})
}

// Clear drops every stored value.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(valuesBucket)); err != nil && !errors.Is(err, bbolt.ErrBucketNotFound) {
			return fmt.Errorf("delete values bucket: %w", err)
		}
		if _, err := tx.CreateBucket([]byte(valuesBucket)); err != nil {
			return fmt.Errorf("create values bucket: %w", err)
		}
		return nil
	})
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(valuesBucket))
		if err != nil {
			return fmt.Errorf("create values bucket: %w", err)
		}
		return nil
	})
}

var _ storage.Backend = (*Store)(nil)
