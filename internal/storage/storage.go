// Package storage is the persistent key-value layer behind the learning engine.
//
// A Backend moves raw bytes; Store encodes the engine's value types on top of
// it: ints as decimal text, dates as RFC 3339, string lists as JSON.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

var ErrNotFound = errors.New("key not found")

// Backend is a byte-level key-value store. Implementations must be safe for
// concurrent use and return ErrNotFound for absent keys.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context) error
	Close() error
}

// Store provides typed access over a Backend.
type Store struct {
	backend Backend
}

// New wraps backend.
func New(backend Backend) *Store {
	return &Store{backend: backend}
}

// GetInt reads an integer value.
func (s *Store) GetInt(ctx context.Context, key string) (int, error) {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, fmt.Errorf("decode int %q: %w", key, err)
	}
	return v, nil
}

// SetInt writes an integer value.
func (s *Store) SetInt(ctx context.Context, key string, value int) error {
	return s.backend.Put(ctx, key, []byte(strconv.Itoa(value)))
}

// GetDate reads a timestamp.
func (s *Store) GetDate(ctx context.Context, key string) (time.Time, error) {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339Nano, string(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("decode date %q: %w", key, err)
	}
	return t, nil
}

// SetDate writes a timestamp.
func (s *Store) SetDate(ctx context.Context, key string, value time.Time) error {
	return s.backend.Put(ctx, key, []byte(value.Format(time.RFC3339Nano)))
}

// GetStringList reads a list of strings.
func (s *Store) GetStringList(ctx context.Context, key string) ([]string, error) {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode list %q: %w", key, err)
	}
	return list, nil
}

// SetStringList writes a list of strings.
func (s *Store) SetStringList(ctx context.Context, key string, value []string) error {
	if value == nil {
		value = []string{}
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode list %q: %w", key, err)
	}
	return s.backend.Put(ctx, key, raw)
}

// Clear removes every key.
func (s *Store) Clear(ctx context.Context) error {
	return s.backend.Clear(ctx)
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
