package storage

import (
	"context"
	"sync"
)

// MemoryBackend keeps values in a map. Nothing survives the process.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		values: make(map[string][]byte),
	}
}

// Get returns a copy of the value stored under key.
func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v, ok := b.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put saves a copy of value under key.
func (b *MemoryBackend) Put(_ context.Context, key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values[key] = append([]byte(nil), value...)
	return nil
}

// Clear removes every key.
func (b *MemoryBackend) Clear(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.values = make(map[string][]byte)
	return nil
}

// Close is a no-op.
func (b *MemoryBackend) Close() error {
	return nil
}
