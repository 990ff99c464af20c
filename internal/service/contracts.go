package service

//go:generate mockgen -source=contracts.go -destination=mock/store_mock.go

import (
	"context"
	"time"
)

// Store is the persistent key-value store the engine reads and writes.
// Implementations return storage.ErrNotFound for absent keys.
type Store interface {
	GetInt(ctx context.Context, key string) (int, error)
	SetInt(ctx context.Context, key string, value int) error
	GetDate(ctx context.Context, key string) (time.Time, error)
	SetDate(ctx context.Context, key string, value time.Time) error
	GetStringList(ctx context.Context, key string) ([]string, error)
	SetStringList(ctx context.Context, key string, value []string) error
	Clear(ctx context.Context) error
}

// Clock returns the current time.
type Clock func() time.Time
