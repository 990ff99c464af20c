package bbolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/wordly/internal/storage"
)

func TestStorePutGetClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wordly.db")

	store, err := Open(path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get(ctx, "progress.streak_days")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Put(ctx, "progress.streak_days", []byte("3")))
	v, err := store.Get(ctx, "progress.streak_days")
	require.NoError(t, err)
	assert.Equal(t, "3", string(v))

	require.NoError(t, store.Clear(ctx))
	_, err = store.Get(ctx, "progress.streak_days")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, store.Put(ctx, "after.clear", []byte("ok")))
}

func TestStoreSurvivesReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "wordly.db")

	store, err := Open(path)
	require.NoError(t, err)
	typed := storage.New(store)

	when := time.Date(2024, 2, 29, 18, 0, 0, 0, time.UTC)
	require.NoError(t, typed.SetDate(ctx, "progress.last_completion_date", when))
	require.NoError(t, typed.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := storage.New(reopened).GetDate(ctx, "progress.last_completion_date")
	require.NoError(t, err)
	assert.True(t, when.Equal(got))
}

func TestStoreRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := Open("  ")
	assert.Error(t, err)

	store, err := Open(filepath.Join(t.TempDir(), "wordly.db"))
	require.NoError(t, err)
	defer store.Close()

	assert.Error(t, store.Put(context.Background(), "", []byte("x")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Get(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)
}
