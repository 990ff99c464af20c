package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/storage"
)

func newTestStore() *storage.Store {
	return storage.New(storage.NewMemoryBackend())
}

func makeWords(n int) []*entities.Word {
	words := make([]*entities.Word, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, entities.NewWord(
			fmt.Sprintf("term%d", i),
			"",
			"noun",
			fmt.Sprintf("definition %d", i),
			"",
			entities.CategoryEveryday,
		))
	}
	return words
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{now: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) AddDays(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.AddDate(0, 0, n)
}

// viewCounter counts recorded views.
type viewCounter struct {
	views int
}

func (v *viewCounter) RecordWordViewed(_ context.Context) {
	v.views++
}
