package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/storage"
)

// MasteryTracker advances and persists word mastery levels.
type MasteryTracker struct {
	store  Store
	logger *zap.Logger
	known  map[string]*entities.Word
}

// NewMasteryTracker creates a tracker with no known words.
func NewMasteryTracker(store Store, logger *zap.Logger) *MasteryTracker {
	return &MasteryTracker{
		store:  store,
		logger: logger,
		known:  make(map[string]*entities.Word),
	}
}

// Load registers words and restores their persisted levels.
// Missing or unreadable levels fall back to MasteryNew.
func (t *MasteryTracker) Load(ctx context.Context, words []*entities.Word) {
	for _, w := range words {
		if w == nil {
			continue
		}
		t.known[w.ID] = w
		w.Mastery = t.readLevel(ctx, w.ID)
	}
}

func (t *MasteryTracker) readLevel(ctx context.Context, wordID string) entities.MasteryLevel {
	v, err := t.store.GetInt(ctx, masteryKey(wordID))
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			t.logger.Warn("failed to read mastery level",
				zap.String("word_id", wordID),
				zap.Error(err),
			)
		}
		return entities.MasteryNew
	}

	level := entities.MasteryLevel(v)
	if !level.Valid() {
		t.logger.Warn("stored mastery level out of range",
			zap.String("word_id", wordID),
			zap.Int("level", v),
		)
		return entities.MasteryNew
	}

	return level
}

// Advance moves word one level up, saturating at MasteryMastered, and
// returns the old and new levels. A failed write is logged and the
// in-memory level still advances.
func (t *MasteryTracker) Advance(ctx context.Context, word *entities.Word) (entities.MasteryLevel, entities.MasteryLevel, error) {
	if word == nil {
		t.logger.DPanic("advance mastery of nil word")
		return entities.MasteryNew, entities.MasteryNew, ErrUnknownWord
	}

	tracked, ok := t.known[word.ID]
	if !ok {
		t.logger.DPanic("advance mastery of unknown word", zap.String("word_id", word.ID))
		return word.Mastery, word.Mastery, ErrUnknownWord
	}

	old := word.Mastery
	if old >= entities.MasteryMastered {
		return old, old, nil
	}

	next := old.Next()
	word.Mastery = next
	tracked.Mastery = next

	if err := t.store.SetInt(ctx, masteryKey(word.ID), int(next)); err != nil {
		t.logger.Error("failed to persist mastery level",
			zap.String("word_id", word.ID),
			zap.Stringer("level", next),
			zap.Error(err),
		)
	}

	return old, next, nil
}

// level returns the tracked level of a word.
func (t *MasteryTracker) level(wordID string) (entities.MasteryLevel, bool) {
	w, ok := t.known[wordID]
	if !ok {
		return entities.MasteryNew, false
	}
	return w.Mastery, true
}
