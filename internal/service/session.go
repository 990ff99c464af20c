package service

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/events"
)

const (
	maxQuizWords = 5
	minQuizWords = 3
)

// Direction of a card swipe.
type Direction int

const (
	Backward Direction = -1
	Forward  Direction = 1
)

// MasteryAdvancer loads and advances word mastery.
type MasteryAdvancer interface {
	Load(ctx context.Context, words []*entities.Word)
	Advance(ctx context.Context, word *entities.Word) (entities.MasteryLevel, entities.MasteryLevel, error)
}

// ViewRecorder counts word views.
type ViewRecorder interface {
	RecordWordViewed(ctx context.Context)
}

// SessionController walks the word pool, detects completed cycles and
// collects words marked known for the next quiz.
type SessionController struct {
	mastery  MasteryAdvancer
	progress ViewRecorder
	sink     events.Sink
	logger   *zap.Logger
	rng      *rand.Rand

	words      []*entities.Word
	index      int
	quizWords  []*entities.Word
	cycleCount int
}

// SessionOption configures a SessionController.
type SessionOption func(*SessionController)

// WithSessionRand sets the random source used to pad quiz words.
func WithSessionRand(rng *rand.Rand) SessionOption {
	return func(c *SessionController) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// NewSessionController starts a session over words. Duplicate ids are dropped.
func NewSessionController(
	ctx context.Context,
	words []*entities.Word,
	mastery MasteryAdvancer,
	progress ViewRecorder,
	sink events.Sink,
	logger *zap.Logger,
	opts ...SessionOption,
) (*SessionController, error) {
	if sink == nil {
		sink = events.Discard
	}

	c := &SessionController{
		mastery:  mastery,
		progress: progress,
		sink:     sink,
		logger:   logger,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.ReplaceWords(ctx, words); err != nil {
		return nil, err
	}

	return c, nil
}

// Advance moves one card in dir, wrapping around, and records a view.
// A forward step from the last card to the first completes a cycle.
func (c *SessionController) Advance(ctx context.Context, dir Direction) error {
	if dir != Forward && dir != Backward {
		return ErrInvalidDirection
	}

	n := len(c.words)
	prev := c.index
	c.index = (c.index + int(dir) + n) % n

	c.progress.RecordWordViewed(ctx)

	if dir == Forward && prev == n-1 && c.index == 0 {
		c.cycleCount++
		c.logger.Debug("cycle completed", zap.Int("cycle_count", c.cycleCount))
		c.sink.Emit(events.Event{Kind: events.KindCycleCompleted})
	}

	return nil
}

// MarkKnown advances the current word's mastery and collects it for the quiz.
func (c *SessionController) MarkKnown(ctx context.Context) error {
	word := c.words[c.index]

	old, next, err := c.mastery.Advance(ctx, word)
	if err != nil {
		return err
	}
	if next != old {
		c.sink.Emit(events.Event{Kind: events.KindLevelUp, Word: word, Level: next})
	}

	if len(c.quizWords) < maxQuizWords && indexByID(c.quizWords, word.ID) < 0 {
		c.quizWords = append(c.quizWords, word)
	}

	return nil
}

// ShouldShowQuiz reports whether a quiz should be offered: at least one
// completed cycle and at least three collected words.
func (c *SessionController) ShouldShowQuiz() bool {
	return c.cycleCount > 0 && len(c.quizWords) >= minQuizWords
}

// QuizWords returns between three and five words for a quiz. Collected words
// that left the pool are dropped; missing slots are filled with random pool
// words.
func (c *SessionController) QuizWords() ([]*entities.Word, error) {
	c.pruneQuizWords()

	if len(c.words) < minQuizWords {
		return nil, ErrInsufficientWords
	}

	selected := make([]*entities.Word, 0, maxQuizWords)
	for _, w := range c.quizWords {
		if len(selected) == maxQuizWords {
			break
		}
		selected = append(selected, w)
	}

	if len(selected) < minQuizWords {
		candidates := make([]*entities.Word, 0, len(c.words))
		for _, w := range c.words {
			if indexByID(selected, w.ID) < 0 {
				candidates = append(candidates, w)
			}
		}
		c.rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
		for _, w := range candidates {
			if len(selected) == minQuizWords {
				break
			}
			selected = append(selected, w)
		}
	}

	return selected, nil
}

// pruneQuizWords drops collected words whose id is no longer in the pool
// and points the rest at the pool's copy.
func (c *SessionController) pruneQuizWords() {
	kept := c.quizWords[:0]
	for _, w := range c.quizWords {
		if i := indexByID(c.words, w.ID); i >= 0 {
			kept = append(kept, c.words[i])
		}
	}
	c.quizWords = kept
}

// ClearQuizWords empties the collected words, typically after a quiz.
func (c *SessionController) ClearQuizWords() {
	c.quizWords = nil
}

// ResetToFirstWord moves to the first card. Cycles and quiz words are kept.
func (c *SessionController) ResetToFirstWord() {
	c.index = 0
}

// ReplaceWords swaps the pool, for example after a category change.
func (c *SessionController) ReplaceWords(ctx context.Context, words []*entities.Word) error {
	pool := uniqueByID(words)
	if len(pool) == 0 {
		return ErrEmptyPool
	}

	c.mastery.Load(ctx, pool)
	c.words = pool
	c.ResetToFirstWord()
	return nil
}

// CurrentWord returns the card being shown.
func (c *SessionController) CurrentWord() *entities.Word {
	return c.words[c.index]
}

// CycleCount returns the number of completed passes through the pool.
func (c *SessionController) CycleCount() int {
	return c.cycleCount
}

// Words returns the current pool.
func (c *SessionController) Words() []*entities.Word {
	out := make([]*entities.Word, len(c.words))
	copy(out, c.words)
	return out
}

// State returns a snapshot of the session.
func (c *SessionController) State() entities.SessionState {
	quiz := make([]*entities.Word, len(c.quizWords))
	copy(quiz, c.quizWords)

	return entities.SessionState{
		Words:        c.Words(),
		CurrentIndex: c.index,
		QuizWords:    quiz,
		CycleCount:   c.cycleCount,
	}
}

func indexByID(words []*entities.Word, id string) int {
	for i, w := range words {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func uniqueByID(words []*entities.Word) []*entities.Word {
	seen := make(map[string]struct{}, len(words))
	out := make([]*entities.Word, 0, len(words))
	for _, w := range words {
		if w == nil {
			continue
		}
		if _, ok := seen[w.ID]; ok {
			continue
		}
		seen[w.ID] = struct{}{}
		out = append(out, w)
	}
	return out
}
