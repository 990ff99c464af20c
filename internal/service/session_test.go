package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/events"
)

type sessionFixture struct {
	session *SessionController
	views   *viewCounter
	events  *events.Recorder
	words   []*entities.Word
}

func newSessionFixture(t *testing.T, n int) *sessionFixture {
	t.Helper()

	words := makeWords(n)
	views := &viewCounter{}
	rec := &events.Recorder{}

	session, err := NewSessionController(
		context.Background(),
		words,
		NewMasteryTracker(newTestStore(), zap.NewNop()),
		views,
		rec,
		zap.NewNop(),
		WithSessionRand(rand.New(rand.NewSource(1))),
	)
	require.NoError(t, err)

	return &sessionFixture{session: session, views: views, events: rec, words: words}
}

func (f *sessionFixture) advance(t *testing.T, dir Direction, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, f.session.Advance(context.Background(), dir))
	}
}

func TestSessionController_FiveWordCycle(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t, 5)

	f.advance(t, Forward, 4)
	assert.Equal(t, 0, f.session.CycleCount())
	assert.Equal(t, f.words[4].ID, f.session.CurrentWord().ID)

	f.advance(t, Forward, 1)
	assert.Equal(t, 1, f.session.CycleCount())
	assert.Equal(t, 0, f.session.State().CurrentIndex)
	assert.Equal(t, 5, f.views.views)
	assert.Equal(t, 1, f.events.Count(events.KindCycleCompleted))
}

func TestSessionController_BackwardNeverCompletesCycle(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t, 5)

	f.advance(t, Backward, 1)
	assert.Equal(t, 4, f.session.State().CurrentIndex)

	f.advance(t, Backward, 4)
	assert.Equal(t, 0, f.session.State().CurrentIndex)
	assert.Equal(t, 0, f.session.CycleCount())
	assert.Equal(t, 0, f.events.Count(events.KindCycleCompleted))
	assert.Equal(t, 5, f.views.views)

	assert.ErrorIs(t, f.session.Advance(context.Background(), Direction(2)), ErrInvalidDirection)
	assert.Equal(t, 5, f.views.views)
}

func TestSessionController_QuizAfterThreeKnownWords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newSessionFixture(t, 5)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.session.MarkKnown(ctx))
		f.advance(t, Forward, 1)
	}
	assert.False(t, f.session.ShouldShowQuiz(), "no cycle completed yet")

	f.advance(t, Forward, 2)
	assert.True(t, f.session.ShouldShowQuiz())

	quiz, err := f.session.QuizWords()
	require.NoError(t, err)
	require.Len(t, quiz, 3)
	for i, w := range quiz {
		assert.Equal(t, f.words[i].ID, w.ID)
	}

	assert.Equal(t, 3, f.events.Count(events.KindLevelUp))
}

func TestSessionController_MarkKnown(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("same word collected once", func(t *testing.T) {
		t.Parallel()

		f := newSessionFixture(t, 5)
		for i := 0; i < 5; i++ {
			require.NoError(t, f.session.MarkKnown(ctx))
		}

		assert.Len(t, f.session.State().QuizWords, 1)
		assert.Equal(t, entities.MasteryMastered, f.words[0].Mastery)
		assert.Equal(t, 3, f.events.Count(events.KindLevelUp), "no level up once mastered")

		last := f.events.Events()[2]
		assert.Equal(t, entities.MasteryMastered, last.Level)
		assert.Equal(t, f.words[0].ID, last.Word.ID)
	})

	t.Run("capacity is five", func(t *testing.T) {
		t.Parallel()

		f := newSessionFixture(t, 7)
		for i := 0; i < 7; i++ {
			require.NoError(t, f.session.MarkKnown(ctx))
			f.advance(t, Forward, 1)
		}

		quizWords := f.session.State().QuizWords
		require.Len(t, quizWords, 5)
		assert.Equal(t, f.words[4].ID, quizWords[4].ID)

		quiz, err := f.session.QuizWords()
		require.NoError(t, err)
		assert.Len(t, quiz, 5)
	})
}

func TestSessionController_QuizWordsPadding(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t, 6)
	require.NoError(t, f.session.MarkKnown(context.Background()))

	quiz, err := f.session.QuizWords()
	require.NoError(t, err)
	require.Len(t, quiz, 3)
	assert.Equal(t, f.words[0].ID, quiz[0].ID)

	seen := map[string]bool{}
	for _, w := range quiz {
		assert.False(t, seen[w.ID], "duplicate word %s", w.Term)
		seen[w.ID] = true
	}

	assert.Len(t, f.session.State().QuizWords, 1, "padding does not change collected words")
}

func TestSessionController_InsufficientPool(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t, 2)
	require.NoError(t, f.session.MarkKnown(context.Background()))

	_, err := f.session.QuizWords()
	assert.ErrorIs(t, err, ErrInsufficientWords)
}

func TestSessionController_ReplaceWords(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newSessionFixture(t, 5)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.session.MarkKnown(ctx))
		f.advance(t, Forward, 1)
	}
	f.advance(t, Forward, 2)
	require.Equal(t, 1, f.session.CycleCount())

	others := makeWords(8)[5:]
	pool := append([]*entities.Word{entities.NewWord("term1", "", "noun", "", "", entities.CategoryEveryday)}, others...)
	require.NoError(t, f.session.ReplaceWords(ctx, pool))

	assert.Equal(t, 0, f.session.State().CurrentIndex)
	assert.Equal(t, 1, f.session.CycleCount(), "cycles survive a reload")
	assert.Len(t, f.session.State().QuizWords, 3, "pruning is lazy")
	assert.Equal(t, entities.MasteryLearning, pool[0].Mastery, "mastery is restored for the new pool")

	quiz, err := f.session.QuizWords()
	require.NoError(t, err)
	require.Len(t, quiz, 3)
	assert.Same(t, pool[0], quiz[0])
	assert.Len(t, f.session.State().QuizWords, 1)

	assert.ErrorIs(t, f.session.ReplaceWords(ctx, nil), ErrEmptyPool)
}

func TestSessionController_DeduplicatesPool(t *testing.T) {
	t.Parallel()

	words := makeWords(3)
	words = append(words, words[0], nil)

	session, err := NewSessionController(
		context.Background(),
		words,
		NewMasteryTracker(newTestStore(), zap.NewNop()),
		&viewCounter{},
		nil,
		zap.NewNop(),
	)
	require.NoError(t, err)
	assert.Len(t, session.Words(), 3)

	_, err = NewSessionController(
		context.Background(),
		nil,
		NewMasteryTracker(newTestStore(), zap.NewNop()),
		&viewCounter{},
		nil,
		zap.NewNop(),
	)
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestSessionController_ResetToFirstWord(t *testing.T) {
	t.Parallel()

	f := newSessionFixture(t, 5)
	require.NoError(t, f.session.MarkKnown(context.Background()))
	f.advance(t, Forward, 5)
	f.advance(t, Forward, 2)

	f.session.ResetToFirstWord()
	state := f.session.State()
	assert.Equal(t, 0, state.CurrentIndex)
	assert.Equal(t, 1, state.CycleCount)
	assert.Len(t, state.QuizWords, 1)

	f.session.ClearQuizWords()
	assert.Empty(t, f.session.State().QuizWords)
}
