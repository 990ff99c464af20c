package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/events"
	"github.com/aliskhannn/wordly/internal/repository"
	"github.com/aliskhannn/wordly/internal/service"
	"github.com/aliskhannn/wordly/internal/storage"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func testRepository(t *testing.T) *repository.WordRepository {
	t.Helper()

	var words []*entities.Word
	for i := 0; i < 4; i++ {
		words = append(words, entities.NewWord(fmt.Sprintf("everyday%d", i), "", "noun",
			fmt.Sprintf("everyday definition %d", i), "", entities.CategoryEveryday))
	}
	for i := 0; i < 2; i++ {
		words = append(words, entities.NewWord(fmt.Sprintf("science%d", i), "", "noun",
			fmt.Sprintf("science definition %d", i), "", entities.CategoryScience))
	}

	repo, err := repository.NewWordRepositoryFromWords(words)
	require.NoError(t, err)
	return repo
}

type fixture struct {
	learner  *Learner
	store    *storage.Store
	recorder *events.Recorder
	clock    *testClock
}

var fixtureStart = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

func newFixture(t *testing.T, store *storage.Store) *fixture {
	t.Helper()
	return newFixtureAt(t, store, fixtureStart)
}

func newFixtureAt(t *testing.T, store *storage.Store, now time.Time) *fixture {
	t.Helper()

	if store == nil {
		store = storage.New(storage.NewMemoryBackend())
	}
	clock := &testClock{now: now}
	recorder := &events.Recorder{}

	learner, err := NewLearner(context.Background(), store, testRepository(t), recorder, zap.NewNop(), Options{
		Clock:    clock.Now,
		Location: time.UTC,
		Rand:     rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	return &fixture{learner: learner, store: store, recorder: recorder, clock: clock}
}

func TestNewLearner_EmptyPool(t *testing.T) {
	t.Parallel()

	words := []*entities.Word{
		entities.NewWord("atom", "", "noun", "smallest unit", "", entities.CategoryScience),
	}
	repo, err := repository.NewWordRepositoryFromWords(words)
	require.NoError(t, err)

	_, err = NewLearner(context.Background(), storage.New(storage.NewMemoryBackend()), repo, nil, zap.NewNop(), Options{})
	assert.ErrorIs(t, err, service.ErrEmptyPool)
}

func TestLearner_Navigation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)

	first := f.learner.CurrentWord()
	assert.Equal(t, "everyday0", first.Term)

	require.NoError(t, f.learner.Previous(ctx))
	assert.Equal(t, "everyday3", f.learner.CurrentWord().Term)

	require.NoError(t, f.learner.Next(ctx))
	assert.Equal(t, "everyday0", f.learner.CurrentWord().Term)
	assert.Equal(t, 1, f.learner.Session().CycleCount)

	assert.Equal(t, 2, f.learner.Progress(ctx).WordsViewedToday)
}

func TestLearner_QuizFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)

	for i := 0; i < 3; i++ {
		require.NoError(t, f.learner.MarkKnown(ctx))
		require.NoError(t, f.learner.Next(ctx))
	}
	assert.False(t, f.learner.ShouldShowQuiz())

	require.NoError(t, f.learner.Next(ctx))
	require.True(t, f.learner.ShouldShowQuiz())

	quiz, err := f.learner.StartQuiz()
	require.NoError(t, err)
	require.Len(t, quiz.Questions, 3)

	for i := range quiz.Questions {
		q, ok := f.learner.Quiz().CurrentQuestion()
		require.True(t, ok)

		correct, err := f.learner.Answer(q.CorrectAnswer)
		require.NoError(t, err)
		assert.True(t, correct)

		done, err := f.learner.NextQuestion()
		require.NoError(t, err)
		assert.Equal(t, i == len(quiz.Questions)-1, done)
	}

	assert.True(t, f.learner.Quiz().IsPassed())
	assert.Equal(t, 1, f.recorder.Count(events.KindQuizPassed))
	assert.Equal(t, 3, f.recorder.Count(events.KindLevelUp))
	assert.False(t, f.learner.ShouldShowQuiz())
	assert.Empty(t, f.learner.Session().QuizWords)
}

func TestLearner_DailyGoal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)

	assert.Equal(t, service.DefaultDailyGoal, f.learner.DailyGoal())
	assert.ErrorIs(t, f.learner.SetDailyGoal(ctx, 0), service.ErrInvalidGoal)

	require.NoError(t, f.learner.SetDailyGoal(ctx, 2))
	require.NoError(t, f.learner.Next(ctx))
	require.NoError(t, f.learner.Next(ctx))

	state := f.learner.Progress(ctx)
	assert.True(t, state.HasReachedGoalToday)
	assert.Equal(t, 1, state.StreakDays)
	assert.Equal(t, 1, f.recorder.Count(events.KindGoalReached))
	assert.False(t, f.learner.RemindIfBehind(ctx))
}

func TestLearner_LoweredGoalAfterRestart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.New(storage.NewMemoryBackend())
	f := newFixture(t, store)

	for i := 0; i < service.DefaultDailyGoal; i++ {
		require.NoError(t, f.learner.Next(ctx))
	}
	require.Equal(t, 1, f.learner.Progress(ctx).StreakDays)

	f.clock.now = f.clock.now.AddDate(0, 0, 1)
	for i := 0; i < 5; i++ {
		require.NoError(t, f.learner.Next(ctx))
	}
	require.NoError(t, f.learner.SetDailyGoal(ctx, 3))

	restored := newFixtureAt(t, store, f.clock.now.Add(time.Hour))
	state := restored.learner.Progress(ctx)
	assert.Equal(t, 3, state.DailyGoal)
	assert.Equal(t, 5, state.WordsViewedToday)
	assert.False(t, state.HasReachedGoalToday)

	require.NoError(t, restored.learner.Next(ctx))

	state = restored.learner.Progress(ctx)
	assert.True(t, state.HasReachedGoalToday)
	assert.Equal(t, 2, state.StreakDays)
	assert.Equal(t, 1, restored.recorder.Count(events.KindGoalReached))
}

func TestLearner_RollOver(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)

	require.NoError(t, f.learner.Next(ctx))
	assert.False(t, f.learner.RollOver(ctx))

	f.clock.now = f.clock.now.AddDate(0, 0, 1)
	assert.True(t, f.learner.RollOver(ctx))
	assert.Equal(t, 0, f.learner.Progress(ctx).WordsViewedToday)
	assert.Equal(t, 1, f.recorder.Count(events.KindDayRolledOver))
}

func TestLearner_RemindIfBehind(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)

	assert.True(t, f.learner.RemindIfBehind(ctx))
	assert.False(t, f.learner.RemindIfBehind(ctx))

	f.clock.now = f.clock.now.AddDate(0, 0, 1)
	assert.True(t, f.learner.RemindIfBehind(ctx))
	assert.Equal(t, 2, f.recorder.Count(events.KindReminder))
}

func TestLearner_SelectCategories(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		categories []entities.Category
		wantErr    error
		wantCats   []entities.Category
		wantWords  int
	}{
		{
			name:       "science only",
			categories: []entities.Category{"science"},
			wantCats:   []entities.Category{entities.CategoryScience},
			wantWords:  2,
		},
		{
			name:       "science and everyday",
			categories: []entities.Category{entities.CategoryEveryday, entities.CategoryScience},
			wantCats:   []entities.Category{entities.CategoryScience, entities.CategoryEveryday},
			wantWords:  6,
		},
		{
			name:       "no categories",
			categories: nil,
			wantErr:    service.ErrNoCategories,
			wantCats:   []entities.Category{entities.CategoryEveryday},
			wantWords:  4,
		},
		{
			name:       "unknown category",
			categories: []entities.Category{"Cooking"},
			wantErr:    entities.ErrUnknownCategory,
			wantCats:   []entities.Category{entities.CategoryEveryday},
			wantWords:  4,
		},
		{
			name:       "category without words",
			categories: []entities.Category{entities.CategoryArts},
			wantErr:    service.ErrEmptyPool,
			wantCats:   []entities.Category{entities.CategoryEveryday},
			wantWords:  4,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			f := newFixture(t, nil)

			err := f.learner.SelectCategories(ctx, tt.categories)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, tt.wantCats, f.learner.Categories())
			assert.Len(t, f.learner.Words(nil), tt.wantWords)
		})
	}
}

func TestLearner_RestoresState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := storage.New(storage.NewMemoryBackend())
	f := newFixture(t, store)

	require.NoError(t, f.learner.SelectCategories(ctx, []entities.Category{entities.CategoryScience}))
	require.NoError(t, f.learner.SetDailyGoal(ctx, 4))
	require.NoError(t, f.learner.MarkKnown(ctx))
	require.NoError(t, f.learner.MarkKnown(ctx))

	restored := newFixture(t, store)
	assert.Equal(t, []entities.Category{entities.CategoryScience}, restored.learner.Categories())
	assert.Equal(t, 4, restored.learner.DailyGoal())

	familiar := entities.MasteryFamiliar
	words := restored.learner.Words(&familiar)
	require.Len(t, words, 1)
	assert.Equal(t, "science0", words[0].Term)

	stats := restored.learner.Stats()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Familiar)
	assert.Equal(t, 1, stats.New)
}

func TestLearner_Reset(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newFixture(t, nil)

	require.NoError(t, f.learner.SelectCategories(ctx, []entities.Category{entities.CategoryScience}))
	require.NoError(t, f.learner.SetDailyGoal(ctx, 3))
	require.NoError(t, f.learner.MarkKnown(ctx))
	require.NoError(t, f.learner.Next(ctx))
	assert.True(t, f.learner.RemindIfBehind(ctx))

	require.NoError(t, f.learner.Reset(ctx))

	assert.Equal(t, []entities.Category{entities.CategoryEveryday}, f.learner.Categories())
	assert.Equal(t, service.DefaultDailyGoal, f.learner.DailyGoal())
	assert.Equal(t, 0, f.learner.Progress(ctx).WordsViewedToday)
	assert.Equal(t, 4, f.learner.Stats().New)
	assert.True(t, f.learner.RemindIfBehind(ctx))
}
