package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/events"
	"github.com/aliskhannn/wordly/internal/storage"
)

// DefaultDailyGoal is the number of word views per day used when none is set.
const DefaultDailyGoal = 10

// ProgressTracker counts daily word views against the goal and keeps the streak.
//
// The view counter keeps growing after the goal is reached; goal_reached
// fires once per calendar day.
type ProgressTracker struct {
	store  Store
	sink   events.Sink
	logger *zap.Logger
	clock  Clock
	loc    *time.Location

	state      entities.ProgressState
	lastViewed *time.Time // day the stored counter belongs to (nullable)
}

// ProgressOption configures a ProgressTracker.
type ProgressOption func(*ProgressTracker)

// WithClock overrides time.Now.
func WithClock(clock Clock) ProgressOption {
	return func(t *ProgressTracker) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// WithLocation sets the timezone calendar days are computed in.
func WithLocation(loc *time.Location) ProgressOption {
	return func(t *ProgressTracker) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// NewProgressTracker restores the progress state from store and rolls the
// daily counter over if it belongs to an earlier day.
func NewProgressTracker(
	ctx context.Context,
	store Store,
	sink events.Sink,
	logger *zap.Logger,
	dailyGoal int,
	opts ...ProgressOption,
) *ProgressTracker {
	if dailyGoal <= 0 {
		dailyGoal = DefaultDailyGoal
	}
	if sink == nil {
		sink = events.Discard
	}

	t := &ProgressTracker{
		store:  store,
		sink:   sink,
		logger: logger,
		clock:  time.Now,
		loc:    time.Local,
		state:  entities.ProgressState{DailyGoal: dailyGoal},
	}
	for _, opt := range opts {
		opt(t)
	}

	t.load(ctx)
	return t
}

func (t *ProgressTracker) load(ctx context.Context) {
	t.state.WordsViewedToday = max(t.readInt(ctx, keyWordsViewedToday), 0)
	t.state.StreakDays = max(t.readInt(ctx, keyStreakDays), 0)
	t.state.BestStreak = max(t.readInt(ctx, keyBestStreak), t.state.StreakDays)
	t.state.LastCompletionDate = t.readDate(ctx, keyLastCompletionDate)
	t.lastViewed = t.readDate(ctx, keyLastViewedDate)
	// Only a completion recorded today counts; a goal lowered since then is
	// crossed by the next recorded view.
	t.state.HasReachedGoalToday = t.state.LastCompletionDate != nil &&
		entities.SameDay(*t.state.LastCompletionDate, t.clock(), t.loc)

	if t.isStale(t.clock()) {
		t.logger.Info("daily progress belongs to an earlier day, resetting",
			zap.Int("words_viewed", t.state.WordsViewedToday),
		)
		t.ResetDailyProgress(ctx)
	}
}

// counterDay is the day the stored counter was last written on.
func (t *ProgressTracker) counterDay() *time.Time {
	if t.lastViewed != nil {
		return t.lastViewed
	}
	return t.state.LastCompletionDate
}

func (t *ProgressTracker) isStale(now time.Time) bool {
	day := t.counterDay()
	return day != nil && !entities.SameDay(*day, now, t.loc)
}

// ResetDailyProgress zeroes today's counter and clears the reached flag.
func (t *ProgressTracker) ResetDailyProgress(ctx context.Context) {
	now := t.clock()

	t.state.WordsViewedToday = 0
	t.state.HasReachedGoalToday = false
	t.lastViewed = &now

	t.writeInt(ctx, keyWordsViewedToday, 0)
	t.writeDate(ctx, keyLastViewedDate, now)
}

// RollOverIfNewDay resets the daily counter when the calendar day changed
// since it was last written. It reports whether a reset happened.
func (t *ProgressTracker) RollOverIfNewDay(ctx context.Context) bool {
	if !t.isStale(t.clock()) {
		return false
	}

	t.ResetDailyProgress(ctx)
	t.sink.Emit(events.Event{Kind: events.KindDayRolledOver})
	return true
}

// RecordWordViewed counts one word view.
func (t *ProgressTracker) RecordWordViewed(ctx context.Context) {
	t.RollOverIfNewDay(ctx)

	now := t.clock()
	t.state.WordsViewedToday++
	t.lastViewed = &now
	t.writeInt(ctx, keyWordsViewedToday, t.state.WordsViewedToday)
	t.writeDate(ctx, keyLastViewedDate, now)

	if t.state.HasReachedGoalToday || t.state.WordsViewedToday < t.state.DailyGoal {
		return
	}

	t.state.HasReachedGoalToday = true
	previous := t.state.LastCompletionDate
	t.state.LastCompletionDate = &now
	t.writeDate(ctx, keyLastCompletionDate, now)
	t.updateStreak(ctx, previous, now)

	t.logger.Info("daily goal reached",
		zap.Int("goal", t.state.DailyGoal),
		zap.Int("streak_days", t.state.StreakDays),
	)
	t.sink.Emit(events.Event{Kind: events.KindGoalReached})
}

// updateStreak applies a goal completion at now given the previous one.
func (t *ProgressTracker) updateStreak(ctx context.Context, previous *time.Time, now time.Time) {
	if previous == nil {
		t.state.StreakDays = 1
	} else {
		switch days := entities.CalendarDaysBetween(*previous, now, t.loc); {
		case days <= 0:
			return
		case days == 1:
			t.state.StreakDays++
		default:
			t.state.StreakDays = 1
		}
	}

	if t.state.BestStreak < t.state.StreakDays {
		t.state.BestStreak = t.state.StreakDays
	}

	t.writeInt(ctx, keyStreakDays, t.state.StreakDays)
	t.writeInt(ctx, keyBestStreak, t.state.BestStreak)
}

// ProgressPercentage returns today's progress toward the goal in [0, 1].
func (t *ProgressTracker) ProgressPercentage() float64 {
	return t.state.Percentage()
}

// SetDailyGoal changes the goal. The reached flag is left as is; the next
// recorded view performs the crossing if the new goal is already met.
func (t *ProgressTracker) SetDailyGoal(ctx context.Context, goal int) error {
	if goal <= 0 {
		return ErrInvalidGoal
	}

	t.state.DailyGoal = goal
	t.writeInt(ctx, keyDailyGoal, goal)
	return nil
}

// State returns a copy of the current progress state.
func (t *ProgressTracker) State() entities.ProgressState {
	s := t.state
	if s.LastCompletionDate != nil {
		d := *s.LastCompletionDate
		s.LastCompletionDate = &d
	}
	return s
}

func (t *ProgressTracker) readInt(ctx context.Context, key string) int {
	v, err := t.store.GetInt(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			t.logger.Warn("failed to read progress value", zap.String("key", key), zap.Error(err))
		}
		return 0
	}
	return v
}

func (t *ProgressTracker) readDate(ctx context.Context, key string) *time.Time {
	v, err := t.store.GetDate(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			t.logger.Warn("failed to read progress date", zap.String("key", key), zap.Error(err))
		}
		return nil
	}
	return &v
}

func (t *ProgressTracker) writeInt(ctx context.Context, key string, v int) {
	if err := t.store.SetInt(ctx, key, v); err != nil {
		t.logger.Error("failed to persist progress value", zap.String("key", key), zap.Error(err))
	}
}

func (t *ProgressTracker) writeDate(ctx context.Context, key string, v time.Time) {
	if err := t.store.SetDate(ctx, key, v); err != nil {
		t.logger.Error("failed to persist progress date", zap.String("key", key), zap.Error(err))
	}
}
