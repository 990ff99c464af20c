package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/events"
	"github.com/aliskhannn/wordly/internal/service"
	"github.com/aliskhannn/wordly/internal/storage"
)

// WordRepository looks up the words of the selected categories.
type WordRepository interface {
	GetByCategories(categories []entities.Category) []*entities.Word
}

// Options tune a Learner. Zero values pick sensible defaults.
type Options struct {
	DailyGoal int            // goal used until one is stored
	Clock     service.Clock  // time source, time.Now by default
	Location  *time.Location // calendar day timezone, time.Local by default
	Rand      *rand.Rand     // random source for quizzes
}

// Learner is the single entry point for a study session. It owns the
// services and serializes every call.
type Learner struct {
	mu sync.Mutex

	words     WordRepository
	store     service.Store
	sink      events.Sink
	logger    *zap.Logger
	clock     service.Clock
	loc       *time.Location
	rng       *rand.Rand
	reminders *storage.ReminderLog

	settings *service.SettingsService
	mastery  *service.MasteryTracker
	progress *service.ProgressTracker
	session  *service.SessionController
	quiz     *service.QuizEngine

	categories []entities.Category
}

// NewLearner restores the persisted state and opens a session over the
// selected categories.
func NewLearner(
	ctx context.Context,
	store service.Store,
	words WordRepository,
	sink events.Sink,
	logger *zap.Logger,
	opts Options,
) (*Learner, error) {
	if sink == nil {
		sink = events.Discard
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	l := &Learner{
		words:     words,
		store:     store,
		sink:      sink,
		logger:    logger,
		clock:     opts.Clock,
		loc:       opts.Location,
		rng:       opts.Rand,
		reminders: storage.NewReminderLog(),
		settings:  service.NewSettingsService(store, logger, opts.DailyGoal),
	}

	if err := l.build(ctx); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Learner) build(ctx context.Context) error {
	categories := l.settings.SelectedCategories(ctx)
	pool := l.words.GetByCategories(categories)
	if len(pool) == 0 {
		return fmt.Errorf("categories %v: %w", categories, service.ErrEmptyPool)
	}

	l.mastery = service.NewMasteryTracker(l.store, l.logger)
	l.progress = service.NewProgressTracker(ctx, l.store, l.sink, l.logger, l.settings.DailyGoal(ctx),
		service.WithClock(l.clock),
		service.WithLocation(l.loc),
	)

	session, err := service.NewSessionController(ctx, pool, l.mastery, l.progress, l.sink, l.logger,
		service.WithSessionRand(l.rng),
	)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	l.session = session
	l.quiz = service.NewQuizEngine(l.sink, l.logger, service.WithQuizRand(l.rng))
	l.categories = categories

	l.logger.Info("session started",
		zap.Int("words", len(pool)),
		zap.Any("categories", categories),
	)
	return nil
}

// Next moves to the next card.
func (l *Learner) Next(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.session.Advance(ctx, service.Forward)
}

// Previous moves to the previous card.
func (l *Learner) Previous(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.session.Advance(ctx, service.Backward)
}

// MarkKnown raises the current word's mastery and queues it for the quiz.
func (l *Learner) MarkKnown(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.session.MarkKnown(ctx)
}

// CurrentWord returns a copy of the card being shown.
func (l *Learner) CurrentWord() *entities.Word {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.session.CurrentWord().Clone()
}

// Session returns a snapshot of the study session.
func (l *Learner) Session() entities.SessionState {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.session.State()
}

// Progress rolls the daily counter over if needed and returns the state.
func (l *Learner) Progress(ctx context.Context) entities.ProgressState {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.progress.RollOverIfNewDay(ctx)
	return l.progress.State()
}

// RollOver resets the daily counter when the calendar day has changed.
func (l *Learner) RollOver(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.progress.RollOverIfNewDay(ctx)
}

func (l *Learner) ShouldShowQuiz() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.session.ShouldShowQuiz()
}

// StartQuiz builds a quiz from the collected words, using the whole pool
// for distractors.
func (l *Learner) StartQuiz() (*entities.QuizSession, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	words, err := l.session.QuizWords()
	if err != nil {
		return nil, err
	}

	return l.quiz.Start(words, l.session.Words())
}

// Quiz returns the running quiz, or nil.
func (l *Learner) Quiz() *entities.QuizSession {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.quiz.Session()
}

// Answer answers the current question.
func (l *Learner) Answer(option string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.quiz.SelectAnswer(option)
}

// NextQuestion advances the quiz and reports whether it is complete.
// Collected words are cleared once the quiz completes.
func (l *Learner) NextQuestion() (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.quiz.MoveToNextQuestion(); err != nil {
		return false, err
	}

	s := l.quiz.Session()
	if s.IsComplete {
		l.session.ClearQuizWords()
	}
	return s.IsComplete, nil
}

func (l *Learner) DailyGoal() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.progress.State().DailyGoal
}

// SetDailyGoal changes and persists the daily goal.
func (l *Learner) SetDailyGoal(ctx context.Context, goal int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.progress.SetDailyGoal(ctx, goal)
}

// Categories returns the selected categories in display order.
func (l *Learner) Categories() []entities.Category {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entities.Category, len(l.categories))
	copy(out, l.categories)
	return out
}

// SelectCategories persists a new selection and swaps the word pool. The
// selection is rejected when it has no words.
func (l *Learner) SelectCategories(ctx context.Context, categories []entities.Category) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(categories) == 0 {
		return service.ErrNoCategories
	}
	normalized := make([]entities.Category, 0, len(categories))
	for _, c := range categories {
		parsed, err := entities.ParseCategory(string(c))
		if err != nil {
			return err
		}
		normalized = append(normalized, parsed)
	}
	categories = normalized

	pool := l.words.GetByCategories(categories)
	if len(pool) == 0 {
		return fmt.Errorf("categories %v: %w", categories, service.ErrEmptyPool)
	}

	if err := l.settings.SetSelectedCategories(ctx, categories); err != nil {
		return err
	}
	if err := l.session.ReplaceWords(ctx, pool); err != nil {
		return err
	}

	l.categories = l.settings.SelectedCategories(ctx)
	l.logger.Info("categories changed", zap.Any("categories", l.categories), zap.Int("words", len(pool)))
	return nil
}

// Words returns copies of the pool words, optionally filtered by level.
func (l *Learner) Words(level *entities.MasteryLevel) []*entities.Word {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []*entities.Word
	for _, w := range l.session.Words() {
		if level != nil && w.Mastery != *level {
			continue
		}
		out = append(out, w.Clone())
	}
	return out
}

// Stats counts the pool words per mastery level.
func (l *Learner) Stats() service.MasteryStats {
	l.mu.Lock()
	defer l.mu.Unlock()

	return service.CountMastery(l.session.Words())
}

// RemindIfBehind emits a reminder when the goal is not reached yet today.
// At most one reminder is sent per calendar day.
func (l *Learner) RemindIfBehind(ctx context.Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock()
	if l.reminders.SentOn(now, l.loc) {
		return false
	}

	l.progress.RollOverIfNewDay(ctx)
	state := l.progress.State()
	if state.HasReachedGoalToday || state.WordsViewedToday >= state.DailyGoal {
		return false
	}

	if !l.reminders.MarkSent(now, l.loc) {
		return false
	}

	l.logger.Info("reminder sent", zap.Int("remaining", state.Remaining()))
	l.sink.Emit(events.Event{Kind: events.KindReminder})
	return true
}

// Reset wipes all stored progress and starts a fresh session.
func (l *Learner) Reset(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.settings.ResetAllProgress(ctx); err != nil {
		return fmt.Errorf("reset progress: %w", err)
	}
	l.reminders.Reset()

	return l.build(ctx)
}
