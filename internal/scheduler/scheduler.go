package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// RolloverTime is the wall clock time the daily counter is reset at.
const RolloverTime = "00:00"

// RollOver resets the daily counter once the calendar day changes.
type RollOver interface {
	RollOver(ctx context.Context) bool
}

// Scheduler runs the daily rollover job in the learner's timezone.
type Scheduler struct {
	scheduler *gocron.Scheduler
	target    RollOver
	logger    *zap.Logger
}

// New creates a scheduler. Jobs are registered by Start.
func New(target RollOver, loc *time.Location, logger *zap.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}

	s := gocron.NewScheduler(loc)
	s.SingletonModeAll()

	return &Scheduler{
		scheduler: s,
		target:    target,
		logger:    logger,
	}
}

// Start registers the rollover jobs and runs them in the background.
// The hourly check catches a midnight missed while the machine slept.
func (s *Scheduler) Start(ctx context.Context) error {
	if _, err := s.scheduler.Every(1).Day().At(RolloverTime).Do(s.rollOver, ctx); err != nil {
		return fmt.Errorf("schedule daily rollover: %w", err)
	}
	if _, err := s.scheduler.Every(1).Hour().Do(s.rollOver, ctx); err != nil {
		return fmt.Errorf("schedule hourly rollover check: %w", err)
	}

	s.scheduler.StartAsync()
	s.logger.Info("scheduler started", zap.Int("jobs", s.scheduler.Len()))
	return nil
}

// Stop terminates all scheduled jobs.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// Len returns the number of registered jobs.
func (s *Scheduler) Len() int {
	return s.scheduler.Len()
}

// NextRun returns the earliest upcoming job run.
func (s *Scheduler) NextRun() time.Time {
	_, next := s.scheduler.NextRun()
	return next
}

func (s *Scheduler) rollOver(ctx context.Context) {
	if s.target.RollOver(ctx) {
		s.logger.Info("daily progress rolled over")
	}
}
