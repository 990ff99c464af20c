package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// DefaultReminderSpec fires every evening at 20:00.
const DefaultReminderSpec = "0 20 * * *"

// Reminder checks whether the learner is behind and nudges them.
type Reminder interface {
	RemindIfBehind(ctx context.Context) bool
}

// ReminderService runs Reminder on a cron schedule.
type ReminderService struct {
	reminder Reminder
	spec     string
	loc      *time.Location
	logger   *zap.Logger
}

// NewReminderService creates a reminder service. An empty spec uses DefaultReminderSpec.
func NewReminderService(reminder Reminder, spec string, loc *time.Location, logger *zap.Logger) *ReminderService {
	if spec == "" {
		spec = DefaultReminderSpec
	}
	if loc == nil {
		loc = time.Local
	}
	return &ReminderService{
		reminder: reminder,
		spec:     spec,
		loc:      loc,
		logger:   logger,
	}
}

// Next returns the first reminder time after now.
func (s *ReminderService) Next(now time.Time) (time.Time, error) {
	schedule, err := cron.ParseStandard(s.spec)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse reminder schedule %q: %w", s.spec, err)
	}
	return schedule.Next(now.In(s.loc)), nil
}

// Start runs the reminder schedule until ctx is cancelled.
func (s *ReminderService) Start(ctx context.Context) error {
	c := cron.New(cron.WithLocation(s.loc))

	_, err := c.AddFunc(s.spec, func() {
		s.logger.Debug("cron triggered: checking daily goal")
		if s.reminder.RemindIfBehind(ctx) {
			s.logger.Info("reminder sent")
		}
	})
	if err != nil {
		return fmt.Errorf("add reminder job: %w", err)
	}

	c.Start()
	s.logger.Info("reminder service started", zap.String("schedule", s.spec))

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("reminder service stopped")
	return nil
}
