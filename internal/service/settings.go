package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/storage"
)

// SettingsService reads and writes learner preferences.
type SettingsService struct {
	store       Store
	logger      *zap.Logger
	defaultGoal int
}

// NewSettingsService creates the service. defaultGoal applies when no goal
// is stored; non-positive values mean DefaultDailyGoal.
func NewSettingsService(store Store, logger *zap.Logger, defaultGoal int) *SettingsService {
	if defaultGoal <= 0 {
		defaultGoal = DefaultDailyGoal
	}
	return &SettingsService{store: store, logger: logger, defaultGoal: defaultGoal}
}

// DailyGoal returns the stored goal, or the default goal when it is missing,
// invalid or unreadable.
func (s *SettingsService) DailyGoal(ctx context.Context) int {
	goal, err := s.store.GetInt(ctx, keyDailyGoal)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("failed to read daily goal", zap.Error(err))
		}
		return s.defaultGoal
	}
	if goal <= 0 {
		return s.defaultGoal
	}
	return goal
}

func (s *SettingsService) SetDailyGoal(ctx context.Context, goal int) error {
	if goal <= 0 {
		return ErrInvalidGoal
	}
	if err := s.store.SetInt(ctx, keyDailyGoal, goal); err != nil {
		return fmt.Errorf("save daily goal: %w", err)
	}
	return nil
}

// SelectedCategories returns the stored categories in display order.
// Unknown names are dropped; an empty result falls back to the default.
func (s *SettingsService) SelectedCategories(ctx context.Context) []entities.Category {
	names, err := s.store.GetStringList(ctx, keySelectedCategories)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("failed to read selected categories", zap.Error(err))
		}
		return []entities.Category{entities.DefaultCategory}
	}

	selected := make(map[entities.Category]bool, len(names))
	for _, name := range names {
		c, err := entities.ParseCategory(name)
		if err != nil {
			s.logger.Warn("dropping unknown stored category", zap.String("category", name))
			continue
		}
		selected[c] = true
	}

	cats := make([]entities.Category, 0, len(selected))
	for _, c := range entities.Categories() {
		if selected[c] {
			cats = append(cats, c)
		}
	}
	if len(cats) == 0 {
		return []entities.Category{entities.DefaultCategory}
	}
	return cats
}

func (s *SettingsService) SetSelectedCategories(ctx context.Context, cats []entities.Category) error {
	if len(cats) == 0 {
		return ErrNoCategories
	}

	names := make([]string, 0, len(cats))
	seen := make(map[entities.Category]bool, len(cats))
	for _, c := range cats {
		if _, err := entities.ParseCategory(string(c)); err != nil {
			return err
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		names = append(names, string(c))
	}

	if err := s.store.SetStringList(ctx, keySelectedCategories, names); err != nil {
		return fmt.Errorf("save selected categories: %w", err)
	}
	return nil
}

// ResetAllProgress wipes every stored value and restores the default goal
// and category.
func (s *SettingsService) ResetAllProgress(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	if err := s.SetDailyGoal(ctx, s.defaultGoal); err != nil {
		return err
	}
	if err := s.SetSelectedCategories(ctx, []entities.Category{entities.DefaultCategory}); err != nil {
		return err
	}

	s.logger.Info("all progress reset")
	return nil
}
