package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/wordly/internal/config"
	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/events"
	"github.com/aliskhannn/wordly/internal/logger"
	"github.com/aliskhannn/wordly/internal/repository"
	"github.com/aliskhannn/wordly/internal/service"
	"github.com/aliskhannn/wordly/internal/storage"
	"github.com/aliskhannn/wordly/internal/usecase"
)

// app holds the dependencies shared by every command.
type app struct {
	configFile string

	cfg     *config.Config
	logger  *zap.Logger
	loc     *time.Location
	store   *storage.Store
	bus     *events.Bus
	learner *usecase.Learner
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "wordly",
		Short:         "Learn vocabulary with flashcards, daily goals and quizzes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (default ./config/config.yaml)")

	root.AddCommand(
		newStudyCmd(a),
		newProgressCmd(a),
		newGoalCmd(a),
		newCategoriesCmd(a),
		newWordsCmd(a),
		newResetCmd(a),
		newImportCmd(a),
		newWatchCmd(a),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}

	l, err := logger.New(cfg)
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = l
	a.loc = loc
	a.bus = events.NewBus()
	return nil
}

// openLearner opens the store and restores the learner. Commands that only
// touch files skip it.
func (a *app) openLearner(ctx context.Context) (*usecase.Learner, error) {
	if a.learner != nil {
		return a.learner, nil
	}

	backend, err := openBackend(ctx, a.cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	a.store = storage.New(backend)

	repo, err := a.openWords()
	if err != nil {
		return nil, err
	}

	learner, err := usecase.NewLearner(ctx, a.store, repo, a.bus, a.logger, usecase.Options{
		DailyGoal: a.cfg.DailyGoal,
		Location:  a.loc,
	})
	if err != nil {
		return nil, err
	}

	a.logger.Debug("learner ready",
		zap.String("storage", a.cfg.Storage.Driver),
		zap.Int("words", repo.Count()),
	)
	a.learner = learner
	return learner, nil
}

// openWords loads the configured word list.
func (a *app) openWords() (*repository.WordRepository, error) {
	repo, err := repository.NewWordRepository(a.cfg.WordsPath)
	if err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}
	return repo, nil
}

// run executes the command line and releases the store even when the
// command fails.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

func (a *app) close() error {
	var err error
	if a.store != nil {
		err = a.store.Close()
		a.store = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
	return err
}

// userMessage turns known errors into short explanations.
func userMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidGoal):
		return "the daily goal must be a positive number"
	case errors.Is(err, service.ErrNoCategories):
		return "select at least one category"
	case errors.Is(err, entities.ErrUnknownCategory):
		return fmt.Sprintf("%v (known: %v)", err, entities.Categories())
	case errors.Is(err, service.ErrEmptyPool):
		return "the selected categories have no words"
	case errors.Is(err, config.ErrMissingEnvironmentVariables):
		return "DATABASE_URL must be set for the postgres storage driver"
	default:
		return err.Error()
	}
}
