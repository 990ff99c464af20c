package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/wordly/internal/delivery/terminal"
	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/events"
	"github.com/aliskhannn/wordly/internal/repository"
	"github.com/aliskhannn/wordly/internal/scheduler"
	"github.com/aliskhannn/wordly/internal/service"
	"github.com/aliskhannn/wordly/internal/usecase"
)

func newStudyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "study",
		Short: "Swipe through flashcards and take quizzes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			learner, err := a.openLearner(ctx)
			if err != nil {
				return err
			}

			h := terminal.NewHandler(cmd.InOrStdin(), cmd.OutOrStdout(), a.logger, learner)
			unsubscribe := a.bus.Subscribe(h.HandleEvent)
			defer unsubscribe()

			stop, err := a.startBackground(ctx, learner)
			if err != nil {
				return err
			}
			defer stop()

			if err := h.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}

func newProgressCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show today's progress, streaks and mastery",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			learner, err := a.openLearner(cmd.Context())
			if err != nil {
				return err
			}

			state := learner.Progress(cmd.Context())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), terminal.RenderProgress(state, learner.Stats()))
			return err
		},
	}
}

func newGoalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "goal [words-per-day]",
		Short: "Show or set the daily goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			learner, err := a.openLearner(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) == 1 {
				goal, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("goal %q: %w", args[0], service.ErrInvalidGoal)
				}
				if err := learner.SetDailyGoal(cmd.Context(), goal); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Daily goal: %d words\n", learner.DailyGoal())
			return err
		},
	}
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories [name...]",
		Short: "Show or select the categories to study",
		RunE: func(cmd *cobra.Command, args []string) error {
			learner, err := a.openLearner(cmd.Context())
			if err != nil {
				return err
			}

			if len(args) > 0 {
				selected := make([]entities.Category, 0, len(args))
				for _, arg := range args {
					c, err := entities.ParseCategory(arg)
					if err != nil {
						return err
					}
					selected = append(selected, c)
				}
				if err := learner.SelectCategories(cmd.Context(), selected); err != nil {
					return err
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), terminal.RenderCategories(learner.Categories()))
			return err
		},
	}
}

func newWordsCmd(a *app) *cobra.Command {
	var (
		level  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "words",
		Short: "List the words of the selected categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				repo, err := a.openWords()
				if err != nil {
					return err
				}
				return repository.WriteJSON(cmd.OutOrStdout(), repo.GetAll())
			}

			var filter *entities.MasteryLevel
			if level != "" {
				l, err := entities.ParseMasteryLevel(level)
				if err != nil {
					return err
				}
				filter = &l
			}

			learner, err := a.openLearner(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), terminal.RenderWords(learner.Words(filter)))
			return err
		},
	}

	cmd.Flags().StringVarP(&level, "level", "l", "", "only words at this mastery level (new, learning, familiar, mastered)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the whole word list as JSON, in the import format")
	return cmd
}

func newResetCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Erase all progress and settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("this erases all progress, run again with --yes to confirm")
			}

			learner, err := a.openLearner(cmd.Context())
			if err != nil {
				return err
			}
			if err := learner.Reset(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "All progress has been reset.")
			return err
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func newImportCmd(a *app) *cobra.Command {
	var (
		out      string
		sheet    string
		startRow int
	)

	cmd := &cobra.Command{
		Use:   "import <file.xlsx|file.csv>",
		Short: "Convert a spreadsheet word list into the JSON dataset format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := repository.DefaultImportConfig(args[0])
			cfg.SheetName = sheet
			cfg.StartRow = startRow

			result, err := repository.ImportWords(cfg)
			if err != nil {
				return err
			}

			a.logger.Info("words imported",
				zap.String("file", args[0]),
				zap.Int("processed", result.TotalProcessed),
				zap.Int("imported", result.Imported),
				zap.Int("skipped", result.Skipped),
			)

			stderr := cmd.ErrOrStderr()
			for _, msg := range result.Errors {
				fmt.Fprintln(stderr, "skipped:", msg)
			}
			fmt.Fprintf(stderr, "Imported %d of %d rows.\n", result.Imported, result.TotalProcessed)

			if result.Imported == 0 {
				return repository.ErrEmptyDataset
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				w = f
			}

			return repository.WriteJSON(w, result.Words)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write JSON here instead of stdout")
	cmd.Flags().StringVar(&sheet, "sheet", "", "sheet to import (first sheet by default)")
	cmd.Flags().IntVar(&startRow, "start-row", 2, "first data row, 1-based")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run the day rollover and reminder jobs until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			learner, err := a.openLearner(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			unsubscribe := a.bus.Subscribe(func(e events.Event) {
				if text := terminal.FormatEvent(e); text != "" {
					fmt.Fprintf(out, "%s %s\n", time.Now().In(a.loc).Format(time.DateTime), text)
				}
			})
			defer unsubscribe()

			sched := scheduler.New(learner, a.loc, a.logger)
			if err := sched.Start(ctx); err != nil {
				return err
			}
			defer sched.Stop()

			reminders := service.NewReminderService(learner, a.cfg.Scheduler.ReminderCron, a.loc, a.logger)
			if next, err := reminders.Next(time.Now()); err == nil {
				fmt.Fprintf(out, "Next reminder at %s\n", next.Format(time.DateTime))
			}

			return reminders.Start(ctx)
		},
	}
}

// startBackground runs the rollover scheduler and reminders next to an
// interactive session. The returned func stops both.
func (a *app) startBackground(ctx context.Context, learner *usecase.Learner) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	sched := scheduler.New(learner, a.loc, a.logger)
	if err := sched.Start(ctx); err != nil {
		cancel()
		return nil, err
	}

	reminders := service.NewReminderService(learner, a.cfg.Scheduler.ReminderCron, a.loc, a.logger)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := reminders.Start(ctx); err != nil {
			a.logger.Error("reminder service failed", zap.Error(err))
		}
	}()

	return func() {
		cancel()
		sched.Stop()
		<-done
	}, nil
}
