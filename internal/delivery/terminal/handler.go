package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/events"
	"github.com/aliskhannn/wordly/internal/service"
)

// Learner is the study engine the handler drives.
type Learner interface {
	Next(ctx context.Context) error
	Previous(ctx context.Context) error
	MarkKnown(ctx context.Context) error
	CurrentWord() *entities.Word
	Progress(ctx context.Context) entities.ProgressState
	Stats() service.MasteryStats
	ShouldShowQuiz() bool
	StartQuiz() (*entities.QuizSession, error)
	Quiz() *entities.QuizSession
	Answer(option string) (bool, error)
	NextQuestion() (bool, error)
}

// Handler runs the interactive study loop over a line based terminal.
type Handler struct {
	in      io.Reader
	out     io.Writer
	logger  *zap.Logger
	learner Learner
	matcher *service.AnswerMatcher

	mu     sync.Mutex // guards out, events arrive from scheduler goroutines
	inQuiz bool
}

func NewHandler(in io.Reader, out io.Writer, logger *zap.Logger, learner Learner) *Handler {
	return &Handler{
		in:      in,
		out:     out,
		logger:  logger,
		learner: learner,
		matcher: service.NewAnswerMatcher(),
	}
}

// Run reads commands until the input ends, the user exits or ctx is done.
func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("terminal handler started")
	defer h.logger.Info("terminal handler stopped")

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(h.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			h.logger.Error("failed to read input", zap.Error(err))
		}
	}()

	h.send(msgWelcome)
	h.send(msgHelp)
	h.showCard()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if !h.handleLine(ctx, strings.TrimSpace(line)) {
				h.send(msgBye)
				return nil
			}
		}
	}
}

// HandleEvent prints feedback for an engine event.
func (h *Handler) HandleEvent(e events.Event) {
	if text := FormatEvent(e); text != "" {
		h.send(text)
	}
}

// handleLine processes one input line and reports whether to keep going.
func (h *Handler) handleLine(ctx context.Context, line string) bool {
	h.logger.Debug("input received", zap.String("text", line), zap.Bool("quiz", h.inQuiz))

	if h.inQuiz {
		if strings.EqualFold(line, "x") {
			return false
		}
		h.withErrorHandling(h.answerHandler(line))(ctx)
		return true
	}

	switch strings.ToLower(line) {
	case "", "n", "next":
		h.withErrorHandling(h.moveHandler(h.learner.Next))(ctx)
	case "p", "prev", "previous":
		h.withErrorHandling(h.moveHandler(h.learner.Previous))(ctx)
	case "k", "known":
		h.withErrorHandling(h.knownHandler)(ctx)
	case "q", "quiz":
		h.withErrorHandling(h.quizHandler)(ctx)
	case "s", "status":
		h.send(formatProgress(h.learner.Progress(ctx)))
		h.send(formatStats(h.learner.Stats()))
	case "h", "help", "?":
		h.send(msgHelp)
	case "x", "exit", "quit":
		return false
	default:
		h.send(msgUnknownCommand)
	}

	return true
}

func (h *Handler) moveHandler(move func(context.Context) error) HandlerFunc {
	return func(ctx context.Context) error {
		if err := move(ctx); err != nil {
			return err
		}
		h.showCard()
		h.offerQuiz()
		return nil
	}
}

func (h *Handler) knownHandler(ctx context.Context) error {
	if err := h.learner.MarkKnown(ctx); err != nil {
		return err
	}
	h.offerQuiz()
	return nil
}

func (h *Handler) quizHandler(_ context.Context) error {
	if !h.learner.ShouldShowQuiz() {
		h.send(msgQuizNotReady)
		return nil
	}

	if _, err := h.learner.StartQuiz(); err != nil {
		return err
	}
	h.inQuiz = true
	h.showQuestion()
	return nil
}

func (h *Handler) answerHandler(input string) HandlerFunc {
	return func(_ context.Context) error {
		s := h.learner.Quiz()
		if s == nil {
			h.inQuiz = false
			return nil
		}
		q, ok := s.CurrentQuestion()
		if !ok {
			h.inQuiz = false
			return nil
		}

		option, ok := h.matcher.Match(input, q.Options)
		if !ok {
			h.send(msgInvalidOption)
			return nil
		}

		correct, err := h.learner.Answer(option)
		if err != nil {
			return err
		}
		h.send(formatAnswerFeedback(correct, q.CorrectAnswer))

		done, err := h.learner.NextQuestion()
		if err != nil {
			return err
		}
		if !done {
			h.showQuestion()
			return nil
		}

		h.inQuiz = false
		h.send(formatQuizResult(h.learner.Quiz()))
		h.showCard()
		return nil
	}
}

func (h *Handler) showCard() {
	h.send("\n" + formatWord(h.learner.CurrentWord()))
}

func (h *Handler) showQuestion() {
	s := h.learner.Quiz()
	if s == nil {
		return
	}
	q, ok := s.CurrentQuestion()
	if !ok {
		return
	}
	h.send("\n" + formatQuizQuestion(q, s.CurrentQuestionIndex+1, len(s.Questions)))
}

func (h *Handler) offerQuiz() {
	if h.learner.ShouldShowQuiz() {
		h.send("A quiz is ready. Type q to start.")
	}
}

func (h *Handler) send(text string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := fmt.Fprintln(h.out, text); err != nil {
		h.logger.Error("failed to write output", zap.Error(err))
	}
}
