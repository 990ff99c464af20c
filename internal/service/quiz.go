package service

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/events"
)

const quizPrompt = "Which word matches this definition?"

// QuizEngine generates quiz questions and scores a single running session.
type QuizEngine struct {
	sink    events.Sink
	logger  *zap.Logger
	rng     *rand.Rand
	session *entities.QuizSession
}

// QuizOption configures a QuizEngine.
type QuizOption func(*QuizEngine)

// WithQuizRand sets the random source used for options.
func WithQuizRand(rng *rand.Rand) QuizOption {
	return func(e *QuizEngine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// NewQuizEngine creates an engine with no active session.
func NewQuizEngine(sink events.Sink, logger *zap.Logger, opts ...QuizOption) *QuizEngine {
	if sink == nil {
		sink = events.Discard
	}

	e := &QuizEngine{
		sink:   sink,
		logger: logger,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GenerateQuestions builds one question for each of the first five words.
// Distractors come from words and the optional wider pool.
func (e *QuizEngine) GenerateQuestions(words, pool []*entities.Word) ([]entities.QuizQuestion, error) {
	words = uniqueByID(words)
	if len(words) < minQuizWords {
		return nil, ErrInsufficientWords
	}
	if len(words) > maxQuizWords {
		words = words[:maxQuizWords]
	}

	candidates := uniqueByID(append(append([]*entities.Word{}, words...), pool...))
	gen := NewOptionGenerator(candidates, e.rng)

	questions := make([]entities.QuizQuestion, 0, len(words))
	for _, w := range words {
		questions = append(questions, entities.QuizQuestion{
			Word:          w,
			Prompt:        quizPrompt,
			CorrectAnswer: w.Term,
			Options:       gen.GenerateOptions(w),
		})
	}

	return questions, nil
}

// Start generates questions and begins a new session, replacing any other.
func (e *QuizEngine) Start(words, pool []*entities.Word) (*entities.QuizSession, error) {
	questions, err := e.GenerateQuestions(words, pool)
	if err != nil {
		return nil, err
	}

	e.session = &entities.QuizSession{Questions: questions}
	e.logger.Debug("quiz started", zap.Int("questions", len(questions)))
	return e.session, nil
}

// Session returns the running session, or nil.
func (e *QuizEngine) Session() *entities.QuizSession {
	return e.session
}

// SelectAnswer answers the current question and reports whether it was correct.
// Each question accepts exactly one answer.
func (e *QuizEngine) SelectAnswer(option string) (bool, error) {
	s := e.session
	if s == nil {
		return false, ErrNoActiveQuiz
	}
	if s.IsComplete {
		return false, ErrQuizComplete
	}
	if s.SelectedAnswer != nil {
		return false, ErrAlreadyAnswered
	}

	q, ok := s.CurrentQuestion()
	if !ok {
		return false, ErrQuizComplete
	}

	s.SelectedAnswer = &option
	correct := q.IsCorrect(option)
	if correct {
		s.Score++
		e.sink.Emit(events.Event{Kind: events.KindAnswerCorrect, Word: q.Word})
	} else {
		e.sink.Emit(events.Event{Kind: events.KindAnswerIncorrect, Word: q.Word})
	}

	return correct, nil
}

// MoveToNextQuestion clears the selection and advances, completing the
// session after the last question.
func (e *QuizEngine) MoveToNextQuestion() error {
	s := e.session
	if s == nil {
		return ErrNoActiveQuiz
	}
	if s.IsComplete {
		return ErrQuizComplete
	}

	s.SelectedAnswer = nil
	if s.CurrentQuestionIndex < len(s.Questions)-1 {
		s.CurrentQuestionIndex++
		return nil
	}

	s.IsComplete = true
	e.logger.Info("quiz completed",
		zap.Int("score", s.Score),
		zap.Int("questions", len(s.Questions)),
		zap.Bool("passed", s.IsPassed()),
	)
	e.sink.Emit(events.Event{Kind: events.KindQuizCompleted})
	if s.IsPassed() {
		e.sink.Emit(events.Event{Kind: events.KindQuizPassed})
	}

	return nil
}

// IsPassed reports whether the running session meets the passing score.
func (e *QuizEngine) IsPassed() bool {
	return e.session != nil && e.session.IsPassed()
}
