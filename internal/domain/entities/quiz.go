package entities

// QuizQuestion is a single multiple choice question about a word.
type QuizQuestion struct {
	Word          *Word    // word being tested
	Prompt        string   // text shown to the learner
	CorrectAnswer string   // the word's term
	Options       []string // unique choices, one of them CorrectAnswer
}

// IsCorrect reports whether option answers the question.
func (q QuizQuestion) IsCorrect(option string) bool {
	return option == q.CorrectAnswer
}

// QuizSession tracks a quiz in progress.
type QuizSession struct {
	Questions            []QuizQuestion // ordered questions, at most five
	CurrentQuestionIndex int            // index into Questions
	Score                int            // number of correct answers so far
	SelectedAnswer       *string        // answer chosen for the current question (nullable)
	IsComplete           bool           // all questions answered and moved past
}

// CurrentQuestion returns the question being asked, or false when the quiz is over.
func (s *QuizSession) CurrentQuestion() (QuizQuestion, bool) {
	if s.IsComplete || s.CurrentQuestionIndex < 0 || s.CurrentQuestionIndex >= len(s.Questions) {
		return QuizQuestion{}, false
	}
	return s.Questions[s.CurrentQuestionIndex], true
}

// PassingScore is the minimum score to pass: 70% of the questions, rounded up.
func (s *QuizSession) PassingScore() int {
	return (len(s.Questions)*7 + 9) / 10
}

// IsPassed reports whether the score meets the passing threshold.
func (s *QuizSession) IsPassed() bool {
	return s.Score >= s.PassingScore()
}
