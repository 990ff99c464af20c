// messages.go contains message templates and formatting functions for the terminal.

package terminal

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/events"
	"github.com/aliskhannn/wordly/internal/service"
)

const (
	msgWelcome        = "Welcome to wordly! Swipe through the cards and mark the words you know."
	msgHelp           = "Commands: n next, p previous, k mark known, q quiz, s status, h help, x exit"
	msgUnknownCommand = "Unknown command. Type h for help."
	msgQuizNotReady   = "No quiz yet: finish a pass through the words and mark at least three as known."
	msgInvalidOption  = "Pick an option by number or type the word."
	msgInternalError  = "Something went wrong. See the log for details."
	msgBye            = "See you tomorrow!"
)

const barLength = 20

// buildProgressBar creates an ASCII progress bar.
func buildProgressBar(current, total, length int) string {
	if total <= 0 {
		return fmt.Sprintf("[%s]", strings.Repeat("░", length))
	}

	filled := int(float64(current) / float64(total) * float64(length))
	if filled > length {
		filled = length
	}
	if filled < 0 {
		filled = 0
	}

	empty := length - filled
	bar := strings.Repeat("█", filled) + strings.Repeat("░", empty)
	return fmt.Sprintf("[%s]", bar)
}

func formatWord(w *entities.Word) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s", w.Term)
	if w.Pronunciation != "" {
		fmt.Fprintf(&b, "  %s", w.Pronunciation)
	}
	if w.PartOfSpeech != "" {
		fmt.Fprintf(&b, "  (%s)", w.PartOfSpeech)
	}
	fmt.Fprintf(&b, "\n%s\n", w.Definition)
	if w.Example != "" {
		fmt.Fprintf(&b, "e.g. %q\n", w.Example)
	}
	fmt.Fprintf(&b, "%s · %s", w.Category, w.Mastery)

	return b.String()
}

func formatProgress(p entities.ProgressState) string {
	return fmt.Sprintf(
		"Today %s %d/%d\nStreak: %d days (best %d)",
		buildProgressBar(p.WordsViewedToday, p.DailyGoal, barLength),
		p.WordsViewedToday,
		p.DailyGoal,
		p.StreakDays,
		p.BestStreak,
	)
}

func formatStats(s service.MasteryStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Words: %d, mastered %.0f%%\n", s.Total, s.Percentage)
	for _, level := range entities.MasteryLevels() {
		fmt.Fprintf(&b, "  %-9s %d\n", level.String()+":", s.Count(level))
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatQuizQuestion(q entities.QuizQuestion, currentNum, totalQuestions int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question %d/%d\n%s\n%s\n", currentNum, totalQuestions, q.Prompt, q.Word.Definition)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, "  %d) %s\n", i+1, opt)
	}

	return strings.TrimRight(b.String(), "\n")
}

func formatAnswerFeedback(isCorrect bool, correctAnswer string) string {
	if isCorrect {
		return "✅ Correct!"
	}
	return fmt.Sprintf("❌ Wrong. The answer is %q.", correctAnswer)
}

func formatQuizResult(s *entities.QuizSession) string {
	total := len(s.Questions)

	message := "Keep practising, you will get there."
	if s.IsPassed() {
		message = "Quiz passed, well done!"
	}

	return fmt.Sprintf(
		"Quiz complete: %d/%d %s\n%s",
		s.Score,
		total,
		buildProgressBar(s.Score, total, 10),
		message,
	)
}

// FormatEvent returns the feedback line for an event, or "" for events
// without one.
func FormatEvent(e events.Event) string {
	switch e.Kind {
	case events.KindLevelUp:
		if e.Word == nil {
			return ""
		}
		return fmt.Sprintf("⬆️  %s is now %s", e.Word.Term, e.Level)
	case events.KindGoalReached:
		return "🎯 Daily goal reached!"
	case events.KindCycleCompleted:
		return "🔁 You went through every word."
	case events.KindQuizPassed:
		return "🏆 Quiz passed!"
	case events.KindDayRolledOver:
		return "🌅 A new day has started."
	case events.KindReminder:
		return "⏰ You have not reached today's goal yet."
	default:
		return ""
	}
}
