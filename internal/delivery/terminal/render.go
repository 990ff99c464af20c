package terminal

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/wordly/internal/domain/entities"
	"github.com/aliskhannn/wordly/internal/service"
)

// RenderProgress renders the daily progress followed by mastery counts.
func RenderProgress(p entities.ProgressState, stats service.MasteryStats) string {
	text := formatProgress(p)
	if p.HasReachedGoalToday {
		text += "\nGoal reached today ✅"
	} else {
		text += fmt.Sprintf("\n%d more to go", p.Remaining())
	}
	return text + "\n\n" + formatStats(stats)
}

// RenderWords renders one line per word with its mastery level.
func RenderWords(words []*entities.Word) string {
	if len(words) == 0 {
		return "No words."
	}

	var b strings.Builder
	for _, w := range words {
		fmt.Fprintf(&b, "%-10s %-20s %s\n", w.Mastery, w.Term, w.Category)
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderCategories lists every category and marks the selected ones.
func RenderCategories(selected []entities.Category) string {
	chosen := make(map[entities.Category]bool, len(selected))
	for _, c := range selected {
		chosen[c] = true
	}

	var b strings.Builder
	for _, c := range entities.Categories() {
		mark := " "
		if chosen[c] {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %s\n", mark, c)
	}
	return strings.TrimRight(b.String(), "\n")
}
