package service

import "github.com/aliskhannn/wordly/internal/domain/entities"

// MasteryStats counts words per mastery level.
type MasteryStats struct {
	New        int
	Learning   int
	Familiar   int
	Mastered   int
	Total      int
	Percentage float64 // share of mastered words, 0-100
}

// Count returns the number of words at level.
func (s MasteryStats) Count(level entities.MasteryLevel) int {
	switch level {
	case entities.MasteryNew:
		return s.New
	case entities.MasteryLearning:
		return s.Learning
	case entities.MasteryFamiliar:
		return s.Familiar
	case entities.MasteryMastered:
		return s.Mastered
	default:
		return 0
	}
}

// CountMastery builds MasteryStats for words.
func CountMastery(words []*entities.Word) MasteryStats {
	var stats MasteryStats
	for _, w := range words {
		switch w.Mastery {
		case entities.MasteryLearning:
			stats.Learning++
		case entities.MasteryFamiliar:
			stats.Familiar++
		case entities.MasteryMastered:
			stats.Mastered++
		default:
			stats.New++
		}
	}

	stats.Total = len(words)
	if stats.Total > 0 {
		stats.Percentage = float64(stats.Mastered) / float64(stats.Total) * 100
	}
	return stats
}
