package entities

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMasteryLevel = errors.New("unknown mastery level")

// MasteryLevel is how well the learner knows a word.
// Levels only move forward and stop at MasteryMastered.
type MasteryLevel int

const (
	MasteryNew MasteryLevel = iota
	MasteryLearning
	MasteryFamiliar
	MasteryMastered
)

// MasteryLevels returns all levels in ascending order.
func MasteryLevels() []MasteryLevel {
	return []MasteryLevel{MasteryNew, MasteryLearning, MasteryFamiliar, MasteryMastered}
}

func (l MasteryLevel) String() string {
	switch l {
	case MasteryNew:
		return "new"
	case MasteryLearning:
		return "learning"
	case MasteryFamiliar:
		return "familiar"
	case MasteryMastered:
		return "mastered"
	default:
		return fmt.Sprintf("mastery(%d)", int(l))
	}
}

// Valid reports whether l is one of the known levels.
func (l MasteryLevel) Valid() bool {
	return l >= MasteryNew && l <= MasteryMastered
}

// Next returns the following level, saturating at MasteryMastered.
func (l MasteryLevel) Next() MasteryLevel {
	if l >= MasteryMastered {
		return MasteryMastered
	}
	if l < MasteryNew {
		return MasteryLearning
	}
	return l + 1
}

// ParseMasteryLevel parses a level name such as "familiar".
func ParseMasteryLevel(s string) (MasteryLevel, error) {
	for _, l := range MasteryLevels() {
		if strings.EqualFold(strings.TrimSpace(s), l.String()) {
			return l, nil
		}
	}
	return MasteryNew, fmt.Errorf("%w: %q", ErrUnknownMasteryLevel, s)
}
