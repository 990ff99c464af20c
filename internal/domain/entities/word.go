// Package entities contains domain entities used across the application.
package entities

import (
	"strings"

	"github.com/google/uuid"
)

// wordNamespace seeds deterministic word ids so persisted mastery survives reloads.
var wordNamespace = uuid.MustParse("5b0a3f1e-8c2d-4a8e-9f61-2f7d1c9e4b10")

// Word is a vocabulary card.
type Word struct {
	ID            string       `json:"id,omitempty"`   // stable identifier, derived from category and term when empty
	Term          string       `json:"term"`           // the word itself
	Pronunciation string       `json:"pronunciation"`  // IPA pronunciation
	PartOfSpeech  string       `json:"part_of_speech"` // noun, verb, adjective etc
	Definition    string       `json:"definition"`     // short definition shown on the card
	Example       string       `json:"example"`        // usage example
	Category      Category     `json:"category"`       // subject group
	Mastery       MasteryLevel `json:"-"`              // current mastery, restored from storage
}

// WordID derives the id for a word from its category and term.
func WordID(category Category, term string) string {
	key := string(category) + "/" + strings.ToLower(strings.TrimSpace(term))
	return uuid.NewSHA1(wordNamespace, []byte(key)).String()
}

// NewWord creates a word with a derived id and mastery New.
func NewWord(term, pronunciation, partOfSpeech, definition, example string, category Category) *Word {
	return &Word{
		ID:            WordID(category, term),
		Term:          term,
		Pronunciation: pronunciation,
		PartOfSpeech:  partOfSpeech,
		Definition:    definition,
		Example:       example,
		Category:      category,
		Mastery:       MasteryNew,
	}
}

// Clone returns a copy of the word.
func (w *Word) Clone() *Word {
	c := *w
	return &c
}
