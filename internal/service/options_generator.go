package service

import (
	"math/rand"

	"github.com/aliskhannn/wordly/internal/domain/entities"
)

const optionsPerQuestion = 4

// OptionGenerator builds multiple choice options for quiz questions.
type OptionGenerator struct {
	candidates []*entities.Word
	rng        *rand.Rand
}

// NewOptionGenerator creates a generator drawing distractors from candidates.
func NewOptionGenerator(candidates []*entities.Word, rng *rand.Rand) *OptionGenerator {
	return &OptionGenerator{
		candidates: candidates,
		rng:        rng,
	}
}

// GenerateOptions returns up to four unique, shuffled options for word,
// exactly one of which is its term.
func (g *OptionGenerator) GenerateOptions(word *entities.Word) []string {
	options := make([]string, 0, optionsPerQuestion)
	options = append(options, word.Term)
	options = append(options, g.wrongOptions(word, optionsPerQuestion-1)...)

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options
}

// wrongOptions samples terms of other words, uniformly and without
// replacement by term.
func (g *OptionGenerator) wrongOptions(word *entities.Word, count int) []string {
	used := map[string]bool{word.Term: true}
	terms := make([]string, 0, len(g.candidates))
	for _, c := range g.candidates {
		if c == nil || c.ID == word.ID || used[c.Term] {
			continue
		}
		used[c.Term] = true
		terms = append(terms, c.Term)
	}

	g.rng.Shuffle(len(terms), func(i, j int) {
		terms[i], terms[j] = terms[j], terms[i]
	})

	if len(terms) > count {
		terms = terms[:count]
	}
	return terms
}
