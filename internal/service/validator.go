package service

import (
	"strconv"
	"strings"
	"unicode"
)

// AnswerMatcher resolves typed quiz input to one of the offered options,
// tolerating small typos.
type AnswerMatcher struct {
	threshold float64 // similarity threshold (0.0 - 1.0)
}

// NewAnswerMatcher creates a matcher requiring 80% similarity.
func NewAnswerMatcher() *AnswerMatcher {
	return &AnswerMatcher{
		threshold: 0.8,
	}
}

// Match returns the option the input refers to. Input is either a 1-based
// option number or the option text.
func (m *AnswerMatcher) Match(input string, options []string) (string, bool) {
	input = strings.TrimSpace(input)
	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}

	user := m.normalize(input)
	if user == "" {
		return "", false
	}

	best, bestScore, tie := "", 0.0, false
	for _, opt := range options {
		score := m.similarity(user, m.normalize(opt))
		switch {
		case score == 1:
			return opt, true
		case score > bestScore:
			best, bestScore, tie = opt, score, false
		case score == bestScore:
			tie = true
		}
	}

	if tie || bestScore < m.threshold {
		return "", false
	}
	return best, true
}

// normalize lowercases s, drops punctuation and collapses whitespace.
func (m *AnswerMatcher) normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// similarity is 1 minus the Levenshtein distance over the longer length.
func (m *AnswerMatcher) similarity(s1, s2 string) float64 {
	maxLen := max(len([]rune(s1)), len([]rune(s2)))
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(levenshteinDistance(s1, s2))/float64(maxLen)
}

// levenshteinDistance calculates the Levenshtein distance between two strings.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	// Two rows instead of the full matrix.
	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(
				curr[j-1]+1,    // insertion
				prev[j]+1,      // deletion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(r2)]
}
