package entities

// SessionState is a snapshot of the study session.
type SessionState struct {
	Words        []*Word // ordered word pool
	CurrentIndex int     // position of the current card
	QuizWords    []*Word // words marked known since the last quiz, at most five
	CycleCount   int     // completed passes through the pool
}
