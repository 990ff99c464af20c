package entities

import "time"

// ProgressState is the learner's daily goal and streak state.
type ProgressState struct {
	WordsViewedToday    int        // views recorded on the current calendar day
	DailyGoal           int        // target views per day, always positive
	HasReachedGoalToday bool       // goal already crossed today
	StreakDays          int        // consecutive days the goal was reached
	BestStreak          int        // highest streak ever, never below StreakDays
	LastCompletionDate  *time.Time // last time the goal was reached (nullable)
}

// Percentage returns the daily progress in the range [0, 1].
func (p ProgressState) Percentage() float64 {
	if p.DailyGoal <= 0 {
		return 0
	}
	v := float64(p.WordsViewedToday) / float64(p.DailyGoal)
	if v > 1 {
		return 1
	}
	return v
}

// Remaining returns how many views are left to reach the goal.
func (p ProgressState) Remaining() int {
	if p.WordsViewedToday >= p.DailyGoal {
		return 0
	}
	return p.DailyGoal - p.WordsViewedToday
}
