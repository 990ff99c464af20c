package service

// Storage keys.
const (
	keyWordsViewedToday   = "progress.words_viewed_today"
	keyDailyGoal          = "settings.daily_goal"
	keyStreakDays         = "progress.streak_days"
	keyBestStreak         = "progress.best_streak"
	keyLastCompletionDate = "progress.last_completion_date"
	keyLastViewedDate     = "progress.last_viewed_date"
	keySelectedCategories = "settings.selected_categories"

	masteryKeyPrefix = "mastery."
)

func masteryKey(wordID string) string {
	return masteryKeyPrefix + wordID
}
