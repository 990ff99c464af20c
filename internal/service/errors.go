package service

import "errors"

var (
	ErrInsufficientWords = errors.New("at least 3 distinct words are required")
	ErrInvalidGoal       = errors.New("daily goal must be positive")
	ErrUnknownWord       = errors.New("word is not tracked")
	ErrAlreadyAnswered   = errors.New("question already answered")
	ErrQuizComplete      = errors.New("quiz is complete")
	ErrNoActiveQuiz      = errors.New("no active quiz")
	ErrEmptyPool         = errors.New("word pool is empty")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrNoCategories      = errors.New("at least one category is required")
)
