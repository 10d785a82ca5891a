package models

import "time"

type Habit struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// HabitCompletion marks a habit done on one calendar day. CompletedOn is the
// date in the caller's time zone; (HabitID, CompletedOn) is unique.
type HabitCompletion struct {
	ID           string    `json:"id"`
	HabitID      string    `json:"habit_id"`
	UserID       string    `json:"user_id"`
	CompletedOn  time.Time `json:"completed_on"`
	CompletedAt  time.Time `json:"completed_at"`
	PointsEarned int64     `json:"points_earned"`
}
