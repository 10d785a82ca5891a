package models

import "time"

const (
	MinMood = 1
	MaxMood = 5
)

type MoodEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Mood      int       `json:"mood"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
