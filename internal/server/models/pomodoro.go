package models

import "time"

const (
	DefaultPomodoroMinutes = 25
	MaxPomodoroMinutes     = 180
)

type PomodoroSession struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Duration     int       `json:"duration"`
	Completed    bool      `json:"completed"`
	PointsEarned int64     `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}
