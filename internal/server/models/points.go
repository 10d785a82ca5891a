package models

import "time"

// PointTransaction is one audited change of a user's point total.
type PointTransaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Delta     int64     `json:"delta"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

// GameScore is one finished round of the bubble game.
type GameScore struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Score        int64     `json:"score"`
	PointsEarned int64     `json:"points_earned"`
	CreatedAt    time.Time `json:"created_at"`
}
