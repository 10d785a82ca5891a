package models

import "time"

type Feedback struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"feedback"`
	UserEmail string    `json:"user_email"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}
