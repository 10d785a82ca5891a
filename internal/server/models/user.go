// Package models defines server-side data models persisted in the database.
package models

import "time"

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	UserName     string
	Points       int64
	CreatedAt    time.Time
}
