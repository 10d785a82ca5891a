// Package pomodoros stores completed focus sessions.
package pomodoros

import (
	"context"
	"fmt"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, s *models.PomodoroSession) (*models.PomodoroSession, error)
	// List returns sessions created at or after since, newest first. A zero
	// since returns everything.
	List(ctx context.Context, userID string, since time.Time) ([]models.PomodoroSession, error)
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, s *models.PomodoroSession) (*models.PomodoroSession, error) {
	query :=
		`INSERT INTO pomodoro_sessions (user_id, duration, completed, points_earned)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`

	if err := r.db.QueryRowContext(ctx, query, s.UserID, s.Duration, s.Completed, s.PointsEarned).Scan(&s.ID, &s.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string, since time.Time) ([]models.PomodoroSession, error) {
	query := `SELECT id, user_id, duration, completed, points_earned, created_at FROM pomodoro_sessions WHERE user_id = $1`
	args := []any{userID}
	if !since.IsZero() {
		query += ` AND created_at >= $2`
		args = append(args, since)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.PomodoroSession
	for rows.Next() {
		var s models.PomodoroSession
		if err := rows.Scan(&s.ID, &s.UserID, &s.Duration, &s.Completed, &s.PointsEarned, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
