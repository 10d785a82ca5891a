// Package completions stores habit completions, one per habit and calendar day.
package completions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/timex"
)

type Repository interface {
	// Insert returns common.ErrorAlreadyExists when the habit is already
	// completed on that day.
	Insert(ctx context.Context, c *models.HabitCompletion) (*models.HabitCompletion, error)
	FindForDay(ctx context.Context, habitID string, day time.Time) (*models.HabitCompletion, error)
	Delete(ctx context.Context, id string) (bool, error)
	ListForDay(ctx context.Context, userID string, day time.Time) ([]models.HabitCompletion, error)
	ListSince(ctx context.Context, userID string, since time.Time) ([]models.HabitCompletion, error)
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Days are passed as local date strings so the session time zone of the
// database never shifts them. A conflicting day inserts nothing and yields
// common.ErrorAlreadyExists without aborting the surrounding transaction.
func (r *PostgresRepository) Insert(ctx context.Context, c *models.HabitCompletion) (*models.HabitCompletion, error) {
	query :=
		`INSERT INTO habit_completions (habit_id, user_id, completed_on, completed_at, points_earned)
		 VALUES ($1, $2, $3::date, $4, $5)
		 ON CONFLICT ON CONSTRAINT habit_completions_habit_day_key DO NOTHING
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		c.HabitID, c.UserID, timex.DateKey(c.CompletedOn), c.CompletedAt, c.PointsEarned).Scan(&c.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

const selectCompletion = `SELECT id, habit_id, user_id, completed_on, completed_at, points_earned FROM habit_completions`

func scanCompletion(s interface{ Scan(...any) error }, c *models.HabitCompletion) error {
	return s.Scan(&c.ID, &c.HabitID, &c.UserID, &c.CompletedOn, &c.CompletedAt, &c.PointsEarned)
}

func (r *PostgresRepository) FindForDay(ctx context.Context, habitID string, day time.Time) (*models.HabitCompletion, error) {
	c := &models.HabitCompletion{}
	row := r.db.QueryRowContext(ctx, selectCompletion+` WHERE habit_id = $1 AND completed_on = $2::date`, habitID, timex.DateKey(day))
	if err := scanCompletion(row, c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM habit_completions WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) ListForDay(ctx context.Context, userID string, day time.Time) ([]models.HabitCompletion, error) {
	return r.list(ctx, selectCompletion+` WHERE user_id = $1 AND completed_on = $2::date ORDER BY completed_at`, userID, timex.DateKey(day))
}

func (r *PostgresRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]models.HabitCompletion, error) {
	return r.list(ctx, selectCompletion+` WHERE user_id = $1 AND completed_at >= $2 ORDER BY completed_at`, userID, since)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]models.HabitCompletion, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.HabitCompletion
	for rows.Next() {
		var c models.HabitCompletion
		if err := scanCompletion(rows, &c); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
