// Package habits stores the habits a user tracks.
package habits

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, h *models.Habit) (*models.Habit, error)
	// Get returns the habit only when it belongs to userID.
	Get(ctx context.Context, userID, habitID string) (*models.Habit, error)
	// List returns the user's habits, newest first.
	List(ctx context.Context, userID string) ([]models.Habit, error)
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, h *models.Habit) (*models.Habit, error) {
	query :=
		`INSERT INTO habits (user_id, title, description)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`

	if err := r.db.QueryRowContext(ctx, query, h.UserID, h.Title, h.Description).Scan(&h.ID, &h.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return h, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, habitID string) (*models.Habit, error) {
	query :=
		`SELECT id, user_id, title, description, created_at FROM habits
		 WHERE id = $1 AND user_id = $2`

	h := &models.Habit{}
	err := r.db.QueryRowContext(ctx, query, habitID, userID).Scan(&h.ID, &h.UserID, &h.Title, &h.Description, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return h, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.Habit, error) {
	query :=
		`SELECT id, user_id, title, description, created_at FROM habits
		 WHERE user_id = $1
		 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Habit
	for rows.Next() {
		var h models.Habit
		if err := rows.Scan(&h.ID, &h.UserID, &h.Title, &h.Description, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
