// Package feedback stores app ratings. Users can submit rows and read their
// own back only through the data export.
package feedback

import (
	"context"
	"fmt"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, f *models.Feedback) (*models.Feedback, error)
	ListByUser(ctx context.Context, userID string) ([]models.Feedback, error)
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, f *models.Feedback) (*models.Feedback, error) {
	query :=
		`INSERT INTO feedback (user_id, rating, feedback, user_email, user_name)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, f.UserID, f.Rating, f.Text, f.UserEmail, f.UserName).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return f, nil
}

// ListByUser returns the feedback a user submitted, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.Feedback, error) {
	query :=
		`SELECT id, user_id, rating, feedback, user_email, user_name, created_at FROM feedback
		 WHERE user_id = $1
		 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.Feedback
	for rows.Next() {
		var f models.Feedback
		if err := rows.Scan(&f.ID, &f.UserID, &f.Rating, &f.Text, &f.UserEmail, &f.UserName, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
