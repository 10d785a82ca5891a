// Package expenses stores spending records. Expenses are immutable once
// written.
package expenses

import (
	"context"
	"fmt"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Expense) (*models.Expense, error)
	// List returns the user's expenses created at or after since, newest
	// first. A zero since returns everything.
	List(ctx context.Context, userID string, since time.Time) ([]models.Expense, error)
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	query :=
		`INSERT INTO expenses (user_id, amount, category, description, currency)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, e.UserID, e.Amount, e.Category, e.Description, e.Currency).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string, since time.Time) ([]models.Expense, error) {
	query := `SELECT id, user_id, amount, category, description, currency, created_at FROM expenses WHERE user_id = $1`
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

	var out []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Amount, &e.Category, &e.Description, &e.Currency, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
