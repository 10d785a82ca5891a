// Package points is the PostgreSQL store behind the points ledger: the
// running total on users plus the point_transactions audit trail.
package points

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/ledger"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
)

type Repository interface {
	ledger.Store
	List(ctx context.Context, userID string) ([]models.PointTransaction, error)
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// AddPoints lets the database do the arithmetic so concurrent awards do not
// overwrite each other.
func (r *PostgresRepository) AddPoints(ctx context.Context, userID string, delta int64) (int64, error) {
	query :=
		`UPDATE users SET points = points + $2
		 WHERE id = $1
		 RETURNING points`

	var total int64
	if err := r.db.QueryRowContext(ctx, query, userID, delta).Scan(&total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) Points(ctx context.Context, userID string) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT points FROM users WHERE id = $1`, userID).Scan(&total); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) Record(ctx context.Context, userID string, delta int64, reason string) error {
	query :=
		`INSERT INTO point_transactions (user_id, delta, reason)
		 VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, userID, delta, reason); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns the user's transactions, oldest first.
func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.PointTransaction, error) {
	query :=
		`SELECT id, user_id, delta, reason, created_at FROM point_transactions
		 WHERE user_id = $1
		 ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.PointTransaction
	for rows.Next() {
		var p models.PointTransaction
		if err := rows.Scan(&p.ID, &p.UserID, &p.Delta, &p.Reason, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
