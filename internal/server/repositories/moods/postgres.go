// Package moods stores mood check-ins.
package moods

import (
	"context"
	"fmt"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, m *models.MoodEntry) (*models.MoodEntry, error)
	// List returns entries created at or after since, newest first. A zero
	// since returns everything.
	List(ctx context.Context, userID string, since time.Time) ([]models.MoodEntry, error)
	// Delete removes the entry only if userID owns it; otherwise it returns
	// common.ErrorNotFound.
	Delete(ctx context.Context, userID, id string) error
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.MoodEntry) (*models.MoodEntry, error) {
	query :=
		`INSERT INTO mood_entries (user_id, mood, note)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`

	if err := r.db.QueryRowContext(ctx, query, m.UserID, m.Mood, m.Note).Scan(&m.ID, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string, since time.Time) ([]models.MoodEntry, error) {
	query := `SELECT id, user_id, mood, note, created_at FROM mood_entries WHERE user_id = $1`
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

	var out []models.MoodEntry
	for rows.Next() {
		var m models.MoodEntry
		if err := rows.Scan(&m.ID, &m.UserID, &m.Mood, &m.Note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mood_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
