// Package gamescores stores finished bubble game rounds.
package gamescores

import (
	"context"
	"fmt"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, g *models.GameScore) (*models.GameScore, error)
	// HighScore returns the best score, 0 when the user never played.
	HighScore(ctx context.Context, userID string) (int64, error)
	// List returns the user's rounds, newest first.
	List(ctx context.Context, userID string) ([]models.GameScore, error)
}

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, g *models.GameScore) (*models.GameScore, error) {
	query :=
		`INSERT INTO game_scores (user_id, score, points_earned)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`

	if err := r.db.QueryRowContext(ctx, query, g.UserID, g.Score, g.PointsEarned).Scan(&g.ID, &g.CreatedAt); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

func (r *PostgresRepository) HighScore(ctx context.Context, userID string) (int64, error) {
	var best int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(score), 0) FROM game_scores WHERE user_id = $1`, userID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return best, nil
}

func (r *PostgresRepository) List(ctx context.Context, userID string) ([]models.GameScore, error) {
	query :=
		`SELECT id, user_id, score, points_earned, created_at FROM game_scores
		 WHERE user_id = $1
		 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var out []models.GameScore
	for rows.Next() {
		var g models.GameScore
		if err := rows.Scan(&g.ID, &g.UserID, &g.Score, &g.PointsEarned, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}
