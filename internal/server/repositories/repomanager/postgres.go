// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/migrations"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/completions"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/expenses"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/feedback"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/gamescores"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/habits"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/moods"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/points"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/pomodoros"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/refreshtokens"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/users"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Habits(db dbx.DBTX) habits.Repository {
	return habits.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Completions(db dbx.DBTX) completions.Repository {
	return completions.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Expenses(db dbx.DBTX) expenses.Repository {
	return expenses.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Moods(db dbx.DBTX) moods.Repository {
	return moods.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Pomodoros(db dbx.DBTX) pomodoros.Repository {
	return pomodoros.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Feedback(db dbx.DBTX) feedback.Repository {
	return feedback.NewPostgresRepository(db)
}

// Points returns the ledger store bound to db.
func (m *PostgresRepositoryManager) Points(db dbx.DBTX) points.Repository {
	return points.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) GameScores(db dbx.DBTX) gamescores.Repository {
	return gamescores.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
