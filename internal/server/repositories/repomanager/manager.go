package repomanager

import (
	"context"
	"database/sql"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
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

// RepositoryManager vends repositories bound to a DBTX, so the same service
// code runs against the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Habits(db dbx.DBTX) habits.Repository
	Completions(db dbx.DBTX) completions.Repository
	Expenses(db dbx.DBTX) expenses.Repository
	Moods(db dbx.DBTX) moods.Repository
	Pomodoros(db dbx.DBTX) pomodoros.Repository
	Feedback(db dbx.DBTX) feedback.Repository
	Points(db dbx.DBTX) points.Repository
	GameScores(db dbx.DBTX) gamescores.Repository
}
