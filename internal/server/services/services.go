// Package services contains the server-side business rules of Wellness Hub.
// Services obtain repositories from a RepositoryManager, bound either to the
// connection pool or to a transaction when several writes must land together.
package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/config"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/repomanager"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/timex"
)

// Services bundles every service the gRPC layer talks to.
type Services struct {
	Auth       *AuthService
	Habits     *HabitService
	Moods      *MoodService
	Expenses   *ExpenseService
	Activities *ActivityService
	Dashboard  *DashboardService
	Export     *ExportService
}

// New wires all services over one pool and repository manager. A nil clock
// means time.Now.
func New(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, store ObjectStore, clock timex.Clock) (*Services, error) {
	b, err := newBase(db, m, cfg, clock)
	if err != nil {
		return nil, err
	}
	return &Services{
		Auth:       NewAuthService(b, cfg),
		Habits:     &HabitService{base: b},
		Moods:      &MoodService{base: b},
		Expenses:   &ExpenseService{base: b},
		Activities: &ActivityService{base: b},
		Dashboard:  &DashboardService{base: b},
		Export:     NewExportService(b, store, cfg.ExportURLValidity),
	}, nil
}

// base carries what every service needs: storage, "now" and the zone used
// when a request names none.
type base struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         timex.Clock
	location    *time.Location
}

func newBase(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, clock timex.Clock) (base, error) {
	loc, err := timex.LoadLocation(cfg.DefaultTimeZone, time.UTC)
	if err != nil {
		return base{}, fmt.Errorf("default time zone: %w", err)
	}
	if clock == nil {
		clock = time.Now
	}
	return base{db: db, repomanager: m, now: clock, location: loc}, nil
}

// localNow is the current instant in the caller's zone, or in the default
// zone when tz is empty.
func (b *base) localNow(tz string) (time.Time, error) {
	loc, err := timex.LoadLocation(tz, b.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", common.ErrorValidation, err)
	}
	return b.now().In(loc), nil
}
