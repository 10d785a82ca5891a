// Package ledger keeps each user's running point total. Every change is a
// signed delta applied atomically by the store together with an audit row,
// so concurrent awards never lose updates and the total always equals the
// sum of its transactions.
package ledger

import (
	"context"
	"fmt"
)

// Reason labels a point transaction.
type Reason string

const (
	ReasonHabitCompleted    Reason = "habit_completed"
	ReasonHabitUndone       Reason = "habit_undone"
	ReasonPomodoroCompleted Reason = "pomodoro_completed"
	ReasonGameScore         Reason = "game_score"
)

// Point rules.
const (
	HabitCompletionPoints int64 = 10
	PomodoroPoints        int64 = 25
	GameScoreDivisor      int64 = 10
)

// GamePoints converts a game score into points: one point per ten scored.
func GamePoints(score int64) int64 {
	if score <= 0 {
		return 0
	}
	return score / GameScoreDivisor
}

// Store is the persistence the ledger needs. Implementations are expected to
// be bound to the caller's transaction.
type Store interface {
	// AddPoints adds delta to the stored total in a single statement and
	// returns the new total. Unknown users yield common.ErrorNotFound.
	AddPoints(ctx context.Context, userID string, delta int64) (int64, error)
	// Points returns the stored total.
	Points(ctx context.Context, userID string) (int64, error)
	// Record appends an audit row.
	Record(ctx context.Context, userID string, delta int64, reason string) error
}

// Apply adds delta to the user's total and returns the new total. A zero
// delta performs no write. Totals are not clamped and may go negative.
func Apply(ctx context.Context, s Store, userID string, delta int64, reason Reason) (int64, error) {
	if delta == 0 {
		return s.Points(ctx, userID)
	}

	total, err := s.AddPoints(ctx, userID, delta)
	if err != nil {
		return 0, fmt.Errorf("apply %+d points: %w", delta, err)
	}
	if err := s.Record(ctx, userID, delta, string(reason)); err != nil {
		return 0, fmt.Errorf("record %s: %w", reason, err)
	}
	return total, nil
}

// Balance returns the user's stored total.
func Balance(ctx context.Context, s Store, userID string) (int64, error) {
	return s.Points(ctx, userID)
}
