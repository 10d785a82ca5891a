package services

import (
	"context"
	"errors"
	"strings"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/ledger"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/stats"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/timex"
)

type HabitService struct {
	base
}

// ToggleResult is the state of a habit for today after a toggle.
type ToggleResult struct {
	Completed  bool
	Completion *models.HabitCompletion
	Points     int64
}

// TodayCompletions lists the habits done today and the completion rate.
type TodayCompletions struct {
	CompletedHabitIDs []string
	Completed         int
	Total             int
	Rate              int
}

func (s *HabitService) Create(ctx context.Context, userID, title, description string) (*models.Habit, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, invalid("title is required")
	}
	return s.repomanager.Habits(s.db).Create(ctx, &models.Habit{
		UserID:      userID,
		Title:       title,
		Description: strings.TrimSpace(description),
	})
}

func (s *HabitService) List(ctx context.Context, userID string) ([]models.Habit, error) {
	return s.repomanager.Habits(s.db).List(ctx, userID)
}

// Toggle flips today's completion of a habit and moves the matching points
// in the same transaction. "Today" is the calendar day of now in tz.
func (s *HabitService) Toggle(ctx context.Context, userID, habitID, tz string) (*ToggleResult, error) {
	if err := validateID("habit", habitID); err != nil {
		return nil, err
	}
	now, err := s.localNow(tz)
	if err != nil {
		return nil, err
	}
	day := timex.StartOfDay(now)

	return dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*ToggleResult, error) {
		if _, err := s.repomanager.Habits(tx).Get(ctx, userID, habitID); err != nil {
			return nil, err
		}

		completions := s.repomanager.Completions(tx)
		pts := s.repomanager.Points(tx)

		existing, err := completions.FindForDay(ctx, habitID, day)
		switch {
		case err == nil:
			deleted, err := completions.Delete(ctx, existing.ID)
			if err != nil {
				return nil, err
			}
			// A row removed by a concurrent toggle takes nothing back.
			delta := -ledger.HabitCompletionPoints
			if !deleted {
				delta = 0
			}
			total, err := ledger.Apply(ctx, pts, userID, delta, ledger.ReasonHabitUndone)
			if err != nil {
				return nil, err
			}
			return &ToggleResult{Completed: false, Points: total}, nil
		case !errors.Is(err, common.ErrorNotFound):
			return nil, err
		}

		c, err := completions.Insert(ctx, &models.HabitCompletion{
			HabitID:      habitID,
			UserID:       userID,
			CompletedOn:  day,
			CompletedAt:  now,
			PointsEarned: ledger.HabitCompletionPoints,
		})
		if errors.Is(err, common.ErrorAlreadyExists) {
			// Lost a race with a concurrent toggle that already awarded.
			total, err := ledger.Balance(ctx, pts, userID)
			if err != nil {
				return nil, err
			}
			return &ToggleResult{Completed: true, Points: total}, nil
		}
		if err != nil {
			return nil, err
		}

		total, err := ledger.Apply(ctx, pts, userID, ledger.HabitCompletionPoints, ledger.ReasonHabitCompleted)
		if err != nil {
			return nil, err
		}
		return &ToggleResult{Completed: true, Completion: c, Points: total}, nil
	})
}

func (s *HabitService) Today(ctx context.Context, userID, tz string) (*TodayCompletions, error) {
	now, err := s.localNow(tz)
	if err != nil {
		return nil, err
	}

	habits, err := s.repomanager.Habits(s.db).List(ctx, userID)
	if err != nil {
		return nil, err
	}
	done, err := s.repomanager.Completions(s.db).ListForDay(ctx, userID, timex.StartOfDay(now))
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(done))
	ids := make([]string, 0, len(done))
	for _, c := range done {
		if _, ok := seen[c.HabitID]; ok {
			continue
		}
		seen[c.HabitID] = struct{}{}
		ids = append(ids, c.HabitID)
	}

	return &TodayCompletions{
		CompletedHabitIDs: ids,
		Completed:         len(ids),
		Total:             len(habits),
		Rate:              stats.CompletionRate(len(ids), len(habits)),
	}, nil
}
