package services

import (
	"context"
	"strings"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/dbx"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/ledger"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
)

const (
	minFeedbackRating = 1
	maxFeedbackRating = 5
)

// ActivityService records pomodoro sessions, game rounds and feedback.
type ActivityService struct {
	base
}

type PomodoroResult struct {
	Session *models.PomodoroSession
	Points  int64
}

type GameResult struct {
	Score        *models.GameScore
	Points       int64
	HighScore    int64
	NewHighScore bool
}

// CompletePomodoro stores a naturally finished session and awards its points
// in one transaction. Abandoned sessions are never sent here.
func (s *ActivityService) CompletePomodoro(ctx context.Context, userID string, minutes int) (*PomodoroResult, error) {
	if minutes == 0 {
		minutes = models.DefaultPomodoroMinutes
	}
	if minutes < 1 || minutes > models.MaxPomodoroMinutes {
		return nil, invalid("duration must be between 1 and %d minutes", models.MaxPomodoroMinutes)
	}

	return dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*PomodoroResult, error) {
		session, err := s.repomanager.Pomodoros(tx).Create(ctx, &models.PomodoroSession{
			UserID:       userID,
			Duration:     minutes,
			Completed:    true,
			PointsEarned: ledger.PomodoroPoints,
		})
		if err != nil {
			return nil, err
		}
		total, err := ledger.Apply(ctx, s.repomanager.Points(tx), userID, ledger.PomodoroPoints, ledger.ReasonPomodoroCompleted)
		if err != nil {
			return nil, err
		}
		return &PomodoroResult{Session: session, Points: total}, nil
	})
}

// SubmitGameScore stores a finished round, converts the score to points and
// reports the high score including this round.
func (s *ActivityService) SubmitGameScore(ctx context.Context, userID string, score int64) (*GameResult, error) {
	if score < 0 {
		return nil, invalid("score must not be negative")
	}
	earned := ledger.GamePoints(score)

	return dbx.WithTxResult(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*GameResult, error) {
		scores := s.repomanager.GameScores(tx)

		previous, err := scores.HighScore(ctx, userID)
		if err != nil {
			return nil, err
		}
		round, err := scores.Create(ctx, &models.GameScore{UserID: userID, Score: score, PointsEarned: earned})
		if err != nil {
			return nil, err
		}
		total, err := ledger.Apply(ctx, s.repomanager.Points(tx), userID, earned, ledger.ReasonGameScore)
		if err != nil {
			return nil, err
		}

		res := &GameResult{Score: round, Points: total, HighScore: previous}
		if score > previous {
			res.HighScore = score
			res.NewHighScore = true
		}
		return res, nil
	})
}

// SubmitFeedback stores a rating and comment, stamped with the author's
// email and name as they are now.
func (s *ActivityService) SubmitFeedback(ctx context.Context, userID string, rating int, text string) (*models.Feedback, error) {
	if rating < minFeedbackRating || rating > maxFeedbackRating {
		return nil, invalid("rating must be between %d and %d", minFeedbackRating, maxFeedbackRating)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, invalid("feedback is required")
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repomanager.Feedback(s.db).Create(ctx, &models.Feedback{
		UserID:    userID,
		Rating:    rating,
		Text:      text,
		UserEmail: user.Email,
		UserName:  user.FullName,
	})
}
