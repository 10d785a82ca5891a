package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/ledger"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
)

// ObjectStore is where export files are uploaded and shared from.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type ExportService struct {
	base
	store       ObjectStore
	urlValidity time.Duration
}

func NewExportService(b base, store ObjectStore, urlValidity time.Duration) *ExportService {
	if urlValidity <= 0 {
		urlValidity = 15 * time.Minute
	}
	return &ExportService{base: b, store: store, urlValidity: urlValidity}
}

// ExportResult points at an uploaded snapshot.
type ExportResult struct {
	URL       string
	Key       string
	ExpiresAt time.Time
}

type exportProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	UserName  string    `json:"username"`
	Points    int64     `json:"points"`
	Level     string    `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

// snapshot is the document a user downloads. Password hashes and refresh
// tokens never leave the server.
type snapshot struct {
	ExportedAt   time.Time                 `json:"exported_at"`
	Profile      exportProfile             `json:"profile"`
	Habits       []models.Habit            `json:"habits"`
	Completions  []models.HabitCompletion  `json:"habit_completions"`
	Moods        []models.MoodEntry        `json:"mood_entries"`
	Expenses     []models.Expense          `json:"expenses"`
	Pomodoros    []models.PomodoroSession  `json:"pomodoro_sessions"`
	Transactions []models.PointTransaction `json:"point_transactions"`
	GameScores   []models.GameScore        `json:"game_scores"`
	Feedback     []models.Feedback         `json:"feedback"`
}

func exportKey(userID string, now time.Time) string {
	return fmt.Sprintf("exports/%s/%d/%02d/%02d/%v.json", userID, now.Year(), now.Month(), now.Day(), uuid.New())
}

// Export uploads a JSON snapshot of everything the user owns and returns a
// presigned download link.
func (s *ExportService) Export(ctx context.Context, userID string) (*ExportResult, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: export storage is not configured", common.ErrorInternal)
	}

	doc, err := s.collect(ctx, userID)
	if err != nil {
		return nil, err
	}
	body, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}

	key := exportKey(userID, doc.ExportedAt)
	if err := s.store.Put(ctx, key, body, "application/json"); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}
	url, err := s.store.PresignGet(ctx, key, s.urlValidity)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}
	return &ExportResult{URL: url, Key: key, ExpiresAt: doc.ExportedAt.Add(s.urlValidity)}, nil
}

func (s *ExportService) collect(ctx context.Context, userID string) (*snapshot, error) {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	doc := &snapshot{
		ExportedAt: s.now().UTC(),
		Profile: exportProfile{
			ID:        user.ID,
			Email:     user.Email,
			FullName:  user.FullName,
			UserName:  user.UserName,
			Points:    user.Points,
			Level:     string(ledger.LevelFor(user.Points)),
			CreatedAt: user.CreatedAt,
		},
	}

	var since time.Time
	if doc.Habits, err = s.repomanager.Habits(s.db).List(ctx, userID); err != nil {
		return nil, err
	}
	if doc.Completions, err = s.repomanager.Completions(s.db).ListSince(ctx, userID, since); err != nil {
		return nil, err
	}
	if doc.Moods, err = s.repomanager.Moods(s.db).List(ctx, userID, since); err != nil {
		return nil, err
	}
	if doc.Expenses, err = s.repomanager.Expenses(s.db).List(ctx, userID, since); err != nil {
		return nil, err
	}
	if doc.Pomodoros, err = s.repomanager.Pomodoros(s.db).List(ctx, userID, since); err != nil {
		return nil, err
	}
	if doc.Transactions, err = s.repomanager.Points(s.db).List(ctx, userID); err != nil {
		return nil, err
	}
	if doc.GameScores, err = s.repomanager.GameScores(s.db).List(ctx, userID); err != nil {
		return nil, err
	}
	if doc.Feedback, err = s.repomanager.Feedback(s.db).ListByUser(ctx, userID); err != nil {
		return nil, err
	}
	return doc, nil
}
