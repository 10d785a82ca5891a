package grpc

import (
	"context"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/services"
)

// The handlers depend on these narrow views of the services package.

type AuthService interface {
	SignUp(ctx context.Context, in services.SignUpInput) (*models.User, *services.TokenPair, error)
	SignIn(ctx context.Context, email, password string) (*models.User, *services.TokenPair, error)
	SignOut(ctx context.Context, userID, refreshToken string) error
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	GetSession(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID, fullName, userName string) (*models.User, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type HabitService interface {
	Create(ctx context.Context, userID, title, description string) (*models.Habit, error)
	List(ctx context.Context, userID string) ([]models.Habit, error)
	Toggle(ctx context.Context, userID, habitID, tz string) (*services.ToggleResult, error)
	Today(ctx context.Context, userID, tz string) (*services.TodayCompletions, error)
}

type MoodService interface {
	Add(ctx context.Context, userID string, mood int, note string) (*models.MoodEntry, error)
	List(ctx context.Context, userID string) ([]models.MoodEntry, error)
	Delete(ctx context.Context, userID, id string) error
	Summary(ctx context.Context, userID, tz string) (*services.MoodSummary, error)
}

type ExpenseService interface {
	Add(ctx context.Context, userID string, in services.ExpenseInput) (*models.Expense, error)
	List(ctx context.Context, userID string) ([]models.Expense, error)
	Summary(ctx context.Context, userID string) (*services.ExpenseSummary, error)
}

type ActivityService interface {
	CompletePomodoro(ctx context.Context, userID string, minutes int) (*services.PomodoroResult, error)
	SubmitGameScore(ctx context.Context, userID string, score int64) (*services.GameResult, error)
	SubmitFeedback(ctx context.Context, userID string, rating int, text string) (*models.Feedback, error)
}

type DashboardService interface {
	TodayStats(ctx context.Context, userID, tz string) (*services.TodayStats, error)
	Trends(ctx context.Context, userID, rangeName, tz string) (*services.Trends, error)
}

type ExportService interface {
	Export(ctx context.Context, userID string) (*services.ExportResult, error)
}
