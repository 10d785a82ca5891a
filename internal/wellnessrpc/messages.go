package wellnessrpc

import (
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/stats"
)

type Empty struct{}

type PingResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// Auth and profile.

type Profile struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	UserName    string    `json:"username"`
	Points      int64     `json:"points"`
	Level       string    `json:"level"`
	NextLevelAt int64     `json:"next_level_at,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	UserName string `json:"username"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	Profile      *Profile `json:"profile,omitempty"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type SignOutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	UserName string `json:"username"`
}

// Habits.

type Habit struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateHabitRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type HabitList struct {
	Habits []Habit `json:"habits"`
}

// ToggleHabitRequest flips today's completion. TimeZone is an IANA name that
// decides what "today" is; empty means the server default.
type ToggleHabitRequest struct {
	HabitID  string `json:"habit_id"`
	TimeZone string `json:"time_zone,omitempty"`
}

type ToggleHabitResponse struct {
	Completed    bool   `json:"completed"`
	CompletionID string `json:"completion_id,omitempty"`
	Points       int64  `json:"points"`
}

type DayRequest struct {
	TimeZone string `json:"time_zone,omitempty"`
}

type TodayCompletionsResponse struct {
	CompletedHabitIDs []string `json:"completed_habit_ids"`
	Completed         int      `json:"completed"`
	Total             int      `json:"total"`
	Rate              int      `json:"rate"`
}

// Moods.

type Mood struct {
	ID        string    `json:"id"`
	Mood      int       `json:"mood"`
	Note      string    `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type AddMoodRequest struct {
	Mood int    `json:"mood"`
	Note string `json:"note,omitempty"`
}

type MoodList struct {
	Moods []Mood `json:"moods"`
}

type DeleteMoodRequest struct {
	ID string `json:"id"`
}

type MoodSummary struct {
	Count         int              `json:"count"`
	Average       float64          `json:"average"`
	WeeklyAverage float64          `json:"weekly_average"`
	Chart         []stats.DayValue `json:"chart"`
}

// Expenses.

type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
}

type AddExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category,omitempty"`
	Description string  `json:"description"`
	Currency    string  `json:"currency,omitempty"`
}

type ExpenseList struct {
	Expenses []Expense `json:"expenses"`
}

type ExpenseSummary struct {
	Total      float64               `json:"total"`
	Weekly     float64               `json:"weekly"`
	Monthly    float64               `json:"monthly"`
	Count      int                   `json:"count"`
	ByCategory []stats.CategoryTotal `json:"by_category"`
}

// Pomodoro, game and feedback.

type CompletePomodoroRequest struct {
	Duration int `json:"duration"`
}

type CompletePomodoroResponse struct {
	SessionID    string `json:"session_id"`
	PointsEarned int64  `json:"points_earned"`
	Points       int64  `json:"points"`
}

type SubmitGameScoreRequest struct {
	Score int64 `json:"score"`
}

type SubmitGameScoreResponse struct {
	PointsEarned int64 `json:"points_earned"`
	Points       int64 `json:"points"`
	HighScore    int64 `json:"high_score"`
	NewHighScore bool  `json:"new_high_score"`
}

type SubmitFeedbackRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

// Dashboard.

type TodayStats struct {
	Pomodoros       int     `json:"pomodoros"`
	HabitsCompleted int     `json:"habits_completed"`
	HabitsTotal     int     `json:"habits_total"`
	Spent           float64 `json:"spent"`
	AverageMood     float64 `json:"average_mood"`
	MoodCount       int     `json:"mood_count"`
	Points          int64   `json:"points"`
	Level           string  `json:"level"`
}

// TrendsRequest.Range is one of "week", "month" or "year".
type TrendsRequest struct {
	Range    string `json:"range"`
	TimeZone string `json:"time_zone,omitempty"`
}

type Trends struct {
	Range              string                `json:"range"`
	HabitCounts        []stats.DayCount      `json:"habit_counts"`
	MoodAverages       []stats.DayValue      `json:"mood_averages"`
	Categories         []stats.CategoryTotal `json:"categories"`
	TotalCompletions   int                   `json:"total_completions"`
	TotalSpent         float64               `json:"total_spent"`
	CompletedPomodoros int                   `json:"completed_pomodoros"`
	AverageMood        float64               `json:"average_mood"`
}

type ExportResponse struct {
	URL       string    `json:"url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}
