package cli

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/client/timer"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/ledger"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/logging"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/wellnessrpc"
)

// API is what the commands need from the server connection.
type API interface {
	Ping(ctx context.Context) (time.Time, error)

	SignUp(ctx context.Context, req *wellnessrpc.SignUpRequest) (*wellnessrpc.Profile, error)
	SignIn(ctx context.Context, email, password string) (*wellnessrpc.Profile, error)
	SignOut(ctx context.Context) error
	Session(ctx context.Context) (*wellnessrpc.Profile, error)
	UpdateProfile(ctx context.Context, fullName, userName string) (*wellnessrpc.Profile, error)
	DeleteAccount(ctx context.Context) error

	CreateHabit(ctx context.Context, title, description string) (*wellnessrpc.Habit, error)
	ListHabits(ctx context.Context) ([]wellnessrpc.Habit, error)
	ToggleHabit(ctx context.Context, habitID string) (*wellnessrpc.ToggleHabitResponse, error)
	TodayCompletions(ctx context.Context) (*wellnessrpc.TodayCompletionsResponse, error)

	AddMood(ctx context.Context, mood int, note string) (*wellnessrpc.Mood, error)
	ListMoods(ctx context.Context) ([]wellnessrpc.Mood, error)
	DeleteMood(ctx context.Context, id string) error
	MoodSummary(ctx context.Context) (*wellnessrpc.MoodSummary, error)

	AddExpense(ctx context.Context, req *wellnessrpc.AddExpenseRequest) (*wellnessrpc.Expense, error)
	ListExpenses(ctx context.Context) ([]wellnessrpc.Expense, error)
	ExpenseSummary(ctx context.Context) (*wellnessrpc.ExpenseSummary, error)

	CompletePomodoro(ctx context.Context, minutes int) (*wellnessrpc.CompletePomodoroResponse, error)
	SubmitGameScore(ctx context.Context, score int64) (*wellnessrpc.SubmitGameScoreResponse, error)
	SubmitFeedback(ctx context.Context, rating int, text string) error

	TodayStats(ctx context.Context) (*wellnessrpc.TodayStats, error)
	Trends(ctx context.Context, rangeName string) (*wellnessrpc.Trends, error)
	ExportData(ctx context.Context) (*wellnessrpc.ExportResponse, error)
}

// Session is the local view of who is signed in.
type Session interface {
	SignedIn() bool
	Profile() *wellnessrpc.Profile
	SetProfile(ctx context.Context, profile *wellnessrpc.Profile) error
}

// Context is bound into every command's Run method.
type Context struct {
	Ctx     context.Context
	API     API
	Session Session
	Logger  logging.Logger
	Timer   *timer.Runner
	In      *bufio.Reader
	Out     io.Writer
	// Fetch downloads a presigned URL.
	Fetch func(ctx context.Context, url string) ([]byte, error)
}

func (c *Context) requireSession() error {
	if !c.Session.SignedIn() {
		return common.ErrNotSignedIn
	}
	return nil
}

// setPoints updates the cached profile after the server reported a new
// total, so whoami stays current without a round trip.
func (c *Context) setPoints(total int64) {
	p := c.Session.Profile()
	if p == nil || p.Points == total {
		return
	}
	updated := *p
	updated.Points = total
	updated.Level = string(ledger.LevelFor(total))
	updated.NextLevelAt = ledger.NextLevelAt(total)
	if err := c.Session.SetProfile(c.Ctx, &updated); err != nil {
		c.Logger.Warn(c.Ctx, "Could not update cached profile", "error", err)
	}
}
