package wellnessrpc

import (
	"context"

	"google.golang.org/grpc"
)

// Client is a typed stub for WellnessService. Every call is sent with the
// JSON content-subtype.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, FullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Ping(ctx context.Context, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, &Empty{}, opts)
}

func (c *Client) SignUp(ctx context.Context, in *SignUpRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, MethodSignUp, in, opts)
}

func (c *Client) SignIn(ctx context.Context, in *SignInRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, MethodSignIn, in, opts)
}

func (c *Client) SignOut(ctx context.Context, in *SignOutRequest, opts ...grpc.CallOption) error {
	_, err := invoke[Empty](ctx, c.cc, MethodSignOut, in, opts)
	return err
}

func (c *Client) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, MethodRefreshToken, in, opts)
}

func (c *Client) GetSession(ctx context.Context, opts ...grpc.CallOption) (*Profile, error) {
	return invoke[Profile](ctx, c.cc, MethodGetSession, &Empty{}, opts)
}

func (c *Client) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*Profile, error) {
	return invoke[Profile](ctx, c.cc, MethodUpdateProfile, in, opts)
}

func (c *Client) DeleteAccount(ctx context.Context, opts ...grpc.CallOption) error {
	_, err := invoke[Empty](ctx, c.cc, MethodDeleteAccount, &Empty{}, opts)
	return err
}

func (c *Client) CreateHabit(ctx context.Context, in *CreateHabitRequest, opts ...grpc.CallOption) (*Habit, error) {
	return invoke[Habit](ctx, c.cc, MethodCreateHabit, in, opts)
}

func (c *Client) ListHabits(ctx context.Context, opts ...grpc.CallOption) (*HabitList, error) {
	return invoke[HabitList](ctx, c.cc, MethodListHabits, &Empty{}, opts)
}

func (c *Client) ToggleHabit(ctx context.Context, in *ToggleHabitRequest, opts ...grpc.CallOption) (*ToggleHabitResponse, error) {
	return invoke[ToggleHabitResponse](ctx, c.cc, MethodToggleHabit, in, opts)
}

func (c *Client) TodayCompletions(ctx context.Context, in *DayRequest, opts ...grpc.CallOption) (*TodayCompletionsResponse, error) {
	return invoke[TodayCompletionsResponse](ctx, c.cc, MethodTodayCompletions, in, opts)
}

func (c *Client) AddMood(ctx context.Context, in *AddMoodRequest, opts ...grpc.CallOption) (*Mood, error) {
	return invoke[Mood](ctx, c.cc, MethodAddMood, in, opts)
}

func (c *Client) ListMoods(ctx context.Context, opts ...grpc.CallOption) (*MoodList, error) {
	return invoke[MoodList](ctx, c.cc, MethodListMoods, &Empty{}, opts)
}

func (c *Client) DeleteMood(ctx context.Context, in *DeleteMoodRequest, opts ...grpc.CallOption) error {
	_, err := invoke[Empty](ctx, c.cc, MethodDeleteMood, in, opts)
	return err
}

func (c *Client) MoodSummary(ctx context.Context, in *DayRequest, opts ...grpc.CallOption) (*MoodSummary, error) {
	return invoke[MoodSummary](ctx, c.cc, MethodMoodSummary, in, opts)
}

func (c *Client) AddExpense(ctx context.Context, in *AddExpenseRequest, opts ...grpc.CallOption) (*Expense, error) {
	return invoke[Expense](ctx, c.cc, MethodAddExpense, in, opts)
}

func (c *Client) ListExpenses(ctx context.Context, opts ...grpc.CallOption) (*ExpenseList, error) {
	return invoke[ExpenseList](ctx, c.cc, MethodListExpenses, &Empty{}, opts)
}

func (c *Client) ExpenseSummary(ctx context.Context, opts ...grpc.CallOption) (*ExpenseSummary, error) {
	return invoke[ExpenseSummary](ctx, c.cc, MethodExpenseSummary, &Empty{}, opts)
}

func (c *Client) CompletePomodoro(ctx context.Context, in *CompletePomodoroRequest, opts ...grpc.CallOption) (*CompletePomodoroResponse, error) {
	return invoke[CompletePomodoroResponse](ctx, c.cc, MethodCompletePomodoro, in, opts)
}

func (c *Client) SubmitGameScore(ctx context.Context, in *SubmitGameScoreRequest, opts ...grpc.CallOption) (*SubmitGameScoreResponse, error) {
	return invoke[SubmitGameScoreResponse](ctx, c.cc, MethodSubmitGameScore, in, opts)
}

func (c *Client) SubmitFeedback(ctx context.Context, in *SubmitFeedbackRequest, opts ...grpc.CallOption) error {
	_, err := invoke[Empty](ctx, c.cc, MethodSubmitFeedback, in, opts)
	return err
}

func (c *Client) TodayStats(ctx context.Context, in *DayRequest, opts ...grpc.CallOption) (*TodayStats, error) {
	return invoke[TodayStats](ctx, c.cc, MethodTodayStats, in, opts)
}

func (c *Client) Trends(ctx context.Context, in *TrendsRequest, opts ...grpc.CallOption) (*Trends, error) {
	return invoke[Trends](ctx, c.cc, MethodTrends, in, opts)
}

func (c *Client) ExportData(ctx context.Context, opts ...grpc.CallOption) (*ExportResponse, error) {
	return invoke[ExportResponse](ctx, c.cc, MethodExportData, &Empty{}, opts)
}
