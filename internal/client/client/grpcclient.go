package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/logging"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/wellnessrpc"
)

// TokenStore is the part of the session the client reads and updates.
type TokenStore interface {
	AccessToken() string
	RefreshToken() (string, error)
	Save(ctx context.Context, accessToken, refreshToken string, profile *wellnessrpc.Profile) error
	SetProfile(ctx context.Context, profile *wellnessrpc.Profile) error
	Clear(ctx context.Context) error
}

type GRPCClient struct {
	endpointURL string
	timeZone    string
	conn        *grpc.ClientConn
	rpc         *wellnessrpc.Client
	tokens      TokenStore
	logger      logging.Logger
}

// NewWellnessClient connects to endpointURL. timeZone is sent with every call
// whose answer depends on "today"; empty lets the server decide. A nil logger
// discards.
func NewWellnessClient(endpointURL string, tokens TokenStore, timeZone string, logger logging.Logger, opts ...grpc.DialOption) (*GRPCClient, error) {
	if logger == nil {
		logger = logging.Nop{}
	}
	c := &GRPCClient{endpointURL: endpointURL, tokens: tokens, timeZone: timeZone, logger: logger.With("module", "grpc_client")}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.rpc = wellnessrpc.NewClient(conn)
	return c, nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

func isTokenExpired(err error) bool {
	st, ok := status.FromError(err)
	return ok && st.Code() == codes.Unauthenticated && st.Message() == common.TokenExpiredMessage
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if wellnessrpc.IsPublic(method) {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	err := invoker(withAccessToken(ctx, c.tokens.AccessToken()), method, req, reply, cc, opts...)
	if !isTokenExpired(err) {
		return err
	}

	refresh, rerr := c.tokens.RefreshToken()
	if rerr != nil || refresh == "" {
		return err
	}

	// Refresh goes straight to the invoker so it is never retried itself.
	var pair wellnessrpc.AuthResponse
	rerr = invoker(ctx, wellnessrpc.FullMethod(wellnessrpc.MethodRefreshToken),
		&wellnessrpc.RefreshTokenRequest{RefreshToken: refresh}, &pair, cc, opts...)
	if rerr != nil {
		if status.Code(rerr) == codes.Unauthenticated {
			c.logger.Info(ctx, "Refresh rejected, signing out locally", "method", method)
			if cerr := c.tokens.Clear(ctx); cerr != nil {
				c.logger.Error(ctx, "Could not clear local session", "error", cerr)
			}
		}
		return rerr
	}

	if err := c.tokens.Save(ctx, pair.AccessToken, pair.RefreshToken, nil); err != nil {
		return err
	}

	return invoker(withAccessToken(ctx, pair.AccessToken), method, req, reply, cc, opts...)
}

func (c *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return common.ErrorNotFound
	case codes.AlreadyExists:
		return common.ErrorAlreadyExists
	case codes.InvalidArgument:
		msg := strings.TrimPrefix(st.Message(), common.ErrorValidation.Error()+": ")
		return fmt.Errorf("%w: %s", common.ErrorValidation, msg)
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}

func (c *GRPCClient) Ping(ctx context.Context) (time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := c.rpc.Ping(ctx)
	if err != nil {
		return time.Time{}, c.mapError(err)
	}
	if resp.Status != "OK" {
		return time.Time{}, ErrUnavailable
	}
	return resp.Time, nil
}

// Auth.

func (c *GRPCClient) SignUp(ctx context.Context, req *wellnessrpc.SignUpRequest) (*wellnessrpc.Profile, error) {
	resp, err := c.rpc.SignUp(ctx, req)
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp.Profile, c.tokens.Save(ctx, resp.AccessToken, resp.RefreshToken, resp.Profile)
}

func (c *GRPCClient) SignIn(ctx context.Context, email, password string) (*wellnessrpc.Profile, error) {
	resp, err := c.rpc.SignIn(ctx, &wellnessrpc.SignInRequest{Email: email, Password: password})
	if err != nil {
		return nil, c.mapError(err)
	}
	return resp.Profile, c.tokens.Save(ctx, resp.AccessToken, resp.RefreshToken, resp.Profile)
}

// SignOut revokes the refresh token on the server and always forgets the
// local session, even when the server cannot be reached.
func (c *GRPCClient) SignOut(ctx context.Context) error {
	refresh, err := c.tokens.RefreshToken()
	var callErr error
	if err == nil && refresh != "" {
		callErr = c.mapError(c.rpc.SignOut(ctx, &wellnessrpc.SignOutRequest{RefreshToken: refresh}))
	}
	if err := c.tokens.Clear(ctx); err != nil {
		return err
	}
	if errors.Is(callErr, ErrUnauthorized) {
		return nil
	}
	return callErr
}

// Session fetches the profile and refreshes the cached copy.
func (c *GRPCClient) Session(ctx context.Context) (*wellnessrpc.Profile, error) {
	p, err := c.rpc.GetSession(ctx)
	if err != nil {
		return nil, c.mapError(err)
	}
	return p, c.tokens.SetProfile(ctx, p)
}

func (c *GRPCClient) UpdateProfile(ctx context.Context, fullName, userName string) (*wellnessrpc.Profile, error) {
	p, err := c.rpc.UpdateProfile(ctx, &wellnessrpc.UpdateProfileRequest{FullName: fullName, UserName: userName})
	if err != nil {
		return nil, c.mapError(err)
	}
	return p, c.tokens.SetProfile(ctx, p)
}

func (c *GRPCClient) DeleteAccount(ctx context.Context) error {
	if err := c.rpc.DeleteAccount(ctx); err != nil {
		return c.mapError(err)
	}
	return c.tokens.Clear(ctx)
}

// Habits.

func (c *GRPCClient) CreateHabit(ctx context.Context, title, description string) (*wellnessrpc.Habit, error) {
	h, err := c.rpc.CreateHabit(ctx, &wellnessrpc.CreateHabitRequest{Title: title, Description: description})
	return h, c.mapError(err)
}

func (c *GRPCClient) ListHabits(ctx context.Context) ([]wellnessrpc.Habit, error) {
	res, err := c.rpc.ListHabits(ctx)
	if err != nil {
		return nil, c.mapError(err)
	}
	return res.Habits, nil
}

func (c *GRPCClient) ToggleHabit(ctx context.Context, habitID string) (*wellnessrpc.ToggleHabitResponse, error) {
	res, err := c.rpc.ToggleHabit(ctx, &wellnessrpc.ToggleHabitRequest{HabitID: habitID, TimeZone: c.timeZone})
	return res, c.mapError(err)
}

func (c *GRPCClient) TodayCompletions(ctx context.Context) (*wellnessrpc.TodayCompletionsResponse, error) {
	res, err := c.rpc.TodayCompletions(ctx, &wellnessrpc.DayRequest{TimeZone: c.timeZone})
	return res, c.mapError(err)
}

// Moods.

func (c *GRPCClient) AddMood(ctx context.Context, mood int, note string) (*wellnessrpc.Mood, error) {
	m, err := c.rpc.AddMood(ctx, &wellnessrpc.AddMoodRequest{Mood: mood, Note: note})
	return m, c.mapError(err)
}

func (c *GRPCClient) ListMoods(ctx context.Context) ([]wellnessrpc.Mood, error) {
	res, err := c.rpc.ListMoods(ctx)
	if err != nil {
		return nil, c.mapError(err)
	}
	return res.Moods, nil
}

func (c *GRPCClient) DeleteMood(ctx context.Context, id string) error {
	return c.mapError(c.rpc.DeleteMood(ctx, &wellnessrpc.DeleteMoodRequest{ID: id}))
}

func (c *GRPCClient) MoodSummary(ctx context.Context) (*wellnessrpc.MoodSummary, error) {
	res, err := c.rpc.MoodSummary(ctx, &wellnessrpc.DayRequest{TimeZone: c.timeZone})
	return res, c.mapError(err)
}

// Expenses.

func (c *GRPCClient) AddExpense(ctx context.Context, req *wellnessrpc.AddExpenseRequest) (*wellnessrpc.Expense, error) {
	e, err := c.rpc.AddExpense(ctx, req)
	return e, c.mapError(err)
}

func (c *GRPCClient) ListExpenses(ctx context.Context) ([]wellnessrpc.Expense, error) {
	res, err := c.rpc.ListExpenses(ctx)
	if err != nil {
		return nil, c.mapError(err)
	}
	return res.Expenses, nil
}

func (c *GRPCClient) ExpenseSummary(ctx context.Context) (*wellnessrpc.ExpenseSummary, error) {
	res, err := c.rpc.ExpenseSummary(ctx)
	return res, c.mapError(err)
}

// Activities.

func (c *GRPCClient) CompletePomodoro(ctx context.Context, minutes int) (*wellnessrpc.CompletePomodoroResponse, error) {
	res, err := c.rpc.CompletePomodoro(ctx, &wellnessrpc.CompletePomodoroRequest{Duration: minutes})
	return res, c.mapError(err)
}

func (c *GRPCClient) SubmitGameScore(ctx context.Context, score int64) (*wellnessrpc.SubmitGameScoreResponse, error) {
	res, err := c.rpc.SubmitGameScore(ctx, &wellnessrpc.SubmitGameScoreRequest{Score: score})
	return res, c.mapError(err)
}

func (c *GRPCClient) SubmitFeedback(ctx context.Context, rating int, text string) error {
	return c.mapError(c.rpc.SubmitFeedback(ctx, &wellnessrpc.SubmitFeedbackRequest{Rating: rating, Feedback: text}))
}

// Dashboard and export.

func (c *GRPCClient) TodayStats(ctx context.Context) (*wellnessrpc.TodayStats, error) {
	res, err := c.rpc.TodayStats(ctx, &wellnessrpc.DayRequest{TimeZone: c.timeZone})
	return res, c.mapError(err)
}

func (c *GRPCClient) Trends(ctx context.Context, rangeName string) (*wellnessrpc.Trends, error) {
	res, err := c.rpc.Trends(ctx, &wellnessrpc.TrendsRequest{Range: rangeName, TimeZone: c.timeZone})
	return res, c.mapError(err)
}

func (c *GRPCClient) ExportData(ctx context.Context) (*wellnessrpc.ExportResponse, error) {
	res, err := c.rpc.ExportData(ctx)
	return res, c.mapError(err)
}
