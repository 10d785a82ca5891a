package wellnessrpc

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/grpc"
)

const ServiceName = "wellness.v1.WellnessService"

// Method names.
const (
	MethodPing             = "Ping"
	MethodSignUp           = "SignUp"
	MethodSignIn           = "SignIn"
	MethodSignOut          = "SignOut"
	MethodRefreshToken     = "RefreshToken"
	MethodGetSession       = "GetSession"
	MethodUpdateProfile    = "UpdateProfile"
	MethodDeleteAccount    = "DeleteAccount"
	MethodCreateHabit      = "CreateHabit"
	MethodListHabits       = "ListHabits"
	MethodToggleHabit      = "ToggleHabit"
	MethodTodayCompletions = "TodayCompletions"
	MethodAddMood          = "AddMood"
	MethodListMoods        = "ListMoods"
	MethodDeleteMood       = "DeleteMood"
	MethodMoodSummary      = "MoodSummary"
	MethodAddExpense       = "AddExpense"
	MethodListExpenses     = "ListExpenses"
	MethodExpenseSummary   = "ExpenseSummary"
	MethodCompletePomodoro = "CompletePomodoro"
	MethodSubmitGameScore  = "SubmitGameScore"
	MethodSubmitFeedback   = "SubmitFeedback"
	MethodTodayStats       = "TodayStats"
	MethodTrends           = "Trends"
	MethodExportData       = "ExportData"
)

// FullMethod returns the gRPC path of a method, e.g. "/wellness.v1.WellnessService/Ping".
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// healthPrefix covers the standard gRPC health service registered next to
// ours.
const healthPrefix = "/grpc.health.v1.Health/"

// IsPublic reports whether a full method path may be called without an
// access token.
func IsPublic(fullMethod string) bool {
	switch fullMethod {
	case FullMethod(MethodPing), FullMethod(MethodSignUp), FullMethod(MethodSignIn), FullMethod(MethodRefreshToken):
		return true
	}
	return strings.HasPrefix(fullMethod, healthPrefix)
}

// WellnessServiceServer is implemented by the server's gRPC layer.
type WellnessServiceServer interface {
	Ping(context.Context, *Empty) (*PingResponse, error)

	SignUp(context.Context, *SignUpRequest) (*AuthResponse, error)
	SignIn(context.Context, *SignInRequest) (*AuthResponse, error)
	SignOut(context.Context, *SignOutRequest) (*Empty, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*AuthResponse, error)
	GetSession(context.Context, *Empty) (*Profile, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*Profile, error)
	DeleteAccount(context.Context, *Empty) (*Empty, error)

	CreateHabit(context.Context, *CreateHabitRequest) (*Habit, error)
	ListHabits(context.Context, *Empty) (*HabitList, error)
	ToggleHabit(context.Context, *ToggleHabitRequest) (*ToggleHabitResponse, error)
	TodayCompletions(context.Context, *DayRequest) (*TodayCompletionsResponse, error)

	AddMood(context.Context, *AddMoodRequest) (*Mood, error)
	ListMoods(context.Context, *Empty) (*MoodList, error)
	DeleteMood(context.Context, *DeleteMoodRequest) (*Empty, error)
	MoodSummary(context.Context, *DayRequest) (*MoodSummary, error)

	AddExpense(context.Context, *AddExpenseRequest) (*Expense, error)
	ListExpenses(context.Context, *Empty) (*ExpenseList, error)
	ExpenseSummary(context.Context, *Empty) (*ExpenseSummary, error)

	CompletePomodoro(context.Context, *CompletePomodoroRequest) (*CompletePomodoroResponse, error)
	SubmitGameScore(context.Context, *SubmitGameScoreRequest) (*SubmitGameScoreResponse, error)
	SubmitFeedback(context.Context, *SubmitFeedbackRequest) (*Empty, error)

	TodayStats(context.Context, *DayRequest) (*TodayStats, error)
	Trends(context.Context, *TrendsRequest) (*Trends, error)
	ExportData(context.Context, *Empty) (*ExportResponse, error)
}

// unary builds the method descriptor for one request/response pair.
func unary[Req, Resp any](name string, call func(WellnessServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	full := FullMethod(name)
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			impl := srv.(WellnessServiceServer)
			if interceptor == nil {
				return call(impl, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: full}
			handler := func(ctx context.Context, req any) (any, error) {
				r, ok := req.(*Req)
				if !ok {
					return nil, fmt.Errorf("invalid request type %T", req)
				}
				return call(impl, ctx, r)
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*WellnessServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(MethodPing, WellnessServiceServer.Ping),
		unary(MethodSignUp, WellnessServiceServer.SignUp),
		unary(MethodSignIn, WellnessServiceServer.SignIn),
		unary(MethodSignOut, WellnessServiceServer.SignOut),
		unary(MethodRefreshToken, WellnessServiceServer.RefreshToken),
		unary(MethodGetSession, WellnessServiceServer.GetSession),
		unary(MethodUpdateProfile, WellnessServiceServer.UpdateProfile),
		unary(MethodDeleteAccount, WellnessServiceServer.DeleteAccount),
		unary(MethodCreateHabit, WellnessServiceServer.CreateHabit),
		unary(MethodListHabits, WellnessServiceServer.ListHabits),
		unary(MethodToggleHabit, WellnessServiceServer.ToggleHabit),
		unary(MethodTodayCompletions, WellnessServiceServer.TodayCompletions),
		unary(MethodAddMood, WellnessServiceServer.AddMood),
		unary(MethodListMoods, WellnessServiceServer.ListMoods),
		unary(MethodDeleteMood, WellnessServiceServer.DeleteMood),
		unary(MethodMoodSummary, WellnessServiceServer.MoodSummary),
		unary(MethodAddExpense, WellnessServiceServer.AddExpense),
		unary(MethodListExpenses, WellnessServiceServer.ListExpenses),
		unary(MethodExpenseSummary, WellnessServiceServer.ExpenseSummary),
		unary(MethodCompletePomodoro, WellnessServiceServer.CompletePomodoro),
		unary(MethodSubmitGameScore, WellnessServiceServer.SubmitGameScore),
		unary(MethodSubmitFeedback, WellnessServiceServer.SubmitFeedback),
		unary(MethodTodayStats, WellnessServiceServer.TodayStats),
		unary(MethodTrends, WellnessServiceServer.Trends),
		unary(MethodExportData, WellnessServiceServer.ExportData),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "wellness/v1/wellness.json",
}

// RegisterWellnessServiceServer registers impl on s.
func RegisterWellnessServiceServer(s grpc.ServiceRegistrar, impl WellnessServiceServer) {
	s.RegisterService(&serviceDesc, impl)
}
