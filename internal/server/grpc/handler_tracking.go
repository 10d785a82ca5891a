package grpc

import (
	"context"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/services"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/wellnessrpc"
)

// Habit, mood, expense and dashboard handlers.

func toHabit(h models.Habit) wellnessrpc.Habit {
	return wellnessrpc.Habit{ID: h.ID, Title: h.Title, Description: h.Description, CreatedAt: h.CreatedAt}
}

func toMood(m models.MoodEntry) wellnessrpc.Mood {
	out := wellnessrpc.Mood{ID: m.ID, Mood: m.Mood, CreatedAt: m.CreatedAt}
	if m.Note != nil {
		out.Note = *m.Note
	}
	return out
}

func toExpense(e models.Expense) wellnessrpc.Expense {
	return wellnessrpc.Expense{
		ID:          e.ID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Currency:    e.Currency,
		CreatedAt:   e.CreatedAt,
	}
}

func (s *GRPCServer) CreateHabit(ctx context.Context, req *wellnessrpc.CreateHabitRequest) (*wellnessrpc.Habit, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	h, err := s.habits.Create(ctx, userID, req.Title, req.Description)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := toHabit(*h)
	return &out, nil
}

func (s *GRPCServer) ListHabits(ctx context.Context, _ *wellnessrpc.Empty) (*wellnessrpc.HabitList, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.habits.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := &wellnessrpc.HabitList{Habits: make([]wellnessrpc.Habit, 0, len(list))}
	for _, h := range list {
		out.Habits = append(out.Habits, toHabit(h))
	}
	return out, nil
}

func (s *GRPCServer) ToggleHabit(ctx context.Context, req *wellnessrpc.ToggleHabitRequest) (*wellnessrpc.ToggleHabitResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.habits.Toggle(ctx, userID, req.HabitID, req.TimeZone)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := &wellnessrpc.ToggleHabitResponse{Completed: res.Completed, Points: res.Points}
	if res.Completion != nil {
		out.CompletionID = res.Completion.ID
	}
	return out, nil
}

func (s *GRPCServer) TodayCompletions(ctx context.Context, req *wellnessrpc.DayRequest) (*wellnessrpc.TodayCompletionsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.habits.Today(ctx, userID, req.TimeZone)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &wellnessrpc.TodayCompletionsResponse{
		CompletedHabitIDs: res.CompletedHabitIDs,
		Completed:         res.Completed,
		Total:             res.Total,
		Rate:              res.Rate,
	}, nil
}

func (s *GRPCServer) AddMood(ctx context.Context, req *wellnessrpc.AddMoodRequest) (*wellnessrpc.Mood, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	m, err := s.moods.Add(ctx, userID, req.Mood, req.Note)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := toMood(*m)
	return &out, nil
}

func (s *GRPCServer) ListMoods(ctx context.Context, _ *wellnessrpc.Empty) (*wellnessrpc.MoodList, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.moods.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := &wellnessrpc.MoodList{Moods: make([]wellnessrpc.Mood, 0, len(list))}
	for _, m := range list {
		out.Moods = append(out.Moods, toMood(m))
	}
	return out, nil
}

func (s *GRPCServer) DeleteMood(ctx context.Context, req *wellnessrpc.DeleteMoodRequest) (*wellnessrpc.Empty, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.moods.Delete(ctx, userID, req.ID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &wellnessrpc.Empty{}, nil
}

func (s *GRPCServer) MoodSummary(ctx context.Context, req *wellnessrpc.DayRequest) (*wellnessrpc.MoodSummary, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.moods.Summary(ctx, userID, req.TimeZone)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &wellnessrpc.MoodSummary{
		Count:         res.Count,
		Average:       res.Average,
		WeeklyAverage: res.WeeklyAverage,
		Chart:         res.Chart,
	}, nil
}

func (s *GRPCServer) AddExpense(ctx context.Context, req *wellnessrpc.AddExpenseRequest) (*wellnessrpc.Expense, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	e, err := s.expenses.Add(ctx, userID, services.ExpenseInput{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Currency:    req.Currency,
	})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := toExpense(*e)
	return &out, nil
}

func (s *GRPCServer) ListExpenses(ctx context.Context, _ *wellnessrpc.Empty) (*wellnessrpc.ExpenseList, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.expenses.List(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	out := &wellnessrpc.ExpenseList{Expenses: make([]wellnessrpc.Expense, 0, len(list))}
	for _, e := range list {
		out.Expenses = append(out.Expenses, toExpense(e))
	}
	return out, nil
}

func (s *GRPCServer) ExpenseSummary(ctx context.Context, _ *wellnessrpc.Empty) (*wellnessrpc.ExpenseSummary, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.expenses.Summary(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &wellnessrpc.ExpenseSummary{
		Total:      res.Total,
		Weekly:     res.Weekly,
		Monthly:    res.Monthly,
		Count:      res.Count,
		ByCategory: res.ByCategory,
	}, nil
}

func (s *GRPCServer) TodayStats(ctx context.Context, req *wellnessrpc.DayRequest) (*wellnessrpc.TodayStats, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.dashboard.TodayStats(ctx, userID, req.TimeZone)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &wellnessrpc.TodayStats{
		Pomodoros:       res.Pomodoros,
		HabitsCompleted: res.HabitsCompleted,
		HabitsTotal:     res.HabitsTotal,
		Spent:           res.Spent,
		AverageMood:     res.AverageMood,
		MoodCount:       res.MoodCount,
		Points:          res.Points,
		Level:           string(res.Level),
	}, nil
}

func (s *GRPCServer) Trends(ctx context.Context, req *wellnessrpc.TrendsRequest) (*wellnessrpc.Trends, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.dashboard.Trends(ctx, userID, req.Range, req.TimeZone)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &wellnessrpc.Trends{
		Range:              string(res.Range),
		HabitCounts:        res.HabitCounts,
		MoodAverages:       res.MoodAverages,
		Categories:         res.Categories,
		TotalCompletions:   res.TotalCompletions,
		TotalSpent:         res.TotalSpent,
		CompletedPomodoros: res.CompletedPomodoros,
		AverageMood:        res.AverageMood,
	}, nil
}
