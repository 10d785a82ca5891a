package services

import (
	"context"
	"strings"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/ledger"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/stats"
)

// trendChartDays is the number of day buckets in both trend charts,
// whatever the selected range.
const trendChartDays = 7

// TrendRange selects how far back Trends looks.
type TrendRange string

const (
	RangeWeek  TrendRange = "week"
	RangeMonth TrendRange = "month"
	RangeYear  TrendRange = "year"
)

// ParseTrendRange accepts week, month or year; empty means week.
func ParseTrendRange(s string) (TrendRange, error) {
	switch r := TrendRange(strings.ToLower(strings.TrimSpace(s))); r {
	case "":
		return RangeWeek, nil
	case RangeWeek, RangeMonth, RangeYear:
		return r, nil
	}
	return "", invalid("unknown range %q", s)
}

// Start is the first instant the range covers when it ends at now.
func (r TrendRange) Start(now time.Time) time.Time {
	switch r {
	case RangeMonth:
		return now.AddDate(0, -1, 0)
	case RangeYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// DashboardService computes the home screen and trends numbers.
type DashboardService struct {
	base
}

type TodayStats struct {
	Pomodoros       int
	HabitsCompleted int
	HabitsTotal     int
	Spent           float64
	AverageMood     float64
	MoodCount       int
	Points          int64
	Level           ledger.Level
}

type Trends struct {
	Range              TrendRange
	HabitCounts        []stats.DayCount
	MoodAverages       []stats.DayValue
	Categories         []stats.CategoryTotal
	TotalCompletions   int
	TotalSpent         float64
	CompletedPomodoros int
	AverageMood        float64
}

func completionAt(c models.HabitCompletion) time.Time { return c.CompletedAt }

func completedPomodoros(list []models.PomodoroSession, w stats.Window) int {
	n := 0
	for _, p := range list {
		if p.Completed && w.Contains(p.CreatedAt) {
			n++
		}
	}
	return n
}

// TodayStats summarises the caller's local calendar day.
func (s *DashboardService) TodayStats(ctx context.Context, userID, tz string) (*TodayStats, error) {
	now, err := s.localNow(tz)
	if err != nil {
		return nil, err
	}
	today := stats.Today(now)

	user, err := s.repomanager.Users(s.db).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.repomanager.Pomodoros(s.db).List(ctx, userID, today.Start)
	if err != nil {
		return nil, err
	}
	habits, err := s.repomanager.Habits(s.db).List(ctx, userID)
	if err != nil {
		return nil, err
	}
	done, err := s.repomanager.Completions(s.db).ListForDay(ctx, userID, today.Start)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repomanager.Expenses(s.db).List(ctx, userID, today.Start)
	if err != nil {
		return nil, err
	}
	moods, err := s.repomanager.Moods(s.db).List(ctx, userID, today.Start)
	if err != nil {
		return nil, err
	}

	mood := stats.Aggregate(moods, today, moodAt, moodValue)
	return &TodayStats{
		Pomodoros:       completedPomodoros(sessions, today),
		HabitsCompleted: len(done),
		HabitsTotal:     len(habits),
		Spent:           stats.Aggregate(expenses, today, expenseAt, expenseAmount).Sum,
		AverageMood:     stats.RoundOneDecimal(mood.Average),
		MoodCount:       mood.Count,
		Points:          user.Points,
		Level:           ledger.LevelFor(user.Points),
	}, nil
}

// Trends reports activity over the selected range. The two charts always
// cover the last seven local days.
func (s *DashboardService) Trends(ctx context.Context, userID, rangeName, tz string) (*Trends, error) {
	r, err := ParseTrendRange(rangeName)
	if err != nil {
		return nil, err
	}
	now, err := s.localNow(tz)
	if err != nil {
		return nil, err
	}
	since := r.Start(now)
	w := stats.Window{Start: since}

	completions, err := s.repomanager.Completions(s.db).ListSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	moods, err := s.repomanager.Moods(s.db).List(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repomanager.Expenses(s.db).List(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	sessions, err := s.repomanager.Pomodoros(s.db).List(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	inRange := make([]models.Expense, 0, len(expenses))
	for _, e := range expenses {
		if w.Contains(e.CreatedAt) {
			inRange = append(inRange, e)
		}
	}

	return &Trends{
		Range:              r,
		HabitCounts:        stats.DailyCounts(completions, now, trendChartDays, completionAt),
		MoodAverages:       stats.DailyAverages(moods, now, trendChartDays, moodAt, moodValue, stats.NeutralMood),
		Categories:         stats.CategoryTotals(inRange, expenseCategory, expenseAmount),
		TotalCompletions:   stats.Count(completions, w, completionAt),
		TotalSpent:         stats.Aggregate(expenses, w, expenseAt, expenseAmount).Sum,
		CompletedPomodoros: completedPomodoros(sessions, w),
		AverageMood:        stats.RoundOneDecimal(stats.Aggregate(moods, w, moodAt, moodValue).Average),
	}, nil
}
