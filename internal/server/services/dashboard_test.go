package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/ledger"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/stats"
)

func seedActivity(h *harness, userID string) {
	s := h.store
	yesterday := testNow.AddDate(0, 0, -1)
	s.pomodoros = append(s.pomodoros,
		models.PomodoroSession{UserID: userID, Duration: 25, Completed: true, CreatedAt: testNow.Add(-time.Hour)},
		models.PomodoroSession{UserID: userID, Duration: 25, Completed: true, CreatedAt: yesterday},
		models.PomodoroSession{UserID: userID, Duration: 25, Completed: false, CreatedAt: testNow.Add(-2 * time.Hour)},
	)
	s.habits = append(s.habits,
		models.Habit{ID: "h1", UserID: userID, Title: "a"},
		models.Habit{ID: "h2", UserID: userID, Title: "b"},
	)
	s.completions = append(s.completions,
		models.HabitCompletion{ID: "c1", HabitID: "h1", UserID: userID, CompletedOn: testNow, CompletedAt: testNow.Add(-time.Hour)},
		models.HabitCompletion{ID: "c2", HabitID: "h1", UserID: userID, CompletedOn: yesterday, CompletedAt: yesterday},
		models.HabitCompletion{ID: "c3", HabitID: "h2", UserID: userID, CompletedOn: yesterday, CompletedAt: yesterday},
	)
	s.expenses = append(s.expenses,
		models.Expense{UserID: userID, Amount: 12.5, Category: models.CategoryFood, CreatedAt: testNow.Add(-time.Hour)},
		models.Expense{UserID: userID, Amount: 30, Category: models.CategoryBills, CreatedAt: testNow.AddDate(0, 0, -3)},
		models.Expense{UserID: userID, Amount: 100, Category: models.CategoryShopping, CreatedAt: testNow.AddDate(0, 0, -20)},
	)
	s.moods = append(s.moods,
		models.MoodEntry{UserID: userID, Mood: 4, CreatedAt: testNow.Add(-time.Hour)},
		models.MoodEntry{UserID: userID, Mood: 5, CreatedAt: testNow.Add(-2 * time.Hour)},
		models.MoodEntry{UserID: userID, Mood: 1, CreatedAt: testNow.AddDate(0, 0, -2)},
	)
}

func TestTodayStats(t *testing.T) {
	h := newHarness(t, nil)
	u := h.store.addUser("a@b.c", "alice", 120)
	seedActivity(h, u.ID)

	got, err := h.svc.Dashboard.TodayStats(context.Background(), u.ID, "")
	require.NoError(t, err)
	assert.Equal(t, &TodayStats{
		Pomodoros:       1,
		HabitsCompleted: 1,
		HabitsTotal:     2,
		Spent:           12.5,
		AverageMood:     4.5,
		MoodCount:       2,
		Points:          120,
		Level:           ledger.LevelExplorer,
	}, got)
}

func TestTodayStats_EmptyDay(t *testing.T) {
	h := newHarness(t, nil)
	u := h.store.addUser("a@b.c", "alice", 0)

	got, err := h.svc.Dashboard.TodayStats(context.Background(), u.ID, "")
	require.NoError(t, err)
	assert.Zero(t, got.AverageMood)
	assert.Zero(t, got.Spent)
	assert.Equal(t, ledger.LevelBeginner, got.Level)
}

func TestTrends(t *testing.T) {
	h := newHarness(t, nil)
	u := h.store.addUser("a@b.c", "alice", 0)
	seedActivity(h, u.ID)

	week, err := h.svc.Dashboard.Trends(context.Background(), u.ID, "", "")
	require.NoError(t, err)
	assert.Equal(t, RangeWeek, week.Range)
	assert.Equal(t, 3, week.TotalCompletions)
	assert.Equal(t, 42.5, week.TotalSpent)
	assert.Equal(t, 2, week.CompletedPomodoros)
	assert.Equal(t, 3.3, week.AverageMood)
	require.Len(t, week.HabitCounts, 7)
	assert.Equal(t, stats.DayCount{Date: "2026-03-09", Count: 2}, week.HabitCounts[5])
	assert.Equal(t, stats.DayCount{Date: "2026-03-10", Count: 1}, week.HabitCounts[6])
	require.Len(t, week.MoodAverages, 7)
	assert.Equal(t, stats.NeutralMood, week.MoodAverages[0].Value)
	assert.Equal(t, 4.5, week.MoodAverages[6].Value)
	assert.Equal(t, []stats.CategoryTotal{
		{Category: models.CategoryBills, Total: 30},
		{Category: models.CategoryFood, Total: 12.5},
	}, week.Categories)

	month, err := h.svc.Dashboard.Trends(context.Background(), u.ID, "Month", "")
	require.NoError(t, err)
	assert.Equal(t, RangeMonth, month.Range)
	assert.Equal(t, 142.5, month.TotalSpent)
	assert.Len(t, month.Categories, 3)
	assert.Len(t, month.HabitCounts, 7)
}

func TestTrends_EmptyAverageMoodIsZero(t *testing.T) {
	h := newHarness(t, nil)
	u := h.store.addUser("a@b.c", "alice", 0)

	got, err := h.svc.Dashboard.Trends(context.Background(), u.ID, "year", "")
	require.NoError(t, err)
	assert.Zero(t, got.AverageMood)
	assert.Zero(t, got.TotalSpent)
}

func TestParseTrendRange(t *testing.T) {
	_, err := ParseTrendRange("decade")
	assert.ErrorIs(t, err, common.ErrorValidation)

	r, err := ParseTrendRange(" YEAR ")
	require.NoError(t, err)
	assert.Equal(t, RangeYear, r)
	assert.Equal(t, testNow.AddDate(-1, 0, 0), r.Start(testNow))
}
