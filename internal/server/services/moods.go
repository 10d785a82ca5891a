package services

import (
	"context"
	"strings"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/models"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/stats"
)

// moodChartDays is the number of day buckets in the mood chart.
const moodChartDays = 7

type MoodService struct {
	base
}

// MoodSummary is what the mood screen shows above the history.
type MoodSummary struct {
	Count         int
	Average       float64
	WeeklyAverage float64
	Chart         []stats.DayValue
}

func moodAt(m models.MoodEntry) time.Time  { return m.CreatedAt }
func moodValue(m models.MoodEntry) float64 { return float64(m.Mood) }

// Add records a mood between MinMood and MaxMood. A blank note is stored as
// no note.
func (s *MoodService) Add(ctx context.Context, userID string, mood int, note string) (*models.MoodEntry, error) {
	if mood < models.MinMood || mood > models.MaxMood {
		return nil, invalid("mood must be between %d and %d", models.MinMood, models.MaxMood)
	}
	entry := &models.MoodEntry{UserID: userID, Mood: mood}
	if n := strings.TrimSpace(note); n != "" {
		entry.Note = &n
	}
	return s.repomanager.Moods(s.db).Create(ctx, entry)
}

// List returns every entry of the user, newest first.
func (s *MoodService) List(ctx context.Context, userID string) ([]models.MoodEntry, error) {
	return s.repomanager.Moods(s.db).List(ctx, userID, time.Time{})
}

// Delete removes an entry the caller owns.
func (s *MoodService) Delete(ctx context.Context, userID, id string) error {
	if err := validateID("mood", id); err != nil {
		return err
	}
	return s.repomanager.Moods(s.db).Delete(ctx, userID, id)
}

// Summary averages all entries and the trailing week, and buckets the last
// seven local days for the chart. Days without entries chart as neutral.
func (s *MoodService) Summary(ctx context.Context, userID, tz string) (*MoodSummary, error) {
	now, err := s.localNow(tz)
	if err != nil {
		return nil, err
	}
	entries, err := s.repomanager.Moods(s.db).List(ctx, userID, time.Time{})
	if err != nil {
		return nil, err
	}

	all := stats.Aggregate(entries, stats.All(), moodAt, moodValue)
	week := stats.Aggregate(entries, stats.Trailing(now, 7), moodAt, moodValue)

	return &MoodSummary{
		Count:         all.Count,
		Average:       stats.RoundOneDecimal(all.Average),
		WeeklyAverage: stats.RoundOneDecimal(week.Average),
		Chart:         stats.DailyAverages(entries, now, moodChartDays, moodAt, moodValue, stats.NeutralMood),
	}, nil
}
