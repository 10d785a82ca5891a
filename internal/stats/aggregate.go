package stats

import (
	"math"
	"sort"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/timex"
)

// NeutralMood is the value charted for a day without mood entries.
const NeutralMood = 3.0

// Summary is the result of reducing records over a window.
type Summary struct {
	Count   int
	Sum     float64
	Average float64
}

// Aggregate filters records by window on the timestamp returned by at and
// reduces the selected values. The average of an empty set is 0.
func Aggregate[T any](records []T, w Window, at func(T) time.Time, value func(T) float64) Summary {
	var s Summary
	for _, r := range records {
		if !w.Contains(at(r)) {
			continue
		}
		s.Count++
		if value != nil {
			s.Sum += value(r)
		}
	}
	if s.Count > 0 {
		s.Average = s.Sum / float64(s.Count)
	}
	return s
}

// Count is Aggregate without a value selector.
func Count[T any](records []T, w Window, at func(T) time.Time) int {
	return Aggregate(records, w, at, nil).Count
}

// RoundOneDecimal rounds half away from zero to one decimal place.
func RoundOneDecimal(x float64) float64 {
	return math.Round(x*10) / 10
}

// CompletionRate is done/total as a whole percentage, 0 when total is 0.
func CompletionRate(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(done) / float64(total) * 100))
}

// DayValue is one bucket of a per-day chart.
type DayValue struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// DailyAverages returns one bucket per calendar day for the days ending on
// now's day, oldest first. Records are matched by their local date string in
// now's location, not by a rolling 24h window. Averages are rounded to one
// decimal; days without records get empty.
func DailyAverages[T any](records []T, now time.Time, days int, at func(T) time.Time, value func(T) float64, empty float64) []DayValue {
	loc := now.Location()
	type acc struct {
		sum float64
		n   int
	}
	byDay := make(map[string]*acc)
	for _, r := range records {
		key := timex.DateKey(at(r).In(loc))
		a, ok := byDay[key]
		if !ok {
			a = &acc{}
			byDay[key] = a
		}
		a.sum += value(r)
		a.n++
	}

	out := make([]DayValue, 0, days)
	for _, d := range timex.LastDays(now, days) {
		key := timex.DateKey(d)
		v := empty
		if a, ok := byDay[key]; ok && a.n > 0 {
			v = RoundOneDecimal(a.sum / float64(a.n))
		}
		out = append(out, DayValue{Date: key, Value: v})
	}
	return out
}

// DayCount is one bucket of a per-day count chart.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// DailyCounts counts records per local calendar day, oldest first.
func DailyCounts[T any](records []T, now time.Time, days int, at func(T) time.Time) []DayCount {
	loc := now.Location()
	byDay := make(map[string]int)
	for _, r := range records {
		byDay[timex.DateKey(at(r).In(loc))]++
	}

	out := make([]DayCount, 0, days)
	for _, d := range timex.LastDays(now, days) {
		key := timex.DateKey(d)
		out = append(out, DayCount{Date: key, Count: byDay[key]})
	}
	return out
}

// CategoryTotal is the amount spent in one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// CategoryTotals sums values per category, largest first. Ties keep
// alphabetical order so output is stable.
func CategoryTotals[T any](records []T, category func(T) string, value func(T) float64) []CategoryTotal {
	sums := make(map[string]float64)
	for _, r := range records {
		sums[category(r)] += value(r)
	}

	out := make([]CategoryTotal, 0, len(sums))
	for c, v := range sums {
		out = append(out, CategoryTotal{Category: c, Total: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}
