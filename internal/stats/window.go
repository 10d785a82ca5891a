// Package stats reduces timestamped wellness records into the numbers shown on
// the dashboard: windowed counts, sums and averages, per-day chart buckets and
// per-category totals. Everything here is pure; callers pass "now".
package stats

import (
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/timex"
)

// Window is the half-open interval [Start, End). A zero Start or End leaves
// that side unbounded.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	if !w.Start.IsZero() && t.Before(w.Start) {
		return false
	}
	if !w.End.IsZero() && !t.Before(w.End) {
		return false
	}
	return true
}

// All matches every record.
func All() Window { return Window{} }

// Today is the local calendar day containing now.
func Today(now time.Time) Window {
	start := timex.StartOfDay(now)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// Trailing starts exactly days before now and is open-ended, so a record
// stamped 8 days ago falls outside a 7-day window and one 6 days ago inside.
func Trailing(now time.Time, days int) Window {
	return Window{Start: now.AddDate(0, 0, -days)}
}

// TrailingMonths starts the given number of calendar months before now.
func TrailingMonths(now time.Time, months int) Window {
	return Window{Start: now.AddDate(0, -months, 0)}
}
