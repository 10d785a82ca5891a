package timex

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the local calendar date format used as a day bucket key.
const DateLayout = "2006-01-02"

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time

// LoadLocation resolves an IANA zone name. An empty name yields fallback.
func LoadLocation(name string, fallback *time.Location) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		if fallback == nil {
			return time.UTC, nil
		}
		return fallback, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("unknown time zone %q: %w", name, err)
	}
	return loc, nil
}

// StartOfDay returns local midnight of the day containing t, in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DateKey formats t as its local calendar date.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// LastDays lists the calendar days ending with the day of now, oldest first.
// Days are stepped with AddDate so DST transitions keep local midnights.
func LastDays(now time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	today := StartOfDay(now)
	days := make([]time.Time, n)
	for i := 0; i < n; i++ {
		days[i] = today.AddDate(0, 0, i-(n-1))
	}
	return days
}
