package cli

import (
	"fmt"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/filex"
)

type StatsCmd struct {
	Today  StatsTodayCmd  `cmd:"" default:"1" help:"Today at a glance."`
	Trends StatsTrendsCmd `cmd:"" help:"Trends over a week, month or year."`
}

type StatsTodayCmd struct{}

func (cmd *StatsTodayCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	s, err := c.API.TodayStats(c.Ctx)
	if err != nil {
		return err
	}
	title(c.Out, "Today")
	field(c.Out, "Pomodoros", s.Pomodoros)
	field(c.Out, "Habits", fmt.Sprintf("%d of %d", s.HabitsCompleted, s.HabitsTotal))
	field(c.Out, "Spent", fmt.Sprintf("%.2f", s.Spent))
	if s.MoodCount > 0 {
		field(c.Out, "Mood", fmt.Sprintf("%.1f (%d entries)", s.AverageMood, s.MoodCount))
	} else {
		field(c.Out, "Mood", "no entries")
	}
	field(c.Out, "Points", fmt.Sprintf("%d (%s)", s.Points, s.Level))
	c.setPoints(s.Points)
	return nil
}

type StatsTrendsCmd struct {
	Range string `arg:"" optional:"" default:"week" enum:"week,month,year" help:"Period (${enum})."`
}

func (cmd *StatsTrendsCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	t, err := c.API.Trends(c.Ctx, cmd.Range)
	if err != nil {
		return err
	}

	title(c.Out, "Trends ("+t.Range+")")
	field(c.Out, "Completions", t.TotalCompletions)
	field(c.Out, "Pomodoros", t.CompletedPomodoros)
	field(c.Out, "Spent", fmt.Sprintf("%.2f", t.TotalSpent))
	field(c.Out, "Average mood", fmt.Sprintf("%.1f", t.AverageMood))

	maxCount := 0
	for _, d := range t.HabitCounts {
		maxCount = max(maxCount, d.Count)
	}
	title(c.Out, "Habits, last 7 days")
	for _, d := range t.HabitCounts {
		field(c.Out, d.Date, fmt.Sprintf("%d %s", d.Count, bar(float64(d.Count), float64(maxCount), 20)))
	}

	title(c.Out, "Mood, last 7 days")
	for _, d := range t.MoodAverages {
		field(c.Out, d.Date, fmt.Sprintf("%.1f %s", d.Value, bar(d.Value, 5, 20)))
	}

	if len(t.Categories) > 0 {
		title(c.Out, "Spending by category")
		for _, ct := range t.Categories {
			field(c.Out, ct.Category, fmt.Sprintf("%.2f %s", ct.Total, bar(ct.Total, t.TotalSpent, 20)))
		}
	}
	return nil
}

type ExportCmd struct {
	Out string `short:"o" type:"path" help:"Also download the export to this file."`
}

func (cmd *ExportCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	res, err := c.API.ExportData(c.Ctx)
	if err != nil {
		return err
	}

	if cmd.Out != "" {
		body, err := c.Fetch(c.Ctx, res.URL)
		if err != nil {
			return err
		}
		if err := filex.WriteFileAtomic(cmd.Out, body, 0o600); err != nil {
			return err
		}
		success(c.Out, "Export saved to %s", cmd.Out)
		return nil
	}

	success(c.Out, "Export ready.")
	field(c.Out, "Download", res.URL)
	field(c.Out, "Valid until", res.ExpiresAt.Local().Format(time.RFC1123))
	return nil
}

type PingCmd struct{}

func (cmd *PingCmd) Run(c *Context) error {
	at, err := c.API.Ping(c.Ctx)
	if err != nil {
		return err
	}
	success(c.Out, "Server is up (server time %s).", at.Format(time.RFC3339))
	return nil
}
