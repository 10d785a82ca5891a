package cli

import (
	"fmt"
	"strconv"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/wellnessrpc"
)

const listTimeLayout = "2006-01-02 15:04"

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Create a habit."`
	List   HabitListCmd   `cmd:"" help:"List habits, newest first."`
	Toggle HabitToggleCmd `cmd:"" help:"Mark a habit done for today, or undo it."`
	Today  HabitTodayCmd  `cmd:"" help:"Show today's progress."`
}

type HabitAddCmd struct {
	Title       string `arg:"" help:"What to do, e.g. \"Drink 8 glasses of water\"."`
	Description string `short:"d" help:"Optional details."`
}

func (cmd *HabitAddCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	h, err := c.API.CreateHabit(c.Ctx, cmd.Title, cmd.Description)
	if err != nil {
		return err
	}
	success(c.Out, "Habit added (%s).", h.ID)
	return nil
}

type HabitListCmd struct{}

func (cmd *HabitListCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	habits, err := c.API.ListHabits(c.Ctx)
	if err != nil {
		return err
	}
	today, err := c.API.TodayCompletions(c.Ctx)
	if err != nil {
		return err
	}

	done := make(map[string]bool, len(today.CompletedHabitIDs))
	for _, id := range today.CompletedHabitIDs {
		done[id] = true
	}

	rows := make([][]string, 0, len(habits))
	for _, h := range habits {
		mark := " "
		if done[h.ID] {
			mark = "✓"
		}
		rows = append(rows, []string{mark, h.ID, h.Title, h.Description})
	}
	renderTable(c.Out, []string{"", "ID", "Habit", "Details"}, rows)
	return nil
}

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit id."`
}

func (cmd *HabitToggleCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	res, err := c.API.ToggleHabit(c.Ctx, cmd.ID)
	if err != nil {
		return err
	}
	c.setPoints(res.Points)
	if res.Completed {
		success(c.Out, "Done for today! Points: %d", res.Points)
	} else {
		warn(c.Out, "Completion undone. Points: %d", res.Points)
	}
	return nil
}

type HabitTodayCmd struct{}

func (cmd *HabitTodayCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	res, err := c.API.TodayCompletions(c.Ctx)
	if err != nil {
		return err
	}
	title(c.Out, "Today's habits")
	field(c.Out, "Completed", fmt.Sprintf("%d of %d", res.Completed, res.Total))
	field(c.Out, "Progress", fmt.Sprintf("%d%% %s", res.Rate, bar(float64(res.Rate), 100, 20)))
	return nil
}

type MoodCmd struct {
	Add     MoodAddCmd     `cmd:"" help:"Log how you feel (1 = awful, 5 = great)."`
	List    MoodListCmd    `cmd:"" help:"List mood entries, newest first."`
	Delete  MoodDeleteCmd  `cmd:"" help:"Delete a mood entry."`
	Summary MoodSummaryCmd `cmd:"" help:"Averages and the last 7 days."`
}

type MoodAddCmd struct {
	Mood int    `arg:"" help:"Mood from 1 to 5."`
	Note string `short:"n" help:"Optional note."`
}

func (cmd *MoodAddCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	m, err := c.API.AddMood(c.Ctx, cmd.Mood, cmd.Note)
	if err != nil {
		return err
	}
	success(c.Out, "Mood %d logged (%s).", m.Mood, m.ID)
	return nil
}

type MoodListCmd struct{}

func (cmd *MoodListCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	moods, err := c.API.ListMoods(c.Ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(moods))
	for _, m := range moods {
		rows = append(rows, []string{m.ID, m.CreatedAt.Local().Format(listTimeLayout), strconv.Itoa(m.Mood), m.Note})
	}
	renderTable(c.Out, []string{"ID", "When", "Mood", "Note"}, rows)
	return nil
}

type MoodDeleteCmd struct {
	ID string `arg:"" help:"Mood entry id."`
}

func (cmd *MoodDeleteCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	if err := c.API.DeleteMood(c.Ctx, cmd.ID); err != nil {
		return err
	}
	success(c.Out, "Mood entry deleted.")
	return nil
}

type MoodSummaryCmd struct{}

func (cmd *MoodSummaryCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	s, err := c.API.MoodSummary(c.Ctx)
	if err != nil {
		return err
	}
	title(c.Out, "Mood")
	field(c.Out, "Entries", s.Count)
	field(c.Out, "Average", fmt.Sprintf("%.1f", s.Average))
	field(c.Out, "This week", fmt.Sprintf("%.1f", s.WeeklyAverage))
	for _, d := range s.Chart {
		field(c.Out, d.Date, fmt.Sprintf("%.1f %s", d.Value, bar(d.Value, 5, 20)))
	}
	return nil
}

type ExpenseCmd struct {
	Add     ExpenseAddCmd     `cmd:"" help:"Record an expense."`
	List    ExpenseListCmd    `cmd:"" help:"List expenses, newest first."`
	Summary ExpenseSummaryCmd `cmd:"" help:"Totals and spending by category."`
}

type ExpenseAddCmd struct {
	Amount      float64 `arg:"" help:"Amount spent."`
	Description string  `arg:"" help:"What it was for."`
	Category    string  `short:"c" default:"other" enum:"food,transport,entertainment,shopping,health,bills,other" help:"Category (${enum})."`
	Currency    string  `help:"Currency code (default USD)."`
}

func (cmd *ExpenseAddCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	e, err := c.API.AddExpense(c.Ctx, &wellnessrpc.AddExpenseRequest{
		Amount:      cmd.Amount,
		Category:    cmd.Category,
		Description: cmd.Description,
		Currency:    cmd.Currency,
	})
	if err != nil {
		return err
	}
	success(c.Out, "Spent %.2f %s on %s (%s).", e.Amount, e.Currency, e.Category, e.ID)
	return nil
}

type ExpenseListCmd struct{}

func (cmd *ExpenseListCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	list, err := c.API.ListExpenses(c.Ctx)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		rows = append(rows, []string{
			e.CreatedAt.Local().Format(listTimeLayout),
			fmt.Sprintf("%.2f %s", e.Amount, e.Currency),
			e.Category,
			e.Description,
		})
	}
	renderTable(c.Out, []string{"When", "Amount", "Category", "Description"}, rows)
	return nil
}

type ExpenseSummaryCmd struct{}

func (cmd *ExpenseSummaryCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	s, err := c.API.ExpenseSummary(c.Ctx)
	if err != nil {
		return err
	}
	title(c.Out, "Spending")
	field(c.Out, "Total", fmt.Sprintf("%.2f", s.Total))
	field(c.Out, "This week", fmt.Sprintf("%.2f", s.Weekly))
	field(c.Out, "This month", fmt.Sprintf("%.2f", s.Monthly))
	field(c.Out, "Entries", s.Count)
	for _, ct := range s.ByCategory {
		field(c.Out, ct.Category, fmt.Sprintf("%.2f %s", ct.Total, bar(ct.Total, s.Total, 20)))
	}
	return nil
}
