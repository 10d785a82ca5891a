package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/client/timer"
)

type PomodoroCmd struct {
	Start PomodoroStartCmd `cmd:"" help:"Run a focus session; it is recorded only if it runs to the end."`
}

type PomodoroStartCmd struct {
	Minutes int           `arg:"" optional:"" default:"25" help:"Session length in minutes."`
	Tick    time.Duration `hidden:"" default:"1s"`
}

func (cmd *PomodoroStartCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	if cmd.Minutes < 1 || cmd.Minutes > 180 {
		return fmt.Errorf("minutes must be between 1 and 180")
	}

	total := cmd.Minutes * 60
	title(c.Out, fmt.Sprintf("Focus for %d minutes (Ctrl-C to abandon)", cmd.Minutes))

	err := c.Timer.Run(c.Ctx, cmd.Tick, total, func(n int) {
		left := total - n
		fmt.Fprintf(c.Out, "\r%02d:%02d ", left/60, left%60)
	})
	fmt.Fprintln(c.Out)
	if errors.Is(err, timer.ErrStopped) {
		c.Logger.Info(c.Ctx, "Pomodoro abandoned", "minutes", cmd.Minutes)
		warn(c.Out, "Session abandoned; nothing recorded.")
		return nil
	}
	if err != nil {
		return err
	}

	res, err := c.API.CompletePomodoro(c.Ctx, cmd.Minutes)
	if err != nil {
		return err
	}
	c.setPoints(res.Points)
	success(c.Out, "Session complete! +%d points (total %d)", res.PointsEarned, res.Points)
	return nil
}

type BreatheCmd struct {
	Cycles int           `default:"5" help:"Inhale/exhale cycles."`
	Phase  time.Duration `default:"4s" help:"Length of each inhale and exhale."`
}

func (cmd *BreatheCmd) Run(c *Context) error {
	if cmd.Cycles < 1 {
		return fmt.Errorf("cycles must be at least 1")
	}

	ticks := cmd.Cycles * 2
	title(c.Out, "Breathe")
	fmt.Fprintln(c.Out, "Inhale...")

	err := c.Timer.Run(c.Ctx, cmd.Phase, ticks, func(n int) {
		switch {
		case n == ticks:
		case n%2 == 1:
			fmt.Fprintln(c.Out, "Exhale...")
		default:
			fmt.Fprintln(c.Out, "Inhale...")
		}
	})
	if errors.Is(err, timer.ErrStopped) {
		warn(c.Out, "Stopped.")
		return nil
	}
	if err != nil {
		return err
	}
	success(c.Out, "Well done.")
	return nil
}

type GameCmd struct {
	Submit GameSubmitCmd `cmd:"" help:"Submit a bubble game score (1 point per 10)."`
}

type GameSubmitCmd struct {
	Score int64 `arg:"" help:"Final score."`
}

func (cmd *GameSubmitCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	res, err := c.API.SubmitGameScore(c.Ctx, cmd.Score)
	if err != nil {
		return err
	}
	c.setPoints(res.Points)
	if res.NewHighScore {
		success(c.Out, "New high score: %d!", res.HighScore)
	} else {
		field(c.Out, "High score", res.HighScore)
	}
	field(c.Out, "Points earned", res.PointsEarned)
	field(c.Out, "Total points", res.Points)
	return nil
}

type FeedbackCmd struct {
	Rating int    `arg:"" help:"Rating from 1 to 5."`
	Text   string `short:"m" help:"Feedback text; prompted for when empty."`
}

func (cmd *FeedbackCmd) Run(c *Context) error {
	if err := c.requireSession(); err != nil {
		return err
	}
	text := cmd.Text
	if text == "" {
		var err error
		if text, err = GetMultiline(c.In, "Your feedback", c.Out); err != nil {
			return err
		}
	}
	if err := c.API.SubmitFeedback(c.Ctx, cmd.Rating, text); err != nil {
		return err
	}
	success(c.Out, "Thanks for the feedback!")
	return nil
}
