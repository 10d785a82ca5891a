// Package cli is the wellness command-line client: a kong command tree whose
// commands talk to the server through the client package and keep their
// session in the session package.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/client/client"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/client/config"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/client/session"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/client/timer"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/common"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/filex"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/logging"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/netx"
)

type CLI struct {
	config.Config

	Signup   SignupCmd   `cmd:"" help:"Create an account."`
	Login    LoginCmd    `cmd:"" help:"Sign in."`
	Logout   LogoutCmd   `cmd:"" help:"Sign out and forget the local session."`
	Whoami   WhoamiCmd   `cmd:"" help:"Show your profile, points and level."`
	Profile  ProfileCmd  `cmd:"" help:"Manage your profile."`
	Account  AccountCmd  `cmd:"" help:"Manage your account."`
	Habit    HabitCmd    `cmd:"" help:"Track daily habits."`
	Mood     MoodCmd     `cmd:"" help:"Log your mood."`
	Expense  ExpenseCmd  `cmd:"" help:"Track spending."`
	Pomodoro PomodoroCmd `cmd:"" help:"Focus timer."`
	Breathe  BreatheCmd  `cmd:"" help:"Guided breathing (nothing is recorded)."`
	Game     GameCmd     `cmd:"" help:"Bubble game scores."`
	Feedback FeedbackCmd `cmd:"" help:"Tell us what you think."`
	Stats    StatsCmd    `cmd:"" help:"Dashboard."`
	Export   ExportCmd   `cmd:"" help:"Export all your data as JSON."`
	Ping     PingCmd     `cmd:"" help:"Check that the server is reachable."`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("wellness"),
		kong.Description("Habits, moods, spending and focus: your wellness hub in the terminal."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	}, options...)
	options = append(options, config.Options()...)
	return kong.New(cli, options...)
}

// Main parses args, runs the selected command and returns the exit code.
// ctx should be cancelled on interrupt; the timers stop on it.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var cli CLI
	parser, err := newParser(&cli, kong.Writers(stdout, stderr))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return 2
	}

	if err := run(ctx, &cli.Config, kctx, stdout); err != nil {
		fmt.Fprintln(stderr, dangerStyle.Render("Error: "+describe(err, cli.Server)))
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg *config.Config, kctx *kong.Context, out io.Writer) error {
	dataDir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		return err
	}

	logger, logFile, err := logging.NewFileLogger(logging.FileConfig{Path: cfg.LogPath(), Debug: cfg.Debug})
	if err != nil {
		return err
	}
	defer logFile.Close()

	sess, db, err := session.Open(ctx, dataDir, session.NewKeyringVault(cfg.Server))
	if err != nil {
		return err
	}
	defer db.Close()

	api, err := client.NewWellnessClient(cfg.Server, sess, cfg.TimeZone, logger)
	if err != nil {
		return err
	}
	defer api.Close()

	unsubscribe := sess.Subscribe(func(s session.State) {
		logger.Debug(ctx, "Session changed", "signed_in", s.SignedIn)
	})
	defer unsubscribe()

	logger.Debug(ctx, "Running command", "command", kctx.Command(), "server", cfg.Server)

	return kctx.Run(&Context{
		Ctx:     ctx,
		API:     api,
		Session: sess,
		Logger:  logger,
		Timer:   &timer.Runner{},
		In:      bufio.NewReader(os.Stdin),
		Out:     out,
		Fetch:   netx.Fetch,
	})
}

// describe turns sentinel errors into something a person can act on.
func describe(err error, server string) string {
	switch {
	case errors.Is(err, common.ErrNotSignedIn):
		return "you are not signed in; run `wellness login`"
	case errors.Is(err, client.ErrUnauthorized):
		return "your session has expired; run `wellness login`"
	case errors.Is(err, client.ErrUnavailable):
		return fmt.Sprintf("cannot reach the server at %s", server)
	case errors.Is(err, common.ErrorNotFound):
		return "not found"
	case errors.Is(err, common.ErrorAlreadyExists):
		return "already exists"
	default:
		return err.Error()
	}
}
