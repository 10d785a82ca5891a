// Package server wires the wellness backend together: PostgreSQL with its
// migrations, the export object store, the services and the gRPC endpoint.
// It also owns graceful shutdown and periodic housekeeping.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/tejashvarkr/Project-Wellness-Hub/internal/logging"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/config"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/objectstore"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/repositories/repomanager"
	"github.com/tejashvarkr/Project-Wellness-Hub/internal/server/services"

	gs "github.com/tejashvarkr/Project-Wellness-Hub/internal/server/grpc"
)

// TokenPurgeInterval is how often expired refresh tokens are removed.
const TokenPurgeInterval = time.Hour

type tokenPurger interface {
	PurgeExpiredTokens(ctx context.Context) (int64, error)
}

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	services *services.Services
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	// Exports are optional; the rest of the API works without object storage.
	var store services.ObjectStore
	objects, err := objectstore.New(ctx, c)
	if err != nil {
		logger.Warn(ctx, "Export storage unavailable", "error", err)
	} else {
		store = objects
	}

	svc, err := services.New(db, rm, c, store, nil)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("services init error: %w", err)
	}

	return &App{config: c, logger: logger, db: db, services: svc}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.services, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// purgeTokens deletes expired refresh tokens every interval until ctx is done.
func purgeTokens(ctx context.Context, p tokenPurger, interval time.Duration, logger logging.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.PurgeExpiredTokens(ctx)
			if err != nil {
				logger.Error(ctx, "Refresh token purge failed", "error", err)
				continue
			}
			if n > 0 {
				logger.Info(ctx, "Purged expired refresh tokens", "count", n)
			}
		}
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()
	go func() {
		defer wg.Done()
		purgeTokens(ctx, app.services.Auth, TokenPurgeInterval, app.logger)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
