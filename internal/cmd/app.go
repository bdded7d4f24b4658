package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"backoffice/internal/adapter/memory"
	"backoffice/internal/adapter/postgres"
	"backoffice/internal/config"
	"backoffice/internal/config/configs"
	"backoffice/internal/core/port"
	"backoffice/internal/db"
)

// app is the configuration, logger and storage shared by the commands.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	repos  port.Repositories
	close  func()
}

// newApp loads the configuration and opens the storage. Logs go to
// logOut.
func newApp(ctx context.Context, logOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	a := &app{cfg: cfg, logger: cfg.Log.NewLogger(logOut), close: func() {}}

	switch cfg.Storage.Driver {
	case configs.DriverPostgres:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return nil, fmt.Errorf("migrate: %w", err)
			}
			a.logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, fmt.Errorf("database connection: %w", err)
		}
		a.repos = postgres.NewRepositories(pool)
		a.close = pool.Close
	default:
		a.repos = memory.NewRepositories()
	}
	return a, nil
}

// seedIfEmpty writes the sample records when enabled and the store holds
// no data yet. The memory store always starts empty.
func (a *app) seedIfEmpty(ctx context.Context) error {
	if !a.cfg.Storage.Seed {
		return nil
	}
	empty, err := db.IsEmpty(ctx, a.repos)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	if err = db.Seed(ctx, a.repos, time.Now()); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	a.logger.Info("sample records seeded", slog.String("driver", a.cfg.Storage.Driver))
	return nil
}
