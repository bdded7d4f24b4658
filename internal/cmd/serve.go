package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"backoffice/internal/adapter/catalogapi"
	httpadapter "backoffice/internal/adapter/http"
	"backoffice/internal/adapter/kafka"
	"backoffice/internal/adapter/redis"
	"backoffice/internal/adapter/session"
	"backoffice/internal/adapter/usecase"
)

// eventBuffer is the number of status events queued before Publish blocks.
const eventBuffer = 256

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the console HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// runServe wires storage, cache, events, sessions and the external catalog
// into the use case and serves it until SIGINT or SIGTERM.
func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx, os.Stdout)
	if err != nil {
		return err
	}
	defer a.close()
	cfg, logger := a.cfg, a.logger

	if err = a.seedIfEmpty(ctx); err != nil {
		return err
	}

	deps := usecase.Deps{Repos: a.repos, Logger: logger}

	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(cfg.Redis)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, stats are computed on every request", slog.Any("error", err))
		}
		deps.Cache = redis.NewStatsCache(rdb, cfg.Redis.TTL)
	}

	if cfg.Kafka.Enabled() {
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.ClientID, eventBuffer, logger)
		producer.Start(ctx)
		defer producer.Close()
		deps.Events = producer
	}

	if cfg.Catalog.Enabled() {
		deps.Catalog = catalogapi.New(cfg.Catalog.BaseURL, &http.Client{Timeout: cfg.Catalog.Timeout})
	}

	sessions, err := session.New(cfg.Session)
	if err != nil {
		return err
	}

	svc := usecase.NewConsoleUseCase(deps)
	// The cache may hold stats computed before seeding or by an earlier
	// process.
	svc.InvalidateStats(ctx)
	handler := httpadapter.NewHandler(svc, sessions, logger, cfg.HTTP.RequestTimeout)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("env", cfg.Env),
			slog.String("storage", cfg.Storage.Driver),
			slog.String("session", cfg.Session.Mode))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}
