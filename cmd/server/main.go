package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spacesedan/sentiquery/config"
	"github.com/spacesedan/sentiquery/internal/app"
	"github.com/spacesedan/sentiquery/internal/logging"
	"github.com/spacesedan/sentiquery/internal/monitoring"
	"github.com/spacesedan/sentiquery/internal/server"
)

func main() {
	env := config.AppEnv()
	config.LoadEnv(env)
	cfg := config.Load()
	logging.InitLogger(cfg.LogLevel)

	pipeline, err := app.New(cfg)
	if err != nil {
		slog.Error("[Main] Invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scorerHealthy := &atomic.Bool{}
	scorerHealthy.Store(true)
	go monitoring.MonitorScorerHealth(ctx, pipeline.Health, scorerHealthy, monitoring.HEALTHCHECK_INTERVAL)

	srv := server.NewServer(server.NewHandler(pipeline.Analyzer, scorerHealthy), cfg.Port, env != "production")

	go func() {
		slog.Info("[Main] Server listening",
			slog.String("addr", srv.Addr),
			slog.String("env", env),
			slog.String("source", cfg.SearchSource),
			slog.String("scorer", cfg.Scorer))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] Server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("[Main] Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Shutdown failed", slog.String("error", err.Error()))
	}
}
