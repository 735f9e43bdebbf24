package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MatBureau/rocketone/handlers"
	"github.com/MatBureau/rocketone/internal/config"
	"github.com/MatBureau/rocketone/internal/logging"
	"github.com/MatBureau/rocketone/internal/page"
	"github.com/MatBureau/rocketone/internal/server"
	"github.com/MatBureau/rocketone/internal/system"
)

func main() {
	cfg := config.Load()
	logging.SetDefault("rocketone", cfg.LogFormat, cfg.LogLevel)

	renderer, err := page.NewRenderer()
	if err != nil {
		slog.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	h := handlers.New(
		system.NewCollector(system.GopsutilFacts{}),
		system.EnvironmentCollector{Environ: os.Environ},
		renderer,
	)
	srv := server.New(cfg, h)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		stop()
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped gracefully")
}
