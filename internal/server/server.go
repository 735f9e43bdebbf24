// Package server routes HTTP requests to the page handlers and owns the
// listener lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/MatBureau/rocketone/handlers"
	"github.com/MatBureau/rocketone/internal/config"
)

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(cfg *config.Config, h *handlers.Handlers) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         cfg.Address,
			Handler:      Routes(h),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Routes builds the mux and wraps it with the middleware chain.
func Routes(h *handlers.Handlers) http.Handler {
	mux := http.NewServeMux()

	// --- Pages ---
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("GET /info", h.Info)
	mux.HandleFunc("GET /env", h.Env)

	// --- API ---
	mux.HandleFunc("GET /api/info", h.InfoJSON)
	mux.HandleFunc("GET /api/env", h.EnvJSON)

	mux.HandleFunc("GET /health", handlers.HealthHandler)
	mux.Handle("GET /metrics", promhttp.Handler())

	return requestIDMiddleware(metricsMiddleware(recoverMiddleware(logMiddleware(mux))))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("serving", "address", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		slog.Info("shutting down", "timeout", s.shutdownTimeout)
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
