package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeSquared-Agency/Tally/internal/api"
	"github.com/MikeSquared-Agency/Tally/internal/config"
	"github.com/MikeSquared-Agency/Tally/internal/hermes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logging.Logger(os.Stdout)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("tally stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// Events are optional: an empty URL or an unreachable server disables them.
	var events hermes.Client
	if cfg.Hermes.URL != "" {
		hc, err := hermes.NewNATSClient(ctx, cfg.Hermes.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to hermes, running without events", "error", err)
		} else {
			events = hc
			defer hc.Close()
			logger.Info("connected to hermes", "url", cfg.Hermes.URL)
		}
	}

	servers := []struct {
		name string
		srv  *http.Server
	}{
		{"api", newServer(cfg.Server.Port, api.NewRouter(events, cfg, logger))},
		{"metrics", newServer(cfg.Server.MetricsPort, api.NewMetricsRouter())},
	}

	errCh := make(chan error, len(servers))
	for _, s := range servers {
		go func(name string, srv *http.Server) {
			logger.Info("server starting", "server", name, "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("%s server: %w", name, err)
			}
		}(s.name, s.srv)
	}

	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case runErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, s := range servers {
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown failed", "server", s.name, "error", err)
		}
	}

	logger.Info("shutdown complete")
	return runErr
}

func newServer(port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
