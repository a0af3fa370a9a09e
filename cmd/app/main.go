package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/hypernum/internal/bootstrap"
	"github.com/osse101/hypernum/internal/config"
	"github.com/osse101/hypernum/internal/handler"
	"github.com/osse101/hypernum/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	handler.Version = cfg.Version

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	formatter, err := bootstrap.InitializeFormatter(cfg)
	if err != nil {
		slog.Error("Startup failed", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Formatter:      formatter,
		Defaults:       bootstrap.DefaultFormatOptions(cfg),
		Tiers:          bootstrap.InitializeTiers(cfg),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, srv)
}
