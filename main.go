package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/sudx-xyz/mission-api/cliparse"
	"github.com/sudx-xyz/mission-api/db"
	"github.com/sudx-xyz/mission-api/router"
)

func init() {
	// for local development
	//nolint:errcheck
	godotenv.Load(".env.development.local")

	//nolint:errcheck
	godotenv.Load(".env")
}

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	provider := db.NewProvider(cfg)
	defer provider.Close()

	// Create schema (tables). Only a configuration error stops startup;
	// anything else will surface again on the first request.
	if err := provider.EnsureSchema(context.Background()); err != nil {
		var cfgErr *db.ConfigurationError
		if errors.As(err, &cfgErr) {
			slog.Error("database configuration invalid", "error", err)
			os.Exit(1)
		}
		slog.Error("Error during initial DB setup", "error", err)
	} else {
		slog.Info("Database initialized and 'submissions' table ensured", "driver", provider.Driver())
	}

	server := &http.Server{
		Handler:           router.NewRouter(provider, cfg),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Listening", "port", cfg.Port, "origins", cfg.Origins)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server closed", "error", err)
		provider.Close()
		os.Exit(1)
	}
	slog.Info("Server closed")
}
