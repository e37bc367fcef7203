package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"watchshelf/internal/auth"
	"watchshelf/internal/catalog"
	"watchshelf/internal/config"
	"watchshelf/internal/directory"
	"watchshelf/internal/server"
	"watchshelf/internal/session"
	"watchshelf/internal/storage/sqlite"
	"watchshelf/pkg/logging"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.Setup(cfg.LogLevel)
	logger.Info("starting watchshelf", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		logger.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("storage initialized", "database", cfg.DBPath)

	verifier := auth.NewVerifier(cfg.AuthScheme)
	dir, err := directory.Load(ctx, store, verifier, logger)
	if err != nil {
		logger.Error("failed to load user directory", "error", err)
		os.Exit(1)
	}

	codec := session.NewTokenCodec(cfg.SessionSecret)
	sessions, err := session.NewManager(ctx, dir, store, codec, logger)
	if err != nil {
		logger.Error("failed to initialize session manager", "error", err)
		os.Exit(1)
	}

	movies, err := catalog.NewMovies(ctx, store, logger)
	if err != nil {
		logger.Error("failed to load movies catalog", "error", err)
		os.Exit(1)
	}
	shows, err := catalog.NewShows(ctx, store, logger)
	if err != nil {
		logger.Error("failed to load shows catalog", "error", err)
		os.Exit(1)
	}

	srv := server.New(cfg, server.Deps{
		Sessions: sessions,
		Movies:   movies,
		Shows:    shows,
		Log:      logger,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down HTTP server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("watchshelf stopped")
}
