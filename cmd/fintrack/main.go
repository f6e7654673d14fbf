package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"fintrack/internal/backend"
	"fintrack/internal/config"
	"fintrack/internal/core"
	"fintrack/internal/export"
	apphttp "fintrack/internal/http"
	applog "fintrack/internal/log"
)

func main() {
	// Load .env for local development; ignore errors elsewhere.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := applog.New(applog.Config{
		Level:     cfg.LogLevel,
		Component: applog.ComponentApp,
	})
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	res, err := backend.New(backend.Config{
		Type:      backend.Type(cfg.DataBackend),
		SQLiteDSN: cfg.SQLiteDSN,
	}, logger.WithComponent(applog.ComponentBackend).Logger)
	if err != nil {
		logger.Error("Failed to initialize ledger store", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	if res.Cleanup != nil {
		defer func() {
			if err := res.Cleanup(); err != nil {
				logger.Error("Store cleanup error", "error", err)
			}
		}()
	}

	categories := core.DefaultCategories()
	if cfg.CategoriesFile != "" {
		categories = core.CategoriesFromFile(cfg.CategoriesFile)
	}

	exporter := export.NewService(
		res.Store,
		export.NewDirWriter(cfg.ExportDir),
		export.NewCommandSharer(cfg.ShareCommand, cfg.ShareTimeout),
		cfg.ExportFilename,
	)

	srv := apphttp.NewServer(":"+cfg.Port, res.Store, exporter, categories)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting fintrack server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
