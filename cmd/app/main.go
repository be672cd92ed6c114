package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SUDHEER176/Bookit/internal/config"
	"github.com/SUDHEER176/Bookit/internal/db"
	"github.com/SUDHEER176/Bookit/internal/logger"
	"github.com/SUDHEER176/Bookit/internal/notify"
	"github.com/SUDHEER176/Bookit/internal/server"
)

func main() {
	logger.Init()
	defer logger.Sync()
	logger.Info("Starting BookIt application")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to open database handle: %v", err)
	}
	defer database.Close()

	// An unreachable database is not fatal: the server still comes up
	// and requests that need the store fail with a 500.
	if err := database.Ping(); err != nil {
		logger.Warn("Database unreachable, starting anyway", "error", err.Error())
	} else {
		logger.Info("Database connected")
		if err := db.RunMigrations(database, "migrations"); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Migrations completed")
	}

	notifier := notify.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer notifier.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go notifier.Start(ctx)
	logger.Info("Notification worker started")

	srv := server.New(database, cfg, notifier)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
