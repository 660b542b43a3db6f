// Package main implements the entry point for the EmpowerHub API server,
// which tracks a user's progress across education, health, and nutrition
// and serves scored, aggregated views of it.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/empowerhub/empowerhub-api/internal/config"
	"github.com/empowerhub/empowerhub-api/internal/platform/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate", false, "run database migrations and exit")
	flag.Parse()

	cfg, log0, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	ctx := context.Background()

	db, err := setupAppDatabase(cfg, log0)
	if err != nil {
		log0.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := runMigrations(db, log0); err != nil {
		log0.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	if *migrateOnly {
		log0.Info("migrations complete")
		return
	}

	app, err := newApplication(ctx, cfg, log0, db)
	if err != nil {
		log0.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		log0.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and sets up logging.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log0, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log0.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)
	log0.Debug("Auth configuration", "jwt_secret_present", cfg.Auth.JWTSecret != "")
	log0.Debug("LLM configuration", "gemini_key_present", cfg.LLM.GeminiAPIKey != "")

	return cfg, log0, nil
}
