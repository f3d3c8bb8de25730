package main

import (
	"log"

	"go.uber.org/zap"

	"github.com/meetpulse-team/meetpulse/internal/infrastructure/database"
	"github.com/meetpulse-team/meetpulse/pkg/config"
)

// Applies pending migrations against the bootstrap (superuser) connection
// and exits. Useful for CI and for provisioning a database before the API
// server is allowed to start.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	if err := database.Migrate(db, cfg.Database.MigrationsDir, logger); err != nil {
		logger.Fatal("failed to apply migrations", zap.Error(err))
	}
	logger.Info("migrations applied")
}
