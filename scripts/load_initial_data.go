package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"strategic-planning-backend/internal/config"
	"strategic-planning-backend/internal/database"
	"strategic-planning-backend/internal/logger"
	"strategic-planning-backend/internal/seed"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup(cfg.LogLevel)

	dir := flag.String("dir", cfg.SeedDataDir, "directory holding the reference data YAML files")
	flag.Parse()

	logrus.WithField("dir", *dir).Info("Loading reference data from YAML files")

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	report, err := seed.NewLoader(db).Load(context.Background(), *dir)
	if err != nil {
		logrus.Fatalf("Failed to load reference data: %v", err)
	}

	logrus.WithField("created", report.Created()).Info("Reference data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:           gormlogger.Silent,
		DisableAutoMigrate: !cfg.AutoMigrate,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.DatabaseURL, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
