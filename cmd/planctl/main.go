package main

import (
	"fmt"
	"os"

	"strategic-planning-backend/internal/admin"
	"strategic-planning-backend/internal/auth"
	"strategic-planning-backend/internal/cli"
	"strategic-planning-backend/internal/config"
	"strategic-planning-backend/internal/database"
	"strategic-planning-backend/internal/database/migrations"
	"strategic-planning-backend/internal/logger"
	"strategic-planning-backend/internal/repository"
	"strategic-planning-backend/internal/seed"
	"strategic-planning-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Setup(cfg.LogLevel)
	// stdout carries the command output
	logrus.SetOutput(os.Stderr)

	app := &cli.App{
		Tokens:  auth.NewTokenService(cfg.JWTSecret),
		SeedDir: cfg.SeedDataDir,
		Connect: func(app *cli.App, opts cli.ConnectOptions) error {
			db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
				LogLevel:           gormlogger.Silent,
				DisableAutoMigrate: opts.SkipAutoMigrate || !cfg.AutoMigrate,
			})
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			sqlDB, err := db.DB()
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}

			runner, err := migrations.NewRunner(sqlDB)
			if err != nil {
				return err
			}
			app.Migrator = runner
			app.Seeder = seed.NewLoader(db)
			app.Admin = service.NewAdminService(admin.DefaultSite(), repository.NewAdminRepository(db), validator.New())
			return nil
		},
	}

	return cli.NewRootCmd(app).Execute()
}
