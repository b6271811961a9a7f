package database

import (
	"fmt"
	"time"

	"strategic-planning-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	// DisableAutoMigrate leaves schema management to the goose migrations
	DisableAutoMigrate bool
}

// Initialize opens a Postgres connection and, unless disabled, creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	if !opts.DisableAutoMigrate {
		if err := AutoMigrate(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

// Models lists every persisted model, parents before children
func Models() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Organization{},
		&models.OrganizationUser{},
		&models.StrategicObjective{},
		&models.InitiativeFeed{},
		&models.Program{},
		&models.StrategicInitiative{},
		&models.PerformanceMeasure{},
		&models.MainActivity{},
		&models.DetailActivity{},
		&models.ActivityBudget{},
		&models.Location{},
		&models.LandTransport{},
		&models.AirTransport{},
		&models.PerDiem{},
		&models.Accommodation{},
		&models.ParticipantCost{},
		&models.SessionCost{},
		&models.PrintingCost{},
		&models.SupervisorCost{},
		&models.ProcurementItem{},
		&models.ActivityCostingAssumption{},
		&models.Plan{},
		&models.TeamDeskPlan{},
		&models.TeamDeskPlanReview{},
	}
}

// AutoMigrate creates or updates the schema of all models on db
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
