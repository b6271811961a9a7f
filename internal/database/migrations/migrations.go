// Package migrations applies the versioned SQL schema with goose.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var scripts embed.FS

const scriptsDir = "sql"

// Runner runs the embedded migrations against a single database
type Runner struct {
	db     *sql.DB
	logger *logrus.Entry
}

// NewRunner prepares goose for the embedded postgres scripts
func NewRunner(db *sql.DB) (*Runner, error) {
	goose.SetBaseFS(scripts)
	goose.SetLogger(logrus.StandardLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return &Runner{
		db:     db,
		logger: logrus.WithField("component", "migrations"),
	}, nil
}

// Up applies every pending migration
func (r *Runner) Up() error {
	currentVersion, err := goose.GetDBVersion(r.db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	r.logger.WithField("version", currentVersion).Info("Starting migration")

	if err := goose.Up(r.db, scriptsDir); err != nil {
		r.logger.WithError(err).Error("Migration failed")
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, err := goose.GetDBVersion(r.db)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}
	r.logger.WithFields(logrus.Fields{
		"from_version": currentVersion,
		"to_version":   finalVersion,
	}).Info("Migration completed")
	return nil
}

// Down rolls back the given number of migrations
func (r *Runner) Down(steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	for i := 0; i < steps; i++ {
		if err := goose.Down(r.db, scriptsDir); err != nil {
			r.logger.WithError(err).WithField("step", i+1).Error("Down migration failed")
			return fmt.Errorf("failed to roll back migration %d of %d: %w", i+1, steps, err)
		}
	}
	r.logger.WithField("steps", steps).Info("Down migration completed")
	return nil
}

// Status prints the applied and pending migrations through the goose logger
func (r *Runner) Status() error {
	if err := goose.Status(r.db, scriptsDir); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}

// Version returns the currently applied migration version
func (r *Runner) Version() (int64, error) {
	version, err := goose.GetDBVersion(r.db)
	if err != nil {
		return 0, fmt.Errorf("failed to get current version: %w", err)
	}
	return version, nil
}

// Files lists the embedded migration file names in version order
func Files() ([]string, error) {
	entries, err := scripts.ReadDir(scriptsDir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}
