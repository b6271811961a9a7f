// Package cli implements planctl, the operator command line for the strategic planning backend.
package cli

import (
	"context"
	"errors"
	"time"

	"strategic-planning-backend/internal/seed"
	"strategic-planning-backend/internal/service"

	"github.com/spf13/cobra"
)

// Migrator applies the versioned schema
type Migrator interface {
	Up() error
	Down(steps int) error
	Status() error
	Version() (int64, error)
}

// Seeder loads reference data from a directory of YAML files
type Seeder interface {
	Load(ctx context.Context, dir string) (*seed.Report, error)
}

// TokenIssuer mints admin API tokens
type TokenIssuer interface {
	GenerateJWT(username string, staff bool, ttl time.Duration) (string, error)
}

// ConnectOptions tell Connect how the command uses the database
type ConnectOptions struct {
	// SkipAutoMigrate leaves the schema untouched for goose
	SkipAutoMigrate bool
}

// App holds references to the services planctl commands run against.
type App struct {
	Admin    service.AdminServiceInterface
	Seeder   Seeder
	Migrator Migrator
	Tokens   TokenIssuer
	SeedDir  string

	// Connect opens the database and fills Admin, Seeder and Migrator. Commands that
	// need the database call it first; it is nil when those fields are set up front.
	Connect func(app *App, opts ConnectOptions) error
}

var errNotConfigured = errors.New("not configured")

func (a *App) connect(opts ConnectOptions) error {
	if a.Connect == nil {
		return nil
	}
	connect := a.Connect
	a.Connect = nil
	return connect(a, opts)
}

// NewRootCmd creates the top-level "planctl" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "planctl",
		Short:         "Operator tools for the strategic planning backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newMigrateCmd(app),
		newSeedCmd(app),
		newAdminCmd(app),
		newTokenCmd(app),
	)

	return root
}
