package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Apply, roll back and inspect the versioned schema migrations against DATABASE_URL.`,
	}

	cmd.AddCommand(
		newMigrateUpCmd(app),
		newMigrateDownCmd(app),
		newMigrateStatusCmd(app),
		newMigrateVersionCmd(app),
	)

	return cmd
}

func (a *App) migrator() (Migrator, error) {
	if err := a.connect(ConnectOptions{SkipAutoMigrate: true}); err != nil {
		return nil, err
	}
	if a.Migrator == nil {
		return nil, fmt.Errorf("migrations: %w", errNotConfigured)
	}
	return a.Migrator, nil
}

func newMigrateUpCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.migrator()
			if err != nil {
				return err
			}
			if err := m.Up(); err != nil {
				return err
			}
			return printVersion(cmd, m)
		},
	}
}

func newMigrateDownCmd(app *App) *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be positive, got %d", steps)
			}
			m, err := app.migrator()
			if err != nil {
				return err
			}
			if err := m.Down(steps); err != nil {
				return err
			}
			return printVersion(cmd, m)
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")

	return cmd
}

func newMigrateStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.migrator()
			if err != nil {
				return err
			}
			if err := m.Status(); err != nil {
				return err
			}
			return printVersion(cmd, m)
		},
	}
}

func newMigrateVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := app.migrator()
			if err != nil {
				return err
			}
			return printVersion(cmd, m)
		},
	}
}

func printVersion(cmd *cobra.Command, m Migrator) error {
	version, err := m.Version()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Schema version: %d\n", version)
	return nil
}
