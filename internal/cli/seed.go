package cli

import (
	"fmt"

	"strategic-planning-backend/internal/cli/formatter"

	"github.com/spf13/cobra"
)

func newSeedCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data from YAML files",
		Long: `Load organizations, users, strategic objectives, locations and unit costs.
Records that already exist are kept, so the command can be run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = app.SeedDir
			}
			if err := app.connect(ConnectOptions{}); err != nil {
				return err
			}
			if app.Seeder == nil {
				return fmt.Errorf("seed: %w", errNotConfigured)
			}

			report, err := app.Seeder.Load(cmd.Context(), dir)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSeedReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory holding the YAML files (default SEED_DATA_DIR)")

	return cmd
}
