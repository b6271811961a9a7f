package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newTokenCmd(app *App) *cobra.Command {
	var username string
	var ttl time.Duration
	var staff bool

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a JWT for the admin API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Tokens == nil {
				return fmt.Errorf("token: %w", errNotConfigured)
			}
			token, err := app.Tokens.GenerateJWT(username, staff, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username carried by the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "Token lifetime")
	cmd.Flags().BoolVar(&staff, "staff", true, "Grant staff access")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}
