package cli

import (
	"fmt"
	"strings"

	"strategic-planning-backend/internal/admin"
	"strategic-planning-backend/internal/cli/formatter"
	"strategic-planning-backend/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Browse the admin panel",
	}

	cmd.AddCommand(
		newAdminEntitiesCmd(app),
		newAdminListCmd(app),
		newAdminGetCmd(app),
	)

	return cmd
}

func (a *App) admin() (service.AdminServiceInterface, error) {
	if err := a.connect(ConnectOptions{}); err != nil {
		return nil, err
	}
	if a.Admin == nil {
		return nil, fmt.Errorf("admin: %w", errNotConfigured)
	}
	return a.Admin, nil
}

func newAdminEntitiesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List the entities registered on the admin panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.admin()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEntities(svc.Entities()))
			return nil
		},
	}
}

func newAdminListCmd(app *App) *cobra.Command {
	var params admin.ListParams
	var filters []string

	cmd := &cobra.Command{
		Use:   "list <entity>",
		Short: "Show one page of an entity's list view",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseFilters(filters)
			if err != nil {
				return err
			}
			params.Filters = parsed

			svc, err := app.admin()
			if err != nil {
				return err
			}
			resp, err := svc.List(args[0], params)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAdminList(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&params.Search, "search", "", "Search terms matched against the entity's search fields")
	cmd.Flags().StringArrayVar(&filters, "filter", nil, "Filter as key=value, repeatable")
	cmd.Flags().StringVar(&params.Order, "order", "", "Column to order by, prefix with - for descending")
	cmd.Flags().IntVar(&params.Page, "page", 1, "Page number")
	cmd.Flags().IntVar(&params.PageSize, "page-size", admin.DefaultPageSize, "Rows per page")

	return cmd
}

func newAdminGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <entity> <id>",
		Short: "Show the detail view of one record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[1], err)
			}
			svc, err := app.admin()
			if err != nil {
				return err
			}
			resp, err := svc.Get(args[0], id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAdminDetail(resp))
			return nil
		},
	}
}

func parseFilters(raw []string) (map[string]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	filters := make(map[string]string, len(raw))
	for _, f := range raw {
		key, value, ok := strings.Cut(f, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q, expected key=value", f)
		}
		filters[key] = value
	}
	return filters, nil
}
