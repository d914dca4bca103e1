package application

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiredeck/hiredeck/adapter/cli"
	applicationDomain "github.com/hiredeck/hiredeck/internal/applications/domain"
)

var listStatus string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Application management requires a database connection.")
			return nil
		}

		var status applicationDomain.Status
		if listStatus != "" {
			parsed, err := applicationDomain.ParseStatus(listStatus)
			if err != nil {
				return err
			}
			status = parsed
		}

		applications, err := app.ListApplicationsHandler.Handle(cmd.Context(), status)
		if err != nil {
			return err
		}

		if len(applications) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No applications.")
			return nil
		}
		for _, a := range applications {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s %s\n", a.ID(), a.Status(), a.Position())
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by pipeline stage")
}
