package candidate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiredeck/hiredeck/adapter/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidates",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Candidate management requires a database connection.")
			return nil
		}

		candidates, err := app.ListCandidatesHandler.Handle(cmd.Context())
		if err != nil {
			return err
		}

		if len(candidates) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No candidates.")
			return nil
		}
		for _, c := range candidates {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s %s\n", c.ID(), c.Name(), c.Email())
		}
		return nil
	},
}
