package candidate

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hiredeck/hiredeck/adapter/cli"
)

var getCmd = &cobra.Command{
	Use:   "get <candidate-id>",
	Short: "Show one candidate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Candidate management requires a database connection.")
			return nil
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate ID: %w", err)
		}

		candidate, err := app.GetCandidateHandler.Handle(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "ID:     %s\n", candidate.ID())
		fmt.Fprintf(cmd.OutOrStdout(), "Name:   %s\n", candidate.Name())
		fmt.Fprintf(cmd.OutOrStdout(), "Email:  %s\n", candidate.Email())
		if candidate.Phone() != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Phone:  %s\n", candidate.Phone())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added:  %s\n", candidate.CreatedAt().Format("2006-01-02 15:04"))
		return nil
	},
}
