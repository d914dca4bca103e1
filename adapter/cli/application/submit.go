package application

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hiredeck/hiredeck/adapter/cli"
	applicationCommands "github.com/hiredeck/hiredeck/internal/applications/application/commands"
)

var submitPosition string

var submitCmd = &cobra.Command{
	Use:   "submit [candidate-id]",
	Short: "Submit an application for a candidate",
	Long: `Submit an application, placing the candidate at the start of the
hiring pipeline.

Examples:
  hiredeck application submit 4f2c... --position "Backend Engineer"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Application management requires a database connection.")
			return nil
		}

		candidateID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid candidate ID: %w", err)
		}

		application, err := app.SubmitApplicationHandler.Handle(cmd.Context(), applicationCommands.SubmitApplicationCommand{
			CandidateID: candidateID,
			Position:    submitPosition,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Application submitted: %s (%s)\n", application.ID(), application.Status())
		return nil
	},
}

func init() {
	submitCmd.Flags().StringVar(&submitPosition, "position", "", "position applied for (required)")
	_ = submitCmd.MarkFlagRequired("position")
}
