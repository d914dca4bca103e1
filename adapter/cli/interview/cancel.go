package interview

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hiredeck/hiredeck/adapter/cli"
	interviewCommands "github.com/hiredeck/hiredeck/internal/interviews/application/commands"
)

var cancelReason string

var cancelCmd = &cobra.Command{
	Use:   "cancel [interview-id]",
	Short: "Cancel a scheduled interview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Scheduling requires a database connection.")
			return nil
		}

		interviewID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid interview ID: %w", err)
		}

		if _, err := app.CancelInterviewHandler.Handle(cmd.Context(), interviewCommands.CancelInterviewCommand{
			InterviewID: interviewID,
			Reason:      cancelReason,
		}); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Interview cancelled.")
		return nil
	},
}

func init() {
	cancelCmd.Flags().StringVar(&cancelReason, "reason", "", "cancellation reason")
}
