package application

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hiredeck/hiredeck/adapter/cli"
)

var advanceCmd = &cobra.Command{
	Use:   "advance [application-id]",
	Short: "Advance an application to the next pipeline stage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Application management requires a database connection.")
			return nil
		}

		applicationID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid application ID: %w", err)
		}

		application, err := app.AdvanceApplicationHandler.Handle(cmd.Context(), applicationID)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Application is now at stage: %s\n", application.Status())
		return nil
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject [application-id]",
	Short: "Reject an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Application management requires a database connection.")
			return nil
		}

		applicationID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid application ID: %w", err)
		}

		if _, err := app.RejectApplicationHandler.Handle(cmd.Context(), applicationID); err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Application rejected.")
		return nil
	},
}
