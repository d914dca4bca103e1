package candidate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hiredeck/hiredeck/adapter/cli"
	candidateCommands "github.com/hiredeck/hiredeck/internal/candidates/application/commands"
)

var (
	addEmail string
	addPhone string
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Register a candidate",
	Long: `Register a candidate with their contact details.

Examples:
  hiredeck candidate add "Ada Lovelace" --email ada@example.com`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Candidate management requires a database connection.")
			return nil
		}

		candidate, err := app.AddCandidateHandler.Handle(cmd.Context(), candidateCommands.AddCandidateCommand{
			Name:  args[0],
			Email: addEmail,
			Phone: addPhone,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Candidate added: %s (%s)\n", candidate.Name(), candidate.ID())
		return nil
	},
}

func init() {
	addCmd.Flags().StringVar(&addEmail, "email", "", "candidate email (required)")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "candidate phone")
	_ = addCmd.MarkFlagRequired("email")
}
