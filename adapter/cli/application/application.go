// Package application contains the application pipeline CLI commands.
package application

import (
	"github.com/spf13/cobra"
)

// Cmd is the application command group.
var Cmd = &cobra.Command{
	Use:   "application",
	Short: "Manage applications in the hiring pipeline",
}

func init() {
	Cmd.AddCommand(submitCmd)
	Cmd.AddCommand(advanceCmd)
	Cmd.AddCommand(rejectCmd)
	Cmd.AddCommand(listCmd)
}
