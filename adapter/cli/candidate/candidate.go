// Package candidate contains the candidate CLI commands.
package candidate

import (
	"github.com/spf13/cobra"
)

// Cmd is the candidate command group.
var Cmd = &cobra.Command{
	Use:   "candidate",
	Short: "Manage candidates",
}

func init() {
	Cmd.AddCommand(addCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(getCmd)
}
