// Package interview contains the interview scheduling CLI commands.
package interview

import (
	"github.com/spf13/cobra"
)

// Cmd is the interview command group.
var Cmd = &cobra.Command{
	Use:   "interview",
	Short: "Schedule and manage interviews",
}

func init() {
	Cmd.AddCommand(slotsCmd)
	Cmd.AddCommand(scheduleCmd)
	Cmd.AddCommand(cancelCmd)
	Cmd.AddCommand(listCmd)
}
