package interview

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hiredeck/hiredeck/adapter/cli"
)

var slotsDuration int

var slotsCmd = &cobra.Command{
	Use:   "slots [date]",
	Short: "Show the day's slot grid with busy/free classification",
	Long: `Show every candidate start time on the date, marked busy or free
against the connected calendar, and the pre-selected first free slot.

Examples:
  hiredeck interview slots 2026-03-02 --duration 60`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Scheduling requires a database connection.")
			return nil
		}

		date, err := time.ParseInLocation("2006-01-02", args[0], app.SlotGrid.Location())
		if err != nil {
			return fmt.Errorf("invalid date (expected YYYY-MM-DD): %w", err)
		}

		plan, err := app.Planner.PlanDay(cmd.Context(), date, time.Duration(slotsDuration)*time.Minute)
		if err != nil {
			return err
		}

		if !plan.Connected {
			fmt.Fprintln(cmd.OutOrStdout(), "Calendar not connected; all slots shown as free.")
		}
		for _, s := range plan.Slots {
			marker := " "
			if s.Busy {
				marker = "x"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s\n", marker, s.Slot)
		}
		if plan.FirstAvailable != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "First available: %s\n", *plan.FirstAvailable)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "No free slots on this date.")
		}
		return nil
	},
}

func init() {
	slotsCmd.Flags().IntVar(&slotsDuration, "duration", 30, "interview duration in minutes")
}
