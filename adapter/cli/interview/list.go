package interview

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hiredeck/hiredeck/adapter/cli"
	interviewDomain "github.com/hiredeck/hiredeck/internal/interviews/domain"
)

var listApplication string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List interviews",
	Long: `List upcoming interviews for the next seven days, or all interviews
of one application with --application.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Scheduling requires a database connection.")
			return nil
		}

		if listApplication != "" {
			applicationID, err := uuid.Parse(listApplication)
			if err != nil {
				return fmt.Errorf("invalid application ID: %w", err)
			}
			interviews, err := app.ApplicationInterviewsHandler.Handle(cmd.Context(), applicationID)
			if err != nil {
				return err
			}
			printInterviews(cmd, interviews)
			return nil
		}

		now := time.Now()
		interviews, err := app.UpcomingInterviewsHandler.Handle(cmd.Context(), now, now.AddDate(0, 0, 7))
		if err != nil {
			return err
		}
		printInterviews(cmd, interviews)
		return nil
	},
}

func printInterviews(cmd *cobra.Command, interviews []*interviewDomain.Interview) {
	if len(interviews) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No interviews.")
		return
	}
	for _, iv := range interviews {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-10s %-10s %s (%dm)\n",
			iv.ID(), iv.InterviewType(), iv.Status(), iv.ScheduledAt().Format("2006-01-02 15:04"), iv.DurationMinutes())
	}
}

func init() {
	listCmd.Flags().StringVar(&listApplication, "application", "", "list interviews of one application")
}
