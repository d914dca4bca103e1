package interview

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/hiredeck/hiredeck/adapter/cli"
	interviewCommands "github.com/hiredeck/hiredeck/internal/interviews/application/commands"
	interviewDomain "github.com/hiredeck/hiredeck/internal/interviews/domain"
)

var (
	scheduleDate     string
	scheduleTime     string
	scheduleDuration int
	scheduleType     string
	scheduleVideo    bool
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule [application-id]",
	Short: "Schedule an interview",
	Long: `Schedule an interview for an application. When no time is given, the
first free slot on the date is selected automatically.

Meeting link creation and notifications are best-effort: the interview is
scheduled even when they fail.

Examples:
  hiredeck interview schedule 4f2c... --date 2026-03-02 --type technical --duration 60
  hiredeck interview schedule 4f2c... --date 2026-03-02 --time 10:30 --video`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Scheduling requires a database connection.")
			return nil
		}

		applicationID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid application ID: %w", err)
		}

		interviewType, err := interviewDomain.ParseInterviewType(scheduleType)
		if err != nil {
			return err
		}

		date, err := time.ParseInLocation("2006-01-02", scheduleDate, app.SlotGrid.Location())
		if err != nil {
			return fmt.Errorf("invalid date (expected YYYY-MM-DD): %w", err)
		}

		duration := time.Duration(scheduleDuration) * time.Minute

		slot := scheduleTime
		if slot == "" {
			first, ok, err := app.Planner.FirstAvailable(cmd.Context(), date, duration)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no free slots on %s; pick a time explicitly with --time", scheduleDate)
			}
			slot = first
		}

		scheduledAt, err := app.SlotGrid.SlotTime(date, slot)
		if err != nil {
			return err
		}

		result, err := app.ScheduleInterviewHandler.Handle(cmd.Context(), interviewCommands.ScheduleInterviewCommand{
			ApplicationID:   applicationID,
			ScheduledAt:     scheduledAt,
			DurationMinutes: scheduleDuration,
			InterviewType:   interviewType,
			WantVideoLink:   scheduleVideo,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Interview scheduled: %s at %s\n",
			result.Interview.ID(), result.Interview.ScheduledAt().Format(time.RFC1123))
		if url := result.Interview.MeetingURL(); url != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Meeting link: %s\n", *url)
		}
		if len(result.Degraded) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Note: some steps were skipped (%s); the interview itself is scheduled.\n",
				strings.Join(result.Degraded, ", "))
		}
		return nil
	},
}

func init() {
	scheduleCmd.Flags().StringVar(&scheduleDate, "date", "", "interview date YYYY-MM-DD (required)")
	scheduleCmd.Flags().StringVar(&scheduleTime, "time", "", "slot start HH:MM; defaults to the first free slot")
	scheduleCmd.Flags().IntVar(&scheduleDuration, "duration", 30, "duration in minutes")
	scheduleCmd.Flags().StringVar(&scheduleType, "type", "hr_screen", "interview type: hr_screen, technical, behavioral, final")
	scheduleCmd.Flags().BoolVar(&scheduleVideo, "video", false, "request a video meeting link")
	_ = scheduleCmd.MarkFlagRequired("date")
}
