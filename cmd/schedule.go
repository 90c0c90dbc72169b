package cmd

import (
	"context"
	"fmt"
	"time"

	"hrkeeper/internal/hr"
	"hrkeeper/internal/schedule"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage interview schedules",
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add <candidate-id> <position-id>",
	Short: "Schedule an interview",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		st, config := openStore(logger)

		timeFlag, _ := cmd.Flags().GetString("time")
		when, err := parseScheduleTime(timeFlag)
		if err != nil {
			logger.Fatal("parsing scheduled time", zap.Error(err))
		}

		interviewer, _ := cmd.Flags().GetString("interviewer")
		interviewType, _ := cmd.Flags().GetString("type")
		location, _ := cmd.Flags().GetString("location")
		duration, _ := cmd.Flags().GetInt("duration")

		scheduler := schedule.New(st, newNotifier(config, logger), logger)

		interview, err := scheduler.Schedule(context.Background(), schedule.Request{
			CandidateID: args[0],
			PositionID:  args[1],
			Interviewer: interviewer,
			Time:        when,
			Type:        hr.InterviewType(interviewType),
			Location:    location,
			Duration:    duration,
		})
		if err != nil {
			logger.Fatal("scheduling failed", zap.Error(err))
		}

		printJSON(interview)
	},
}

var scheduleRescheduleCmd = &cobra.Command{
	Use:   "reschedule <interview-id>",
	Short: "Move an interview to a new time",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		st, config := openStore(logger)

		timeFlag, _ := cmd.Flags().GetString("time")
		when, err := parseScheduleTime(timeFlag)
		if err != nil {
			logger.Fatal("parsing scheduled time", zap.Error(err))
		}

		scheduler := schedule.New(st, newNotifier(config, logger), logger)

		interview, err := scheduler.Reschedule(args[0], when)
		if err != nil {
			logger.Fatal("rescheduling failed", zap.Error(err))
		}

		printJSON(interview)
	},
}

var scheduleCancelCmd = &cobra.Command{
	Use:   "cancel <interview-id>",
	Short: "Cancel an interview, keeping its record",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		st, config := openStore(logger)

		scheduler := schedule.New(st, newNotifier(config, logger), logger)

		interview, err := scheduler.Cancel(args[0])
		if err != nil {
			logger.Fatal("cancelling failed", zap.Error(err))
		}

		printJSON(interview)
	},
}

var scheduleCompleteCmd = &cobra.Command{
	Use:   "complete <interview-id>",
	Short: "Mark an interview as completed",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		st, config := openStore(logger)

		scheduler := schedule.New(st, newNotifier(config, logger), logger)

		interview, err := scheduler.Complete(args[0])
		if err != nil {
			logger.Fatal("completing failed", zap.Error(err))
		}

		printJSON(interview)
	},
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all interviews",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		st, _ := openStore(logger)

		printJSON(st.Interviews())
	},
}

// parseScheduleTime accepts RFC3339 or a local "2006-01-02 15:04" form.
func parseScheduleTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse %q", hr.ErrInvalidTime, value)
}

func init() {
	rootCmd.AddCommand(scheduleCmd)
	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleRescheduleCmd)
	scheduleCmd.AddCommand(scheduleCancelCmd)
	scheduleCmd.AddCommand(scheduleCompleteCmd)
	scheduleCmd.AddCommand(scheduleListCmd)

	scheduleAddCmd.Flags().String("interviewer", "", "interviewer name")
	scheduleAddCmd.Flags().String("time", "", "scheduled time (RFC3339 or '2006-01-02 15:04')")
	scheduleAddCmd.Flags().String("type", string(hr.InterviewTechnical), "interview type: PHONE, TECHNICAL, ONSITE or PANEL")
	scheduleAddCmd.Flags().String("location", "", "interview location")
	scheduleAddCmd.Flags().Int("duration", 60, "duration in minutes")
	scheduleAddCmd.MarkFlagRequired("interviewer")
	scheduleAddCmd.MarkFlagRequired("time")

	scheduleRescheduleCmd.Flags().String("time", "", "new scheduled time (RFC3339 or '2006-01-02 15:04')")
	scheduleRescheduleCmd.MarkFlagRequired("time")
}
