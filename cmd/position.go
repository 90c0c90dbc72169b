package cmd

import (
	"time"

	"hrkeeper/internal/hr"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Manage job position records",
}

var positionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Open a job position from a JSON file",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		st, _ := openStore(logger)

		file, _ := cmd.Flags().GetString("file")

		var position hr.JobPosition
		if err := loadRecordFile(file, &position); err != nil {
			logger.Fatal("loading position record", zap.Error(err))
		}

		if position.ID == "" {
			position.ID = hr.NewPositionID()
		}
		if position.Status == "" {
			position.Status = hr.JobOpen
		}
		if position.OpenedAt.IsZero() {
			position.OpenedAt = time.Now().UTC().Truncate(time.Second)
		}

		if err := st.PutPosition(&position); err != nil {
			logger.Fatal("storing position", zap.Error(err))
		}
		if err := st.Save(); err != nil {
			logger.Fatal("saving the store", zap.Error(err))
		}

		logger.Info("opened position",
			zap.String("position_id", position.ID),
			zap.String("title", position.Title),
		)
	},
}

var positionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all job positions",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		st, _ := openStore(logger)

		printJSON(st.Positions())
	},
}

var positionStatusCmd = &cobra.Command{
	Use:   "status <position-id> <status>",
	Short: "Change the lifecycle status of a position",
	Args:  cobra.ExactArgs(2),
	Run: func(_ *cobra.Command, args []string) {
		logger := newLogger()
		st, _ := openStore(logger)

		position, err := st.GetPosition(args[0])
		if err != nil {
			logger.Fatal("looking up position", zap.Error(err))
		}

		status := hr.JobStatus(args[1])
		if !status.IsValid() {
			logger.Fatal("unknown job status", zap.String("status", args[1]))
		}

		position.Status = status
		if err := st.Save(); err != nil {
			logger.Fatal("saving the store", zap.Error(err))
		}

		logger.Info("position status changed",
			zap.String("position_id", position.ID),
			zap.String("status", status.String()),
		)
	},
}

func init() {
	rootCmd.AddCommand(positionCmd)
	positionCmd.AddCommand(positionAddCmd)
	positionCmd.AddCommand(positionListCmd)
	positionCmd.AddCommand(positionStatusCmd)

	positionAddCmd.Flags().StringP("file", "f", "", "path to a position JSON file")
	positionAddCmd.MarkFlagRequired("file")
}
