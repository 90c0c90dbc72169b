package cmd

import (
	"time"

	"hrkeeper/internal/hr"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var candidateCmd = &cobra.Command{
	Use:   "candidate",
	Short: "Manage candidate records",
}

var candidateAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a candidate from a JSON file",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		st, _ := openStore(logger)

		file, _ := cmd.Flags().GetString("file")

		var candidate hr.Candidate
		if err := loadRecordFile(file, &candidate); err != nil {
			logger.Fatal("loading candidate record", zap.Error(err))
		}

		if candidate.ID == "" {
			candidate.ID = hr.NewCandidateID()
		}
		if candidate.Status == "" {
			candidate.Status = hr.CandidateApplied
		}
		if candidate.AppliedAt.IsZero() {
			candidate.AppliedAt = time.Now().UTC().Truncate(time.Second)
		}

		if err := st.PutCandidate(&candidate); err != nil {
			logger.Fatal("storing candidate", zap.Error(err))
		}
		if err := st.Save(); err != nil {
			logger.Fatal("saving the store", zap.Error(err))
		}

		logger.Info("added candidate",
			zap.String("candidate_id", candidate.ID),
			zap.String("name", candidate.Name),
		)
	},
}

var candidateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all candidates",
	Run: func(_ *cobra.Command, _ []string) {
		logger := newLogger()
		st, _ := openStore(logger)

		printJSON(st.Candidates())
	},
}

var candidateDeleteCmd = &cobra.Command{
	Use:   "delete <candidate-id>",
	Short: "Delete a candidate record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		st, _ := openStore(logger)

		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			prompt := promptui.Select{
				Label: "Delete candidate " + args[0] + "?",
				Items: []string{"Yes", "No"},
			}
			_, answer, err := prompt.Run()
			if err != nil || answer != "Yes" {
				logger.Info("delete aborted", zap.String("candidate_id", args[0]))
				return
			}
		}

		if err := st.DeleteCandidate(args[0]); err != nil {
			logger.Fatal("deleting candidate", zap.Error(err))
		}
		if err := st.Save(); err != nil {
			logger.Fatal("saving the store", zap.Error(err))
		}

		logger.Info("deleted candidate", zap.String("candidate_id", args[0]))
	},
}

func init() {
	rootCmd.AddCommand(candidateCmd)
	candidateCmd.AddCommand(candidateAddCmd)
	candidateCmd.AddCommand(candidateListCmd)
	candidateCmd.AddCommand(candidateDeleteCmd)

	candidateAddCmd.Flags().StringP("file", "f", "", "path to a candidate JSON file")
	candidateAddCmd.MarkFlagRequired("file")
	candidateDeleteCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
}
