package cmd

import (
	"hrkeeper/internal/hr"
	"hrkeeper/internal/search"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search candidates with ANDed filters",
	Run: func(cmd *cobra.Command, _ []string) {
		logger := newLogger()
		st, _ := openStore(logger)

		query := search.Query{}

		if cmd.Flags().Changed("skills") {
			query.Skills, _ = cmd.Flags().GetStringSlice("skills")
		}
		if cmd.Flags().Changed("min-experience") {
			min, _ := cmd.Flags().GetFloat64("min-experience")
			query.MinExperience = &min
		}
		if cmd.Flags().Changed("education") {
			query.Education, _ = cmd.Flags().GetString("education")
		}
		if cmd.Flags().Changed("status") {
			status, _ := cmd.Flags().GetString("status")
			query.Status = hr.CandidateStatus(status)
		}
		if cmd.Flags().Changed("min-salary") {
			min, _ := cmd.Flags().GetFloat64("min-salary")
			query.MinSalary = &min
		}
		if cmd.Flags().Changed("max-salary") {
			max, _ := cmd.Flags().GetFloat64("max-salary")
			query.MaxSalary = &max
		}
		query.SortBy, _ = cmd.Flags().GetString("sort")

		results, err := search.New(st, logger).Search(query)
		if err != nil {
			logger.Fatal("search failed", zap.Error(err))
		}

		logger.Info("search finished", zap.Int("count", len(results)))
		printJSON(results)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringSlice("skills", nil, "skills the candidate must all possess")
	searchCmd.Flags().Float64("min-experience", 0, "minimum total years of experience")
	searchCmd.Flags().String("education", "", "education substring to match")
	searchCmd.Flags().String("status", "", "application status to match exactly")
	searchCmd.Flags().Float64("min-salary", 0, "lower bound the desired range must reach")
	searchCmd.Flags().Float64("max-salary", 0, "upper bound the desired range must stay under")
	searchCmd.Flags().String("sort", "", "sort key: name or experience (default is candidate id)")
}
