package cmd

import (
	"hrkeeper/internal/match"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match <position-id>",
	Short: "Rank candidates against a position",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger()
		st, _ := openStore(logger)

		top, _ := cmd.Flags().GetInt("top")

		matches, err := match.TopMatches(st, args[0], top)
		if err != nil {
			logger.Fatal("matching failed", zap.String("position_id", args[0]), zap.Error(err))
		}

		logger.Info("matching finished",
			zap.String("position_id", args[0]),
			zap.Int("count", len(matches)),
		)
		printJSON(matches)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().Int("top", 5, "number of matches to return")
}
