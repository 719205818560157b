package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
	"github.com/gitscout-dev/gitscout/internal/report"
)

var (
	trendingSince    string
	trendingLanguage string
)

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List trending GitHub repositories",
	Long: `Fetches the GitHub trending listing and prints each repository with
its description, language, star counts and star growth.

Failures are printed as report lines, mirroring the MCP tool output.`,
	RunE: runTrending,
}

func init() {
	trendingCmd.Flags().StringVar(&trendingSince, "since", "daily", "time range: daily, weekly or monthly")
	trendingCmd.Flags().StringVarP(&trendingLanguage, "language", "l", "", "programming language filter")
	rootCmd.AddCommand(trendingCmd)
}

func runTrending(cmd *cobra.Command, _ []string) error {
	query := domain.TrendingQuery{
		Since:    domain.Since(trendingSince),
		Language: trendingLanguage,
	}
	query = query.Normalise()

	entries, err := trendingService.Trending(cmd.Context(), query)
	if err != nil {
		cmd.Println(report.TrendingError(err))
		return nil
	}

	cmd.Println(report.Trending(query, entries, time.Now()))
	return nil
}
