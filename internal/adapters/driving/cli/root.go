// Package cli provides the cobra command tree for gitscout.
// Every MCP capability is also exposed as a direct CLI verb, which
// keeps the tool surface manually testable without an MCP client.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gitscout-dev/gitscout/internal/adapters/driven/config/file"
	"github.com/gitscout-dev/gitscout/internal/adapters/driven/fetch"
	"github.com/gitscout-dev/gitscout/internal/connectors/readme"
	"github.com/gitscout-dev/gitscout/internal/connectors/trending"
	"github.com/gitscout-dev/gitscout/internal/core/ports/driving"
	"github.com/gitscout-dev/gitscout/internal/core/services"
	"github.com/gitscout-dev/gitscout/internal/logger"
)

var (
	flagVerbose   bool
	flagConfigDir string
)

// Services wired by initServices before any command runs.
var (
	trendingService driving.TrendingService
	readmeService   driving.ReadmeService
)

var rootCmd = &cobra.Command{
	Use:   "gitscout",
	Short: "Discover trending GitHub repositories and their documentation",
	Long: `gitscout looks up currently trending GitHub repositories and fetches
repository README files, either directly from the command line or as an
MCP server for AI assistants.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "config directory (default ~/.gitscout)")
}

// initServices builds the service graph from settings: one shared HTTP
// fetcher feeding both connectors.
func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	store, err := file.NewSettingsStore(flagConfigDir)
	if err != nil {
		return err
	}
	settings, err := store.Load()
	if err != nil {
		return err
	}

	fetcher := fetch.NewClient(settings.UserAgent)

	trendingService = services.NewTrendingService(trending.New(fetcher, trending.Config{
		BaseURL: settings.TrendingBaseURL,
		Timeout: settings.TrendingTimeout(),
	}))
	readmeService = services.NewReadmeService(readme.New(fetcher, readme.Config{
		BaseURL:          settings.RawContentBaseURL,
		Timeout:          settings.ReadmeTimeout(),
		MaxContentLength: settings.MaxReadmeLength,
	}))

	return nil
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
