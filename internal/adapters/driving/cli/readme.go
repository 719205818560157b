package cli

import (
	"github.com/spf13/cobra"

	"github.com/gitscout-dev/gitscout/internal/report"
)

var readmeCmd = &cobra.Command{
	Use:   "readme [owner/repository...]",
	Short: "Fetch README files for GitHub repositories",
	Long: `Resolves each repository's README by probing the main and master
branches for the common readme filenames, and prints the content.

Repositories are resolved in the order given; one repository's failure
never aborts the rest.`,
	Args: cobra.ArbitraryArgs,
	RunE: runReadme,
}

func init() {
	rootCmd.AddCommand(readmeCmd)
}

func runReadme(cmd *cobra.Command, args []string) error {
	results, err := readmeService.Readmes(cmd.Context(), args)
	if err != nil {
		cmd.Println(report.ReadmesError(err))
		return nil
	}

	cmd.Println(report.Readmes(results))
	return nil
}
