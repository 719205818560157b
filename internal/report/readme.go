package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

// Readmes renders a batch of readme lookups in input order. Found and
// failed repositories share a block layout separated by "---" rules, so
// a reader can scan outcomes per repository.
func Readmes(results []domain.ReadmeLookup) string {
	lines := []string{
		"📚 GitHub Repository README Documents",
		"",
	}

	for _, lookup := range results {
		if lookup.Found {
			header := fmt.Sprintf("✅ Successfully retrieved (source: %s)", lookup.SourceURL)
			if lookup.Truncated {
				header += " [truncated]"
			}
			lines = append(lines,
				header,
				fmt.Sprintf("Repository: %s", lookup.Repository),
				"README:",
				lookup.Content,
			)
		} else {
			lines = append(lines,
				fmt.Sprintf("❌ %s", lookup.ErrorDetail),
				fmt.Sprintf("Repository: %s", lookup.Repository),
				"README: no readable README file found",
			)
		}
		lines = append(lines, "---", "")
	}

	lines = append(lines,
		"💡 Suggested next steps:",
		"1. Analyze the detailed information and technical features of each project",
		"2. If a project stands out, study its implementation in depth",
	)

	return strings.Join(lines, "\n")
}

// ReadmesError renders a batch-level validation failure.
func ReadmesError(err error) string {
	if errors.Is(err, domain.ErrNoRepositories) {
		return "❌ Error: repositories parameter cannot be empty; provide at least one owner/repository-name"
	}
	return fmt.Sprintf("❌ Error: %v", err)
}
