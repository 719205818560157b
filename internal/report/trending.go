package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

// Trending renders a trending lookup result. Entries appear in the
// order given, which is the listing's ranking order.
func Trending(query domain.TrendingQuery, entries []domain.TrendingEntry, now time.Time) string {
	lines := []string{
		"🌟 GitHub Trending Repositories",
		fmt.Sprintf("📅 Retrieved on: %s %s", now.Format("2006-01-02"), now.Weekday()),
		fmt.Sprintf("⏰ Time Range: %s", query.Since.Display()),
	}
	if query.Language != "" {
		lines = append(lines, fmt.Sprintf("💻 Language: %s", query.Language))
	}
	lines = append(lines,
		fmt.Sprintf("📊 Found %d trending projects", len(entries)),
		"",
	)

	for i, entry := range entries {
		lines = append(lines,
			fmt.Sprintf("%d. %s", i+1, entry.Title),
			fmt.Sprintf("   🔗 %s", entry.ProjectURL),
			fmt.Sprintf("   📝 %s", entry.Description),
			fmt.Sprintf("   💻 Language: %s | ⭐ Total Stars: %s | 🍴 Forks: %s | 🔥 %s: +%s",
				entry.Language, entry.TotalStars, entry.TotalForks,
				query.Since.Display(), entry.PeriodStars),
		)
	}

	lines = append(lines,
		"",
		"💡 Suggested next steps:",
		"1. Analyze GitHub trending project trends",
		"2. If interested in specific projects, use the get_repository_readme tool to get detailed documentation",
	)

	return strings.Join(lines, "\n")
}

// TrendingError renders a failed trending lookup. Each error class gets
// distinct wording so an empty listing is never mistaken for a network
// failure.
func TrendingError(err error) string {
	if errors.Is(err, domain.ErrInvalidSince) {
		return "❌ Error: since parameter must be one of: daily, weekly, monthly"
	}

	var noResults *domain.NoResultsError
	if errors.As(err, &noResults) {
		return strings.Join([]string{
			"❌ No trending projects found: the trending period may be empty or the page structure may have changed",
			fmt.Sprintf("Requested URL: %s", noResults.URL),
		}, "\n")
	}

	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		return strings.Join([]string{
			fmt.Sprintf("❌ Network request error: %v", err),
			fmt.Sprintf("Requested URL: %s", fetchErr.URL),
			"Check the network connection or retry later",
		}, "\n")
	}

	return fmt.Sprintf("❌ Error: %v", err)
}
