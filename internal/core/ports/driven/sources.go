package driven

import (
	"context"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

// TrendingSource retrieves and extracts the trending listing.
type TrendingSource interface {
	// FetchTrending validates the query, fetches the listing page
	// and extracts its entries in document order. Validation
	// failures are returned before any network call.
	FetchTrending(ctx context.Context, query domain.TrendingQuery) ([]domain.TrendingEntry, error)
}

// ReadmeSource resolves one repository's readme by probing candidate
// locations in fixed priority order.
type ReadmeSource interface {
	// Resolve never returns an error: failures are folded into the
	// lookup's ErrorDetail so one repository's outcome cannot abort
	// a batch.
	Resolve(ctx context.Context, repository string) domain.ReadmeLookup
}

// SettingsStore persists gitscout settings.
type SettingsStore interface {
	// Load returns the stored settings, or defaults when no
	// settings were ever saved.
	Load() (domain.Settings, error)

	// Save persists the settings.
	Save(settings domain.Settings) error
}
