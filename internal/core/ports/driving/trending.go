package driving

import (
	"context"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

// TrendingService provides trending repository discovery to external actors.
type TrendingService interface {
	// Trending returns the entries of the requested trending
	// listing in presentation order.
	Trending(ctx context.Context, query domain.TrendingQuery) ([]domain.TrendingEntry, error)
}
