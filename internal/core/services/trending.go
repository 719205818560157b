package services

import (
	"context"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
	"github.com/gitscout-dev/gitscout/internal/core/ports/driven"
	"github.com/gitscout-dev/gitscout/internal/core/ports/driving"
	"github.com/gitscout-dev/gitscout/internal/logger"
)

// Ensure TrendingService implements the interface.
var _ driving.TrendingService = (*TrendingService)(nil)

// TrendingService provides trending repository discovery.
type TrendingService struct {
	source driven.TrendingSource
}

// NewTrendingService creates a new trending service.
func NewTrendingService(source driven.TrendingSource) *TrendingService {
	return &TrendingService{source: source}
}

// Trending returns the entries of the requested listing in presentation
// order, which is the page's ranking order.
func (s *TrendingService) Trending(
	ctx context.Context, query domain.TrendingQuery,
) ([]domain.TrendingEntry, error) {
	logger.Section("Trending Lookup")
	logger.Debug("Window: %q, language filter: %q", query.Since, query.Language)

	entries, err := s.source.FetchTrending(ctx, query)
	if err != nil {
		logger.Warn("Trending lookup failed: %v", err)
		return nil, err
	}

	logger.Info("Trending lookup returned %d entries", len(entries))
	return entries, nil
}
