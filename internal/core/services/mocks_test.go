package services

import (
	"context"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

// mockTrendingSource is a mock implementation of driven.TrendingSource.
type mockTrendingSource struct {
	entries []domain.TrendingEntry
	err     error
	queries []domain.TrendingQuery
}

func (m *mockTrendingSource) FetchTrending(
	_ context.Context, query domain.TrendingQuery,
) ([]domain.TrendingEntry, error) {
	m.queries = append(m.queries, query)
	return m.entries, m.err
}

// mockReadmeSource is a mock implementation of driven.ReadmeSource.
// It reports every repository as found and records the call order.
type mockReadmeSource struct {
	resolved []string
}

func (m *mockReadmeSource) Resolve(_ context.Context, repository string) domain.ReadmeLookup {
	m.resolved = append(m.resolved, repository)
	return domain.ReadmeLookup{
		Repository: repository,
		Found:      true,
		Content:    "readme for " + repository,
	}
}
