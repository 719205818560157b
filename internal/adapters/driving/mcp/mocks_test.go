package mcp

import (
	"context"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

// mockTrendingService is a mock implementation of driving.TrendingService.
type mockTrendingService struct {
	entries []domain.TrendingEntry
	err     error
	queries []domain.TrendingQuery
}

func (m *mockTrendingService) Trending(
	_ context.Context, query domain.TrendingQuery,
) ([]domain.TrendingEntry, error) {
	m.queries = append(m.queries, query)
	return m.entries, m.err
}

// mockReadmeService is a mock implementation of driving.ReadmeService.
type mockReadmeService struct {
	results []domain.ReadmeLookup
	err     error
	batches [][]string
}

func (m *mockReadmeService) Readmes(
	_ context.Context, repositories []string,
) ([]domain.ReadmeLookup, error) {
	m.batches = append(m.batches, repositories)
	return m.results, m.err
}
