package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

func TestTrendingService_Trending(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the query through and returns entries in order", func(t *testing.T) {
		source := &mockTrendingSource{entries: []domain.TrendingEntry{
			{Title: "a / b"},
			{Title: "c / d"},
		}}
		svc := NewTrendingService(source)

		query := domain.TrendingQuery{Since: domain.SinceWeekly, Language: "go"}
		entries, err := svc.Trending(ctx, query)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "a / b", entries[0].Title)
		assert.Equal(t, "c / d", entries[1].Title)
		require.Len(t, source.queries, 1)
		assert.Equal(t, query, source.queries[0])
	})

	t.Run("propagates source errors", func(t *testing.T) {
		source := &mockTrendingSource{err: domain.ErrInvalidSince}
		svc := NewTrendingService(source)

		_, err := svc.Trending(ctx, domain.TrendingQuery{Since: "bogus"})

		assert.ErrorIs(t, err, domain.ErrInvalidSince)
	})
}
