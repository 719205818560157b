package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

func TestReadmeService_Readmes(t *testing.T) {
	ctx := context.Background()

	t.Run("empty list is rejected without resolving anything", func(t *testing.T) {
		source := &mockReadmeSource{}
		svc := NewReadmeService(source)

		_, err := svc.Readmes(ctx, nil)

		assert.ErrorIs(t, err, domain.ErrNoRepositories)
		assert.Empty(t, source.resolved)
	})

	t.Run("results preserve input order", func(t *testing.T) {
		source := &mockReadmeSource{}
		svc := NewReadmeService(source)

		results, err := svc.Readmes(ctx, []string{"a/b", "c/d", "e/f"})

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "a/b", results[0].Repository)
		assert.Equal(t, "c/d", results[1].Repository)
		assert.Equal(t, "e/f", results[2].Repository)
		assert.Equal(t, []string{"a/b", "c/d", "e/f"}, source.resolved)
	})

	t.Run("blank identifiers are skipped without a result entry", func(t *testing.T) {
		source := &mockReadmeSource{}
		svc := NewReadmeService(source)

		results, err := svc.Readmes(ctx, []string{"a/b", "   ", "c/d"})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, []string{"a/b", "c/d"}, source.resolved)
	})
}
