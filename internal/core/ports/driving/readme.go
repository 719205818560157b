package driving

import (
	"context"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

// ReadmeService provides readme retrieval to external actors.
type ReadmeService interface {
	// Readmes resolves each repository independently and
	// sequentially, preserving input order. Blank identifiers are
	// skipped without a result entry. An empty list is rejected
	// with domain.ErrNoRepositories.
	Readmes(ctx context.Context, repositories []string) ([]domain.ReadmeLookup, error)
}
