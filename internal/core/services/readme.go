package services

import (
	"context"
	"strings"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
	"github.com/gitscout-dev/gitscout/internal/core/ports/driven"
	"github.com/gitscout-dev/gitscout/internal/core/ports/driving"
	"github.com/gitscout-dev/gitscout/internal/logger"
)

// Ensure ReadmeService implements the interface.
var _ driving.ReadmeService = (*ReadmeService)(nil)

// ReadmeService provides batch readme retrieval.
type ReadmeService struct {
	source driven.ReadmeSource
}

// NewReadmeService creates a new readme service.
func NewReadmeService(source driven.ReadmeSource) *ReadmeService {
	return &ReadmeService{source: source}
}

// Readmes resolves each repository independently and sequentially,
// preserving input order. Blank identifiers are dropped without a
// result entry; one repository's failure never aborts the rest.
func (s *ReadmeService) Readmes(
	ctx context.Context, repositories []string,
) ([]domain.ReadmeLookup, error) {
	if len(repositories) == 0 {
		return nil, domain.ErrNoRepositories
	}

	logger.Section("Readme Resolution")
	logger.Debug("Resolving %d repositories", len(repositories))

	results := make([]domain.ReadmeLookup, 0, len(repositories))
	for _, repository := range repositories {
		if strings.TrimSpace(repository) == "" {
			continue
		}
		lookup := s.source.Resolve(ctx, repository)
		logger.Debug("Repository %s: found=%t truncated=%t",
			lookup.Repository, lookup.Found, lookup.Truncated)
		results = append(results, lookup)
	}

	logger.Info("Resolved %d of %d repositories", len(results), len(repositories))
	return results, nil
}
