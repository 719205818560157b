package mcp

import (
	"github.com/gitscout-dev/gitscout/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Trending provides trending repository discovery.
	Trending driving.TrendingService

	// Readme provides readme retrieval.
	Readme driving.ReadmeService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Trending == nil {
		return ErrMissingTrendingService
	}
	if p.Readme == nil {
		return ErrMissingReadmeService
	}
	return nil
}
