package readme

import (
	"time"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

// TruncationMarker is appended to content cut at the length bound.
const TruncationMarker = "\n\n... [content truncated] ..."

// Config holds the resolver configuration.
type Config struct {
	// BaseURL is the raw-content host.
	BaseURL string

	// Timeout bounds each candidate fetch.
	Timeout time.Duration

	// MaxContentLength is the truncation bound in characters.
	MaxContentLength int

	// Branches are tried in order as the outer loop of the cascade.
	Branches []string

	// Filenames are tried in order as the inner loop, so every
	// filename is probed on one branch before the next branch.
	Filenames []string
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:          domain.DefaultRawContentBaseURL,
		Timeout:          domain.DefaultReadmeTimeoutSeconds * time.Second,
		MaxContentLength: domain.DefaultMaxReadmeLength,
		Branches:         []string{"main", "master"},
		Filenames:        []string{"README.md", "readme.md", "Readme.md", "README.txt", "readme.txt"},
	}
}

// normalise fills unset fields from defaults.
func (c Config) normalise() Config {
	defaults := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = defaults.BaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaults.Timeout
	}
	if c.MaxContentLength <= 0 {
		c.MaxContentLength = defaults.MaxContentLength
	}
	if len(c.Branches) == 0 {
		c.Branches = defaults.Branches
	}
	if len(c.Filenames) == 0 {
		c.Filenames = defaults.Filenames
	}
	return c
}
