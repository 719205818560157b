package trending

import (
	"time"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
)

// Config holds the connector configuration.
type Config struct {
	// BaseURL is the site root. The listing path and relative
	// project links are resolved against it.
	BaseURL string

	// Timeout bounds the listing page fetch.
	Timeout time.Duration
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL: domain.DefaultTrendingBaseURL,
		Timeout: domain.DefaultTrendingTimeoutSeconds * time.Second,
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
	return c
}
