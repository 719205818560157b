package domain

import "time"

// Default endpoint and bound values.
const (
	DefaultTrendingBaseURL   = "https://github.com"
	DefaultRawContentBaseURL = "https://raw.githubusercontent.com"
	DefaultUserAgent         = "gitscout"

	DefaultTrendingTimeoutSeconds = 30
	DefaultReadmeTimeoutSeconds   = 20

	// DefaultMaxReadmeLength bounds readme content returned to the
	// caller, counted in characters. Bodies beyond this are
	// truncated, not rejected.
	DefaultMaxReadmeLength = 50000
)

// Settings holds the tunable endpoints, timeouts and bounds for both
// lookups. Zero values are filled from defaults by Normalise.
type Settings struct {
	// TrendingBaseURL is the site root the trending listing and
	// relative project links are resolved against.
	TrendingBaseURL string

	// RawContentBaseURL is the raw-content host readme candidates
	// are probed on.
	RawContentBaseURL string

	// UserAgent is sent on every outbound request.
	UserAgent string

	TrendingTimeoutSeconds int
	ReadmeTimeoutSeconds   int

	// MaxReadmeLength is the truncation bound in characters.
	MaxReadmeLength int
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() Settings {
	return Settings{
		TrendingBaseURL:        DefaultTrendingBaseURL,
		RawContentBaseURL:      DefaultRawContentBaseURL,
		UserAgent:              DefaultUserAgent,
		TrendingTimeoutSeconds: DefaultTrendingTimeoutSeconds,
		ReadmeTimeoutSeconds:   DefaultReadmeTimeoutSeconds,
		MaxReadmeLength:        DefaultMaxReadmeLength,
	}
}

// Normalise fills unset fields from defaults.
func (s Settings) Normalise() Settings {
	defaults := DefaultSettings()
	if s.TrendingBaseURL == "" {
		s.TrendingBaseURL = defaults.TrendingBaseURL
	}
	if s.RawContentBaseURL == "" {
		s.RawContentBaseURL = defaults.RawContentBaseURL
	}
	if s.UserAgent == "" {
		s.UserAgent = defaults.UserAgent
	}
	if s.TrendingTimeoutSeconds <= 0 {
		s.TrendingTimeoutSeconds = defaults.TrendingTimeoutSeconds
	}
	if s.ReadmeTimeoutSeconds <= 0 {
		s.ReadmeTimeoutSeconds = defaults.ReadmeTimeoutSeconds
	}
	if s.MaxReadmeLength <= 0 {
		s.MaxReadmeLength = defaults.MaxReadmeLength
	}
	return s
}

// TrendingTimeout returns the listing page fetch bound.
func (s Settings) TrendingTimeout() time.Duration {
	return time.Duration(s.TrendingTimeoutSeconds) * time.Second
}

// ReadmeTimeout returns the per-candidate fetch bound.
func (s Settings) ReadmeTimeout() time.Duration {
	return time.Duration(s.ReadmeTimeoutSeconds) * time.Second
}
