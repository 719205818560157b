package domain

// ReadmeLookup is the outcome of resolving one repository's readme.
// Lookups are constructed fresh per call and never cached.
type ReadmeLookup struct {
	// Repository is the owner/name identifier as supplied, trimmed.
	Repository string

	// Found reports whether any candidate location returned content.
	Found bool

	// SourceURL is the exact candidate URL that succeeded.
	SourceURL string

	// Content is the readme body, possibly truncated.
	Content string

	// Truncated is set when Content was cut to the configured bound.
	Truncated bool

	// ErrorDetail describes why the lookup failed: a malformed
	// identifier, or exhaustion of every candidate location.
	ErrorDetail string
}
