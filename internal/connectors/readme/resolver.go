package readme

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
	"github.com/gitscout-dev/gitscout/internal/core/ports/driven"
	"github.com/gitscout-dev/gitscout/internal/logger"
)

// Ensure Resolver implements the interface.
var _ driven.ReadmeSource = (*Resolver)(nil)

// Resolver probes candidate readme locations for one repository at a
// time.
type Resolver struct {
	fetcher driven.Fetcher
	cfg     Config
}

// New creates a readme resolver. Zero config fields fall back to
// defaults.
func New(fetcher driven.Fetcher, cfg Config) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		cfg:     cfg.normalise(),
	}
}

// Resolve tries every candidate location in priority order and returns
// the first success. Failures are folded into the lookup rather than
// returned, so a batch caller never has to abort; a malformed
// identifier is detected before any network call.
func (r *Resolver) Resolve(ctx context.Context, repository string) domain.ReadmeLookup {
	repository = strings.TrimSpace(repository)
	lookup := domain.ReadmeLookup{Repository: repository}

	if !strings.Contains(repository, "/") {
		lookup.ErrorDetail = fmt.Sprintf(
			"invalid repository name format: %s (expected owner/repository-name)", repository)
		return lookup
	}

	for _, branch := range r.cfg.Branches {
		for _, filename := range r.cfg.Filenames {
			candidateURL := r.candidateURL(repository, branch, filename)
			status, body, err := r.fetcher.Fetch(ctx, candidateURL, r.cfg.Timeout)
			if err != nil {
				// A candidate's transport failure is a miss,
				// not an error: the cascade moves on.
				logger.Debug("Candidate %s: %v", candidateURL, err)
				continue
			}
			if status != http.StatusOK {
				continue
			}

			lookup.Found = true
			lookup.SourceURL = candidateURL
			lookup.Content, lookup.Truncated = r.bound(string(body))
			return lookup
		}
	}

	lookup.ErrorDetail = fmt.Sprintf(
		"no readme found; tried branches: %s; tried files: %s",
		strings.Join(r.cfg.Branches, ", "), strings.Join(r.cfg.Filenames, ", "))
	return lookup
}

// candidateURL builds the raw-content URL for one (branch, filename)
// pair.
func (r *Resolver) candidateURL(repository, branch, filename string) string {
	return fmt.Sprintf("%s/%s/refs/heads/%s/%s", r.cfg.BaseURL, repository, branch, filename)
}

// bound cuts content at the configured length and appends the
// truncation marker. The bound counts characters, not bytes, so a
// multibyte body is never cut mid-rune and content exactly at the
// bound passes unmodified.
func (r *Resolver) bound(content string) (string, bool) {
	if utf8.RuneCountInString(content) <= r.cfg.MaxContentLength {
		return content, false
	}
	runes := []rune(content)
	return string(runes[:r.cfg.MaxContentLength]) + TruncationMarker, true
}
