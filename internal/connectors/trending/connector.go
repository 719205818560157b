package trending

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"

	"github.com/gitscout-dev/gitscout/internal/core/domain"
	"github.com/gitscout-dev/gitscout/internal/core/ports/driven"
	"github.com/gitscout-dev/gitscout/internal/logger"
)

// fragmentSelector matches one repository fragment on the listing page.
const fragmentSelector = "article.Box-row"

// Ensure Connector implements the interface.
var _ driven.TrendingSource = (*Connector)(nil)

// Connector fetches and extracts the trending listing.
type Connector struct {
	fetcher driven.Fetcher
	cfg     Config
}

// New creates a trending connector. Zero config fields fall back to
// defaults.
func New(fetcher driven.Fetcher, cfg Config) *Connector {
	return &Connector{
		fetcher: fetcher,
		cfg:     cfg.normalise(),
	}
}

// FetchTrending retrieves the listing for the query and extracts its
// entries in document order.
func (c *Connector) FetchTrending(
	ctx context.Context, query domain.TrendingQuery,
) ([]domain.TrendingEntry, error) {
	query = query.Normalise()
	if err := query.Validate(); err != nil {
		return nil, err
	}

	listingURL := c.listingURL(query)
	logger.Debug("Fetching trending listing: %s", listingURL)

	status, body, err := c.fetcher.Fetch(ctx, listingURL, c.cfg.Timeout)
	if err != nil {
		return nil, &domain.FetchError{URL: listingURL, Err: err}
	}
	if status < 200 || status > 299 {
		return nil, &domain.FetchError{StatusCode: status, URL: listingURL}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse listing page: %w", err)
	}

	fragments := doc.Find(fragmentSelector)
	if fragments.Length() == 0 {
		return nil, &domain.NoResultsError{URL: listingURL}
	}

	entries := make([]domain.TrendingEntry, 0, fragments.Length())
	skipped := 0
	fragments.Each(func(i int, fragment *goquery.Selection) {
		entry, ok := extractEntry(fragment, c.cfg.BaseURL, query.Since)
		if !ok {
			// No title link: drop the fragment, keep the batch.
			skipped++
			logger.Debug("Skipping fragment %d: no title link", i+1)
			return
		}
		entries = append(entries, entry)
	})

	if skipped > 0 {
		logger.Warn("Skipped %d of %d listing fragments", skipped, fragments.Length())
	}
	logger.Info("Extracted %d trending entries", len(entries))

	return entries, nil
}

// listingURL builds the listing page URL: a language-specific path
// segment when filtered, plus the time window query parameter.
func (c *Connector) listingURL(query domain.TrendingQuery) string {
	if query.Language != "" {
		return fmt.Sprintf("%s/trending/%s?since=%s",
			c.cfg.BaseURL, url.PathEscape(query.Language), query.Since)
	}
	return fmt.Sprintf("%s/trending?since=%s", c.cfg.BaseURL, query.Since)
}
