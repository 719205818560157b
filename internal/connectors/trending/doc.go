// Package trending implements a connector for GitHub's public trending
// listing page.
//
// The listing is third-party HTML with no stability guarantee, so the
// connector extracts each field of each repository fragment as an
// independent lookup-with-default rather than a single structural parse:
// a missing description, language or star count degrades to a sentinel
// value, and only a fragment with no title link at all is skipped.
//
// # Components
//
//   - Connector: validates the query, builds the listing URL, fetches
//     the page and drives extraction over every fragment
//   - extractEntry: per-fragment field extraction with independent
//     fallbacks
//   - Config: endpoint and timeout configuration
//
// No authentication is used; the listing page is public.
package trending
