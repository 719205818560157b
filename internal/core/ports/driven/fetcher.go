package driven

import (
	"context"
	"time"
)

// Fetcher performs a single bounded HTTP GET.
//
// A non-2xx status is not an error at this layer: callers decide whether
// it is fatal (the trending listing) or a cascade miss (a readme
// candidate). The returned error covers transport failures only.
type Fetcher interface {
	// Fetch retrieves url, bounded by timeout. No retries.
	Fetch(ctx context.Context, url string, timeout time.Duration) (status int, body []byte, err error)
}
