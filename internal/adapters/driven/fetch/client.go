// Package fetch provides the HTTP implementation of the driven.Fetcher
// port: a plain bounded GET with no authentication and no retries.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"github.com/gitscout-dev/gitscout/internal/core/ports/driven"
)

// maxBodyBytes bounds how much of any response body is read. It must
// stay well above both the readme truncation bound and a full trending
// listing page, so only pathological responses are cut here.
const maxBodyBytes = 8 << 20

// Ensure Client implements the interface.
var _ driven.Fetcher = (*Client)(nil)

// Client is a driven.Fetcher on net/http. Each call carries its own
// timeout via context; the underlying http.Client has none of its own.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a fetch client sending the given User-Agent.
func NewClient(userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{},
		userAgent:  userAgent,
	}
}

// Fetch performs one GET bounded by timeout. The response body is
// normalised to UTF-8 using the Content-Type charset and limited to
// maxBodyBytes. A non-2xx status is returned as data, not an error.
func (c *Client) Fetch(ctx context.Context, url string, timeout time.Duration) (int, []byte, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close() //nolint:errcheck

	reader, err := charset.NewReader(
		io.LimitReader(resp.Body, maxBodyBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("decode response body: %w", err)
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp.StatusCode, body, nil
}
