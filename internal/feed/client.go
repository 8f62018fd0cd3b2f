package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/amishk599/careerfeed/internal/model"
)

// maxFeedBytes caps how much of the feed body is read.
const maxFeedBytes = 16 << 20

var _ model.FeedSource = (*Client)(nil)

// Client downloads the careers Atom feed.
type Client struct {
	url       string
	userAgent string
	client    *http.Client
}

// NewClient creates a client for the feed at feedURL. client should carry a
// timeout; the request also honours the caller's context.
func NewClient(feedURL string, userAgent string, client *http.Client) *Client {
	return &Client{
		url:       feedURL,
		userAgent: userAgent,
		client:    client,
	}
}

// URL returns the feed address the client fetches.
func (c *Client) URL() string {
	return c.url
}

// FetchFeed performs one GET against the feed and returns the body.
// Non-200 responses come back as *model.HTTPError.
func (c *Client) FetchFeed(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("feed fetch: %w", err)
	}
	req.Header.Set("Accept", "application/atom+xml, application/xml;q=0.9, */*;q=0.8")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feed fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &model.HTTPError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
			Err:        fmt.Errorf("feed fetch: unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, fmt.Errorf("feed fetch: reading body: %w", err)
	}
	return body, nil
}

// parseRetryAfter parses the Retry-After header value into a duration.
// Supports seconds format (e.g. "120"). Returns zero if absent or unparseable.
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
