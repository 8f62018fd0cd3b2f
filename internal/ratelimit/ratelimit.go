// Package ratelimit throttles requests to upstream hosts.
package ratelimit

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/amishk599/careerfeed/internal/model"
)

// HostLimiter keeps one token bucket per upstream host.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	every    time.Duration
	burst    int
}

// NewHostLimiter allows burst requests at once per host and then one request
// every interval. A non-positive interval disables limiting.
func NewHostLimiter(interval time.Duration, burst int) *HostLimiter {
	if burst < 1 {
		burst = 1
	}
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		every:    interval,
		burst:    burst,
	}
}

func (h *HostLimiter) limiterFor(host string) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	if lim, ok := h.limiters[host]; ok {
		return lim
	}
	limit := rate.Inf
	if h.every > 0 {
		limit = rate.Every(h.every)
	}
	lim := rate.NewLimiter(limit, h.burst)
	h.limiters[host] = lim
	return lim
}

// Wait blocks until a request to host is allowed or ctx is done.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	if err := h.limiterFor(host).Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait for %s: %w", host, err)
	}
	return nil
}

var _ model.FeedSource = (*Source)(nil)

// Source is a decorator that waits for the host limiter before delegating to
// the wrapped FeedSource.
type Source struct {
	inner   model.FeedSource
	limiter *HostLimiter
	host    string
}

// NewSource wraps inner. feedURL selects the limiter bucket; sources that hit
// the same host should share one HostLimiter.
func NewSource(inner model.FeedSource, limiter *HostLimiter, feedURL string) *Source {
	host := "_"
	if u, err := url.Parse(feedURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return &Source{
		inner:   inner,
		limiter: limiter,
		host:    host,
	}
}

// FetchFeed waits for the limiter, then fetches.
func (s *Source) FetchFeed(ctx context.Context) ([]byte, error) {
	if err := s.limiter.Wait(ctx, s.host); err != nil {
		return nil, err
	}
	return s.inner.FetchFeed(ctx)
}
