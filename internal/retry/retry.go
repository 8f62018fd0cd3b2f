// Package retry re-attempts transient upstream failures.
package retry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/amishk599/careerfeed/internal/model"
)

// Policy bounds how often and how patiently a call is retried.
type Policy struct {
	MaxRetries int           // attempts after the first failure; 0 disables retrying
	BaseDelay  time.Duration // delay before the first retry, doubled afterwards
	Jitter     float64       // fraction of the delay added or removed at random
	MaxDelay   time.Duration // longest wait allowed; a longer Retry-After ends retrying. 0 means no limit
}

// DefaultJitter spreads retries by ±30%.
const DefaultJitter = 0.3

// Delay returns how long to wait before the given retry attempt (1-based).
// A Retry-After hint carried by an *model.HTTPError takes precedence and is
// returned as is; computed backoff is capped at MaxDelay.
func (p Policy) Delay(attempt int, err error) time.Duration {
	var httpErr *model.HTTPError
	if errors.As(err, &httpErr) && httpErr.RetryAfter > 0 {
		return httpErr.RetryAfter
	}

	delay := p.BaseDelay << (attempt - 1)
	if p.Jitter > 0 {
		spread := float64(delay) * p.Jitter
		delay = time.Duration(float64(delay) + (rand.Float64()*2-1)*spread)
	}
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay
}

// Retryable reports whether err is a transient failure: network errors,
// 429 and 5xx responses. Cancellation and other 4xx responses are final.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var httpErr *model.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == http.StatusTooManyRequests || httpErr.StatusCode >= 500
	}
	return true
}

var _ model.FeedSource = (*Source)(nil)

// Source decorates a FeedSource with the retry policy.
type Source struct {
	inner  model.FeedSource
	policy Policy
	logger *slog.Logger
}

// NewSource wraps inner with policy.
func NewSource(inner model.FeedSource, policy Policy, logger *slog.Logger) *Source {
	return &Source{
		inner:  inner,
		policy: policy,
		logger: logger,
	}
}

// FetchFeed fetches the feed, retrying transient errors per the policy.
func (s *Source) FetchFeed(ctx context.Context) ([]byte, error) {
	body, err := s.inner.FetchFeed(ctx)
	for attempt := 1; err != nil && Retryable(err) && attempt <= s.policy.MaxRetries; attempt++ {
		delay := s.policy.Delay(attempt, err)
		if s.policy.MaxDelay > 0 && delay > s.policy.MaxDelay {
			s.logger.Warn("giving up feed fetch, upstream asked to wait too long",
				"retry_after", delay,
				"max_delay", s.policy.MaxDelay,
				"error", err,
			)
			return nil, err
		}
		s.logger.Warn("retrying feed fetch",
			"attempt", attempt,
			"max_retries", s.policy.MaxRetries,
			"delay", delay,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}

		body, err = s.inner.FetchFeed(ctx)
	}
	if err != nil {
		return nil, err
	}
	return body, nil
}
