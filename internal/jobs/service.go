// Package jobs is the read interface the careers site consumes. Every call
// fetches and parses the feed afresh; nothing is cached between calls.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/amishk599/careerfeed/internal/feed"
	"github.com/amishk599/careerfeed/internal/metrics"
	"github.com/amishk599/careerfeed/internal/model"
)

// Report describes one fetch-and-parse pass.
type Report struct {
	Err     error // transport failure, nil on success
	Stats   feed.Stats
	Elapsed time.Duration
}

// OK reports whether the feed was fetched.
func (r Report) OK() bool {
	return r.Err == nil
}

// Service fetches the feed and answers listing queries. Failures never reach
// the caller: they are logged, counted and turned into empty results.
type Service struct {
	source model.FeedSource
	parser *feed.Parser
	logger *slog.Logger
}

// NewService creates a service reading from source.
func NewService(source model.FeedSource, parser *feed.Parser, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		parser: parser,
		logger: logger,
	}
}

// Snapshot runs one fetch and parse pass and returns the valid records in
// feed order along with what happened. The slice is never nil.
func (s *Service) Snapshot(ctx context.Context) (Report, []model.Job) {
	start := time.Now()

	body, err := s.source.FetchFeed(ctx)
	if err != nil {
		elapsed := time.Since(start)
		metrics.RecordFetch(false, elapsed)
		s.logger.Error("failed to fetch careers feed", "error", err, "elapsed", elapsed)
		return Report{Err: err, Elapsed: elapsed}, []model.Job{}
	}

	jobs, stats := s.parser.ParseFeed(body)
	elapsed := time.Since(start)
	metrics.RecordFetch(true, elapsed)
	metrics.RecordEntries(stats.Parsed, stats.Invalid, stats.Failed)

	s.logger.Debug("parsed careers feed",
		"entries", stats.Entries,
		"parsed", stats.Parsed,
		"invalid", stats.Invalid,
		"failed", stats.Failed,
		"elapsed", elapsed,
	)
	return Report{Stats: stats, Elapsed: elapsed}, jobs
}

// List returns every valid job in the requested order.
func (s *Service) List(ctx context.Context, order Order) []model.Job {
	_, jobs := s.Snapshot(ctx)
	Sort(jobs, order)
	return jobs
}

// FetchJobs returns every valid job sorted by title.
func (s *Service) FetchJobs(ctx context.Context) []model.Job {
	return s.List(ctx, OrderTitle)
}

// FetchJobsByDate returns every valid job, newest first.
func (s *Service) FetchJobsByDate(ctx context.Context) []model.Job {
	return s.List(ctx, OrderPublished)
}

// JobBySlug returns the job whose slug matches. When two postings share a
// slug the first in title order wins.
func (s *Service) JobBySlug(ctx context.Context, slug string) (model.Job, bool) {
	return FindBySlug(s.FetchJobs(ctx), slug)
}

// Slugs returns every slug, for route enumeration.
func (s *Service) Slugs(ctx context.Context) []string {
	return Slugs(s.FetchJobs(ctx))
}

// Departments returns the department filter options.
func (s *Service) Departments(ctx context.Context) []string {
	return Departments(s.FetchJobs(ctx))
}

// Locations returns the location filter options.
func (s *Service) Locations(ctx context.Context) []string {
	return Locations(s.FetchJobs(ctx))
}
