package probe

import (
	"context"
	"log/slog"
	"time"

	"github.com/amishk599/careerfeed/internal/jobs"
	"github.com/amishk599/careerfeed/internal/metrics"
	"github.com/amishk599/careerfeed/internal/model"
)

// Snapshotter runs one ingestion pass.
type Snapshotter interface {
	Snapshot(ctx context.Context) (jobs.Report, []model.Job)
}

// Probe periodically runs an ingestion pass so feed health shows up in logs
// and metrics even when nobody is reading.
type Probe struct {
	source   Snapshotter
	interval time.Duration
	logger   *slog.Logger
}

// New creates a probe that runs at the given interval.
func New(source Snapshotter, interval time.Duration, logger *slog.Logger) *Probe {
	return &Probe{
		source:   source,
		interval: interval,
		logger:   logger,
	}
}

// Run runs one immediate pass, then one per interval. It returns nil when
// ctx is cancelled.
func (p *Probe) Run(ctx context.Context) error {
	p.logger.Info("starting feed probe", "interval", p.interval.String())

	p.Once(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("shutting down feed probe")
			return nil
		case <-ticker.C:
			p.Once(ctx)
		}
	}
}

// Once runs a single pass and returns its report.
func (p *Probe) Once(ctx context.Context) jobs.Report {
	report, list := p.source.Snapshot(ctx)
	if !report.OK() {
		// Snapshot already logged the failure; keep the last gauge value.
		return report
	}

	metrics.SetObservedJobs(len(list))
	p.logger.Info("feed probe",
		"jobs", len(list),
		"entries", report.Stats.Entries,
		"invalid", report.Stats.Invalid,
		"failed", report.Stats.Failed,
		"elapsed", report.Elapsed.String(),
	)
	return report
}
