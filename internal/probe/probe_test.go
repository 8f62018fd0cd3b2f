package probe

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/amishk599/careerfeed/internal/jobs"
	"github.com/amishk599/careerfeed/internal/metrics"
	"github.com/amishk599/careerfeed/internal/model"
)

type fakeSource struct {
	calls atomic.Int32
	err   error
	jobs  []model.Job
}

func (f *fakeSource) Snapshot(_ context.Context) (jobs.Report, []model.Job) {
	f.calls.Add(1)
	if f.err != nil {
		return jobs.Report{Err: f.err}, []model.Job{}
	}
	return jobs.Report{}, f.jobs
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOnce_SetsObservedJobs(t *testing.T) {
	src := &fakeSource{jobs: []model.Job{{ID: "1"}, {ID: "2"}, {ID: "3"}}}
	p := New(src, time.Minute, discardLogger())

	report := p.Once(context.Background())
	if !report.OK() {
		t.Fatalf("report.OK() = false, err = %v", report.Err)
	}
	if got := testutil.ToFloat64(metrics.ObservedJobs()); got != 3 {
		t.Errorf("observed jobs = %v, want 3", got)
	}
}

func TestOnce_FailureKeepsLastGauge(t *testing.T) {
	metrics.SetObservedJobs(7)
	src := &fakeSource{err: errors.New("feed down")}
	p := New(src, time.Minute, discardLogger())

	if report := p.Once(context.Background()); report.OK() {
		t.Fatal("report.OK() = true, want false")
	}
	if got := testutil.ToFloat64(metrics.ObservedJobs()); got != 7 {
		t.Errorf("observed jobs = %v, want 7 (unchanged)", got)
	}
}

func TestRun_ImmediatePassThenStopsOnCancel(t *testing.T) {
	src := &fakeSource{}
	p := New(src, time.Hour, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for src.calls.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if got := src.calls.Load(); got != 1 {
		t.Errorf("snapshot calls = %d, want 1", got)
	}
}

func TestRun_TicksOnInterval(t *testing.T) {
	src := &fakeSource{}
	p := New(src, 20*time.Millisecond, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	if err := p.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := src.calls.Load(); got < 3 {
		t.Errorf("snapshot calls = %d, want at least 3", got)
	}
}
