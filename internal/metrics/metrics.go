// Package metrics exposes Prometheus collectors for feed ingestion and the
// read API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "careerfeed"

	ResultSuccess = "success"
	ResultFailure = "failure"

	EntryParsed  = "parsed"
	EntryInvalid = "invalid"
	EntryFailed  = "failed"

	resultLabel = "result"
)

var feedFetchTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_fetch_total",
		Help:      "Feed fetches partitioned by result.",
	},
	[]string{resultLabel},
)

var feedEntriesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "feed_entries_total",
		Help:      "Feed entries partitioned by parse result.",
	},
	[]string{resultLabel},
)

var feedFetchDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "feed_fetch_duration_seconds",
		Help:      "Time spent fetching and parsing the feed.",
		Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	},
)

var feedJobs = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "feed_jobs",
		Help:      "Valid job records seen by the last health probe.",
	},
)

func init() {
	prometheus.MustRegister(feedFetchTotal)
	prometheus.MustRegister(feedEntriesTotal)
	prometheus.MustRegister(feedFetchDuration)
	prometheus.MustRegister(feedJobs)
}

// FeedFetches returns the fetch counter for result, for tests and probes.
func FeedFetches(result string) prometheus.Counter {
	return feedFetchTotal.WithLabelValues(result)
}

// FeedEntries returns the entry counter for result.
func FeedEntries(result string) prometheus.Counter {
	return feedEntriesTotal.WithLabelValues(result)
}

// ObservedJobs returns the gauge set by the health probe.
func ObservedJobs() prometheus.Gauge {
	return feedJobs
}

// RecordFetch counts one feed fetch.
func RecordFetch(ok bool, elapsed time.Duration) {
	result := ResultSuccess
	if !ok {
		result = ResultFailure
	}
	feedFetchTotal.WithLabelValues(result).Inc()
	feedFetchDuration.Observe(elapsed.Seconds())
}

// RecordEntries adds the per-entry outcomes of one parse pass.
func RecordEntries(parsed, invalid, failed int) {
	feedEntriesTotal.WithLabelValues(EntryParsed).Add(float64(parsed))
	feedEntriesTotal.WithLabelValues(EntryInvalid).Add(float64(invalid))
	feedEntriesTotal.WithLabelValues(EntryFailed).Add(float64(failed))
}

// SetObservedJobs records the job count seen by the last probe.
func SetObservedJobs(n int) {
	feedJobs.Set(float64(n))
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
