// Package promcollector exports dirforce metrics to Prometheus.
//
//	c := promcollector.New()
//	prometheus.MustRegister(c)
//	f := dirforce.New(dirforce.WithMetricsCollector(c))
package promcollector

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/dirforce"
)

// Keys for dirforce metrics.
const (
	BatchesTotalKey             = "dirforce_batches_total"
	BatchDurationSecondsKey     = "dirforce_batch_duration_seconds"
	DirectoriesTotalKey         = "dirforce_directories_total"
	DirectoryDurationSecondsKey = "dirforce_directory_duration_seconds"
	HandleReleaseFailuresKey    = "dirforce_handle_release_failures_total"
)

// Label values for the "result" label.
const (
	ResultOK          = "ok"
	ResultOpenFailed  = "open_failed"
	ResultFlushFailed = "flush_failed"
	ResultError       = "error"
)

// Collector implements dirforce.MetricsCollector and prometheus.Collector.
type Collector struct {
	batches           *prometheus.CounterVec
	batchDuration     prometheus.Histogram
	directories       *prometheus.CounterVec
	directoryDuration prometheus.Histogram
	releaseFailures   prometheus.Counter
}

var _ dirforce.MetricsCollector = (*Collector)(nil)

// New creates an unregistered Collector.
func New() *Collector {
	return &Collector{
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: BatchesTotalKey,
			Help: "Cumulative number of directory batches by result.",
		}, []string{"result"}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    BatchDurationSecondsKey,
			Help:    "Duration of directory batches.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		directories: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: DirectoriesTotalKey,
			Help: "Cumulative number of directories processed by result.",
		}, []string{"result"}),
		directoryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    DirectoryDurationSecondsKey,
			Help:    "Duration of a single directory open, flush and close.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		releaseFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: HandleReleaseFailuresKey,
			Help: "Cumulative number of directory handles that failed to close.",
		}),
	}
}

// RecordBatch implements dirforce.MetricsCollector.
func (c *Collector) RecordBatch(dirs int, duration time.Duration, err error) {
	c.batches.WithLabelValues(result(err)).Inc()
	c.batchDuration.Observe(duration.Seconds())
}

// RecordDirectory implements dirforce.MetricsCollector.
func (c *Collector) RecordDirectory(duration time.Duration, err error) {
	c.directories.WithLabelValues(result(err)).Inc()
	c.directoryDuration.Observe(duration.Seconds())
}

// RecordCloseError implements dirforce.MetricsCollector.
func (c *Collector) RecordCloseError() {
	c.releaseFailures.Inc()
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.collectors() {
		m.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, m := range c.collectors() {
		m.Collect(ch)
	}
}

func (c *Collector) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		c.batches,
		c.batchDuration,
		c.directories,
		c.directoryDuration,
		c.releaseFailures,
	}
}

func result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, dirforce.ErrOpenFailed):
		return ResultOpenFailed
	case errors.Is(err, dirforce.ErrFlushFailed):
		return ResultFlushFailed
	default:
		return ResultError
	}
}
