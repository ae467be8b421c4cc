package dirforce

import (
	"errors"
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// promcollector package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordBatch is called once per non-empty batch.
	// dirs is the number of directories attempted (including a failing one),
	// err is nil if every directory was flushed.
	RecordBatch(dirs int, duration time.Duration, err error)

	// RecordDirectory is called after each directory's open/flush/close step.
	// err is a *FlushError on failure.
	RecordDirectory(duration time.Duration, err error)

	// RecordCloseError is called when releasing a directory handle failed.
	RecordCloseError()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBatch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordDirectory(time.Duration, error)  {}
func (NoopMetricsCollector) RecordCloseError()                     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BatchCount          atomic.Int64
	BatchErrors         atomic.Int64
	BatchDirectories    atomic.Int64
	BatchTotalNanos     atomic.Int64
	DirectoryCount      atomic.Int64
	DirectoryTotalNanos atomic.Int64
	OpenErrors          atomic.Int64
	FlushErrors         atomic.Int64
	CloseErrors         atomic.Int64
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(dirs int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchDirectories.Add(int64(dirs))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// RecordDirectory implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDirectory(duration time.Duration, err error) {
	b.DirectoryCount.Add(1)
	b.DirectoryTotalNanos.Add(duration.Nanoseconds())
	switch {
	case errors.Is(err, ErrOpenFailed):
		b.OpenErrors.Add(1)
	case errors.Is(err, ErrFlushFailed):
		b.FlushErrors.Add(1)
	}
}

// RecordCloseError implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCloseError() {
	b.CloseErrors.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BatchCount:        b.BatchCount.Load(),
		BatchErrors:       b.BatchErrors.Load(),
		BatchDirectories:  b.BatchDirectories.Load(),
		BatchAvgNanos:     avg(b.BatchTotalNanos.Load(), b.BatchCount.Load()),
		DirectoryCount:    b.DirectoryCount.Load(),
		DirectoryAvgNanos: avg(b.DirectoryTotalNanos.Load(), b.DirectoryCount.Load()),
		OpenErrors:        b.OpenErrors.Load(),
		FlushErrors:       b.FlushErrors.Load(),
		CloseErrors:       b.CloseErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BatchCount        int64
	BatchErrors       int64
	BatchDirectories  int64
	BatchAvgNanos     int64
	DirectoryCount    int64
	DirectoryAvgNanos int64
	OpenErrors        int64
	FlushErrors       int64
	CloseErrors       int64
}
