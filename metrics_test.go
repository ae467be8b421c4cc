package dirforce

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	mc.RecordDirectory(10*time.Millisecond, nil)
	mc.RecordDirectory(20*time.Millisecond, &FlushError{Cause: OpenFailed, Err: errors.New("x")})
	mc.RecordDirectory(30*time.Millisecond, &FlushError{Cause: FlushFailed, Err: errors.New("x")})
	mc.RecordBatch(3, 60*time.Millisecond, errors.New("x"))
	mc.RecordBatch(1, 20*time.Millisecond, nil)
	mc.RecordCloseError()

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.BatchCount)
	assert.Equal(t, int64(1), stats.BatchErrors)
	assert.Equal(t, int64(4), stats.BatchDirectories)
	assert.Equal(t, (40 * time.Millisecond).Nanoseconds(), stats.BatchAvgNanos)
	assert.Equal(t, int64(3), stats.DirectoryCount)
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), stats.DirectoryAvgNanos)
	assert.Equal(t, int64(1), stats.OpenErrors)
	assert.Equal(t, int64(1), stats.FlushErrors)
	assert.Equal(t, int64(1), stats.CloseErrors)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	stats := (&BasicMetricsCollector{}).GetStats()
	assert.Zero(t, stats.BatchAvgNanos)
	assert.Zero(t, stats.DirectoryAvgNanos)
}

func TestLogger_LogBatch(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l.LogBatch(2, time.Millisecond, nil)
	assert.Contains(t, buf.String(), "directory batch flushed")
	assert.Contains(t, buf.String(), "directories=2")

	buf.Reset()
	l.LogBatch(1, time.Millisecond, errors.New("boom"))
	assert.Contains(t, buf.String(), "directory batch aborted")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}
