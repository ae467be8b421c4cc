package dirforce

import (
	"golang.org/x/time/rate"

	"github.com/hupe1980/dirforce/internal/fs"
)

type options struct {
	fs               fs.FileSystem
	logger           *Logger
	metricsCollector MetricsCollector
	syncRate         float64
}

// Option configures a Forcer.
type Option func(*options)

// WithLogger sets the logger used for failure diagnostics.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics collector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithSyncRate caps the number of flush calls issued per second across all
// batches run by the Forcer. It is meant for background sweeps such as
// ForceTree over large hierarchies that would otherwise saturate the device.
//
// A value <= 0 disables throttling (the default).
func WithSyncRate(perSecond float64) Option {
	return func(o *options) {
		o.syncRate = perSecond
	}
}

// withFileSystem replaces the platform file system. Used for fault injection.
func withFileSystem(fsys fs.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

func (o *options) limiter() *rate.Limiter {
	if o.syncRate <= 0 {
		return nil
	}
	burst := int(o.syncRate)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(o.syncRate), burst)
}
