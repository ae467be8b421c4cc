package dirforce

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/dirforce/internal/fs"
)

// Forcer flushes directory metadata to stable storage.
//
// A Forcer holds only immutable configuration and is safe for concurrent use.
type Forcer struct {
	fs      fs.FileSystem
	logger  *Logger
	metrics MetricsCollector
	limiter *rate.Limiter
}

// Default is the Forcer used by the package-level functions. It logs
// failures to stderr and collects no metrics.
var Default = New()

// New creates a Forcer using the flush strategy compiled for this platform.
func New(optFns ...Option) *Forcer {
	o := options{
		fs:               fs.Default,
		logger:           NewLogger(nil),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return &Forcer{
		fs:      o.fs,
		logger:  o.logger,
		metrics: o.metricsCollector,
		limiter: o.limiter(),
	}
}

// ForceDirectories flushes each directory in paths, in order, using Default.
func ForceDirectories(paths []string) error {
	return Default.ForceDirectories(paths)
}

// ForceDirectories opens, flushes and closes each directory in paths, in the
// order given. Duplicates are flushed again. An empty batch succeeds without
// touching the file system.
//
// The first directory that cannot be opened or flushed stops the batch; the
// returned error is a *FlushError naming it, and no later directory is
// touched. At most one directory handle is open at any time and it is
// released before the next directory is processed or the call returns.
func (f *Forcer) ForceDirectories(paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	start := time.Now()
	for i, path := range paths {
		if err := f.forceOne(i, path); err != nil {
			f.finish(i+1, start, err)
			return err
		}
	}
	f.finish(len(paths), start, nil)
	return nil
}

// Force is the boolean form of ForceDirectories: it reports whether every
// directory was flushed. The failing directory is logged.
func (f *Forcer) Force(paths ...string) bool {
	return f.ForceDirectories(paths) == nil
}

func (f *Forcer) finish(dirs int, start time.Time, err error) {
	d := time.Since(start)
	f.metrics.RecordBatch(dirs, d, err)
	f.logger.LogBatch(dirs, d, err)
}

// forceOne runs the open/flush/close step for a single directory. The handle
// is closed on every exit path, including a panic raised while flushing.
func (f *Forcer) forceOne(index int, path string) (err error) {
	start := time.Now()

	d, oerr := f.fs.OpenDir(path)
	if oerr != nil {
		err = &FlushError{Path: path, Index: index, Cause: OpenFailed, Err: oerr}
		f.logger.LogOpenFailed(path, index, oerr)
		f.metrics.RecordDirectory(time.Since(start), err)
		return err
	}

	defer func() {
		if cerr := d.Close(); cerr != nil {
			f.logger.LogCloseFailed(path, index, cerr)
			f.metrics.RecordCloseError()
		}
		f.metrics.RecordDirectory(time.Since(start), err)
	}()

	f.throttle()

	if serr := d.Sync(); serr != nil {
		err = &FlushError{Path: path, Index: index, Cause: FlushFailed, Err: serr}
		f.logger.LogFlushFailed(path, index, serr)
		return err
	}
	return nil
}

func (f *Forcer) throttle() {
	if f.limiter == nil {
		return
	}
	// Wait only fails for a cancelled context or a zero burst, neither of
	// which can happen here.
	_ = f.limiter.Wait(context.Background())
}
