package dirforce

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with dirforce-specific field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogOpenFailed logs a directory that could not be opened.
func (l *Logger) LogOpenFailed(path string, index int, err error) {
	l.Error("directory does not exist or is inaccessible",
		"path", path,
		"index", index,
		"error", err,
	)
}

// LogFlushFailed logs a directory whose flush call failed.
func (l *Logger) LogFlushFailed(path string, index int, err error) {
	l.Error("directory flush failed",
		"path", path,
		"index", index,
		"error", err,
	)
}

// LogCloseFailed logs a directory handle that could not be released.
// The batch outcome is not affected.
func (l *Logger) LogCloseFailed(path string, index int, err error) {
	l.Warn("directory handle release failed",
		"path", path,
		"index", index,
		"error", err,
	)
}

// LogBatch logs the outcome of a batch.
func (l *Logger) LogBatch(count int, duration time.Duration, err error) {
	if err != nil {
		l.Debug("directory batch aborted",
			"directories", count,
			"duration", duration,
			"error", err,
		)
	} else {
		l.Debug("directory batch flushed",
			"directories", count,
			"duration", duration,
		)
	}
}
