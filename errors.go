package dirforce

import (
	"errors"
	"fmt"
)

var (
	// ErrOpenFailed matches any FlushError whose directory could not be opened.
	ErrOpenFailed = errors.New("directory could not be opened")

	// ErrFlushFailed matches any FlushError whose flush call failed.
	ErrFlushFailed = errors.New("directory flush failed")
)

// Cause distinguishes why a directory in a batch failed.
type Cause int

const (
	// OpenFailed means the directory is missing, inaccessible or the path is invalid.
	OpenFailed Cause = iota + 1
	// FlushFailed means the operating system rejected the flush (I/O error, device failure).
	FlushFailed
)

func (c Cause) String() string {
	switch c {
	case OpenFailed:
		return "open failed"
	case FlushFailed:
		return "flush failed"
	default:
		return fmt.Sprintf("Cause(%d)", int(c))
	}
}

func (c Cause) sentinel() error {
	switch c {
	case OpenFailed:
		return ErrOpenFailed
	case FlushFailed:
		return ErrFlushFailed
	default:
		return nil
	}
}

// FlushError reports the first directory of a batch that could not be forced.
//
// The original underlying error can be accessed via errors.Unwrap.
type FlushError struct {
	// Path is the directory exactly as the caller passed it.
	Path string
	// Index is the position of Path in the batch.
	Index int
	Cause Cause
	Err   error
}

func (e *FlushError) Error() string {
	switch e.Cause {
	case OpenFailed:
		return fmt.Sprintf("directory %s does not exist or is inaccessible: %v", e.Path, e.Err)
	case FlushFailed:
		return fmt.Sprintf("directory flush failed for %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("directory %s: %s: %v", e.Path, e.Cause, e.Err)
	}
}

func (e *FlushError) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's cause.
func (e *FlushError) Is(target error) bool {
	s := e.Cause.sentinel()
	return s != nil && target == s
}
