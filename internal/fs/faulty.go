package fs

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Fault defines specific failure behavior.
type Fault struct {
	FailOnOpen  bool
	FailOnSync  bool
	FailOnClose bool
	PanicOnSync bool
	Err         error
}

// Op names a recorded directory operation.
type Op string

const (
	OpOpen  Op = "open"
	OpSync  Op = "sync"
	OpClose Op = "close"
)

// Event is one recorded operation against a directory.
type Event struct {
	Op   Op
	Path string
}

func (e Event) String() string { return string(e.Op) + " " + e.Path }

// FaultyFS is a FileSystem wrapper that can inject errors and records every
// directory operation in the order it was issued.
type FaultyFS struct {
	FS      FileSystem
	mu      sync.Mutex
	rules   map[string]Fault // Path pattern -> Fault
	Default Fault            // Fallback

	Err    error
	events []Event
	open   int
}

// NewFaultyFS creates a new FaultyFS wrapping the provided FS (or Default if nil).
func NewFaultyFS(fs FileSystem) *FaultyFS {
	if fs == nil {
		fs = Default
	}
	return &FaultyFS{
		FS:    fs,
		rules: make(map[string]Fault),
		Err:   fmt.Errorf("injected fault error"),
	}
}

// AddRule adds a fault injection rule for paths containing pattern.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[pattern] = fault
}

// Events returns a copy of the recorded operations.
func (f *FaultyFS) Events() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Event, len(f.events))
	copy(out, f.events)
	return out
}

// Count returns how many times op was issued against path.
func (f *FaultyFS) Count(op Op, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, e := range f.events {
		if e.Op == op && e.Path == path {
			n++
		}
	}
	return n
}

// OpenHandles returns the number of handles opened and not yet closed.
func (f *FaultyFS) OpenHandles() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// Reset clears the recorded events. Rules are kept.
func (f *FaultyFS) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = nil
}

func (f *FaultyFS) record(op Op, path string) {
	f.mu.Lock()
	f.events = append(f.events, Event{Op: op, Path: path})
	f.mu.Unlock()
}

func (f *FaultyFS) faultFor(name string) Fault {
	f.mu.Lock()
	defer f.mu.Unlock()
	fault := f.Default
	// Longest matching pattern wins so rules are deterministic.
	best := -1
	for pattern, rule := range f.rules {
		if strings.Contains(name, pattern) && len(pattern) > best {
			fault = rule
			best = len(pattern)
		}
	}
	if fault.Err == nil {
		fault.Err = f.Err
	}
	return fault
}

func (f *FaultyFS) OpenDir(name string) (Dir, error) {
	f.record(OpOpen, name)

	fault := f.faultFor(name)
	if fault.FailOnOpen {
		return nil, &os.PathError{Op: "open", Path: name, Err: fault.Err}
	}

	d, err := f.FS.OpenDir(name)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.open++
	f.mu.Unlock()

	return &faultyDir{Dir: d, fs: f, fault: fault}, nil
}

func (f *FaultyFS) ReadDir(name string) ([]os.DirEntry, error) {
	return f.FS.ReadDir(name)
}

type faultyDir struct {
	Dir
	fs     *FaultyFS
	fault  Fault
	closed bool
}

func (fd *faultyDir) Sync() error {
	fd.fs.record(OpSync, fd.Name())
	if fd.fault.PanicOnSync {
		panic(fmt.Sprintf("injected sync panic: %s", fd.Name()))
	}
	if fd.fault.FailOnSync {
		return &os.PathError{Op: "sync", Path: fd.Name(), Err: fd.fault.Err}
	}
	return fd.Dir.Sync()
}

func (fd *faultyDir) Close() error {
	fd.fs.record(OpClose, fd.Name())
	if !fd.closed {
		fd.closed = true
		fd.fs.mu.Lock()
		fd.fs.open--
		fd.fs.mu.Unlock()
	}
	err := fd.Dir.Close()
	if fd.fault.FailOnClose {
		return &os.PathError{Op: "close", Path: fd.Name(), Err: fd.fault.Err}
	}
	return err
}
