package fs

import (
	"os"
)

// Dir represents an open directory handle.
type Dir interface {
	// Name returns the path the handle was opened with.
	Name() string
	// Sync forces pending metadata changes of the directory to stable storage.
	Sync() error
	// Close releases the handle. It must be called exactly once.
	Close() error
}

// FileSystem abstracts the directory operations for testability.
type FileSystem interface {
	OpenDir(name string) (Dir, error)
	ReadDir(name string) ([]os.DirEntry, error)
}

// LocalFS implements FileSystem using the strategy compiled for this platform.
type LocalFS struct{}

func (LocalFS) OpenDir(name string) (Dir, error) { return openDir(name) }

func (LocalFS) ReadDir(name string) ([]os.DirEntry, error) { return os.ReadDir(name) }

// Default is the default local file system.
var Default FileSystem = LocalFS{}
