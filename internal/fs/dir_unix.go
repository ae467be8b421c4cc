//go:build unix

package fs

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

type unixDir struct {
	name string
	fd   int
}

func openDir(name string) (Dir, error) {
	var (
		fd  int
		err error
	)
	for {
		fd, err = unix.Open(name, unix.O_RDONLY|unix.O_CLOEXEC, 0)
		if err != unix.EINTR {
			break
		}
	}
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return &unixDir{name: name, fd: fd}, nil
}

func (d *unixDir) Name() string { return d.name }

func (d *unixDir) Sync() error {
	if err := unix.Fsync(d.fd); err != nil {
		return &os.PathError{Op: "fsync", Path: d.name, Err: err}
	}
	return nil
}

func (d *unixDir) Close() error {
	if d.fd < 0 {
		return os.ErrClosed
	}
	fd := d.fd
	d.fd = -1
	// close(2) must not be retried on EINTR: the descriptor is already released.
	if err := unix.Close(fd); err != nil && !errors.Is(err, unix.EINTR) {
		return &os.PathError{Op: "close", Path: d.name, Err: err}
	}
	return nil
}
