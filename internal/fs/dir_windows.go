//go:build windows

package fs

import (
	"os"

	"golang.org/x/sys/windows"
)

type windowsDir struct {
	name   string
	handle windows.Handle
}

func openDir(name string) (Dir, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}

	// Directory handles can only be obtained with FILE_FLAG_BACKUP_SEMANTICS,
	// and FlushFileBuffers requires write access to the handle.
	h, err := windows.CreateFile(p,
		windows.GENERIC_WRITE,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS,
		0)
	if err != nil || h == windows.InvalidHandle {
		if err == nil {
			err = windows.ERROR_INVALID_HANDLE
		}
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return &windowsDir{name: name, handle: h}, nil
}

func (d *windowsDir) Name() string { return d.name }

func (d *windowsDir) Sync() error {
	if err := windows.FlushFileBuffers(d.handle); err != nil {
		return &os.PathError{Op: "FlushFileBuffers", Path: d.name, Err: err}
	}
	return nil
}

func (d *windowsDir) Close() error {
	if d.handle == windows.InvalidHandle {
		return os.ErrClosed
	}
	h := d.handle
	d.handle = windows.InvalidHandle
	if err := windows.CloseHandle(h); err != nil {
		return &os.PathError{Op: "CloseHandle", Path: d.name, Err: err}
	}
	return nil
}
