package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	dir := filepath.Join(tmp, "subdir")
	require.NoError(t, os.Mkdir(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0644))

	d, err := lfs.OpenDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, d.Name())

	assert.NoError(t, d.Sync())
	assert.NoError(t, d.Close())

	// Second close reports the handle as already released.
	assert.ErrorIs(t, d.Close(), os.ErrClosed)

	entries, err := lfs.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalFS_OpenMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	d, err := LocalFS{}.OpenDir(missing)
	assert.Nil(t, d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, iofs.ErrNotExist))

	var pe *os.PathError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, missing, pe.Path)
}

func TestFaultyFS(t *testing.T) {
	tmp := t.TempDir()
	a := filepath.Join(tmp, "a")
	b := filepath.Join(tmp, "b")
	require.NoError(t, os.Mkdir(a, 0755))
	require.NoError(t, os.Mkdir(b, 0755))

	ffs := NewFaultyFS(LocalFS{})
	ffs.AddRule(b, Fault{FailOnSync: true})

	d, err := ffs.OpenDir(a)
	require.NoError(t, err)
	assert.Equal(t, 1, ffs.OpenHandles())
	assert.NoError(t, d.Sync())
	assert.NoError(t, d.Close())

	d, err = ffs.OpenDir(b)
	require.NoError(t, err)
	assert.Error(t, d.Sync())
	assert.NoError(t, d.Close())
	assert.Equal(t, 0, ffs.OpenHandles())

	assert.Equal(t, []Event{
		{OpOpen, a}, {OpSync, a}, {OpClose, a},
		{OpOpen, b}, {OpSync, b}, {OpClose, b},
	}, ffs.Events())
	assert.Equal(t, 1, ffs.Count(OpSync, b))

	ffs.Reset()
	assert.Empty(t, ffs.Events())
}

func TestFaultyFS_Rules(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "data")
	require.NoError(t, os.Mkdir(dir, 0755))

	injected := errors.New("disk on fire")
	ffs := NewFaultyFS(nil)
	ffs.AddRule(string(filepath.Separator)+"data", Fault{FailOnOpen: true, Err: injected})

	_, err := ffs.OpenDir(dir)
	assert.ErrorIs(t, err, injected)
	assert.Equal(t, 0, ffs.OpenHandles())

	// A longer pattern overrides the shorter one.
	ffs.AddRule(dir, Fault{FailOnClose: true})
	d, err := ffs.OpenDir(dir)
	require.NoError(t, err)
	assert.NoError(t, d.Sync())
	assert.Error(t, d.Close())
	assert.Equal(t, 0, ffs.OpenHandles())
}

func TestFaultyFS_PanicOnSync(t *testing.T) {
	dir := t.TempDir()
	ffs := NewFaultyFS(nil)
	ffs.Default = Fault{PanicOnSync: true}

	d, err := ffs.OpenDir(dir)
	require.NoError(t, err)
	assert.Panics(t, func() { _ = d.Sync() })
	assert.NoError(t, d.Close())
}

func TestFaultyFS_Delegation(t *testing.T) {
	tmp := t.TempDir()
	ffs := NewFaultyFS(LocalFS{})

	require.NoError(t, os.Mkdir(filepath.Join(tmp, "sub"), 0755))

	entries, err := ffs.ReadDir(tmp)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
