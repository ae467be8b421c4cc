package dirforce

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCause_String(t *testing.T) {
	assert.Equal(t, "open failed", OpenFailed.String())
	assert.Equal(t, "flush failed", FlushFailed.String())
	assert.Equal(t, "Cause(7)", Cause(7).String())
}

func TestFlushError(t *testing.T) {
	cause := errors.New("permission denied")

	open := &FlushError{Path: "/data/store", Index: 2, Cause: OpenFailed, Err: cause}
	assert.Equal(t, "directory /data/store does not exist or is inaccessible: permission denied", open.Error())
	assert.ErrorIs(t, open, ErrOpenFailed)
	assert.NotErrorIs(t, open, ErrFlushFailed)
	assert.ErrorIs(t, open, cause)

	flush := &FlushError{Path: "/data/store", Cause: FlushFailed, Err: cause}
	assert.Equal(t, "directory flush failed for /data/store: permission denied", flush.Error())
	assert.ErrorIs(t, flush, ErrFlushFailed)
	assert.NotErrorIs(t, flush, ErrOpenFailed)

	unknown := &FlushError{Path: "/x", Err: cause}
	assert.NotErrorIs(t, unknown, ErrOpenFailed)
	assert.NotErrorIs(t, unknown, ErrFlushFailed)
}

func TestFlushError_Wrapped(t *testing.T) {
	err := fmt.Errorf("commit tx 42: %w", &FlushError{Path: "/d", Cause: FlushFailed, Err: errors.New("EIO")})

	var fe *FlushError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, "/d", fe.Path)
	assert.ErrorIs(t, err, ErrFlushFailed)
}
