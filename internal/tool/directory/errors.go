package directory

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"syscall"
)

// -- Sentinels --

// Failure kinds carried by FilesystemAccessError. The set is closed.
var (
	ErrNotFound         = errors.New("directory does not exist")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotADirectory    = errors.New("not a directory")
	ErrAccessFailed     = errors.New("filesystem access failed")
)

// -- Errors --

// FilesystemAccessError is returned for every failure to enumerate a directory.
// errors.Is matches both Kind and the underlying OS error.
type FilesystemAccessError struct {
	Path  string
	Kind  error
	Cause error
}

func (e *FilesystemAccessError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("cannot list %q: %v", e.Path, e.Kind)
	}
	return fmt.Sprintf("cannot list %q: %v: %v", e.Path, e.Kind, e.Cause)
}

func (e *FilesystemAccessError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// newAccessError classifies an OS error into one of the failure kinds.
func newAccessError(path string, cause error) *FilesystemAccessError {
	kind := ErrAccessFailed
	switch {
	case errors.Is(cause, iofs.ErrNotExist):
		kind = ErrNotFound
	case errors.Is(cause, iofs.ErrPermission):
		kind = ErrPermissionDenied
	case errors.Is(cause, syscall.ENOTDIR):
		kind = ErrNotADirectory
	}
	return &FilesystemAccessError{Path: path, Kind: kind, Cause: cause}
}
