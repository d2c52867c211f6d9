package notes

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDataDir is returned when no data directory can be resolved for the
	// current user and none was configured.
	ErrNoDataDir = errors.New("notes: data directory could not be determined")
	// ErrNoteNotFound is returned when a requested note does not exist.
	ErrNoteNotFound = errors.New("notes: note not found")
	// ErrPathOutsideStore is returned for absolute paths outside the notes directory.
	ErrPathOutsideStore = errors.New("notes: path is outside the notes directory")
)

// FsError wraps a filesystem failure with the operation and path involved.
type FsError struct {
	Op   string
	Path string
	Err  error
}

func (e *FsError) Error() string {
	return fmt.Sprintf("notes: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FsError) Unwrap() error {
	return e.Err
}

func fsError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &FsError{Op: op, Path: path, Err: err}
}
