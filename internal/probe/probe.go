// Package probe provides best-effort checks against the real file system.
//
// Unlike the validate package these touch the disk, so their answer can be
// stale the instant it is returned: another process may delete, replace or
// re-permission the path before the caller uses it. They exist only to let a
// command exit early on obviously bad input. Callers must still handle
// failures at the point of use.
//
// The race is inherent and intentionally not "fixed" with locking. The
// reliable pattern is to open a handle as early as possible, use it for every
// interaction with the file and keep it open until finished.
package probe

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrEnvironment is the category of every probe rejection.
var ErrEnvironment = errors.New("environment check failed")

// Error is a probe rejection. Error() returns the user-facing reason; the
// underlying OS error, when there is one, is reachable via errors.Is/As.
type Error struct {
	Path   string
	Reason string
	Err    error
}

func (e *Error) Error() string { return e.Reason }

// Unwrap returns both ErrEnvironment and the OS error so that
// errors.Is(err, fs.ErrNotExist) and errors.Is(err, ErrEnvironment) both work.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrEnvironment}
	}
	return []error{ErrEnvironment, e.Err}
}

// Stdin is the conventional argument meaning "read from standard input".
const Stdin = "-"

// ReadableFile reports whether p names a file that can be opened for
// reading. Directories are rejected. The file is opened momentarily and
// closed before returning.
//
// Use for input file paths. Commands that read from files by default should
// take them as positional arguments; commands that default to stdin should
// use -f.
func ReadableFile(p string) error {
	if info, err := os.Stat(p); err == nil && info.IsDir() {
		return &Error{Path: p, Reason: fmt.Sprintf("%s: Input path must be a file, not a directory", p)}
	}

	f, err := os.Open(p)
	if err != nil {
		return &Error{Path: p, Reason: fmt.Sprintf("%s: %s", p, osMessage(err)), Err: err}
	}
	_ = f.Close()
	return nil
}

// ReadableFileOrStdin is ReadableFile, except that "-" is always accepted as
// a request to read standard input, whether or not a file of that name
// exists.
func ReadableFileOrStdin(p string) error {
	if p == Stdin {
		return nil
	}
	return ReadableFile(p)
}

// OutputDir reports whether p is a directory the effective user should be
// able to write into. Permission is determined by an access check, never by
// attempting a write.
func OutputDir(p string) error {
	info, err := os.Stat(p)
	if err != nil || !info.IsDir() {
		return &Error{Path: p, Reason: fmt.Sprintf("Not a directory: %s", p), Err: err}
	}

	if err := writable(p); err != nil {
		return &Error{
			Path:   p,
			Reason: fmt.Sprintf("Would be unable to write to destination directory: %s", p),
			Err:    err,
		}
	}
	return nil
}

// osMessage strips the "open <path>:" prefix Go adds, leaving the OS text.
func osMessage(err error) string {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err.Error()
	}
	return err.Error()
}
