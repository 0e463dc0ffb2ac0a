package icat

import (
	"errors"
	"io/fs"
)

// ReadError reports that an input could not be opened or read. A run can
// continue with its next input after a ReadError.
type ReadError struct {
	// Name is the input's display name. Transform leaves it empty; drivers
	// that know the name fill it in.
	Name string
	Err  error
}

func (e *ReadError) Error() string {
	if e.Name == "" {
		return "read: " + e.Err.Error()
	}
	return e.Name + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports that the output rejected a write. Every later write to
// the same output is expected to fail too, so a WriteError ends the run.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "write: " + e.Err.Error()
}

func (e *WriteError) Unwrap() error { return e.Err }

// IsReadError reports whether err carries a *ReadError.
func IsReadError(err error) bool {
	var re *ReadError
	return errors.As(err, &re)
}

// IsWriteError reports whether err carries a *WriteError.
func IsWriteError(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}

// Describe returns the system description of err without the operation and
// path that *fs.PathError adds, e.g. "no such file or directory".
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var re *ReadError
	if errors.As(err, &re) {
		err = re.Err
	}
	var we *WriteError
	if errors.As(err, &we) {
		err = we.Err
	}
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return err.Error()
}
