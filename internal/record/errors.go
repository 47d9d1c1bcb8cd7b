package record

import (
	"errors"
	"fmt"
)

// ErrEndOfFile is returned by Cursor.Next once the record stream is cleanly
// exhausted. It marks a normal end, not a failure.
var ErrEndOfFile = errors.New("end of file")

// Kind classifies a FileError.
type Kind int

const (
	// KindNotFound: the path does not exist.
	KindNotFound Kind = iota + 1
	// KindUnreadable: the path exists but cannot be opened for reading.
	KindUnreadable
	// KindCorruptHeader: the container header or embedded schema cannot be parsed.
	KindCorruptHeader
	// KindCorruptRecord: a record body cannot be decoded.
	KindCorruptRecord
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "file not found"
	case KindUnreadable:
		return "file unreadable"
	case KindCorruptHeader:
		return "corrupt header"
	case KindCorruptRecord:
		return "corrupt record"
	default:
		return "unknown error"
	}
}

// FileError is the typed failure surfaced by every operation in this package.
// Record is the zero-based index at which decoding failed, or -1 when the
// failure is not tied to a record position. Nothing here is logged or
// retried; callers decide how to present it.
type FileError struct {
	Kind   Kind
	Path   string
	Record int
	Err    error
}

func (e *FileError) Error() string {
	if e.Record >= 0 {
		return fmt.Sprintf("%s: %s at record %d: %v", e.Path, e.Kind, e.Record, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Kind)
}

func (e *FileError) Unwrap() error { return e.Err }

// AsFileError extracts a *FileError from err's chain.
func AsFileError(err error) (*FileError, bool) {
	var fe *FileError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
