package streams

import (
	"errors"
	"fmt"

	apiStreams "addressprocessor/pkg/api/streams"
)

var (
	// ErrInvalidArgument is matched by errors returned for arguments a stream cannot accept.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidState is matched by errors returned for operations called in the wrong stream state.
	ErrInvalidState = errors.New("invalid stream state")

	// ErrNotOpenForRead is returned by Read when the stream is not open in read mode.
	ErrNotOpenForRead = fmt.Errorf("%w: stream is not open for reading", ErrInvalidState)
	// ErrNotOpenForWrite is returned by Write when the stream is not open in write mode.
	ErrNotOpenForWrite = fmt.Errorf("%w: stream is not open for writing", ErrInvalidState)

	// ErrMalformedRecord is matched by MalformedRecordError.
	ErrMalformedRecord = errors.New("malformed record")
)

// InvalidModeError is returned by Open for a mode other than read or write.
type InvalidModeError struct {
	Path string
	Mode apiStreams.Mode
}

// Error names the offending mode and file.
func (e *InvalidModeError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unknown file mode %s for %s", e.Mode, e.Path)
}

// Unwrap returns ErrInvalidArgument.
func (e *InvalidModeError) Unwrap() error {
	return ErrInvalidArgument
}

// MalformedRecordError reports a line that holds fewer than two fields.
type MalformedRecordError struct {
	Path string
	Line int
}

// Error formats the location of the malformed line.
func (e *MalformedRecordError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: line %d has fewer than 2 fields", e.Path, e.Line)
}

// Unwrap returns ErrMalformedRecord so callers can use errors.Is.
func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}
