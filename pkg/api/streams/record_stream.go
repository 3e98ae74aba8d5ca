package streams

import (
	"context"
	"fmt"
)

// Mode selects the direction a record stream is opened in.
type Mode int

const (
	// ModeRead opens an existing file for sequential reading.
	ModeRead Mode = 1
	// ModeWrite creates or truncates a file for sequential writing.
	ModeWrite Mode = 2
)

var _ fmt.Stringer = Mode(0)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Record is one line of a two column file: a name and an address for contacts.
type Record struct {
	Field1 string
	Field2 string
}

// Fields returns the record as a slice suitable for RecordStream.Write.
func (r Record) Fields() []string {
	return []string{r.Field1, r.Field2}
}

// RecordStream is the sequential, single direction reader/writer over a
// delimited text file.
type RecordStream interface {
	// Open binds the stream to path in the given mode.
	Open(path string, mode Mode) error

	// Write joins columns with the separator and appends one line.
	Write(columns ...string) error

	// Read consumes the next line and stores its first two fields.
	// It reports false with empty outputs at end of input or on a short line.
	Read(column1, column2 *string) (bool, error)

	// ReadValues is the by-value form of Read; its arguments are ignored.
	ReadValues(column1, column2 string) (bool, error)

	// Close releases the underlying file. It is safe to call repeatedly.
	Close()
}

// RecordSource is a cancellable source of records.
type RecordSource interface {
	// ReadRecord returns the next record or io.EOF when the source is exhausted.
	ReadRecord(ctx context.Context) (Record, error)
}

// RecordSink is a cancellable destination of records.
type RecordSink interface {
	// WriteRecord appends one record to the destination.
	WriteRecord(ctx context.Context, record Record) error
}
