package streams

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	apiStreams "addressprocessor/pkg/api/streams"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Separator joins fields on write and splits lines on read.
const Separator = '\t'

const (
	separator = string(Separator)
	minFields = 2
)

// State is the lifecycle position of a DelimitedStream.
type State int

const (
	StateUnopened State = iota
	StateOpenForRead
	StateOpenForWrite
	StateClosed
)

// ReadStatus tells apart the outcomes that Read collapses into false.
type ReadStatus int

const (
	// StatusEndOfInput means no line was left to read.
	StatusEndOfInput ReadStatus = iota
	// StatusMalformed means a line was consumed but had fewer than two fields.
	StatusMalformed
	// StatusRecord means a line with at least two fields was consumed.
	StatusRecord
)

var _ apiStreams.RecordStream = (*DelimitedStream)(nil)

// DelimitedStream reads or writes a tab separated file one line at a time.
// It is opened in exactly one direction per session and is not safe for
// concurrent use.
//
// Fields are written as is. A field holding a tab or a line break cannot be
// read back unchanged.
type DelimitedStream struct {
	file   *os.File
	reader *bufio.Reader
	state  State
	path   string
	line   int
}

// NewDelimitedStream returns an unopened stream. The zero value is ready to use as well.
func NewDelimitedStream() *DelimitedStream {
	return &DelimitedStream{}
}

// Open binds the stream to path. Read mode opens an existing file, write mode
// creates or truncates it. A stream that is already open is closed first; if
// the new open fails the stream stays unopened.
func (d *DelimitedStream) Open(path string, mode apiStreams.Mode) error {
	if mode != apiStreams.ModeRead && mode != apiStreams.ModeWrite {
		return &InvalidModeError{Path: path, Mode: mode}
	}
	if d.file != nil {
		slog.Debug("Reopening stream", slog.String("previous", d.path), slog.String("path", path))
		d.Close()
	}
	d.state = StateUnopened

	if mode == apiStreams.ModeRead {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %q for reading: %w", path, err)
		}
		d.file = file
		// a leading UTF-8 byte order mark is not part of the first record
		d.reader = bufio.NewReader(transform.NewReader(file, unicode.UTF8BOM.NewDecoder()))
		d.state = StateOpenForRead
	} else {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to open %q for writing: %w", path, err)
		}
		d.file = file
		d.state = StateOpenForWrite
	}
	d.path = path
	d.line = 0
	return nil
}

// Write appends columns joined by Separator and a line break. The line is
// handed to the file before Write returns.
func (d *DelimitedStream) Write(columns ...string) error {
	if d.state != StateOpenForWrite {
		return ErrNotOpenForWrite
	}
	if _, err := d.file.WriteString(strings.Join(columns, separator) + "\n"); err != nil {
		return fmt.Errorf("failed to write to %q: %w", d.path, err)
	}
	d.line++
	return nil
}

// Read consumes the next line and stores its first two fields in column1 and
// column2. Fields after the second are dropped. At end of input, or when the
// line has fewer than two fields, it returns false and sets both outputs to "".
// Nil outputs are allowed.
func (d *DelimitedStream) Read(column1, column2 *string) (bool, error) {
	record, status, err := d.ReadRecord()
	if column1 != nil {
		*column1 = record.Field1
	}
	if column2 != nil {
		*column2 = record.Field2
	}
	return status == StatusRecord, err
}

// ReadValues consumes the next line like Read. It exists for callers of the
// by-value form; its arguments are ignored and the fields are not returned.
func (d *DelimitedStream) ReadValues(column1, column2 string) (bool, error) {
	return d.Read(nil, nil)
}

// ReadRecord consumes the next line and reports which outcome it had. On a
// non-nil error the status is StatusEndOfInput.
func (d *DelimitedStream) ReadRecord() (apiStreams.Record, ReadStatus, error) {
	if d.state != StateOpenForRead {
		return apiStreams.Record{}, StatusEndOfInput, ErrNotOpenForRead
	}

	line, ok, err := d.readLine()
	if err != nil {
		return apiStreams.Record{}, StatusEndOfInput, fmt.Errorf("failed to read from %q: %w", d.path, err)
	}
	if !ok {
		return apiStreams.Record{}, StatusEndOfInput, nil
	}
	d.line++

	columns := strings.SplitN(line, separator, minFields+1)
	if len(columns) < minFields {
		return apiStreams.Record{}, StatusMalformed, nil
	}
	return apiStreams.Record{Field1: columns[0], Field2: columns[1]}, StatusRecord, nil
}

// readLine returns the next line without its terminator. "\n", "\r\n" and a
// lone "\r" all end a line; a final line without terminator still counts.
// ok is false once the input is exhausted.
func (d *DelimitedStream) readLine() (line string, ok bool, err error) {
	var buf []byte
	for {
		b, err := d.reader.ReadByte()
		if err == io.EOF {
			return string(buf), len(buf) > 0, nil
		}
		if err != nil {
			return "", false, err
		}

		switch b {
		case '\n':
			return string(buf), true, nil
		case '\r':
			next, err := d.reader.Peek(1)
			if err != nil && err != io.EOF {
				return "", false, err
			}
			if len(next) == 1 && next[0] == '\n' {
				_, _ = d.reader.Discard(1)
			}
			return string(buf), true, nil
		}
		buf = append(buf, b)
	}
}

// Close releases the file held by the stream, if any. Release errors are
// logged and dropped. Calling Close on an unopened or closed stream does nothing.
func (d *DelimitedStream) Close() {
	if d.file == nil {
		return
	}
	if err := d.file.Close(); err != nil {
		slog.Debug("Failed to close stream", slog.String("path", d.path), slog.Any("error", err))
	}
	d.file = nil
	d.reader = nil
	d.state = StateClosed
}

// State reports where the stream is in its lifecycle.
func (d *DelimitedStream) State() State {
	return d.state
}

// Line returns the number of lines read or written in the current session.
func (d *DelimitedStream) Line() int {
	return d.line
}
