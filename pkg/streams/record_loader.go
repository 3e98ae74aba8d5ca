package streams

import (
	"context"
	"io"

	apiStreams "addressprocessor/pkg/api/streams"
)

// RecordReader adapts a DelimitedStream opened for reading to the
// context-aware RecordSource used by the pipeline. Short lines surface as
// *MalformedRecordError and the end of input as io.EOF.
type RecordReader struct {
	stream *DelimitedStream
}

var (
	_ apiStreams.RecordSource = (*RecordReader)(nil)
	_ apiStreams.RecordSink   = (*RecordWriter)(nil)
)

// NewRecordReader opens path for reading and wraps it as a RecordSource.
// The caller must Close the returned reader.
func NewRecordReader(path string) (*RecordReader, error) {
	stream := NewDelimitedStream()
	if err := stream.Open(path, apiStreams.ModeRead); err != nil {
		return nil, err
	}
	return &RecordReader{stream: stream}, nil
}

// ReadRecord implements RecordSource. A line with fewer than two fields is
// reported as a *MalformedRecordError; the reader stays usable after it.
func (r *RecordReader) ReadRecord(ctx context.Context) (apiStreams.Record, error) {
	if r == nil || r.stream == nil {
		return apiStreams.Record{}, io.EOF
	}
	select {
	case <-ctx.Done():
		return apiStreams.Record{}, ctx.Err()
	default:
	}

	record, status, err := r.stream.ReadRecord()
	if err != nil {
		return apiStreams.Record{}, err
	}
	switch status {
	case StatusEndOfInput:
		return apiStreams.Record{}, io.EOF
	case StatusMalformed:
		return apiStreams.Record{}, &MalformedRecordError{Path: r.stream.path, Line: r.stream.Line()}
	default:
		return record, nil
	}
}

// Close releases the underlying file.
func (r *RecordReader) Close() {
	if r == nil || r.stream == nil {
		return
	}
	r.stream.Close()
}

// RecordWriter adapts a DelimitedStream opened for writing to RecordSink.
type RecordWriter struct {
	stream *DelimitedStream
}

// NewRecordWriter creates or truncates path and wraps it as a RecordSink.
// The caller must Close the returned writer.
func NewRecordWriter(path string) (*RecordWriter, error) {
	stream := NewDelimitedStream()
	if err := stream.Open(path, apiStreams.ModeWrite); err != nil {
		return nil, err
	}
	return &RecordWriter{stream: stream}, nil
}

// WriteRecord implements RecordSink.
func (w *RecordWriter) WriteRecord(ctx context.Context, record apiStreams.Record) error {
	if w == nil || w.stream == nil {
		return ErrNotOpenForWrite
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return w.stream.Write(record.Fields()...)
	}
}

// Close releases the underlying file.
func (w *RecordWriter) Close() {
	if w == nil || w.stream == nil {
		return
	}
	w.stream.Close()
}
