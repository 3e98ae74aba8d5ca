package contacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	apiStreams "addressprocessor/pkg/api/streams"
)

const (
	nameKey    = "name"
	addressKey = "address"

	// depth of the values of a contact object
	contactDepth = 2
)

// jsonSource reads contacts from a document shaped as
// [{"name": "...", "address": "..."}, ...].
type jsonSource struct {
	source    apiStreams.JsonStream
	depth     int
	expectKey bool
	lastKey   string
	done      bool
	// result of looking past the closing bracket, io.EOF when nothing follows
	endErr error

	name, address       string
	hasName, hasAddress bool
	objects             int
}

var _ apiStreams.RecordSource = (*jsonSource)(nil)

// NewJsonSource turns a JSON token stream into a RecordSource. Keys are
// matched case-insensitively; keys other than name and address are ignored.
func NewJsonSource(stream apiStreams.JsonStream) (apiStreams.RecordSource, error) {
	if stream == nil {
		return nil, errNilJsonStream
	}
	return &jsonSource{source: stream}, nil
}

// ReadRecord implements RecordSource.
func (j *jsonSource) ReadRecord(ctx context.Context) (apiStreams.Record, error) {
	for !j.done {
		tok, err := j.source.ReadJsonToken(ctx)
		if err == io.EOF {
			return apiStreams.Record{}, fmt.Errorf("%w: document ended early", ErrUnexpectedJson)
		}
		if err != nil {
			slog.ErrorContext(ctx, "Error reading JSON token", "error", err)
			return apiStreams.Record{}, err
		}

		record, ready, err := j.processToken(tok)
		if err != nil {
			return apiStreams.Record{}, err
		}
		if ready {
			return record, nil
		}
	}
	if j.endErr == nil {
		if err := ctx.Err(); err != nil {
			return apiStreams.Record{}, err
		}
		j.endErr = j.checkEnd(ctx)
	}
	return apiStreams.Record{}, j.endErr
}

// checkEnd makes sure nothing but whitespace follows the contact array.
func (j *jsonSource) checkEnd(ctx context.Context) error {
	tok, err := j.source.ReadJsonToken(ctx)
	switch {
	case err == io.EOF:
		return io.EOF
	case err != nil:
		return fmt.Errorf("%w: data after the contact array: %w", ErrUnexpectedJson, err)
	default:
		return fmt.Errorf("%w: %v after the contact array", ErrUnexpectedJson, tok)
	}
}

func (j *jsonSource) processToken(tok json.Token) (apiStreams.Record, bool, error) {
	switch v := tok.(type) {
	case json.Delim:
		if (v == '[' || v == '{') && j.depth == contactDepth && j.isContactKey() {
			return apiStreams.Record{}, false, fmt.Errorf("%w: contact %d field %q is not a string", ErrUnexpectedJson, j.objects, j.lastKey)
		}
		switch v {
		case '[':
			if j.depth == 1 {
				return apiStreams.Record{}, false, fmt.Errorf("%w: nested array at contact %d", ErrUnexpectedJson, j.objects+1)
			}
			j.depth++
		case '{':
			switch j.depth {
			case 0:
				return apiStreams.Record{}, false, fmt.Errorf("%w: document is an object", ErrUnexpectedJson)
			case 1:
				j.startContact()
			}
			j.depth++
		case '}', ']':
			j.depth--
			switch j.depth {
			case 0:
				j.done = true
			case 1:
				return j.finishContact()
			case contactDepth:
				// a nested value of an ignored key is over
				j.expectKey = true
			}
		}

	case string:
		switch {
		case j.depth == 0:
			return apiStreams.Record{}, false, fmt.Errorf("%w: document is a string", ErrUnexpectedJson)
		case j.depth == 1:
			return apiStreams.Record{}, false, fmt.Errorf("%w: string in place of contact %d", ErrUnexpectedJson, j.objects+1)
		case j.depth == contactDepth && j.expectKey:
			j.lastKey = v
			j.expectKey = false
		case j.depth == contactDepth:
			j.setField(v)
			j.expectKey = true
		}

	default:
		// numbers, booleans and nulls
		if j.depth < contactDepth {
			return apiStreams.Record{}, false, fmt.Errorf("%w: scalar in place of contact %d", ErrUnexpectedJson, j.objects+1)
		}
		if j.depth == contactDepth {
			if j.isContactKey() {
				return apiStreams.Record{}, false, fmt.Errorf("%w: contact %d field %q is not a string", ErrUnexpectedJson, j.objects, j.lastKey)
			}
			j.expectKey = true
		}
	}
	return apiStreams.Record{}, false, nil
}

func (j *jsonSource) startContact() {
	j.objects++
	j.expectKey = true
	j.lastKey = ""
	j.name, j.address = "", ""
	j.hasName, j.hasAddress = false, false
}

func (j *jsonSource) finishContact() (apiStreams.Record, bool, error) {
	if !j.hasName || !j.hasAddress {
		return apiStreams.Record{}, false, fmt.Errorf("contact %d: %w", j.objects, ErrIncompleteContact)
	}
	return apiStreams.Record{Field1: j.name, Field2: j.address}, true, nil
}

func (j *jsonSource) isContactKey() bool {
	return strings.EqualFold(j.lastKey, nameKey) || strings.EqualFold(j.lastKey, addressKey)
}

func (j *jsonSource) setField(value string) {
	switch {
	case strings.EqualFold(j.lastKey, nameKey):
		j.name, j.hasName = value, true
	case strings.EqualFold(j.lastKey, addressKey):
		j.address, j.hasAddress = value, true
	}
}
