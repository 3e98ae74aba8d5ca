package streams

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	apiStreams "addressprocessor/pkg/api/streams"
)

type jsonTokenReader struct {
	decoder *json.Decoder
}

var _ apiStreams.JsonStream = (*jsonTokenReader)(nil)

// NewJsonStream tokenizes a JSON document without loading it whole.
// Numbers are kept as json.Number.
func NewJsonStream(reader io.Reader) apiStreams.JsonStream {
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	return &jsonTokenReader{decoder: decoder}
}

// ReadJsonToken implements JsonStream. Decoding errors carry the byte offset
// at which they were detected.
func (j *jsonTokenReader) ReadJsonToken(ctx context.Context) (json.Token, error) {
	if j == nil || j.decoder == nil {
		return nil, io.EOF
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	tok, err := j.decoder.Token()
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("json offset %d: %w", j.decoder.InputOffset(), err)
	}
	return tok, err
}
