package streams

import (
	"context"
	"encoding/json"
)

// JsonStream yields the tokens of a JSON contacts document, an array of
// {"name": ..., "address": ...} objects, one token per call.
type JsonStream interface {
	// ReadJsonToken returns the next delimiter, key or scalar of the document.
	// io.EOF marks the end of input; other errors are decoding failures.
	ReadJsonToken(ctx context.Context) (json.Token, error)
}
