package contacts

import (
	"errors"
	"fmt"

	"addressprocessor/pkg/streams"
)

var (
	errNilJsonStream = errors.New("json stream cannot be nil")

	// ErrUnexpectedJson is returned when the document is not an array of contact objects.
	ErrUnexpectedJson = errors.New("expected an array of contact objects")
	// ErrIncompleteContact is returned for an object without a name or an address.
	// It matches streams.ErrMalformedRecord.
	ErrIncompleteContact = fmt.Errorf("%w: contact object needs both name and address", streams.ErrMalformedRecord)
)
