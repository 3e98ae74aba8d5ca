package numeric

import "errors"

var (
	// ErrZeroTotal is returned when a share of nothing is requested
	ErrZeroTotal = errors.New("total must be positive")
	// ErrPartOutOfRange is returned when the part is negative or above the total
	ErrPartOutOfRange = errors.New("part must be between zero and the total")
)
