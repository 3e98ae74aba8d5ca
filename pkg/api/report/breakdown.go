package report

import (
	"context"
	"fmt"

	apiStreams "addressprocessor/pkg/api/streams"
)

// GroupShare represents aggregated values for a group
type GroupShare interface {
	GroupKey() fmt.Stringer
	Count() int64
	// Percent is the share of the group in the whole input, rounded to two places.
	Percent() fmt.Stringer
}

// Breakdown groups records and reports the share of every group.
type Breakdown interface {
	Process(ctx context.Context, records <-chan apiStreams.Record) ([]GroupShare, error)
}
