package transform

import (
	apiStreams "addressprocessor/pkg/api/streams"
)

// RecordTransformer rewrites a record on its way from a source to a sink.
type RecordTransformer interface {
	Apply(record apiStreams.Record) apiStreams.Record
}
