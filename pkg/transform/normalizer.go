package transform

import (
	"regexp"
	"strings"

	apiStreams "addressprocessor/pkg/api/streams"
	apiTransform "addressprocessor/pkg/api/transform"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

var (
	_ apiTransform.RecordTransformer = (*Normalizer)(nil)

	spaceSquasher   = regexp.MustCompile(`\s+`)
	controlReplacer = strings.NewReplacer("\r\n", " ", "\t", " ", "\r", " ", "\n", " ")
)

// Normalizer rewrites contact records field by field. It is not safe for
// concurrent use.
type Normalizer struct {
	trim       bool
	collapse   bool
	nfc        bool
	sanitize   bool
	titleCaser *cases.Caser
}

// New creates a Normalizer. Without options Apply returns records unchanged.
func New(opts ...Option) (*Normalizer, error) {
	n := &Normalizer{}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Apply implements RecordTransformer.
func (n *Normalizer) Apply(record apiStreams.Record) apiStreams.Record {
	if n == nil {
		return record
	}
	record.Field1 = n.normalize(record.Field1)
	record.Field2 = n.normalize(record.Field2)
	if n.titleCaser != nil {
		record.Field1 = n.titleCaser.String(record.Field1)
	}
	return record
}

func (n *Normalizer) normalize(field string) string {
	if n.sanitize {
		field = controlReplacer.Replace(field)
	}
	if n.nfc {
		field = norm.NFC.String(field)
	}
	if n.collapse {
		field = spaceSquasher.ReplaceAllString(field, " ")
	}
	if n.trim {
		field = strings.TrimSpace(field)
	}
	return field
}
