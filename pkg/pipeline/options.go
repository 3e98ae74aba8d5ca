package pipeline

import (
	"errors"
	"fmt"
	"strings"

	apiTransform "addressprocessor/pkg/api/transform"
)

// MalformedPolicy decides what Copy does with a line that is not a record.
type MalformedPolicy int

const (
	// OnMalformedStop ends the copy cleanly at the first malformed line, like
	// a loop that reads until Read returns false.
	OnMalformedStop MalformedPolicy = iota
	// OnMalformedSkip logs the malformed line and carries on.
	OnMalformedSkip
)

var (
	errNilTransformer = errors.New("transformer cannot be nil")
	errQueueSize      = errors.New("queue size must be positive")
	errUnknownPolicy  = errors.New("unknown malformed record policy")
)

// String implements fmt.Stringer.
func (p MalformedPolicy) String() string {
	switch p {
	case OnMalformedStop:
		return "stop"
	case OnMalformedSkip:
		return "skip"
	default:
		return fmt.Sprintf("MalformedPolicy(%d)", int(p))
	}
}

// ParseMalformedPolicy accepts "stop" or "skip", in any case.
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stop", "":
		return OnMalformedStop, nil
	case "skip":
		return OnMalformedSkip, nil
	default:
		return OnMalformedStop, fmt.Errorf("%w: %q", errUnknownPolicy, s)
	}
}

// Option configures Copy
type Option func(*copier) error

// WithTransformer rewrites every record before it is written
func WithTransformer(t apiTransform.RecordTransformer) Option {
	return func(c *copier) error {
		if t == nil {
			return errNilTransformer
		}
		c.transformer = t
		return nil
	}
}

// WithMalformedPolicy sets how malformed lines are handled (default OnMalformedStop)
func WithMalformedPolicy(p MalformedPolicy) Option {
	return func(c *copier) error {
		if p != OnMalformedStop && p != OnMalformedSkip {
			return fmt.Errorf("%w: %v", errUnknownPolicy, p)
		}
		c.policy = p
		return nil
	}
}

// WithQueueSize sets how many records may wait between the reader and the writer
func WithQueueSize(size int) Option {
	return func(c *copier) error {
		if size <= 0 {
			return errQueueSize
		}
		c.queueSize = size
		return nil
	}
}
