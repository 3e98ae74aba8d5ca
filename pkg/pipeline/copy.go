package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"

	apiStreams "addressprocessor/pkg/api/streams"
	apiTransform "addressprocessor/pkg/api/transform"
	"addressprocessor/pkg/streams"

	"golang.org/x/sync/errgroup"
)

const recordQueueSize = 1000

var errNilSourceOrSink = errors.New("source or sink is nil")

// Stats counts what a Copy did.
type Stats struct {
	Read    int64
	Written int64
	Skipped int64
}

type copier struct {
	transformer apiTransform.RecordTransformer
	policy      MalformedPolicy
	queueSize   int
}

func newCopier(opts []Option) (*copier, error) {
	c := &copier{
		policy:    OnMalformedStop,
		queueSize: recordQueueSize,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Emit reads src until it is exhausted and sends every record to out, then
// closes out. Malformed lines follow the configured policy; the transformer
// option is not applied. Stats.Written stays zero.
func Emit(ctx context.Context, src apiStreams.RecordSource, out chan<- apiStreams.Record, opts ...Option) (Stats, error) {
	if src == nil || out == nil {
		if out != nil {
			close(out)
		}
		return Stats{}, errNilSourceOrSink
	}
	c, err := newCopier(opts)
	if err != nil {
		close(out)
		return Stats{}, err
	}
	return c.emit(ctx, src, out)
}

func (c *copier) emit(ctx context.Context, src apiStreams.RecordSource, out chan<- apiStreams.Record) (Stats, error) {
	defer close(out)

	var stats Stats
	for {
		record, err := src.ReadRecord(ctx)
		if err == io.EOF {
			slog.DebugContext(ctx, "End of record source", "read", stats.Read)
			return stats, nil
		}
		if errors.Is(err, streams.ErrMalformedRecord) {
			if c.policy == OnMalformedStop {
				slog.InfoContext(ctx, "Stopping at malformed record", "error", err)
				return stats, nil
			}
			slog.WarnContext(ctx, "Skipping malformed record", "error", err)
			stats.Skipped++
			continue
		}
		if err != nil {
			return stats, err
		}
		stats.Read++

		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		case out <- record:
		}
	}
}

// Copy moves records from src to dst until src is exhausted. Reading and
// writing run in separate goroutines; src and dst are each used by one of
// them only. The first error of either side cancels the other.
func Copy(ctx context.Context, src apiStreams.RecordSource, dst apiStreams.RecordSink, opts ...Option) (Stats, error) {
	if src == nil || dst == nil {
		return Stats{}, errNilSourceOrSink
	}
	c, err := newCopier(opts)
	if err != nil {
		return Stats{}, err
	}

	var emitted Stats
	var written int64
	records := make(chan apiStreams.Record, c.queueSize)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		emitted, err = c.emit(ctx, src, records)
		return err
	})

	eg.Go(func() error {
		for record := range records {
			if c.transformer != nil {
				record = c.transformer.Apply(record)
			}
			if err := dst.WriteRecord(ctx, record); err != nil {
				slog.ErrorContext(ctx, "Error writing record", "error", err)
				return err
			}
			written++
		}
		return nil
	})

	err = eg.Wait()
	emitted.Written = written
	return emitted, err
}
