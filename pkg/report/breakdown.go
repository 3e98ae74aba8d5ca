package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	api "addressprocessor/pkg/api/report"
	apiStreams "addressprocessor/pkg/api/streams"
	"addressprocessor/pkg/numeric"

	"github.com/cockroachdb/apd/v3"
)

type countryShare struct {
	country countryName
	count   int64
	percent *apd.Decimal
}

func (c countryShare) GroupKey() fmt.Stringer { return c.country }
func (c countryShare) Count() int64           { return c.count }
func (c countryShare) Percent() fmt.Stringer  { return c.percent }

var (
	_ api.GroupShare = (*countryShare)(nil)
	_ api.Breakdown  = (*countryBreakdown)(nil)
)

type countryBreakdown struct{}

// NewCountryBreakdown groups contact records by the country at the end of
// their address.
func NewCountryBreakdown() api.Breakdown {
	return &countryBreakdown{}
}

type countryCount struct {
	name  string
	count int64
}

// Process implements report.Breakdown. Countries are compared without case;
// the first spelling met names the group. Shares are sorted by count, largest
// first, then by name.
func (b *countryBreakdown) Process(ctx context.Context, records <-chan apiStreams.Record) ([]api.GroupShare, error) {
	counts := make(map[string]*countryCount)
	keys := newCountryKeys()
	total := int64(0)
	done := ctx.Done()

	for record := range records {
		select {
		case <-done:
			return nil, ctx.Err()
		default:
		}

		country := ParseCountry(record.Field2)
		key := keys.key(country)
		c, ok := counts[key]
		if !ok {
			c = &countryCount{name: country}
			counts[key] = c
		}
		c.count++
		total++
	}

	shares := make([]api.GroupShare, 0, len(counts))
	for _, c := range counts {
		percent, err := numeric.Percent(c.count, total)
		if err != nil {
			slog.ErrorContext(ctx, "Error calculating share", "country", c.name, "error", err)
			return nil, err
		}
		shares = append(shares, countryShare{
			country: countryName(c.name),
			count:   c.count,
			percent: percent,
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Count() != shares[j].Count() {
			return shares[i].Count() > shares[j].Count()
		}
		return shares[i].GroupKey().String() < shares[j].GroupKey().String()
	})
	slog.DebugContext(ctx, "Country breakdown done", "records", total, "countries", len(shares))
	return shares, nil
}
