package numeric

import (
	"github.com/cockroachdb/apd/v3"
)

// PercentPlaces is the number of decimal places kept by Percent.
const PercentPlaces = 2

var (
	quoCtx apd.Context = apd.Context{
		Precision:   50,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundHalfEven, // Banker's rounding for final result
	}

	hundred = apd.New(100, 0)
)

// Percent returns part/total*100 rounded half to even at two decimal places.
func Percent(part, total int64) (*apd.Decimal, error) {
	if total <= 0 {
		return nil, ErrZeroTotal
	}
	if part < 0 || part > total {
		return nil, ErrPartOutOfRange
	}

	result := apd.New(0, 0)
	if _, err := quoCtx.Mul(result, apd.New(part, 0), hundred); err != nil {
		return nil, err
	}
	if _, err := quoCtx.Quo(result, result, apd.New(total, 0)); err != nil {
		return nil, err
	}
	if _, err := quoCtx.Quantize(result, result, -PercentPlaces); err != nil {
		return nil, err
	}
	return result, nil
}
