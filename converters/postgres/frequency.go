package postgres

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap/converters"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/ericlagergren/decimal"
)

// FrequencyDecimal stores a frequency in MHz in a NUMERIC column, which is how the
// sqlboiler generated postgres models declare frequencies.
type FrequencyDecimal struct{}

func (FrequencyDecimal) ToIntermediate(mhz float64) types.Decimal {
	return types.NewDecimal(new(decimal.Big).SetFloat64(mhz))
}

func (FrequencyDecimal) FromIntermediate(d types.Decimal) (float64, error) {
	const op errors.Op = "converters.postgres.FrequencyDecimal.FromIntermediate"
	if d.Big == nil {
		return 0, errors.New(op).Msg(converters.ErrMsgEmptyValue)
	}
	f, ok := d.Float64()
	if !ok {
		return 0, errors.New(op).Errorf("%s cannot be represented as float64", d.String())
	}
	if f < 0 {
		return 0, errors.New(op).Msg(converters.ErrMsgNegative)
	}
	return f, nil
}
