package postgres

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap"
	"github.com/Station-Manager/wrap/internal/nullable"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
	"github.com/lib/pq"
)

// Timestamptz stores time.Time in a TIMESTAMPTZ column. Text values, as returned by
// some poolers and by simple-protocol queries, are parsed with pq.ParseTimestamp.
type Timestamptz struct{ base }

func (Timestamptz) WireType() wrap.WireType { return wrap.Timestamp }

func (Timestamptz) Encode(v time.Time, out *wrap.Output) (wrap.IsNull, error) {
	return out.Write(v.UTC())
}

func (c Timestamptz) Decode(raw any) (time.Time, error) {
	return nullable.Required(c.DecodeNullable(raw))
}

func (Timestamptz) DecodeNullable(raw any) (*time.Time, error) {
	const op errors.Op = "postgres.Timestamptz.DecodeNullable"
	var s string
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return nil, errors.New(op).Errorf("cannot decode %T as a timestamp", raw)
	}
	t, err := pq.ParseTimestamp(time.UTC, s)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return &t, nil
}

// Numeric stores arbitrary precision decimals in a NUMERIC column.
type Numeric struct{ base }

func (Numeric) WireType() wrap.WireType { return wrap.Numeric }

func (Numeric) Encode(v boilertypes.Decimal, out *wrap.Output) (wrap.IsNull, error) {
	const op errors.Op = "postgres.Numeric.Encode"
	if v.Big == nil {
		return wrap.IsNullNo, errors.New(op).Msg("decimal has no value")
	}
	val, err := v.Value()
	if err != nil {
		return wrap.IsNullNo, errors.New(op).Err(err)
	}
	return out.Write(val)
}

func (c Numeric) Decode(raw any) (boilertypes.Decimal, error) {
	return nullable.Required(c.DecodeNullable(raw))
}

func (Numeric) DecodeNullable(raw any) (*boilertypes.Decimal, error) {
	const op errors.Op = "postgres.Numeric.DecodeNullable"
	if raw == nil {
		return nil, nil
	}
	var d boilertypes.Decimal
	if err := d.Scan(raw); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return &d, nil
}

// JSONB stores a JSON document in a JSON or JSONB column.
type JSONB struct{ base }

func (JSONB) WireType() wrap.WireType { return wrap.JSON }

func (JSONB) Encode(v boilertypes.JSON, out *wrap.Output) (wrap.IsNull, error) {
	const op errors.Op = "postgres.JSONB.Encode"
	if !json.Valid(v) {
		return wrap.IsNullNo, errors.New(op).Msg("invalid JSON document")
	}
	return out.Write([]byte(v))
}

func (c JSONB) Decode(raw any) (boilertypes.JSON, error) {
	return nullable.Required(c.DecodeNullable(raw))
}

func (JSONB) DecodeNullable(raw any) (*boilertypes.JSON, error) {
	const op errors.Op = "postgres.JSONB.DecodeNullable"
	b, err := nullable.JSON(op, raw)
	if err != nil || b == nil {
		return nil, err
	}
	if !json.Valid(*b) {
		return nil, errors.New(op).Msg("invalid JSON document")
	}
	doc := boilertypes.JSON(*b)
	return &doc, nil
}

// TextArray stores []string in a TEXT[] column using the pq array literal format.
type TextArray struct{ base }

func (TextArray) WireType() wrap.WireType { return wrap.TextArray }

func (TextArray) Encode(v []string, out *wrap.Output) (wrap.IsNull, error) {
	const op errors.Op = "postgres.TextArray.Encode"
	if v == nil {
		v = []string{}
	}
	val, err := pq.StringArray(v).Value()
	if err != nil {
		return wrap.IsNullNo, errors.New(op).Err(err)
	}
	return out.Write(val)
}

func (c TextArray) Decode(raw any) ([]string, error) {
	return nullable.Required(c.DecodeNullable(raw))
}

func (TextArray) DecodeNullable(raw any) (*[]string, error) {
	const op errors.Op = "postgres.TextArray.DecodeNullable"
	if raw == nil {
		return nil, nil
	}
	var a pq.StringArray
	if err := a.Scan(raw); err != nil {
		return nil, errors.New(op).Err(err)
	}
	s := []string(a)
	if s == nil {
		s = []string{}
	}
	return &s, nil
}
