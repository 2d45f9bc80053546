package sqlite

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap"
	"github.com/Station-Manager/wrap/internal/nullable"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// TimestampLayout is the text layout Timestamp writes. It matches the layout the
// modernc driver uses for time.Time parameters.
const TimestampLayout = "2006-01-02 15:04:05.999999999-07:00"

var timestampLayouts = []string{
	TimestampLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Timestamp stores time.Time as UTC text.
type Timestamp struct{ base }

func (Timestamp) WireType() wrap.WireType { return wrap.Timestamp }

func (Timestamp) Encode(v time.Time, out *wrap.Output) (wrap.IsNull, error) {
	return out.Write(v.UTC().Format(TimestampLayout))
}

func (c Timestamp) Decode(raw any) (time.Time, error) {
	return nullable.Required(c.DecodeNullable(raw))
}

func (Timestamp) DecodeNullable(raw any) (*time.Time, error) {
	const op errors.Op = "sqlite.Timestamp.DecodeNullable"
	var s string
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case time.Time:
		t := v.UTC()
		return &t, nil
	case int64:
		t := time.Unix(v, 0).UTC()
		return &t, nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return nil, errors.New(op).Errorf("cannot decode %T as a timestamp", raw)
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, errors.New(op).Errorf("unrecognised timestamp %q", s)
}

// JSON stores a JSON document as TEXT and validates it in both directions.
type JSON struct{ base }

func (JSON) WireType() wrap.WireType { return wrap.JSON }

func (JSON) Encode(v boilertypes.JSON, out *wrap.Output) (wrap.IsNull, error) {
	const op errors.Op = "sqlite.JSON.Encode"
	if !json.Valid(v) {
		return wrap.IsNullNo, errors.New(op).Msg("invalid JSON document")
	}
	return out.Write(string(v))
}

func (c JSON) Decode(raw any) (boilertypes.JSON, error) {
	return nullable.Required(c.DecodeNullable(raw))
}

func (JSON) DecodeNullable(raw any) (*boilertypes.JSON, error) {
	const op errors.Op = "sqlite.JSON.DecodeNullable"
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
