package sqlite

import (
	"github.com/Station-Manager/wrap"
	"github.com/Station-Manager/wrap/internal/nullable"
)

// Blob stores []byte in a BLOB column.
type Blob struct{ base }

func (Blob) WireType() wrap.WireType { return wrap.Binary }

func (Blob) Encode(v []byte, out *wrap.Output) (wrap.IsNull, error) {
	if v == nil {
		// A nil slice would otherwise be written as NULL.
		v = []byte{}
	}
	return out.Write(v)
}

func (c Blob) Decode(raw any) ([]byte, error) { return nullable.Required(c.DecodeNullable(raw)) }

func (Blob) DecodeNullable(raw any) (*[]byte, error) {
	return nullable.Bytes("sqlite.Blob.DecodeNullable", raw)
}

// Int4 stores int32 in an INTEGER column and range checks on the way out.
type Int4 struct{ base }

func (Int4) WireType() wrap.WireType { return wrap.Integer4 }

func (Int4) Encode(v int32, out *wrap.Output) (wrap.IsNull, error) { return out.Write(int64(v)) }

func (c Int4) Decode(raw any) (int32, error) { return nullable.Required(c.DecodeNullable(raw)) }

func (Int4) DecodeNullable(raw any) (*int32, error) {
	return nullable.Int32("sqlite.Int4.DecodeNullable", raw)
}

// Integer stores int64 in an INTEGER column.
type Integer struct{ base }

func (Integer) WireType() wrap.WireType { return wrap.Integer8 }

func (Integer) Encode(v int64, out *wrap.Output) (wrap.IsNull, error) { return out.Write(v) }

func (c Integer) Decode(raw any) (int64, error) { return nullable.Required(c.DecodeNullable(raw)) }

func (Integer) DecodeNullable(raw any) (*int64, error) {
	return nullable.Int64("sqlite.Integer.DecodeNullable", raw)
}

// Real stores float64 in a REAL column.
type Real struct{ base }

func (Real) WireType() wrap.WireType { return wrap.Float8 }

func (Real) Encode(v float64, out *wrap.Output) (wrap.IsNull, error) { return out.Write(v) }

func (c Real) Decode(raw any) (float64, error) { return nullable.Required(c.DecodeNullable(raw)) }

func (Real) DecodeNullable(raw any) (*float64, error) {
	return nullable.Float64("sqlite.Real.DecodeNullable", raw)
}

// Bool stores bool as INTEGER 0/1.
type Bool struct{ base }

func (Bool) WireType() wrap.WireType { return wrap.Boolean }

func (Bool) Encode(v bool, out *wrap.Output) (wrap.IsNull, error) {
	if v {
		return out.Write(int64(1))
	}
	return out.Write(int64(0))
}

func (c Bool) Decode(raw any) (bool, error) { return nullable.Required(c.DecodeNullable(raw)) }

func (Bool) DecodeNullable(raw any) (*bool, error) {
	return nullable.Bool("sqlite.Bool.DecodeNullable", raw)
}

// Text stores string in a TEXT column.
type Text struct{ base }

func (Text) WireType() wrap.WireType { return wrap.Text }

func (Text) Encode(v string, out *wrap.Output) (wrap.IsNull, error) { return out.Write(v) }

func (c Text) Decode(raw any) (string, error) { return nullable.Required(c.DecodeNullable(raw)) }

func (Text) DecodeNullable(raw any) (*string, error) {
	return nullable.String("sqlite.Text.DecodeNullable", raw)
}
