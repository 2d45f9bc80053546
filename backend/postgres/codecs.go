package postgres

import (
	"github.com/Station-Manager/wrap"
	"github.com/Station-Manager/wrap/internal/nullable"
)

// Bytea stores []byte in a BYTEA column.
type Bytea struct{ base }

func (Bytea) WireType() wrap.WireType { return wrap.Binary }

func (Bytea) Encode(v []byte, out *wrap.Output) (wrap.IsNull, error) {
	if v == nil {
		v = []byte{}
	}
	return out.Write(v)
}

func (c Bytea) Decode(raw any) ([]byte, error) { return nullable.Required(c.DecodeNullable(raw)) }

func (Bytea) DecodeNullable(raw any) (*[]byte, error) {
	return nullable.Bytes("postgres.Bytea.DecodeNullable", raw)
}

// Int4 stores int32 in an INTEGER column.
type Int4 struct{ base }

func (Int4) WireType() wrap.WireType { return wrap.Integer4 }

func (Int4) Encode(v int32, out *wrap.Output) (wrap.IsNull, error) { return out.Write(int64(v)) }

func (c Int4) Decode(raw any) (int32, error) { return nullable.Required(c.DecodeNullable(raw)) }

func (Int4) DecodeNullable(raw any) (*int32, error) {
	return nullable.Int32("postgres.Int4.DecodeNullable", raw)
}

// Int8 stores int64 in a BIGINT column.
type Int8 struct{ base }

func (Int8) WireType() wrap.WireType { return wrap.Integer8 }

func (Int8) Encode(v int64, out *wrap.Output) (wrap.IsNull, error) { return out.Write(v) }

func (c Int8) Decode(raw any) (int64, error) { return nullable.Required(c.DecodeNullable(raw)) }

func (Int8) DecodeNullable(raw any) (*int64, error) {
	return nullable.Int64("postgres.Int8.DecodeNullable", raw)
}

// Float8 stores float64 in a DOUBLE PRECISION column.
type Float8 struct{ base }

func (Float8) WireType() wrap.WireType { return wrap.Float8 }

func (Float8) Encode(v float64, out *wrap.Output) (wrap.IsNull, error) { return out.Write(v) }

func (c Float8) Decode(raw any) (float64, error) { return nullable.Required(c.DecodeNullable(raw)) }

func (Float8) DecodeNullable(raw any) (*float64, error) {
	return nullable.Float64("postgres.Float8.DecodeNullable", raw)
}

// Bool stores bool in a BOOLEAN column.
type Bool struct{ base }

func (Bool) WireType() wrap.WireType { return wrap.Boolean }

func (Bool) Encode(v bool, out *wrap.Output) (wrap.IsNull, error) { return out.Write(v) }

func (c Bool) Decode(raw any) (bool, error) { return nullable.Required(c.DecodeNullable(raw)) }

func (Bool) DecodeNullable(raw any) (*bool, error) {
	return nullable.Bool("postgres.Bool.DecodeNullable", raw)
}

// Text stores string in a TEXT or VARCHAR column.
type Text struct{ base }

func (Text) WireType() wrap.WireType { return wrap.Text }

func (Text) Encode(v string, out *wrap.Output) (wrap.IsNull, error) { return out.Write(v) }

func (c Text) Decode(raw any) (string, error) { return nullable.Required(c.DecodeNullable(raw)) }

func (Text) DecodeNullable(raw any) (*string, error) {
	return nullable.String("postgres.Text.DecodeNullable", raw)
}
