package wrap

import (
	"database/sql/driver"
	"reflect"
)

// As adapts a domain value D to a NOT NULL column of K's wire type.
// Pass it (or a pointer to it) wherever database/sql expects a column value.
type As[D, I any, C Conversion[D, I], K Codec[I]] struct {
	V D
}

// AsOption adapts an optional domain value to a nullable column.
// A nil V is stored as NULL.
type AsOption[D, I any, C Conversion[D, I], K Codec[I]] struct {
	V *As[D, I, C, K]
}

// Domain returns the wrapped value.
func (a As[D, I, C, K]) Domain() D { return a.V }

// WireType is the wire type the adapter declares to the backend.
func (As[D, I, C, K]) WireType() WireType {
	var k K
	return k.WireType()
}

// Encode runs the domain to intermediate conversion and hands the result to the codec.
// The codec's status and error are returned as is.
func (a As[D, I, C, K]) Encode(out *Output) (IsNull, error) {
	var c C
	var k K
	return k.Encode(c.ToIntermediate(a.V), out)
}

// Value implements driver.Valuer.
func (a As[D, I, C, K]) Value() (driver.Value, error) {
	var k K
	out := NewOutput(k.Backend())
	isNull, err := a.Encode(out)
	if err != nil {
		return nil, err
	}
	if isNull == IsNullYes {
		return nil, nil
	}
	return out.Value(), nil
}

// Scan implements sql.Scanner. a is only modified on success.
func (a *As[D, I, C, K]) Scan(src any) error {
	var k K
	v, err := k.Decode(src)
	if err != nil {
		return err
	}
	d, err := fromIntermediate[D, I, C](k.WireType(), v)
	if err != nil {
		return err
	}
	a.V = d
	return nil
}

// OptionOf wraps an optional domain value. The pointee is copied.
func OptionOf[D, I any, C Conversion[D, I], K Codec[I]](d *D) AsOption[D, I, C, K] {
	if d == nil {
		return AsOption[D, I, C, K]{}
	}
	return AsOption[D, I, C, K]{V: &As[D, I, C, K]{V: *d}}
}

// Domain returns a copy of the wrapped value, or nil.
func (o AsOption[D, I, C, K]) Domain() *D {
	if o.V == nil {
		return nil
	}
	d := o.V.V
	return &d
}

// Valid reports whether a value is present.
func (o AsOption[D, I, C, K]) Valid() bool { return o.V != nil }

func (AsOption[D, I, C, K]) WireType() WireType {
	var k K
	return k.WireType().Nullable()
}

// Encode reports IsNullYes for an empty option without touching out or the conversion.
func (o AsOption[D, I, C, K]) Encode(out *Output) (IsNull, error) {
	if o.V == nil {
		return IsNullYes, nil
	}
	return o.V.Encode(out)
}

// Value implements driver.Valuer.
func (o AsOption[D, I, C, K]) Value() (driver.Value, error) {
	if o.V == nil {
		return nil, nil
	}
	return o.V.Value()
}

// Scan implements sql.Scanner through the codec's nullable decode path.
func (o *AsOption[D, I, C, K]) Scan(src any) error {
	var k K
	p, err := k.DecodeNullable(src)
	if err != nil {
		return err
	}
	if p == nil {
		o.V = nil
		return nil
	}
	d, err := fromIntermediate[D, I, C](k.WireType(), *p)
	if err != nil {
		return err
	}
	o.V = &As[D, I, C, K]{V: d}
	return nil
}

func fromIntermediate[D, I any, C Conversion[D, I]](wire WireType, v I) (D, error) {
	var c C
	d, err := c.FromIntermediate(v)
	if err != nil {
		var zero D
		return zero, &ConversionError{Domain: reflect.TypeFor[D]().String(), Wire: wire, Err: err}
	}
	return d, nil
}
