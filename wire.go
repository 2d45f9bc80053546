package wrap

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// WireType is the column type tag a backend understands natively.
// Its value is opaque to this package; only backends give it meaning.
type WireType string

const (
	Binary    WireType = "binary"
	Integer4  WireType = "integer-4-byte"
	Integer8  WireType = "integer-8-byte"
	Float8    WireType = "float-8-byte"
	Boolean   WireType = "boolean"
	Text      WireType = "text"
	Timestamp WireType = "timestamp"
	Numeric   WireType = "numeric"
	JSON      WireType = "json"
	TextArray WireType = "text-array"
)

const nullablePrefix = "nullable("

// KnownWireTypes lists the wire types the bundled backends provide codecs for.
var KnownWireTypes = []WireType{Binary, Integer4, Integer8, Float8, Boolean, Text, Timestamp, Numeric, JSON, TextArray}

// Nullable returns the nullable form of w. It is idempotent.
func Nullable(w WireType) WireType { return w.Nullable() }

func (w WireType) Nullable() WireType {
	if w.IsNullable() {
		return w
	}
	return WireType(nullablePrefix + string(w) + ")")
}

func (w WireType) IsNullable() bool {
	return strings.HasPrefix(string(w), nullablePrefix) && strings.HasSuffix(string(w), ")")
}

// Base strips the nullable marker, if any.
func (w WireType) Base() WireType {
	if !w.IsNullable() {
		return w
	}
	return WireType(strings.TrimSuffix(strings.TrimPrefix(string(w), nullablePrefix), ")"))
}

// Known reports whether the base of w is one of KnownWireTypes.
func (w WireType) Known() bool {
	b := w.Base()
	for _, k := range KnownWireTypes {
		if k == b {
			return true
		}
	}
	return false
}

func (w WireType) String() string { return string(w) }

// IsNull is the status an encoder reports alongside the value it wrote.
type IsNull bool

const (
	IsNullNo  IsNull = false
	IsNullYes IsNull = true
)

func (n IsNull) String() string {
	if n {
		return "null"
	}
	return "not-null"
}

// Backend is a pluggable database implementation against which codecs are written.
type Backend interface {
	// Name is a short identifier such as "sqlite" or "postgres".
	Name() string
	// DriverName is the database/sql driver name used to open connections.
	DriverName() string
}

// Output is the sink a codec writes one column value into.
// It is only valid for the duration of a single Encode call.
type Output struct {
	backend Backend
	value   driver.Value
	written bool
}

// NewOutput creates an empty sink for b.
func NewOutput(b Backend) *Output { return &Output{backend: b} }

// Backend returns the backend the value is being encoded for. It may be nil.
func (o *Output) Backend() Backend { return o.backend }

// Write stores v as the column value. A nil v reports IsNullYes.
func (o *Output) Write(v driver.Value) (IsNull, error) {
	if v != nil && !driver.IsValue(v) {
		return IsNullNo, fmt.Errorf("wrap: %T is not a valid driver value", v)
	}
	o.value = v
	o.written = true
	if v == nil {
		return IsNullYes, nil
	}
	return IsNullNo, nil
}

// Value returns what was written, or nil.
func (o *Output) Value() driver.Value { return o.value }

// Written reports whether Write has been called.
func (o *Output) Written() bool { return o.written }
