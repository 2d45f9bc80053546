package wrap

// Codec is a backend's encode/decode capability for intermediate type I on one wire type.
//
// Implementations are zero-size types so that an adapter can name them as a type
// parameter and call them through their zero value.
type Codec[I any] interface {
	Backend() Backend
	WireType() WireType
	// Encode writes v to out and returns the backend's status unchanged.
	Encode(v I, out *Output) (IsNull, error)
	// Decode turns a raw driver value into I. A nil raw value yields ErrUnexpectedNull.
	Decode(raw any) (I, error)
	// DecodeNullable is the backend's own null path: nil raw yields (nil, nil).
	DecodeNullable(raw any) (*I, error)
}

// Conversion holds the two user supplied bodies of an adapter.
//
// ToIntermediate must be total: a domain value that has no intermediate representation
// has to be rejected before it reaches an adapter. FromIntermediate may fail.
type Conversion[D, I any] interface {
	ToIntermediate(D) I
	FromIntermediate(I) (D, error)
}

// Compose chains Outer (D <-> M) and Inner (M <-> I) into a single D <-> I conversion.
// Decoding runs Inner first and stops at its first error.
type Compose[D, M, I any, Outer Conversion[D, M], Inner Conversion[M, I]] struct{}

func (Compose[D, M, I, Outer, Inner]) ToIntermediate(d D) I {
	var outer Outer
	var inner Inner
	return inner.ToIntermediate(outer.ToIntermediate(d))
}

func (Compose[D, M, I, Outer, Inner]) FromIntermediate(i I) (D, error) {
	var outer Outer
	var inner Inner
	m, err := inner.FromIntermediate(i)
	if err != nil {
		var zero D
		return zero, err
	}
	return outer.FromIntermediate(m)
}

// Identity is the conversion for a domain type that is already its own intermediate.
type Identity[T any] struct{}

func (Identity[T]) ToIntermediate(v T) T { return v }

func (Identity[T]) FromIntermediate(v T) (T, error) { return v, nil }
