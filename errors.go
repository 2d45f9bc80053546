package wrap

import (
	"errors"
	"fmt"
)

// ErrUnexpectedNull is returned by codecs when a NULL reaches a non-nullable adapter.
var ErrUnexpectedNull = errors.New("wrap: unexpected NULL for non-nullable column")

// ConversionError reports that a well-formed intermediate value was rejected by the
// domain conversion. Backend decode errors are never wrapped in it.
type ConversionError struct {
	Domain string
	Wire   WireType
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("wrap: converting %s value to %s: %v", e.Wire, e.Domain, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// IsConversionError reports whether err, or anything it wraps, is a *ConversionError.
func IsConversionError(err error) bool {
	var ce *ConversionError
	return errors.As(err, &ce)
}
