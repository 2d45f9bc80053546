// Package nullable decodes raw driver values through the null types of
// github.com/aarondl/null, which is the null handling the backends share.
package nullable

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap"
	"github.com/aarondl/null/v8"
)

// Required turns the result of a nullable decode into a non-null one.
func Required[T any](p *T, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if p == nil {
		return zero, wrap.ErrUnexpectedNull
	}
	return *p, nil
}

func Bytes(op errors.Op, raw any) (*[]byte, error) {
	var n null.Bytes
	if err := n.Scan(raw); err != nil {
		return nil, errors.New(op).Err(err)
	}
	if !n.Valid {
		return nil, nil
	}
	// The driver may reuse its buffer after Scan returns.
	b := append([]byte(nil), n.Bytes...)
	return &b, nil
}

func Int32(op errors.Op, raw any) (*int32, error) {
	var n null.Int32
	if err := n.Scan(raw); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return n.Ptr(), nil
}

func Int64(op errors.Op, raw any) (*int64, error) {
	var n null.Int64
	if err := n.Scan(raw); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return n.Ptr(), nil
}

func Float64(op errors.Op, raw any) (*float64, error) {
	var n null.Float64
	if err := n.Scan(raw); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return n.Ptr(), nil
}

func Bool(op errors.Op, raw any) (*bool, error) {
	var n null.Bool
	if err := n.Scan(raw); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return n.Ptr(), nil
}

func String(op errors.Op, raw any) (*string, error) {
	var n null.String
	if err := n.Scan(raw); err != nil {
		return nil, errors.New(op).Err(err)
	}
	return n.Ptr(), nil
}

// JSON returns the raw document bytes; validation is left to the caller.
func JSON(op errors.Op, raw any) (*[]byte, error) {
	var n null.JSON
	if err := n.Scan(raw); err != nil {
		return nil, errors.New(op).Err(err)
	}
	if !n.Valid {
		return nil, nil
	}
	b := append([]byte(nil), n.JSON...)
	return &b, nil
}
