package converters

import (
	"github.com/Station-Manager/errors"
)

// CheckString rejects an empty string.
func CheckString(op errors.Op, src string) (string, error) {
	if src == "" {
		return "", errors.New(op).Msg(ErrMsgEmptyValue)
	}
	return src, nil
}

// CheckNonNegative rejects values below zero.
func CheckNonNegative(op errors.Op, src int64) (int64, error) {
	if src < 0 {
		return 0, errors.New(op).Errorf("%s Got %d", ErrMsgNegative, src)
	}
	return src, nil
}

// CheckLength rejects a byte slice that is not exactly n bytes long.
func CheckLength(op errors.Op, src []byte, n int) ([]byte, error) {
	if len(src) != n {
		return nil, errors.New(op).Errorf("%s Expected %d bytes, got %d", ErrMsgBadLength, n, len(src))
	}
	return src, nil
}
