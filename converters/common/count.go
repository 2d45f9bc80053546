package common

import (
	"math"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap/converters"
)

// Count stores an unsigned 32-bit count in a signed 32-bit column.
//
// Counts above math.MaxInt32 have no int32 representation and are saturated on the way
// in; callers that need the full uint32 range should use Count64.
type Count struct{}

func (Count) ToIntermediate(n uint32) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(n)
}

// FromIntermediate rejects negative values instead of wrapping them.
func (Count) FromIntermediate(v int32) (uint32, error) {
	const op errors.Op = "converters.common.Count.FromIntermediate"
	srcVal, err := converters.CheckNonNegative(op, int64(v))
	if err != nil {
		return 0, errors.New(op).Err(err)
	}
	return uint32(srcVal), nil
}

// Count64 stores an unsigned 32-bit count in a signed 64-bit column without loss.
type Count64 struct{}

func (Count64) ToIntermediate(n uint32) int64 { return int64(n) }

func (Count64) FromIntermediate(v int64) (uint32, error) {
	const op errors.Op = "converters.common.Count64.FromIntermediate"
	srcVal, err := converters.CheckNonNegative(op, v)
	if err != nil {
		return 0, errors.New(op).Err(err)
	}
	if srcVal > math.MaxUint32 {
		return 0, errors.New(op).Errorf("%d overflows uint32", srcVal)
	}
	return uint32(srcVal), nil
}
