package common

import (
	"math"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap/converters"
)

// FrequencyMHz stores a frequency given in MHz as an integer number of Hz.
//
// This is a common conversion that can be used by both sqlite3 and postgres databases
// but is dependent on both databases storing the frequency as an int64.
type FrequencyMHz struct{}

// ToIntermediate rounds to the nearest Hz.
func (FrequencyMHz) ToIntermediate(mhz float64) int64 {
	return int64(math.Round(mhz * 1e6))
}

// FromIntermediate rejects negative frequencies.
func (FrequencyMHz) FromIntermediate(hz int64) (float64, error) {
	const op errors.Op = "converters.common.FrequencyMHz.FromIntermediate"
	srcVal, err := converters.CheckNonNegative(op, hz)
	if err != nil {
		return 0, errors.New(op).Err(err)
	}
	return float64(srcVal) / 1e6, nil
}
