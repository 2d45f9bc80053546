package postgres

import (
	"testing"

	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/ericlagergren/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyDecimal(t *testing.T) {
	for _, mhz := range []float64{14.320, 7.074, 144.520, 0} {
		got, err := FrequencyDecimal{}.FromIntermediate(FrequencyDecimal{}.ToIntermediate(mhz))
		require.NoError(t, err)
		assert.InDelta(t, mhz, got, 1e-9)
	}

	_, err := FrequencyDecimal{}.FromIntermediate(types.Decimal{})
	assert.Error(t, err)

	_, err = FrequencyDecimal{}.FromIntermediate(types.NewDecimal(decimal.New(-1432, 2)))
	assert.Error(t, err)
}
