package postgres

import (
	"testing"
	"time"

	"github.com/Station-Manager/wrap/converters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateTime(t *testing.T) {
	d := converters.Date{Year: 2025, Month: time.November, Day: 8}

	ts := DateTime{}.ToIntermediate(d)
	assert.Equal(t, time.Date(2025, time.November, 8, 0, 0, 0, 0, time.UTC), ts)

	got, err := DateTime{}.FromIntermediate(ts)
	require.NoError(t, err)
	assert.Equal(t, d, got)

	// A timestamp in another zone is read as its UTC date.
	loc := time.FixedZone("UTC+3", 3*60*60)
	got, err = DateTime{}.FromIntermediate(time.Date(2025, time.November, 9, 1, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, d, got)

	_, err = DateTime{}.FromIntermediate(time.Time{})
	assert.Error(t, err)
}

func TestClockTime(t *testing.T) {
	c := converters.Clock{Hour: 14, Minute: 30}

	got, err := ClockTime{}.FromIntermediate(ClockTime{}.ToIntermediate(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)

	_, err = ClockTime{}.FromIntermediate(time.Time{})
	assert.Error(t, err)
}
