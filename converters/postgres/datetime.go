// Package postgres holds conversions for the column types this project uses on
// PostgreSQL.
package postgres

import (
	"time"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap/converters"
)

// DateTime stores a converters.Date as midnight UTC in a DATE or TIMESTAMPTZ column.
type DateTime struct{}

func (DateTime) ToIntermediate(d converters.Date) time.Time { return d.In(time.UTC) }

// FromIntermediate rejects the zero time, which is what an unset column scans to.
func (DateTime) FromIntermediate(t time.Time) (converters.Date, error) {
	const op errors.Op = "converters.postgres.DateTime.FromIntermediate"
	if t.IsZero() {
		return converters.Date{}, errors.New(op).Msg(converters.ErrMsgBadDateFormat)
	}
	return converters.DateOf(t.UTC()), nil
}

// ClockTime stores a converters.Clock in a TIME column.
type ClockTime struct{}

func (ClockTime) ToIntermediate(c converters.Clock) time.Time {
	return time.Date(0, time.January, 1, c.Hour, c.Minute, 0, 0, time.UTC)
}

func (ClockTime) FromIntermediate(t time.Time) (converters.Clock, error) {
	const op errors.Op = "converters.postgres.ClockTime.FromIntermediate"
	if t.IsZero() {
		return converters.Clock{}, errors.New(op).Msg(converters.ErrMsgBadTimeFormat)
	}
	return converters.ClockOf(t.UTC()), nil
}
