// Package sqlite holds conversions for the text layouts this project stores dates and
// times in on SQLite.
package sqlite

import (
	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/wrap/converters"
)

// DateText stores a converters.Date as YYYYMMDD text.
// Reading also accepts YYYY-MM-DD so rows written by older tools still load.
// The zero Date is stored as 00000000 and reads back as the zero Date.
type DateText struct{}

func (DateText) ToIntermediate(d converters.Date) string { return d.Compact() }

func (DateText) FromIntermediate(s string) (converters.Date, error) {
	const op errors.Op = "converters.sqlite.DateText.FromIntermediate"
	var zero converters.Date
	if s == zero.Compact() || s == zero.String() {
		return zero, nil
	}
	d, err := converters.ParseDate(op, s)
	if err != nil {
		return converters.Date{}, errors.New(op).Err(err).Msg(converters.ErrMsgBadDateFormat)
	}
	return d, nil
}

// ClockText stores a converters.Clock as HHMM text. Reading also accepts HH:MM.
type ClockText struct{}

func (ClockText) ToIntermediate(c converters.Clock) string { return c.Compact() }

func (ClockText) FromIntermediate(s string) (converters.Clock, error) {
	const op errors.Op = "converters.sqlite.ClockText.FromIntermediate"
	c, err := converters.ParseClock(op, s)
	if err != nil {
		return converters.Clock{}, errors.New(op).Err(err).Msg(converters.ErrMsgBadTimeFormat)
	}
	return c, nil
}
