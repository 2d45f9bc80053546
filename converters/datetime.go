package converters

import (
	"fmt"
	"time"

	"github.com/Station-Manager/errors"
)

// Date is a calendar date without a time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the date t falls on in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// In returns midnight of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) IsZero() bool { return d == Date{} }

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Compact formats d as YYYYMMDD.
func (d Date) Compact() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// ParseDate accepts YYYYMMDD and YYYY-MM-DD.
func ParseDate(op errors.Op, src string) (Date, error) {
	srcVal, err := CheckString(op, src)
	if err != nil {
		return Date{}, err
	}

	var retVal time.Time
	switch len(srcVal) {
	case 8:
		retVal, err = time.Parse("20060102", srcVal)
	case 10:
		if srcVal[4] == '-' && srcVal[7] == '-' {
			retVal, err = time.Parse("2006-01-02", srcVal)
		} else {
			return Date{}, errors.New(op).Msg(ErrMsgBadDateFormat)
		}
	default:
		return Date{}, errors.New(op).Msg(ErrMsgBadDateFormat)
	}

	if err != nil {
		return Date{}, errors.New(op).Err(err).Msg(ErrMsgBadDateFormat)
	}
	return DateOf(retVal), nil
}

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// ClockOf returns the time of day of t in t's location.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute()}
}

// String formats c as HH:MM.
func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute) }

// Compact formats c as HHMM.
func (c Clock) Compact() string { return fmt.Sprintf("%02d%02d", c.Hour, c.Minute) }

// ParseClock accepts HH:MM and HHMM.
func ParseClock(op errors.Op, src string) (Clock, error) {
	srcVal, err := CheckString(op, src)
	if err != nil {
		return Clock{}, err
	}

	var retVal time.Time
	if len(srcVal) == 5 && srcVal[2] == ':' {
		retVal, err = time.Parse("15:04", srcVal)
	} else if len(srcVal) == 4 {
		retVal, err = time.Parse("1504", srcVal)
	} else {
		return Clock{}, errors.New(op).Msg(ErrMsgBadTimeFormat)
	}

	if err != nil {
		return Clock{}, errors.New(op).Err(err).Msg(ErrMsgBadTimeFormat)
	}
	return ClockOf(retVal), nil
}
