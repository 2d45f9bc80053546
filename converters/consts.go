package converters

const (
	ErrMsgEmptyValue    = "Value cannot be empty."
	ErrMsgNegative      = "Negative value cannot be represented by an unsigned type."
	ErrMsgBadLength     = "Unexpected value length."
	ErrMsgBadTimeFormat = "Bad time format, expected HH:MM or HHMM"
	ErrMsgBadDateFormat = "Bad date format, expected YYYYMMDD or YYYY-MM-DD"
)
