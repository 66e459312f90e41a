package spec

// DateTime is the fixed-layout record produced by a successful parse: seven C ints, in field order,
// little endian. It mirrors `struct pdt_precise_local_date_time` from the C interface.
//
// DateTime can be encoded by the [struc] library.
type DateTime struct {
	Year        int32 `struc:"int32,little"`
	Month       int32 `struc:"int32,little"`
	Day         int32 `struc:"int32,little"`
	Hour        int32 `struc:"int32,little"`
	Minute      int32 `struc:"int32,little"`
	Second      int32 `struc:"int32,little"`
	Millisecond int32 `struc:"int32,little"`
}

// DateTimeSize is the packed size of a [DateTime] in bytes
const DateTimeSize = 7 * 4

// Field widths of the date-time grammar, in bytes.
//
// RFC 3339 §5.6 (date-fullyear, date-month, date-mday, time-hour, time-minute, time-second)
const (
	YearDigits   = 4
	MonthDigits  = 2
	DayDigits    = 2
	HourDigits   = 2
	MinuteDigits = 2
	SecondDigits = 2

	// FractionDigits is the number of fraction digits kept; a millisecond has three
	FractionDigits = 3
)

// Literal bytes of the grammar.
//
// RFC 3339 §5.6
const (
	DateSeparator     = '-'
	DateTimeSeparator = 'T'
	TimeSeparator     = ':'
	FractionSeparator = '.'
	UTCDesignator     = 'Z'
	UTCDesignatorLow  = 'z'
	PlusOffset        = '+'
	MinusOffset       = '-'
)

// Lengths of the shortest accepted inputs
const (
	// MinDateLength is the length of a full date, e.g. "2006-01-02"
	MinDateLength = YearDigits + 1 + MonthDigits + 1 + DayDigits

	// MinTimeLength is the length of a partial time without fraction, e.g. "15:04:05"
	MinTimeLength = HourDigits + 1 + MinuteDigits + 1 + SecondDigits

	// MinDateTimeLength is the length of the shortest date-time, e.g. "2006-01-02T15:04:05"
	MinDateTimeLength = MinDateLength + 1 + MinTimeLength

	// MinBasicDateTimeLength is the length of the shortest date-time without separators, e.g. "20060102T150405"
	MinBasicDateTimeLength = YearDigits + MonthDigits + DayDigits + 1 + HourDigits + MinuteDigits + SecondDigits
)

// Value ranges of the time fields. Second allows 60 for leap seconds.
//
// RFC 3339 §5.7
const (
	MaxMonth  = 12
	MaxHour   = 23
	MaxMinute = 59
	MaxSecond = 60
)
