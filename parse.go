package datetimeparse

import (
	"github.com/davejbax/go-datetimeparse/internal/decode"
	"github.com/davejbax/go-datetimeparse/internal/spec"
)

// ParseOptions selects a parsing profile. The zero value is the default, liberal RFC 3339-like grammar used by
// [Parse].
type ParseOptions struct {
	// OptionalSeparators allows the '-' and ':' separators to be left out, so that ISO 8601 basic format such as
	// "20200102T030405Z" is accepted. Each separator is optional on its own.
	OptionalSeparators bool

	// RejectNegativeZero rejects the offset "-00:00", which ISO 8601 does not allow.
	RejectNegativeZero bool

	// Canonical only accepts 'T' between the date and the time, and only an uppercase 'Z' designator.
	Canonical bool

	// RejectTrailing rejects any byte remaining within the declared length after the date-time.
	RejectTrailing bool
}

// Parsing profiles mirroring the common date-time standards
var (
	RFC3339       = ParseOptions{}
	StrictRFC3339 = ParseOptions{Canonical: true, RejectTrailing: true}
	ISO8601       = ParseOptions{OptionalSeparators: true, RejectNegativeZero: true, Canonical: true, RejectTrailing: true}
)

// Parse parses the first length bytes of input as an RFC 3339-like date-time:
//
//	YYYY-MM-DD?hh:mm:ss[.fraction][Z|±hh:mm]
//
// where ? is any single byte (conventionally 'T' or a space). Fractional seconds may have any number of digits and are
// truncated to milliseconds. The timezone designator is validated but not applied: the result is a local date-time.
// Bytes after the date-time are ignored; use [ParseStrict] to reject them.
//
// length is authoritative and input is never read at or beyond it. A length that is negative or larger than
// len(input) is a parse error.
//
// On failure the returned error wraps [ErrParse] or [ErrMalformedString], and the returned [LocalDateTime] is the zero
// value. Parse does not allocate.
func Parse(input []byte, length int) (LocalDateTime, error) {
	return ParseWithOptions(input, length, RFC3339)
}

// ParseStrict is like [Parse], but any byte remaining within length after the date-time is a parse error.
func ParseStrict(input []byte, length int) (LocalDateTime, error) {
	return ParseWithOptions(input, length, ParseOptions{RejectTrailing: true})
}

// ParseWithOptions is like [Parse], with the grammar adjusted by opts.
func ParseWithOptions(input []byte, length int, opts ParseOptions) (LocalDateTime, error) {
	if length < 0 || length > len(input) {
		return LocalDateTime{}, errInvalidLength
	}

	return parseDateTime(input, length, opts)
}

// ParseString is like [Parse] with the whole of s as input.
func ParseString(s string) (LocalDateTime, error) {
	return parseDateTime(s, len(s), RFC3339)
}

// ParseDate parses a full date, YYYY-MM-DD, from the start of input. Trailing bytes are ignored.
func ParseDate(input []byte) (LocalDate, error) {
	if len(input) < spec.MinDateLength {
		return LocalDate{}, errUnexpectedEnd
	}

	s := scanner[[]byte]{in: input, end: len(input)}
	date, err := s.date()
	if err != nil {
		return LocalDate{}, err
	}

	return date, nil
}

// ParseTime parses a time of day without timezone, hh:mm:ss[.fraction], from the start of input. Trailing bytes are
// ignored.
func ParseTime(input []byte) (LocalTime, error) {
	if len(input) < spec.MinTimeLength {
		return LocalTime{}, errUnexpectedEnd
	}

	s := scanner[[]byte]{in: input, end: len(input)}
	tm, err := s.time()
	if err != nil {
		return LocalTime{}, err
	}

	return tm, nil
}

func parseDateTime[T decode.Input](in T, length int, opts ParseOptions) (LocalDateTime, error) {
	minLength := spec.MinDateTimeLength
	if opts.OptionalSeparators {
		minLength = spec.MinBasicDateTimeLength
	}

	if length < minLength {
		return LocalDateTime{}, errUnexpectedEnd
	}

	s := scanner[T]{in: in, end: length, opts: opts}

	date, err := s.date()
	if err != nil {
		return LocalDateTime{}, err
	}

	if opts.Canonical {
		err = s.literal(spec.DateTimeSeparator, errExpectedDateTimeSep)
	} else {
		// Any byte separates the date from the time, not just 'T'
		err = s.skip()
	}

	if err != nil {
		return LocalDateTime{}, err
	}

	tm, err := s.time()
	if err != nil {
		return LocalDateTime{}, err
	}

	if err := s.designator(); err != nil {
		return LocalDateTime{}, err
	}

	if opts.RejectTrailing && s.pos != s.end {
		return LocalDateTime{}, errTrailingBytes
	}

	return LocalDateTime{LocalDate: date, LocalTime: tm}, nil
}

// scanner is a cursor over in[:end]. pos only ever moves forward.
type scanner[T decode.Input] struct {
	in   T
	pos  int
	end  int
	opts ParseOptions
}

func (s *scanner[T]) peek() (byte, bool) {
	if s.pos >= s.end {
		return 0, false
	}

	return s.in[s.pos], true
}

func (s *scanner[T]) skip() error {
	if s.pos >= s.end {
		return errUnexpectedEnd
	}

	s.pos++
	return nil
}

func (s *scanner[T]) literal(c byte, mismatch error) error {
	next, ok := s.peek()
	if !ok {
		return errUnexpectedEnd
	}

	if next != c {
		return mismatch
	}

	s.pos++
	return nil
}

// separator consumes c, or nothing if separators are optional and c is absent
func (s *scanner[T]) separator(c byte, mismatch error) error {
	if s.opts.OptionalSeparators {
		if next, ok := s.peek(); ok && next != c {
			return nil
		}
	}

	return s.literal(c, mismatch)
}

func (s *scanner[T]) digits(n int) (int, error) {
	if s.end-s.pos < n {
		return 0, errUnexpectedEnd
	}

	value, ok := decode.FixedDigits(s.in, s.pos, n)
	if !ok {
		return 0, errExpectedDigit
	}

	s.pos += n
	return value, nil
}

// ranged reads an n digit group and checks that it lies within [lo, hi]
func (s *scanner[T]) ranged(n int, lo int, hi int, outOfRange error) (int, error) {
	value, err := s.digits(n)
	if err != nil {
		return 0, err
	}

	if value < lo || value > hi {
		return 0, outOfRange
	}

	return value, nil
}

func (s *scanner[T]) date() (LocalDate, error) {
	year, err := s.digits(spec.YearDigits)
	if err != nil {
		return LocalDate{}, err
	}

	if err := s.separator(spec.DateSeparator, errExpectedDateSep); err != nil {
		return LocalDate{}, err
	}

	month, err := s.ranged(spec.MonthDigits, 1, spec.MaxMonth, errMonthRange)
	if err != nil {
		return LocalDate{}, err
	}

	if err := s.separator(spec.DateSeparator, errExpectedDateSep); err != nil {
		return LocalDate{}, err
	}

	day, err := s.ranged(spec.DayDigits, 1, spec.DaysInMonth(year, month), errDayRange)
	if err != nil {
		return LocalDate{}, err
	}

	return LocalDate{Year: year, Month: month, Day: day}, nil
}

func (s *scanner[T]) time() (LocalTime, error) {
	hour, err := s.ranged(spec.HourDigits, 0, spec.MaxHour, errHourRange)
	if err != nil {
		return LocalTime{}, err
	}

	if err := s.separator(spec.TimeSeparator, errExpectedTimeSep); err != nil {
		return LocalTime{}, err
	}

	minute, err := s.ranged(spec.MinuteDigits, 0, spec.MaxMinute, errMinuteRange)
	if err != nil {
		return LocalTime{}, err
	}

	if err := s.separator(spec.TimeSeparator, errExpectedTimeSep); err != nil {
		return LocalTime{}, err
	}

	second, err := s.ranged(spec.SecondDigits, 0, spec.MaxSecond, errSecondRange)
	if err != nil {
		return LocalTime{}, err
	}

	var millis int
	if c, ok := s.peek(); ok && c == spec.FractionSeparator {
		s.pos++

		var n int
		millis, n = decode.Millis(s.in, s.pos, s.end)
		if n == 0 {
			return LocalTime{}, errEmptyFraction
		}

		s.pos += n
	}

	return LocalTime{Hour: hour, Minute: minute, Second: second, Millisecond: millis}, nil
}

// designator consumes an optional 'Z' or ±hh:mm. Anything else is left for the caller.
func (s *scanner[T]) designator() error {
	c, ok := s.peek()
	if !ok {
		return nil
	}

	switch {
	case c == spec.UTCDesignator, c == spec.UTCDesignatorLow && !s.opts.Canonical:
		s.pos++
	case c == spec.PlusOffset, c == spec.MinusOffset:
		s.pos++

		hours, err := s.ranged(spec.HourDigits, 0, spec.MaxHour, errOffsetHourRange)
		if err != nil {
			return err
		}

		if err := s.separator(spec.TimeSeparator, errExpectedTimeSep); err != nil {
			return err
		}

		minutes, err := s.ranged(spec.MinuteDigits, 0, spec.MaxMinute, errOffsetMinuteRange)
		if err != nil {
			return err
		}

		if c == spec.MinusOffset && hours == 0 && minutes == 0 && s.opts.RejectNegativeZero {
			return errNegativeZeroOffset
		}
	}

	return nil
}
