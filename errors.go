package datetimeparse

import (
	"errors"
)

// ErrorCode classifies the outcome of a parse. The numeric values match PDT_SUCCESS, PDT_PARSE_ERROR and
// PDT_MALFORMED_STR from the C interface.
type ErrorCode int

const (
	CodeSuccess ErrorCode = iota
	CodeParseError
	CodeMalformedString
)

var errorMessages = [...]string{
	CodeSuccess:         "Success",
	CodeParseError:      "Parse error",
	CodeMalformedString: "Malformed input string",
}

// String returns the fixed human-readable message for the code
func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(errorMessages) {
		return "Unknown error"
	}

	return errorMessages[c]
}

var (
	// ErrParse indicates that the input is not shaped like a date-time: a byte did not match the grammar at its
	// position, a literal separator was missing, or the input ended early.
	ErrParse = errors.New("parse error")

	// ErrMalformedString indicates that the input is shaped like a date-time but denotes a value that does not exist,
	// e.g. month 13, 31 February, hour 24 or an empty fraction.
	ErrMalformedString = errors.New("malformed date-time string")
)

// Error is returned by the parse functions. It always wraps exactly one of [ErrParse] or [ErrMalformedString], so
// callers can branch with [errors.Is] or [CodeOf].
type Error struct {
	Kind   error
	Reason string
}

func (e *Error) Error() string {
	return e.Kind.Error() + ": " + e.Reason
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Every failure site has its own package-level error so that parsing never allocates, even when it fails.
var (
	errInvalidLength       = &Error{ErrParse, "declared length is out of range for the input"}
	errUnexpectedEnd       = &Error{ErrParse, "unexpected end of input"}
	errExpectedDigit       = &Error{ErrParse, "expected digit"}
	errExpectedDateSep     = &Error{ErrParse, "expected '-'"}
	errExpectedTimeSep     = &Error{ErrParse, "expected ':'"}
	errExpectedDateTimeSep = &Error{ErrParse, "expected 'T'"}
	errTrailingBytes       = &Error{ErrParse, "unexpected bytes after date-time"}
	errMonthRange          = &Error{ErrMalformedString, "month out of range"}
	errDayRange            = &Error{ErrMalformedString, "day out of range for month"}
	errHourRange           = &Error{ErrMalformedString, "hour out of range"}
	errMinuteRange         = &Error{ErrMalformedString, "minute out of range"}
	errSecondRange         = &Error{ErrMalformedString, "second out of range"}
	errEmptyFraction       = &Error{ErrMalformedString, "fractional seconds have no digits"}
	errOffsetHourRange     = &Error{ErrMalformedString, "offset hour out of range"}
	errOffsetMinuteRange   = &Error{ErrMalformedString, "offset minute out of range"}
	errNegativeZeroOffset  = &Error{ErrMalformedString, "negative zero offset"}

	errExpectedDurationDesignator = &Error{ErrParse, "expected 'P'"}
	errDurationUnit               = &Error{ErrParse, "unknown duration unit"}
	errDurationOrder              = &Error{ErrParse, "duration units out of order"}
	errDurationEmpty              = &Error{ErrParse, "duration has no components"}
	errDurationRange              = &Error{ErrMalformedString, "duration component out of range"}
)

// CodeOf classifies err. A nil error is [CodeSuccess]; an error wrapping [ErrMalformedString] is
// [CodeMalformedString]; anything else is [CodeParseError].
func CodeOf(err error) ErrorCode {
	switch {
	case err == nil:
		return CodeSuccess
	case errors.Is(err, ErrMalformedString):
		return CodeMalformedString
	default:
		return CodeParseError
	}
}
