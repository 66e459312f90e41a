package decode

import (
	"github.com/davejbax/go-datetimeparse/internal/spec"
)

// Input is the set of types the decoders read from. Strings are accepted so that callers holding a string never need
// to copy it into a byte slice.
type Input interface {
	~string | ~[]byte
}

// IsDigit reports whether c is an ASCII decimal digit
func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// FixedDigits decodes the n bytes of in starting at offset as an unsigned base-10 integer. ok is false if any of those
// bytes is not an ASCII digit. The caller must ensure that offset+n <= len(in).
func FixedDigits[T Input](in T, offset int, n int) (value int, ok bool) {
	for i := offset; i < offset+n; i++ {
		c := in[i]
		if !IsDigit(c) {
			return 0, false
		}

		value = value*10 + int(c-'0')
	}

	return value, true
}

// Millis decodes the run of digits in in[offset:end] as the fractional part of a second, truncated (not rounded) to
// milliseconds. Runs shorter than three digits are right-padded with zeros, so "6" is 600 and "67" is 670. n is the
// length of the run, which may be zero.
func Millis[T Input](in T, offset int, end int) (millis int, n int) {
	for offset+n < end && IsDigit(in[offset+n]) {
		if n < spec.FractionDigits {
			millis = millis*10 + int(in[offset+n]-'0')
		}

		n++
	}

	for i := n; i < spec.FractionDigits; i++ {
		millis *= 10
	}

	return millis, n
}

// Uint decodes the run of digits in in[offset:end] as an unsigned base-10 integer. n is the length of the run, which may
// be zero. ok is false if the value does not fit in limit.
func Uint[T Input](in T, offset int, end int, limit int) (value int, n int, ok bool) {
	ok = true
	for offset+n < end && IsDigit(in[offset+n]) {
		digit := int(in[offset+n] - '0')
		if ok && value > (limit-digit)/10 {
			ok = false
		}

		if ok {
			value = value*10 + digit
		}

		n++
	}

	if !ok {
		value = 0
	}

	return value, n, ok
}
