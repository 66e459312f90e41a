package datetimeparse

import (
	"github.com/davejbax/go-datetimeparse/internal/decode"
	"github.com/davejbax/go-datetimeparse/internal/spec"
	"math"
	"strconv"
	"strings"
	"time"
)

// Duration is an ISO 8601 duration in its designator format, PnYnMnWnDTnHnMnS. Components are kept as written and
// never normalised: "PT90M" has 90 minutes and no hours.
type Duration struct {
	Years   int `json:"years,omitempty"`
	Months  int `json:"months,omitempty"`
	Weeks   int `json:"weeks,omitempty"`
	Days    int `json:"days,omitempty"`
	Hours   int `json:"hours,omitempty"`
	Minutes int `json:"minutes,omitempty"`
	Seconds int `json:"seconds,omitempty"`
}

// ParseDuration parses the whole of input as an ISO 8601 duration such as "P1Y2M3DT4H5M6S" or "P2W". Every component
// is optional, but at least one must be present, and a 'T' must be followed by at least one time component. Components
// must appear in the order of the grammar, each at most once, and must not exceed [math.MaxInt32].
//
// Errors are classified like those of [Parse]: a component that is too large wraps [ErrMalformedString], and anything
// else wraps [ErrParse].
func ParseDuration(input []byte) (Duration, error) {
	return parseDuration(input)
}

// ParseDurationString is like [ParseDuration] with s as input.
func ParseDurationString(s string) (Duration, error) {
	return parseDuration(s)
}

func parseDuration[T decode.Input](in T) (Duration, error) {
	if len(in) == 0 {
		return Duration{}, errUnexpectedEnd
	}

	if in[0] != spec.DurationDesignator {
		return Duration{}, errExpectedDurationDesignator
	}

	var (
		d          Duration
		pos        = 1
		last       = -1
		components int
		timePart   bool
		timeStart  int
	)

	for pos < len(in) {
		if in[pos] == spec.DurationTimeDesignator && !timePart {
			timePart = true
			timeStart = components
			pos++
			continue
		}

		value, n, ok := decode.Uint(in, pos, len(in), spec.MaxDurationComponent)
		if n == 0 {
			return Duration{}, errExpectedDigit
		}

		pos += n
		if pos == len(in) {
			return Duration{}, errUnexpectedEnd
		}

		// Date and time units share one ordering, so that 'M' after 'T' ranks after every date unit
		var unit int
		if timePart {
			unit = strings.IndexByte(spec.DurationTimeUnits, in[pos])
			if unit >= 0 {
				unit += len(spec.DurationDateUnits)
			}
		} else {
			unit = strings.IndexByte(spec.DurationDateUnits, in[pos])
		}

		if unit < 0 {
			return Duration{}, errDurationUnit
		}

		if unit <= last {
			return Duration{}, errDurationOrder
		}

		if !ok {
			return Duration{}, errDurationRange
		}

		d.set(unit, value)
		last = unit
		components++
		pos++
	}

	if components == 0 || (timePart && components == timeStart) {
		return Duration{}, errDurationEmpty
	}

	return d, nil
}

// set assigns value to the component at index unit of "YMWDHMS"
func (d *Duration) set(unit int, value int) {
	switch unit {
	case 0:
		d.Years = value
	case 1:
		d.Months = value
	case 2:
		d.Weeks = value
	case 3:
		d.Days = value
	case 4:
		d.Hours = value
	case 5:
		d.Minutes = value
	case 6:
		d.Seconds = value
	}
}

// Fixed converts d to a [time.Duration], taking a day to be exactly 24 hours. ok is false if d has years or months,
// whose length depends on the calendar, or if the result would overflow.
func (d Duration) Fixed() (duration time.Duration, ok bool) {
	if d.Years != 0 || d.Months != 0 {
		return 0, false
	}

	// Every component is at most MaxInt32, so the sum of seconds cannot overflow an int64
	seconds := int64(d.Weeks)*7*24*60*60 +
		int64(d.Days)*24*60*60 +
		int64(d.Hours)*60*60 +
		int64(d.Minutes)*60 +
		int64(d.Seconds)

	if seconds > math.MaxInt64/int64(time.Second) {
		return 0, false
	}

	return time.Duration(seconds) * time.Second, true
}

// String formats d in the designator format, leaving out zero components. The zero Duration is "PT0S".
func (d Duration) String() string {
	if d == (Duration{}) {
		return "PT0S"
	}

	var b strings.Builder
	b.WriteByte(spec.DurationDesignator)

	write := func(value int, unit byte) {
		if value != 0 {
			b.WriteString(strconv.Itoa(value))
			b.WriteByte(unit)
		}
	}

	write(d.Years, 'Y')
	write(d.Months, 'M')
	write(d.Weeks, 'W')
	write(d.Days, 'D')

	if d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 {
		b.WriteByte(spec.DurationTimeDesignator)
		write(d.Hours, 'H')
		write(d.Minutes, 'M')
		write(d.Seconds, 'S')
	}

	return b.String()
}
