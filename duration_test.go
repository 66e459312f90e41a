package datetimeparse_test

import (
	"github.com/davejbax/go-datetimeparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestParseDuration_Valid(t *testing.T) {
	cases := []struct {
		input    string
		expected datetimeparse.Duration
	}{
		{"P1Y2M3DT4H5M6S", datetimeparse.Duration{Years: 1, Months: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6}},
		{"P2W", datetimeparse.Duration{Weeks: 2}},
		{"P1M", datetimeparse.Duration{Months: 1}},
		{"PT1M", datetimeparse.Duration{Minutes: 1}},
		{"P1MT1M", datetimeparse.Duration{Months: 1, Minutes: 1}},
		{"PT90M", datetimeparse.Duration{Minutes: 90}},
		{"P0D", datetimeparse.Duration{}},
		{"P1Y2W", datetimeparse.Duration{Years: 1, Weeks: 2}},
		{"P007DT0012H", datetimeparse.Duration{Days: 7, Hours: 12}},
		{"PT2147483647S", datetimeparse.Duration{Seconds: 2147483647}},
	}

	for _, c := range cases {
		t.Run(c.input, func(t *testing.T) {
			t.Parallel()

			d, err := datetimeparse.ParseDurationString(c.input)
			require.NoError(t, err, "ParseDuration should accept a valid duration")
			assert.Equal(t, c.expected, d, "ParseDuration should decode each component as written")

			d, err = datetimeparse.ParseDuration([]byte(c.input))
			require.NoError(t, err, "ParseDuration should accept the same input as bytes")
			assert.Equal(t, c.expected, d, "ParseDuration should decode bytes like a string")
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected error
	}{
		{"empty", "", datetimeparse.ErrParse},
		{"no designator", "1Y", datetimeparse.ErrParse},
		{"lowercase designator", "p1Y", datetimeparse.ErrParse},
		{"no components", "P", datetimeparse.ErrParse},
		{"empty time part", "PT", datetimeparse.ErrParse},
		{"empty time part after date", "P1DT", datetimeparse.ErrParse},
		{"missing unit", "P1", datetimeparse.ErrParse},
		{"missing value", "PY", datetimeparse.ErrParse},
		{"negative", "P-1D", datetimeparse.ErrParse},
		{"fraction", "PT1.5S", datetimeparse.ErrParse},
		{"unknown unit", "P1X", datetimeparse.ErrParse},
		{"time unit before T", "P1H", datetimeparse.ErrParse},
		{"date unit after T", "PT1D", datetimeparse.ErrParse},
		{"repeated unit", "P1Y1Y", datetimeparse.ErrParse},
		{"out of order", "P1D1Y", datetimeparse.ErrParse},
		{"second T", "PT1HT1M", datetimeparse.ErrParse},
		{"trailing space", "P1D ", datetimeparse.ErrParse},
		{"too large", "PT2147483648S", datetimeparse.ErrMalformedString},
		{"far too large", "P99999999999999999999999D", datetimeparse.ErrMalformedString},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			d, err := datetimeparse.ParseDurationString(c.input)
			assert.ErrorIs(t, err, c.expected, "ParseDuration should classify %q", c.input)
			assert.Zero(t, d, "ParseDuration should return the zero value on failure")
		})
	}
}

func TestDuration_Fixed(t *testing.T) {
	d := datetimeparse.Duration{Weeks: 1, Days: 1, Hours: 1, Minutes: 1, Seconds: 1}
	fixed, ok := d.Fixed()
	require.True(t, ok, "a duration without years or months should have a fixed length")
	assert.Equal(t, 8*24*time.Hour+time.Hour+time.Minute+time.Second, fixed, "Fixed should sum every component")

	_, ok = datetimeparse.Duration{Months: 1}.Fixed()
	assert.False(t, ok, "a duration with months should not have a fixed length")

	_, ok = datetimeparse.Duration{Weeks: 2147483647}.Fixed()
	assert.False(t, ok, "Fixed should report overflow")
}

func TestDuration_String(t *testing.T) {
	assert.Equal(t, "PT0S", datetimeparse.Duration{}.String(), "the zero duration should format as PT0S")
	assert.Equal(t, "P2W", datetimeparse.Duration{Weeks: 2}.String(), "String should leave out the time part when it is zero")
	assert.Equal(t, "PT90M", datetimeparse.Duration{Minutes: 90}.String(), "String should not normalise components")

	for _, input := range []string{"P1Y2M3DT4H5M6S", "P1MT1M", "P1Y2W"} {
		d, err := datetimeparse.ParseDurationString(input)
		require.NoError(t, err, "ParseDuration should accept %q", input)
		assert.Equal(t, input, d.String(), "String should reproduce the canonical input")
	}
}
