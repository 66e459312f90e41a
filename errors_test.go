package datetimeparse_test

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-datetimeparse"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestErrorCode_Values(t *testing.T) {
	// These must stay in step with PDT_SUCCESS, PDT_PARSE_ERROR and PDT_MALFORMED_STR
	assert.EqualValues(t, 0, datetimeparse.CodeSuccess)
	assert.EqualValues(t, 1, datetimeparse.CodeParseError)
	assert.EqualValues(t, 2, datetimeparse.CodeMalformedString)
}

func TestCodeOf(t *testing.T) {
	cases := []struct {
		err      error
		expected datetimeparse.ErrorCode
	}{
		{nil, datetimeparse.CodeSuccess},
		{datetimeparse.ErrParse, datetimeparse.CodeParseError},
		{datetimeparse.ErrMalformedString, datetimeparse.CodeMalformedString},
		{fmt.Errorf("reading input: %w", datetimeparse.ErrMalformedString), datetimeparse.CodeMalformedString},
		{errors.New("something else"), datetimeparse.CodeParseError},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, datetimeparse.CodeOf(c.err), "CodeOf should classify %v", c.err)
	}
}

func TestError_Unwrap(t *testing.T) {
	err := &datetimeparse.Error{Kind: datetimeparse.ErrParse, Reason: "expected digit"}

	assert.ErrorIs(t, err, datetimeparse.ErrParse, "Error should unwrap to its kind")
	assert.Equal(t, "parse error: expected digit", err.Error(), "Error should prefix the reason with its kind")
}
