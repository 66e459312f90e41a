package datetimeparse

import (
	"fmt"
	"io"
)

// DescribeError writes a one-line description of code to w, in the form "<label>: <message>". The label and its
// separator are omitted when label is empty. Write errors are ignored.
func DescribeError(w io.Writer, label string, code ErrorCode) {
	if label != "" {
		_, _ = fmt.Fprintf(w, "%s: ", label)
	}

	_, _ = fmt.Fprintln(w, code.String())
}

// Perror is [DescribeError] with the code taken from err, as classified by [CodeOf].
func Perror(w io.Writer, label string, err error) {
	DescribeError(w, label, CodeOf(err))
}
