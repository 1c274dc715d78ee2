package dataset

import (
	"errors"
	"fmt"
)

// ErrNoData signals an empty observation set. Handlers map it to a 404
// rather than pivoting an empty frame.
var ErrNoData = errors.New("no data returned from BIS")

// DateParseError reports a period label that does not conform to the
// quarterly period grammar. The whole request fails on it: a broken date
// axis corrupts every downstream row.
type DateParseError struct {
	Label string
}

// Error returns the error message string.
func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid period label: %q", e.Label)
}
