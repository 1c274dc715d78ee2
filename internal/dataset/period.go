package dataset

import (
	"strconv"
	"strings"
	"time"
)

// ParsePeriod converts a quarterly period label into the first date of the
// quarter, e.g. "2020-Q1" -> 2020-01-01. Both "2020-Q1" and "2020Q1" forms
// appear in SDMX payloads. Any other shape fails with *DateParseError.
func ParsePeriod(label string) (time.Time, error) {
	normalized := strings.ToUpper(strings.TrimSpace(label))
	normalized = strings.ReplaceAll(normalized, "-Q", "Q")

	parts := strings.SplitN(normalized, "Q", 2)
	if len(parts) != 2 {
		return time.Time{}, &DateParseError{Label: label}
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1000 || year > 9999 {
		return time.Time{}, &DateParseError{Label: label}
	}
	quarter, err := strconv.Atoi(parts[1])
	if err != nil || quarter < 1 || quarter > 4 {
		return time.Time{}, &DateParseError{Label: label}
	}

	month := time.Month((quarter-1)*3 + 1)
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// ParseStartDate parses the caller-supplied startdate filter (yyyy-mm-dd).
// A failure here is the caller's mistake, mapped to a 400 by handlers.
func ParseStartDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(value))
}
