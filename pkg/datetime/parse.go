// Package datetime provides date and time utility functions.
package datetime

import (
	"time"

	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/constants"
)

const (
	// DateTimeLayout is the format expected for dates in config files and API
	// payloads and is also the output date format.
	DateTimeLayout = constants.DateTimeLayout
)

// ParseDate parses a date string in the standard layout.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateTimeLayout, date)
}

// FormatDate renders a time.Time in the standard layout.
func FormatDate(t time.Time) string {
	return t.Format(DateTimeLayout)
}

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}
