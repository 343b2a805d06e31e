package amortization

import (
	"strings"
	"time"

	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/constants"
)

// Frequency identifies how often loan payments are made.
type Frequency string

// Supported payment frequencies.
const (
	Monthly  Frequency = "monthly"
	BiWeekly Frequency = "biweekly"
	Weekly   Frequency = "weekly"
)

// ParseFrequency normalizes a user-supplied frequency string. It accepts the
// display spellings used by the web form ("Monthly", "Bi-Weekly", "Weekly")
// as well as the canonical lowercase values.
func ParseFrequency(s string) (Frequency, bool) {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	switch normalized {
	case "monthly":
		return Monthly, true
	case "biweekly":
		return BiWeekly, true
	case "weekly":
		return Weekly, true
	}
	return Frequency(s), false
}

// Valid reports whether the frequency is one of the supported values.
func (f Frequency) Valid() bool {
	switch f {
	case Monthly, BiWeekly, Weekly:
		return true
	}
	return false
}

// PeriodsPerYear returns the number of payments per year for the frequency.
func (f Frequency) PeriodsPerYear() int {
	switch f {
	case BiWeekly:
		return constants.BiWeeklyPeriodsPerYear
	case Weekly:
		return constants.WeeklyPeriodsPerYear
	default:
		return constants.MonthlyPeriodsPerYear
	}
}

// AddPeriods returns the date offset from start by the given number of
// payment intervals. Monthly payments step by calendar months; bi-weekly and
// weekly payments step by exact 14-day and 7-day intervals.
func (f Frequency) AddPeriods(start time.Time, periods int) time.Time {
	switch f {
	case BiWeekly:
		return start.AddDate(0, 0, 2*constants.DaysPerWeek*periods)
	case Weekly:
		return start.AddDate(0, 0, constants.DaysPerWeek*periods)
	default:
		return start.AddDate(0, periods, 0)
	}
}

// String returns the canonical spelling of the frequency.
func (f Frequency) String() string {
	return string(f)
}
