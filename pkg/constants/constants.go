// Package constants provides shared constants for the loan calculator.
package constants

// DateTimeLayout is the format expected for dates in config files and API
// payloads and is also the output date format.
const DateTimeLayout = "2006-01-02"

// Payment frequency constants
const (
	// MonthlyPeriodsPerYear is the number of monthly payments in a year
	MonthlyPeriodsPerYear = 12

	// BiWeeklyPeriodsPerYear is the number of bi-weekly payments in a year
	BiWeeklyPeriodsPerYear = 26

	// WeeklyPeriodsPerYear is the number of weekly payments in a year
	WeeklyPeriodsPerYear = 52

	// DaysPerWeek is used for weekly and bi-weekly date stepping
	DaysPerWeek = 7
)

// Financial constants
const (
	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// MaxAnnualInterestRate is the upper bound on the annual interest rate,
	// expressed as a decimal fraction (1.0 = 100% per year).
	MaxAnnualInterestRate = 1.0

	// ConvergenceMargin is the number of extra iterations allowed beyond the
	// scheduled term before the schedule generator gives up.
	ConvergenceMargin = 2
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML
	// loan files (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// ExportFileName is the attachment name for downloaded schedules
	ExportFileName = "amortization_schedule.csv"
)
