package amortization

import (
	"fmt"
	"time"

	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/constants"
)

// LoanParameters holds the validated inputs for one schedule computation.
// The term is entered in calendar years; the scheduled period count is
// TermYears times the frequency's periods per year. The annual interest rate
// is a decimal fraction (0.06 = 6%).
type LoanParameters struct {
	Principal          float64
	AnnualInterestRate float64
	TermYears          int
	Frequency          Frequency
	ExtraPayment       float64
	StartDate          time.Time
}

// Validate checks the preconditions for schedule computation and returns an
// InvalidInputError naming the offending field.
func (p LoanParameters) Validate() error {
	if p.Principal <= 0 {
		return &InvalidInputError{Field: "principal", Message: "must be greater than zero"}
	}
	if p.AnnualInterestRate < 0 {
		return &InvalidInputError{Field: "annualInterestRate", Message: "must not be negative"}
	}
	if p.AnnualInterestRate >= constants.MaxAnnualInterestRate {
		return &InvalidInputError{
			Field:   "annualInterestRate",
			Message: fmt.Sprintf("must be a decimal fraction below %.2f", constants.MaxAnnualInterestRate),
		}
	}
	if p.TermYears <= 0 {
		return &InvalidInputError{Field: "termYears", Message: "must be a positive integer"}
	}
	if p.ExtraPayment < 0 {
		return &InvalidInputError{Field: "extraPayment", Message: "must not be negative"}
	}
	if !p.Frequency.Valid() {
		return &InvalidInputError{
			Field:   "frequency",
			Message: fmt.Sprintf("must be one of %s, %s, %s", Monthly, BiWeekly, Weekly),
		}
	}
	if p.StartDate.IsZero() {
		return &InvalidInputError{Field: "startDate", Message: "is required"}
	}
	return nil
}

// ScheduledPeriods returns the scheduled period count before extra payments.
func (p LoanParameters) ScheduledPeriods() int {
	return p.TermYears * p.Frequency.PeriodsPerYear()
}

// PeriodicRate returns the per-period interest rate.
func (p LoanParameters) PeriodicRate() float64 {
	return p.AnnualInterestRate / float64(p.Frequency.PeriodsPerYear())
}
