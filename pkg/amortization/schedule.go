// Package amortization generates loan amortization schedules.
package amortization

import (
	"math"
	"time"

	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/constants"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/mathutil"
	"go.uber.org/zap"
)

// PaymentPeriod holds the values for a single payment in the schedule. All
// currency fields are rounded to two decimals.
type PaymentPeriod struct {
	Index              int       `json:"index"`
	Date               time.Time `json:"date"`
	Payment            float64   `json:"payment"`
	Principal          float64   `json:"principal"`
	Interest           float64   `json:"interest"`
	RemainingBalance   float64   `json:"remainingBalance"`
	CumulativeInterest float64   `json:"cumulativeInterest"`
}

// Summary aggregates the schedule for display.
type Summary struct {
	BasePayment   float64   `json:"basePayment"`
	TotalPaid     float64   `json:"totalPaid"`
	TotalInterest float64   `json:"totalInterest"`
	PayoffDate    time.Time `json:"payoffDate"`
	PeriodCount   int       `json:"periodCount"`
}

// Schedule is the fully materialized result of one computation.
type Schedule struct {
	Parameters LoanParameters  `json:"parameters"`
	Periods    []PaymentPeriod `json:"periods"`
	Summary    Summary         `json:"summary"`
}

// CalculateBasePayment calculates the fixed per-period payment using the
// standard annuity formula. A zero periodic rate divides the principal evenly
// across the term.
func CalculateBasePayment(principal, periodicRate float64, periods int) float64 {
	if periodicRate == 0 {
		return principal / float64(periods)
	}
	return principal * periodicRate / (1 - math.Pow(1+periodicRate, -float64(periods)))
}

// CalculatePeriodicInterest calculates the interest portion of one payment.
func CalculatePeriodicInterest(remainingBalance, periodicRate float64) float64 {
	return remainingBalance * periodicRate
}

// ScheduleGenerator produces amortization schedules.
type ScheduleGenerator struct {
	logger *zap.Logger
}

// NewScheduleGenerator creates a new generator instance.
func NewScheduleGenerator(logger *zap.Logger) *ScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleGenerator{logger: logger}
}

// ComputeSchedule validates params and generates the full payment schedule
// with a zap.Nop logger. See ScheduleGenerator.Compute.
func ComputeSchedule(params LoanParameters) (*Schedule, error) {
	return NewScheduleGenerator(nil).Compute(params)
}

// Compute validates params and generates the full payment schedule along with
// its summary. The computation is pure; identical parameters always produce
// identical schedules.
func (g *ScheduleGenerator) Compute(params LoanParameters) (*Schedule, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	periods := params.ScheduledPeriods()
	periodicRate := params.PeriodicRate()
	basePayment := CalculateBasePayment(params.Principal, periodicRate, periods)
	ceiling := periods + constants.ConvergenceMargin

	g.logger.Debug("computing amortization schedule",
		zap.String("op", "amortization.Compute"),
		zap.Float64("principal", params.Principal),
		zap.Float64("periodicRate", periodicRate),
		zap.Int("scheduledPeriods", periods),
		zap.Float64("basePayment", basePayment),
	)

	schedule := &Schedule{
		Parameters: params,
		Periods:    make([]PaymentPeriod, 0, periods),
	}

	balance := params.Principal
	emittedPrincipal := 0.00
	cumulativeInterest := 0.00
	totalPaid := 0.00

	for index := 1; ; index++ {
		if index > ceiling {
			return nil, &NonConvergenceError{Periods: index - 1, Balance: mathutil.Round(balance)}
		}

		interest := CalculatePeriodicInterest(balance, periodicRate)
		principalPortion := basePayment - interest + params.ExtraPayment

		period := PaymentPeriod{
			Index:    index,
			Date:     params.Frequency.AddPeriods(params.StartDate, index-1),
			Interest: mathutil.Round(interest),
		}

		if index == periods || !mathutil.IsPositive(balance-principalPortion) {
			// Final period: the scheduled term is up, or the balance is within
			// a cent of this period's principal. Cap the principal so the
			// balance lands on exactly zero, absorbing accumulated rounding
			// drift so the emitted principal portions sum to the original
			// principal.
			period.Principal = mathutil.Round(params.Principal - emittedPrincipal)
			period.Payment = mathutil.Round(period.Principal + period.Interest)
			period.RemainingBalance = 0.00
			balance = 0.00
		} else {
			period.Principal = mathutil.Round(principalPortion)
			period.Payment = mathutil.Round(basePayment + params.ExtraPayment)
			balance -= principalPortion
			period.RemainingBalance = mathutil.Round(balance)
		}

		emittedPrincipal += period.Principal
		cumulativeInterest += period.Interest
		totalPaid += period.Payment
		period.CumulativeInterest = mathutil.Round(cumulativeInterest)
		schedule.Periods = append(schedule.Periods, period)

		if mathutil.IsZero(balance) {
			break
		}
	}

	last := schedule.Periods[len(schedule.Periods)-1]
	schedule.Summary = Summary{
		BasePayment:   mathutil.Round(basePayment),
		TotalPaid:     mathutil.Round(totalPaid),
		TotalInterest: mathutil.Round(cumulativeInterest),
		PayoffDate:    last.Date,
		PeriodCount:   len(schedule.Periods),
	}

	g.logger.Debug("amortization schedule complete",
		zap.String("op", "amortization.Compute"),
		zap.Int("periodCount", schedule.Summary.PeriodCount),
		zap.Float64("totalInterest", schedule.Summary.TotalInterest),
	)

	return schedule, nil
}
