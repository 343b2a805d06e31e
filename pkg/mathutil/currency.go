// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/constants"
	"github.com/shopspring/decimal"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Decimal arithmetic avoids the float64 edge cases around .005 boundaries.
func Round(val float64) float64 {
	return decimal.NewFromFloat(val).Round(2).InexactFloat64()
}

// IsZero checks if a value is effectively zero (within currency tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// IsPositive checks if a value is positive (greater than tolerance)
func IsPositive(val float64) bool {
	return val > constants.CurrencyTolerance
}
