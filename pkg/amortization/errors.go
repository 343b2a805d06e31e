package amortization

import "fmt"

// InvalidInputError indicates a malformed or out-of-range loan parameter.
// Computation never starts when one is returned.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid loan parameter %s: %s", e.Field, e.Message)
}

// NonConvergenceError indicates the schedule iteration exceeded its safety
// ceiling without the balance reaching zero. It should be unreachable for
// parameters that pass validation and is surfaced as a fatal computation
// failure, never retried.
type NonConvergenceError struct {
	Periods int
	Balance float64
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("amortization did not converge after %d periods, remaining balance %.2f", e.Periods, e.Balance)
}
