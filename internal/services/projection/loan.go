package projection

import (
	"fmt"
	"math"
)

// AmortizedPayment returns the fixed annual payment that fully amortizes
// principal over termYears at the given annual rate.
//
// A zero rate is a removable singularity of the annuity formula, not an
// approximation: the payment degenerates to straight principal/term.
// A term of zero or less has no meaningful schedule and fails fast
// rather than producing Inf or NaN.
func AmortizedPayment(principal, rate float64, termYears int) (float64, error) {
	if termYears <= 0 {
		return 0, fmt.Errorf("loan term must be > 0 years, got %d", termYears)
	}
	if rate == 0 {
		return principal / float64(termYears), nil
	}
	factor := math.Pow(1+rate, float64(termYears))
	return principal * rate * factor / (factor - 1), nil
}
