package projection

import "math"

// ComputeTax applies a progressive marginal-rate schedule to gross income.
// Each bracket taxes the slice of income between the previous bracket's
// upper bound and its own; iteration stops once the income is exhausted.
//
// The schedule is trusted as-is. A malformed schedule (non-ascending
// bounds, bounded final bracket) yields plausible-but-wrong numbers;
// callers validate with ValidateBrackets at config-build time. An empty
// schedule is a valid degenerate case and taxes nothing.
func ComputeTax(gross float64, brackets []TaxBracket) float64 {
	tax := 0.0
	lower := 0.0
	for _, b := range brackets {
		if lower >= gross {
			break
		}
		upper := math.Min(b.Upper, gross)
		tax += (upper - lower) * b.Rate
		lower = b.Upper
	}
	return tax
}

// ComputeLevy computes a flat social-security contribution on income up
// to cap. Pass Unbounded for an uncapped levy.
func ComputeLevy(gross, rate, cap float64) float64 {
	return math.Min(gross, cap) * rate
}
