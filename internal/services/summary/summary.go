package summary

import (
	"salarycast/internal/services/projection"
)

// Service computes snapshot metrics from a projection result.
type Service struct{}

// New creates a new summary service.
func New() *Service {
	return &Service{}
}

// Snapshot holds the headline figures rendered above the charts.
type Snapshot struct {
	FinalNetWorth     float64 `json:"final_net_worth"`
	FinalNetWorthReal float64 `json:"final_net_worth_real"`

	TotalGross    float64 `json:"total_gross"`
	TotalNet      float64 `json:"total_net"`
	TotalExpenses float64 `json:"total_expenses"`
	TotalTax      float64 `json:"total_tax"`
	TotalLevy     float64 `json:"total_levy"`

	// EffectiveTaxRate is (tax + levy) / gross across the whole horizon.
	EffectiveTaxRate float64 `json:"effective_tax_rate"`

	// FirstDeficitYear is the 0-based first year with negative free
	// cash flow, nil when cash flow stays non-negative.
	FirstDeficitYear *int `json:"first_deficit_year"`

	// BreakEvenYear is the 0-based first year with non-negative
	// cumulative net worth, nil when the balance never recovers.
	BreakEvenYear *int `json:"break_even_year"`
}

// Summarize computes the snapshot for a result produced from cfg. Tax
// and levy are re-derived per year from the gross series; the engine's
// determinism makes this exactly the amount deducted in the result.
func (s *Service) Summarize(cfg *projection.Config, result *projection.Result) *Snapshot {
	snap := &Snapshot{}

	for i, g := range result.Gross {
		snap.TotalGross += g
		snap.TotalNet += result.Net[i]
		snap.TotalExpenses += result.Expenses[i]
		snap.TotalTax += projection.ComputeTax(g, cfg.TaxBrackets)
		snap.TotalLevy += projection.ComputeLevy(g, cfg.SocialSecurityRate, cfg.SocialSecurityCap)

		if result.FreeCashFlow[i] < 0 && snap.FirstDeficitYear == nil {
			year := i
			snap.FirstDeficitYear = &year
		}
		if result.CumulativeNetWorth[i] >= 0 && snap.BreakEvenYear == nil {
			year := i
			snap.BreakEvenYear = &year
		}
	}

	if snap.TotalGross > 0 {
		snap.EffectiveTaxRate = (snap.TotalTax + snap.TotalLevy) / snap.TotalGross
	}

	if n := len(result.CumulativeNetWorth); n > 0 {
		snap.FinalNetWorth = result.CumulativeNetWorth[n-1]
		snap.FinalNetWorthReal = result.CumulativeNetWorthReal[n-1]
	}

	return snap
}
