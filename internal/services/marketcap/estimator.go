// Package marketcap estimates the total annual salary expenditure of
// the medical profession in a region from headcounts and reported
// salary figures, splitting a high-earning specialist tier from the
// rest of the population.
package marketcap

import (
	"math"

	"salarycast/internal/models"
)

// Baseline figures for the province of Seville: active doctors per the
// CACM 2024 demographic report, average gross salary per Glassdoor, and
// a top tier covering high-earning specialities (dermatology,
// gynaecology, invasive cardiology).
const (
	DefaultActiveDoctors  = 9631
	DefaultAvgSalary      = 48000.0
	DefaultHighPercentile = 0.05
	DefaultHighSalary     = 110000.0
)

// Params are the inputs to one estimate.
type Params struct {
	ActiveDoctors  int     `json:"n_active"`
	AvgSalary      float64 `json:"avg_salary"`
	HighPercentile float64 `json:"high_percentile"`
	HighSalary     float64 `json:"high_salary"`
}

// DefaultParams returns the baseline Seville scenario.
func DefaultParams() Params {
	return Params{
		ActiveDoctors:  DefaultActiveDoctors,
		AvgSalary:      DefaultAvgSalary,
		HighPercentile: DefaultHighPercentile,
		HighSalary:     DefaultHighSalary,
	}
}

// Result is the payroll breakdown for one scenario.
type Result struct {
	Params

	CountHigh             int     `json:"count_high"`
	CountRemaining        int     `json:"count_remaining"`
	TotalHighPayroll      float64 `json:"total_high_payroll"`
	TotalRemainingPayroll float64 `json:"total_remaining_payroll"`
	TotalMarketCap        float64 `json:"total_market_cap"`
}

// Estimate computes the payroll split: the top HighPercentile of
// doctors earn HighSalary on average, everyone else earns AvgSalary.
func Estimate(p Params) Result {
	countHigh := int(math.Round(float64(p.ActiveDoctors) * p.HighPercentile))
	countRemaining := p.ActiveDoctors - countHigh

	highPayroll := float64(countHigh) * p.HighSalary
	remainingPayroll := float64(countRemaining) * p.AvgSalary

	return Result{
		Params:                p,
		CountHigh:             countHigh,
		CountRemaining:        countRemaining,
		TotalHighPayroll:      highPayroll,
		TotalRemainingPayroll: remainingPayroll,
		TotalMarketCap:        highPayroll + remainingPayroll,
	}
}

// ParamsFromDataset derives estimate inputs from the loaded documents:
// headcount from specialty estimates and average salary from job
// listing midpoints. Fields that cannot be derived keep their baseline
// defaults.
func ParamsFromDataset(ds *models.Dataset) Params {
	p := DefaultParams()

	total := 0
	for _, sp := range ds.Specialties {
		total += sp.DoctorsEst
	}
	if total > 0 {
		p.ActiveDoctors = total
	}

	if len(ds.Jobs) > 0 {
		sum := 0.0
		for i := range ds.Jobs {
			sum += ds.Jobs[i].MidSalary()
		}
		p.AvgSalary = sum / float64(len(ds.Jobs))
	}

	return p
}

// Scenarios runs the estimate across alternative average salaries to
// bracket the uncertainty in the reported figures.
func Scenarios(base Params, avgSalaries []float64) []Result {
	results := make([]Result, 0, len(avgSalaries))
	for _, avg := range avgSalaries {
		p := base
		p.AvgSalary = avg
		results = append(results, Estimate(p))
	}
	return results
}
