package models

import (
	"fmt"
	"math"

	"salarycast/internal/services/projection"
)

// WireBracket is the JSON form of a tax bracket. A null upper_bound
// means the bracket is unbounded.
type WireBracket struct {
	UpperBound *float64 `json:"upper_bound"`
	Rate       float64  `json:"rate"`
}

// LoanDefaults carries the default parameters for one loan kind from
// finance.json.
type LoanDefaults struct {
	DepositFraction    float64 `json:"deposit_fraction,omitempty"`
	OneOffCostFraction float64 `json:"one_off_cost_fraction,omitempty"`
	AnnualRate         float64 `json:"annual_rate"`
	TermYears          int     `json:"term_years"`
}

// FinanceParams is the configuration document (finance.json): the tax
// schedule, the social-security levy, loan defaults, and the default
// economic assumptions the UI starts from.
type FinanceParams struct {
	TaxBrackets        []WireBracket `json:"tax_brackets"`
	SocialSecurityRate float64       `json:"social_security_rate"`
	SocialSecurityCap  float64       `json:"social_security_cap,omitempty"`

	MortgageDefaults LoanDefaults `json:"mortgage_defaults"`
	CarDefaults      LoanDefaults `json:"car_defaults"`

	SalaryInflation  float64 `json:"salary_inflation"`
	InvestmentReturn float64 `json:"investment_return"`
	InflationRate    float64 `json:"inflation_rate"`
}

// Brackets converts the wire schedule into engine brackets, mapping a
// null upper bound to the unbounded sentinel.
func (fp *FinanceParams) Brackets() []projection.TaxBracket {
	brackets := make([]projection.TaxBracket, len(fp.TaxBrackets))
	for i, wb := range fp.TaxBrackets {
		upper := math.Inf(1)
		if wb.UpperBound != nil {
			upper = *wb.UpperBound
		}
		brackets[i] = projection.TaxBracket{Upper: upper, Rate: wb.Rate}
	}
	return brackets
}

// Validate rejects a malformed configuration document at load time, so
// the engine is never handed a schedule it would silently miscompute.
func (fp *FinanceParams) Validate() error {
	if err := projection.ValidateBrackets(fp.Brackets()); err != nil {
		return fmt.Errorf("tax_brackets: %w", err)
	}
	if fp.SocialSecurityRate < 0 || fp.SocialSecurityRate > 1 {
		return fmt.Errorf("social_security_rate %v outside [0,1]", fp.SocialSecurityRate)
	}
	return nil
}

// Dataset bundles the three independently loaded documents. It is only
// ever constructed complete; a failed load never yields partial data.
type Dataset struct {
	Specialties []Specialty
	Jobs        []Job
	Finance     FinanceParams
}

// SpecialtyByKey returns the specialty with the given key, or nil.
func (d *Dataset) SpecialtyByKey(key string) *Specialty {
	for i := range d.Specialties {
		if d.Specialties[i].Key == key {
			return &d.Specialties[i]
		}
	}
	return nil
}

// JobsForSpecialty returns all job listings tagged with the given
// specialty key; an empty key returns every job.
func (d *Dataset) JobsForSpecialty(key string) []Job {
	if key == "" {
		return d.Jobs
	}
	var jobs []Job
	for _, j := range d.Jobs {
		if j.SpecialtyKey == key {
			jobs = append(jobs, j)
		}
	}
	return jobs
}
