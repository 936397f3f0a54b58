package projection

import (
	"fmt"
	"math"
)

// Default loan parameters applied when a LoanSpec omits them. These mirror the
// defaults shipped in finance.json so a bare toggle still produces a
// sensible commitment.
const (
	DefaultMortgageDepositFraction = 0.2
	DefaultMortgageOneOffFraction  = 0.1
	DefaultMortgageRate            = 0.03
	DefaultMortgageTermYears       = 30
	DefaultCarRate                 = 0.05
	DefaultCarTermYears            = 5
)

// Unbounded marks a tax bracket with no upper bound or an uncapped levy.
var Unbounded = math.Inf(1)

// TaxBracket is one step of a progressive marginal-rate schedule.
// Upper is the inclusive upper bound of taxable income for this step;
// the final bracket of a valid schedule has Upper == Unbounded.
type TaxBracket struct {
	Upper float64
	Rate  float64
}

// LoanSpec describes a financed purchase: a mortgage (with deposit and
// one-off purchase costs) or a car loan (fully financed).
type LoanSpec struct {
	Price              float64
	DepositFraction    float64 // mortgage only
	OneOffCostFraction float64 // mortgage only
	AnnualRate         float64
	TermYears          int
	StartYear          int // 0-indexed, relative to projection start
}

// Toggles gate each expense mechanism. A disabled toggle removes the
// contribution entirely regardless of whether a spec is present.
type Toggles struct {
	House  bool
	Car    bool
	Family bool
}

// Config is an immutable snapshot of everything the engine needs for one
// projection. It is assembled fresh per invocation from current UI state;
// defaults are applied once by ApplyDefaults, never at use sites.
type Config struct {
	BaseGross       float64
	Years           int
	SalaryInflation float64

	TaxBrackets        []TaxBracket
	SocialSecurityRate float64
	SocialSecurityCap  float64 // Unbounded if uncapped

	Mortgage         *LoanSpec
	Car              *LoanSpec
	FamilyAnnualCost float64
	Toggles          Toggles

	InvestmentReturn float64
	InflationRate    float64
}

// ApplyDefaults fills in omitted loan parameters and normalizes the levy
// cap. It mutates the config in place and is meant to run exactly once,
// when the config is built.
func (c *Config) ApplyDefaults() {
	if c.SocialSecurityCap <= 0 {
		c.SocialSecurityCap = Unbounded
	}
	if m := c.Mortgage; m != nil {
		if m.DepositFraction <= 0 {
			m.DepositFraction = DefaultMortgageDepositFraction
		}
		if m.OneOffCostFraction <= 0 {
			m.OneOffCostFraction = DefaultMortgageOneOffFraction
		}
		if m.AnnualRate <= 0 {
			m.AnnualRate = DefaultMortgageRate
		}
		if m.TermYears <= 0 {
			m.TermYears = DefaultMortgageTermYears
		}
	}
	if car := c.Car; car != nil {
		if car.AnnualRate <= 0 {
			car.AnnualRate = DefaultCarRate
		}
		if car.TermYears <= 0 {
			car.TermYears = DefaultCarTermYears
		}
	}
}

// Validate rejects configurations the engine cannot compute sensibly.
// ComputeTax itself never validates its schedule; callers are expected
// to run Validate when the config is built, not per call.
func (c *Config) Validate() error {
	if c.Years < 1 {
		return fmt.Errorf("projection years must be >= 1, got %d", c.Years)
	}
	if err := ValidateBrackets(c.TaxBrackets); err != nil {
		return err
	}
	if c.Toggles.House && c.Mortgage != nil {
		if err := c.Mortgage.validate("mortgage"); err != nil {
			return err
		}
	}
	if c.Toggles.Car && c.Car != nil {
		if err := c.Car.validate("car"); err != nil {
			return err
		}
	}
	return nil
}

func (l *LoanSpec) validate(name string) error {
	if l.Price <= 0 || math.IsNaN(l.Price) {
		// Missing or non-numeric price means the loan contributes
		// nothing; that is not an error.
		return nil
	}
	if l.TermYears <= 0 {
		return fmt.Errorf("%s term must be > 0 years, got %d", name, l.TermYears)
	}
	if l.StartYear < 0 {
		return fmt.Errorf("%s start year must be >= 0, got %d", name, l.StartYear)
	}
	return nil
}

// ValidateBrackets checks that a schedule has strictly ascending upper
// bounds and an unbounded final bracket. An empty schedule is a valid
// degenerate case (all income untaxed).
func ValidateBrackets(brackets []TaxBracket) error {
	if len(brackets) == 0 {
		return nil
	}
	prev := 0.0
	for i, b := range brackets {
		if b.Rate < 0 || b.Rate > 1 {
			return fmt.Errorf("bracket %d: rate %v outside [0,1]", i, b.Rate)
		}
		if i < len(brackets)-1 && b.Upper <= prev {
			return fmt.Errorf("bracket %d: upper bound %v not above previous bound %v", i, b.Upper, prev)
		}
		prev = b.Upper
	}
	if last := brackets[len(brackets)-1]; !math.IsInf(last.Upper, 1) {
		return fmt.Errorf("final bracket must be unbounded, got upper bound %v", last.Upper)
	}
	return nil
}
