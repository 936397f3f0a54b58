package projection

import "math"

// Result holds the projected series, index-aligned by year. All slices
// have identical length equal to Config.Years.
type Result struct {
	Gross              []float64 `json:"gross"`
	Net                []float64 `json:"net"`
	Expenses           []float64 `json:"expenses"`
	FreeCashFlow       []float64 `json:"free_cash_flow"`
	CumulativeNetWorth []float64 `json:"cumulative_net_worth"`

	NetReal                []float64 `json:"net_real"`
	FreeCashFlowReal       []float64 `json:"free_cash_flow_real"`
	CumulativeNetWorthReal []float64 `json:"cumulative_net_worth_real"`
}

// Calculator runs projections against an immutable config snapshot.
type Calculator struct {
	Config *Config
}

// NewCalculator creates a calculator for the given config. The config is
// expected to have had ApplyDefaults and Validate run when it was built.
func NewCalculator(cfg *Config) *Calculator {
	return &Calculator{Config: cfg}
}

// SalarySeries produces years values of pure geometric growth:
// element i is base * (1+inflation)^i. years <= 0 yields an empty series.
func SalarySeries(base float64, years int, inflation float64) []float64 {
	if years <= 0 {
		return []float64{}
	}
	series := make([]float64, years)
	for i := range series {
		series[i] = base * math.Pow(1+inflation, float64(i))
	}
	return series
}

// Run builds the full projection: gross and net income, the expense
// overlay, free cash flow, the compounding net-worth accumulator, and
// inflation-deflated variants. It fails only on malformed loan input;
// everything else degrades to an absent contribution.
func (c *Calculator) Run() (*Result, error) {
	cfg := c.Config
	years := cfg.Years

	gross := SalarySeries(cfg.BaseGross, years, cfg.SalaryInflation)

	// Tax and levy are recomputed independently each year against that
	// year's gross. Brackets stay nominal across the whole horizon;
	// they are deliberately not inflation-indexed.
	net := make([]float64, years)
	for i, g := range gross {
		net[i] = g - ComputeTax(g, cfg.TaxBrackets) - ComputeLevy(g, cfg.SocialSecurityRate, cfg.SocialSecurityCap)
	}

	expenses := make([]float64, years)
	if cfg.Toggles.House {
		if err := overlayMortgage(expenses, cfg.Mortgage); err != nil {
			return nil, err
		}
	}
	if cfg.Toggles.Car {
		if err := overlayCarLoan(expenses, cfg.Car); err != nil {
			return nil, err
		}
	}
	if cfg.Toggles.Family && usable(cfg.FamilyAnnualCost) {
		for i := range expenses {
			expenses[i] += cfg.FamilyAnnualCost
		}
	}

	fcf := make([]float64, years)
	for i := range fcf {
		fcf[i] = net[i] - expenses[i]
	}

	// Contribute-then-compound: the year's cash flow is added first and
	// the entire balance, including that contribution, then grows at the
	// investment return. The ordering changes the numbers materially for
	// non-zero returns and is preserved exactly.
	cnw := make([]float64, years)
	acc := 0.0
	for i := range cnw {
		acc = (acc + fcf[i]) * (1 + cfg.InvestmentReturn)
		cnw[i] = acc
	}

	return &Result{
		Gross:                  gross,
		Net:                    net,
		Expenses:               expenses,
		FreeCashFlow:           fcf,
		CumulativeNetWorth:     cnw,
		NetReal:                deflate(net, cfg.InflationRate),
		FreeCashFlowReal:       deflate(fcf, cfg.InflationRate),
		CumulativeNetWorthReal: deflate(cnw, cfg.InflationRate),
	}, nil
}

// overlayMortgage adds the deposit and one-off purchase costs to the
// start year (when it falls inside the horizon) and the annuity payment
// on the financed principal to every year of the in-horizon repayment
// window. A start year at or beyond the horizon contributes nothing.
func overlayMortgage(expenses []float64, m *LoanSpec) error {
	if m == nil || !usable(m.Price) {
		return nil
	}
	deposit := m.Price * m.DepositFraction
	oneOff := m.Price * m.OneOffCostFraction
	if m.StartYear >= 0 && m.StartYear < len(expenses) {
		expenses[m.StartYear] += deposit + oneOff
	}
	payment, err := AmortizedPayment(m.Price-deposit, m.AnnualRate, m.TermYears)
	if err != nil {
		return err
	}
	overlayWindow(expenses, payment, m.StartYear, m.TermYears)
	return nil
}

// overlayCarLoan adds the annuity payment on a fully financed price to
// the in-horizon repayment window. No deposit or one-off cost applies.
func overlayCarLoan(expenses []float64, car *LoanSpec) error {
	if car == nil || !usable(car.Price) {
		return nil
	}
	payment, err := AmortizedPayment(car.Price, car.AnnualRate, car.TermYears)
	if err != nil {
		return err
	}
	overlayWindow(expenses, payment, car.StartYear, car.TermYears)
	return nil
}

// overlayWindow adds amount to each year from start through
// min(len, start+term)-1 inclusive.
func overlayWindow(expenses []float64, amount float64, start, term int) {
	end := min(len(expenses), start+term)
	for y := max(start, 0); y < end; y++ {
		expenses[y] += amount
	}
}

// deflate divides each year-i value by (1+inflation)^i, expressing the
// series in year-0 purchasing power. Year 0 is unscaled.
func deflate(series []float64, inflation float64) []float64 {
	real := make([]float64, len(series))
	for i, v := range series {
		real[i] = v / math.Pow(1+inflation, float64(i))
	}
	return real
}

// usable reports whether an optional numeric field carries a value the
// expense overlay can act on. Missing or non-numeric fields are treated
// as "contributes nothing", not as errors.
func usable(v float64) bool {
	return v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0)
}
