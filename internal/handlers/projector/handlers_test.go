package projector

import (
	"math"
	"net/http/httptest"
	"testing"

	"salarycast/internal/models"
)

func testDataset() *models.Dataset {
	upper := 20000.0
	return &models.Dataset{
		Finance: models.FinanceParams{
			TaxBrackets: []models.WireBracket{
				{UpperBound: &upper, Rate: 0.2},
				{UpperBound: nil, Rate: 0.4},
			},
			SocialSecurityRate: 0.06,
			SocialSecurityCap:  56646,
			MortgageDefaults: models.LoanDefaults{
				DepositFraction:    0.2,
				OneOffCostFraction: 0.1,
				AnnualRate:         0.03,
				TermYears:          30,
			},
			CarDefaults:      models.LoanDefaults{AnnualRate: 0.05, TermYears: 5},
			SalaryInflation:  0.02,
			InvestmentReturn: 0.04,
			InflationRate:    0.02,
		},
	}
}

func TestBuildConfig_FinanceDefaults(t *testing.T) {
	h := New(testDataset())
	cfg, err := h.buildConfig(&Request{BaseGross: 48000, Years: 10})
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}

	if cfg.SalaryInflation != 0.02 || cfg.InvestmentReturn != 0.04 || cfg.InflationRate != 0.02 {
		t.Errorf("finance defaults not applied: %+v", cfg)
	}
	if len(cfg.TaxBrackets) != 2 || !math.IsInf(cfg.TaxBrackets[1].Upper, 1) {
		t.Errorf("brackets not converted: %+v", cfg.TaxBrackets)
	}
	if cfg.Mortgage != nil || cfg.Car != nil {
		t.Error("loan specs built without their toggles")
	}
}

func TestBuildConfig_RequestOverrides(t *testing.T) {
	h := New(testDataset())
	inv := 0.07
	cfg, err := h.buildConfig(&Request{
		BaseGross:        48000,
		Years:            10,
		InvestmentReturn: &inv,
		House:            true,
		HousePrice:       200000,
		HouseStartYear:   3,
	})
	if err != nil {
		t.Fatalf("buildConfig failed: %v", err)
	}

	if cfg.InvestmentReturn != 0.07 {
		t.Errorf("investment return = %v, want request override 0.07", cfg.InvestmentReturn)
	}
	// Unset pointer fields keep finance document values.
	if cfg.InflationRate != 0.02 {
		t.Errorf("inflation = %v, want finance default 0.02", cfg.InflationRate)
	}

	m := cfg.Mortgage
	if m == nil {
		t.Fatal("mortgage spec not built")
	}
	if m.Price != 200000 || m.StartYear != 3 {
		t.Errorf("mortgage request fields lost: %+v", m)
	}
	if m.AnnualRate != 0.03 || m.TermYears != 30 || m.DepositFraction != 0.2 {
		t.Errorf("mortgage finance defaults lost: %+v", m)
	}
}

func TestBuildConfig_RejectsInvalid(t *testing.T) {
	h := New(testDataset())
	if _, err := h.buildConfig(&Request{BaseGross: 48000, Years: 0}); err == nil {
		t.Error("years=0 should be rejected")
	}
	if _, err := h.buildConfig(&Request{BaseGross: 48000, Years: 10, House: true, HousePrice: 200000, HouseStartYear: -2}); err == nil {
		t.Error("negative start year should be rejected")
	}
}

func TestRequestFromQuery(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/report.pdf?base_gross=48000&years=10&house=1&house_price=200000&house_start_year=2&family=1&family_annual_cost=5000", nil)

	req, err := requestFromQuery(r)
	if err != nil {
		t.Fatalf("requestFromQuery failed: %v", err)
	}
	if req.BaseGross != 48000 || req.Years != 10 {
		t.Errorf("base fields wrong: %+v", req)
	}
	if !req.House || req.HousePrice != 200000 || req.HouseStartYear != 2 {
		t.Errorf("house fields wrong: %+v", req)
	}
	if !req.Family || req.FamilyAnnualCost != 5000 {
		t.Errorf("family fields wrong: %+v", req)
	}
	if req.Car {
		t.Error("car toggle should default off")
	}
}

func TestRequestFromQuery_BadNumber(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/report.pdf?base_gross=abc", nil)
	if _, err := requestFromQuery(r); err == nil {
		t.Error("expected parse error for non-numeric base_gross")
	}
}
