package marketcap

import (
	"math"
	"testing"

	"salarycast/internal/models"
)

func TestEstimate_Baseline(t *testing.T) {
	result := Estimate(DefaultParams())

	// round(9631 * 0.05) = 482 high earners.
	if result.CountHigh != 482 {
		t.Errorf("count_high = %d, want 482", result.CountHigh)
	}
	if result.CountRemaining != 9149 {
		t.Errorf("count_remaining = %d, want 9149", result.CountRemaining)
	}

	wantHigh := 482 * 110000.0
	wantRemaining := 9149 * 48000.0
	if result.TotalHighPayroll != wantHigh {
		t.Errorf("high payroll = %v, want %v", result.TotalHighPayroll, wantHigh)
	}
	if result.TotalRemainingPayroll != wantRemaining {
		t.Errorf("remaining payroll = %v, want %v", result.TotalRemainingPayroll, wantRemaining)
	}
	if result.TotalMarketCap != wantHigh+wantRemaining {
		t.Errorf("market cap = %v, want %v", result.TotalMarketCap, wantHigh+wantRemaining)
	}
}

func TestEstimate_CountsAlwaysSumToTotal(t *testing.T) {
	for _, pct := range []float64{0, 0.01, 0.05, 0.5, 1} {
		p := DefaultParams()
		p.HighPercentile = pct
		r := Estimate(p)
		if r.CountHigh+r.CountRemaining != p.ActiveDoctors {
			t.Errorf("percentile %v: counts %d+%d do not sum to %d", pct, r.CountHigh, r.CountRemaining, p.ActiveDoctors)
		}
	}
}

func TestParamsFromDataset(t *testing.T) {
	max := 54000.0
	ds := &models.Dataset{
		Specialties: []models.Specialty{
			{Key: "a", DoctorsEst: 300},
			{Key: "b", DoctorsEst: 200},
		},
		Jobs: []models.Job{
			{SalaryGrossMin: 42000, SalaryGrossMax: &max},
			{SalaryGrossMin: 105000},
		},
	}

	p := ParamsFromDataset(ds)
	if p.ActiveDoctors != 500 {
		t.Errorf("active doctors = %d, want 500", p.ActiveDoctors)
	}
	// Mean of 48000 and 105000.
	if want := 76500.0; math.Abs(p.AvgSalary-want) > 1e-9 {
		t.Errorf("avg salary = %v, want %v", p.AvgSalary, want)
	}
	if p.HighPercentile != DefaultHighPercentile || p.HighSalary != DefaultHighSalary {
		t.Errorf("underivable fields changed: %+v", p)
	}
}

func TestParamsFromDataset_EmptyFallsBackToDefaults(t *testing.T) {
	p := ParamsFromDataset(&models.Dataset{})
	if p != DefaultParams() {
		t.Errorf("empty dataset params = %+v, want defaults", p)
	}
}

func TestScenarios(t *testing.T) {
	results := Scenarios(DefaultParams(), []float64{48000, 55000, 65000})
	if len(results) != 3 {
		t.Fatalf("got %d scenarios, want 3", len(results))
	}
	if !(results[0].TotalMarketCap < results[1].TotalMarketCap && results[1].TotalMarketCap < results[2].TotalMarketCap) {
		t.Error("market cap should grow with average salary")
	}
	for _, r := range results {
		if r.CountHigh != results[0].CountHigh {
			t.Error("scenario sweep must not change the high-earner count")
		}
	}
}
