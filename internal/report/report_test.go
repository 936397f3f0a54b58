package report

import (
	"bytes"
	"testing"

	"salarycast/internal/services/projection"
	"salarycast/internal/services/summary"
)

func TestRender(t *testing.T) {
	cfg := &projection.Config{
		BaseGross:        48000,
		Years:            5,
		TaxBrackets:      []projection.TaxBracket{{Upper: projection.Unbounded, Rate: 0.3}},
		Toggles:          projection.Toggles{Family: true},
		FamilyAnnualCost: 5000,
		InvestmentReturn: 0.04,
		InflationRate:    0.02,
	}
	cfg.ApplyDefaults()

	result, err := projection.NewCalculator(cfg).Run()
	if err != nil {
		t.Fatalf("projection failed: %v", err)
	}
	snap := summary.New().Summarize(cfg, result)

	pdf, err := Render(cfg, result, snap)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("output is not a PDF document")
	}
	if len(pdf) < 1000 {
		t.Errorf("suspiciously small PDF: %d bytes", len(pdf))
	}
}
