// Package report renders a projection as a one-page PDF summary.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"salarycast/internal/services/projection"
	"salarycast/internal/services/summary"
)

// pdfText converts UTF-8 text to PDF-safe encoding. The € sign in UTF-8
// is a three-byte sequence, but the standard fonts expect cp1252 where
// it is the single byte 0x80.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "€", "\x80")
}

// formatMoney formats an amount for the report
func formatMoney(amount float64) string {
	return pdfText(fmt.Sprintf("€%.0f", amount))
}

// Render produces the PDF report for one projection.
func Render(cfg *projection.Config, result *projection.Result, snap *summary.Snapshot) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Salary Projection", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Salary Projection Report", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, pdfText(fmt.Sprintf(
		"Base gross %s over %d years; salary inflation %.1f%%, investment return %.1f%%, inflation %.1f%%",
		formatMoney(cfg.BaseGross), cfg.Years,
		cfg.SalaryInflation*100, cfg.InvestmentReturn*100, cfg.InflationRate*100,
	)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Commitments: "+togglesLine(cfg), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	summaryLines := []string{
		fmt.Sprintf("Final net worth: %s (%s in today's money)",
			formatMoney(snap.FinalNetWorth), formatMoney(snap.FinalNetWorthReal)),
		fmt.Sprintf("Total tax %s, total social security %s (effective rate %.1f%%)",
			formatMoney(snap.TotalTax), formatMoney(snap.TotalLevy), snap.EffectiveTaxRate*100),
	}
	if snap.FirstDeficitYear != nil {
		summaryLines = append(summaryLines,
			fmt.Sprintf("First deficit year: Year %d", *snap.FirstDeficitYear+1))
	}
	for _, line := range summaryLines {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)

	renderYearTable(pdf, result)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func togglesLine(cfg *projection.Config) string {
	var parts []string
	if cfg.Toggles.House {
		parts = append(parts, "house")
	}
	if cfg.Toggles.Car {
		parts = append(parts, "car")
	}
	if cfg.Toggles.Family {
		parts = append(parts, "family")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func renderYearTable(pdf *fpdf.Fpdf, result *projection.Result) {
	headers := []string{"Year", "Gross", "Net", "Expenses", "Cash flow", "Net worth", "Net worth (real)"}
	widths := []float64{14, 29, 29, 29, 29, 30, 30}

	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for i := range result.Gross {
		cells := []string{
			fmt.Sprintf("%d", i+1),
			formatMoney(result.Gross[i]),
			formatMoney(result.Net[i]),
			formatMoney(result.Expenses[i]),
			formatMoney(result.FreeCashFlow[i]),
			formatMoney(result.CumulativeNetWorth[i]),
			formatMoney(result.CumulativeNetWorthReal[i]),
		}
		for j, c := range cells {
			align := "R"
			if j == 0 {
				align = "C"
			}
			pdf.CellFormat(widths[j], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}
