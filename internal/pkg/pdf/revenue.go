// Package pdf renders report documents.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// The core fonts only cover Windows-1252; other runes become '?'.
var latin1 = encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder())

var printer = message.NewPrinter(language.English)

// RevenueReport renders the per-employee revenue aggregate as an A4 table.
func RevenueReport(report revenue.ReportResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Revenue report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Revenue by employee")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s (%s to %s)", report.Period, report.From, report.To))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(12, 8, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(110, 8, "Employee", "1", 0, "L", true, 0, "")
	pdf.CellFormat(48, 8, "Total (EGP)", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	grand := decimal.Zero
	for i, row := range report.RevenueByEmployee {
		pdf.CellFormat(12, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(110, 7, encode(row.Employee.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(48, 7, FormatAmount(row.Total), "1", 1, "R", false, 0, "")
		grand = grand.Add(row.Total)
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(122, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(48, 8, FormatAmount(grand), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render revenue report: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatAmount renders d with thousands separators and two decimals.
func FormatAmount(d decimal.Decimal) string {
	d = d.Round(2)
	whole := d.Truncate(0)
	frac := d.Sub(whole).Abs().StringFixed(2)[1:]

	sign := ""
	if d.IsNegative() && whole.IsZero() {
		sign = "-"
	}
	return sign + printer.Sprintf("%d", whole.IntPart()) + frac
}

func encode(s string) string {
	out, err := latin1.String(s)
	if err != nil {
		return s
	}
	return out
}
