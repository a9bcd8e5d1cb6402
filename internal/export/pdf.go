package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"

	"github.com/thenoetrevino/billform/internal/models"
)

// column widths in mm, in BillRowHeader order
var pdfWidths = []float64{22, 55, 55, 25, 33}

// WritePDF renders the bills as an A4 table with a grand total line
func WritePDF(w io.Writer, rows []models.BillRow) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bills", true)
	pdf.SetCreator("billform", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Bills")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	for i, h := range models.BillRowHeader {
		pdf.CellFormat(pdfWidths[i], 8, h, "1", 0, align(i), false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	sum := decimal.Zero
	for _, row := range rows {
		for i, cell := range row.Cells() {
			pdf.CellFormat(pdfWidths[i], 7, tr(trim(cell, 30)), "1", 0, align(i), false, 0, "")
		}
		pdf.Ln(-1)
		sum = sum.Add(row.Total)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Grand total: %s (%d bills)", sum.StringFixed(models.MoneyPlaces), len(rows)))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 8)
	pdf.Cell(0, 5, fmt.Sprintf("Generated: %s", time.Now().Format(time.RFC3339)))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	return nil
}

// numeric columns (id, quantity, total) are right aligned
func align(col int) string {
	switch col {
	case 0, 3, 4:
		return "R"
	default:
		return "L"
	}
}

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
