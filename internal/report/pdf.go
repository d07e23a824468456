package report

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	apperrors "timecli/internal/errors"
	"timecli/pkg/contracts/domain"
)

// Footer timestamp layout, "HH:MM:SS of DD/MM/YYYY".
const footerTimeLayout = "15:04:05 of 02/01/2006"

// Column widths in millimeters. An A4 page with default margins leaves
// 190mm of printable width.
var pdfColumnWidths = []float64{80, 55, 55}

// PDFWriter renders the formatted report table as a paginated PDF.
type PDFWriter struct{}

// NewPDFWriter creates a new PDF writer instance
func NewPDFWriter() *PDFWriter {
	return &PDFWriter{}
}

// Render writes the report to path, overwriting any existing file.
//
// The document carries the table title as a heading, one table row per
// aggregate, and a footer line on every page with the render timestamp
// taken from the table's GeneratedAt instant. The PDF is produced at a
// temp path and renamed into place on success, so a failed render never
// leaves a partial file at path.
func (w *PDFWriter) Render(table domain.ReportTable, path string) error {
	slog.Info("rendering PDF report",
		slog.String("path", path),
		slog.String("title", table.Title),
		slog.Int("rows", len(table.Rows)))

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewRenderError(path, fmt.Errorf("failed to create directory: %w", err))
	}

	pdf := w.buildDocument(table)

	tmpPath := path + ".tmp"
	if err := pdf.OutputFileAndClose(tmpPath); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewRenderError(path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return apperrors.NewRenderError(path, err)
	}

	return nil
}

func (w *PDFWriter) buildDocument(table domain.ReportTable) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(table.Title, true)

	footer := fmt.Sprintf("Generated at %s", table.GeneratedAt.Format(footerTimeLayout))
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, footer, "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 12, table.Title, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range table.Headers {
		pdf.CellFormat(pdfColumnWidths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range table.Cells() {
		for i, value := range row {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(pdfColumnWidths[i], 7, value, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(table.Rows) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.CellFormat(0, 8, "No entries in the selected period", "", 1, "C", false, 0, "")
	}

	return pdf
}
