package export

import (
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"

	"github.com/sant0-9/corpresearch/internal/plan"
)

// WritePDF renders the plan as a simple titled PDF: one heading per section
// followed by its content.
func WritePDF(p *plan.Plan, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(30, 136, 229)
	pdf.CellFormat(0, 12, "Account Plan", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	for _, s := range p.Sections() {
		pdf.SetFont("Helvetica", "B", 14)
		pdf.SetTextColor(44, 44, 44)
		pdf.CellFormat(0, 9, tr(s.Title), "", 1, "L", false, 0, "")

		pdf.SetFont("Helvetica", "", 11)
		pdf.SetTextColor(51, 51, 51)
		content := s.Content
		if content == "" {
			content = "-"
		}
		pdf.MultiCell(0, 5.5, tr(content), "", "L", false)
		pdf.Ln(3)
	}

	return pdf.Output(w)
}

// Save writes the plan PDF to a file path.
func Save(p *plan.Plan, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WritePDF(p, f); err != nil {
		return err
	}
	return f.Sync()
}
