package pdf

import (
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"datadash/domain/core"
	"datadash/domain/report"
)

// Renderer materializes report documents as A4 PDF files
type Renderer struct{}

// NewRenderer creates a new PDF rendering sink
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render writes the document to path, overwriting any previous file. A failed
// render removes the partial file before returning so readers never see a
// corrupt report.
func (r *Renderer) Render(doc *report.Document, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	r.writeTitleBlock(pdf, doc)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Insights Summary", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, section := range doc.Sections {
		r.writeSection(pdf, section)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: %v", core.ErrRenderingFailure, err)
	}
	return nil
}

func (r *Renderer) writeTitleBlock(pdf *fpdf.Fpdf, doc *report.Document) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, fmt.Sprintf("Dataset Report: %s", doc.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	meta := []string{
		fmt.Sprintf("Filename: %s", doc.Filename),
		fmt.Sprintf("Dataset ID: %s", doc.DatasetID),
		fmt.Sprintf("Upload Date: %s", doc.UploadDate),
	}
	for _, line := range meta {
		pdf.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func (r *Renderer) writeSection(pdf *fpdf.Fpdf, section report.Section) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, section.Column, "", 1, "L", false, 0, "")

	colWidth := 70.0

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(128, 128, 128)
	pdf.SetTextColor(245, 245, 245)
	pdf.CellFormat(colWidth, 7, "Metric", "1", 0, "L", true, 0, "")
	pdf.CellFormat(colWidth, 7, "Value", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, row := range section.Rows {
		pdf.CellFormat(colWidth, 6, row.Metric, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidth, 6, row.Value, "1", 1, "L", false, 0, "")
	}
	pdf.Ln(5)
}
