package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Column widths in mm for A4 landscape, matching Headers.
var pdfColumnWidths = []float64{45, 28, 32, 38, 24, 30, 38, 42}

func renderPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(doc.Title))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated on %s", doc.GeneratedOn))
	pdf.Ln(10)

	// The core fonts have no rupee glyph.
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range Headers {
		pdf.CellFormat(pdfColumnWidths[i], 7, tr(strings.ReplaceAll(h, "₹", "Rs.")), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, r := range doc.Records {
		for i, v := range r.values() {
			align := "L"
			if i >= 6 {
				align = "R"
			}
			pdf.CellFormat(pdfColumnWidths[i], 6, tr(v), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total Records: %d", doc.Summary.TotalRecords))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Total Wages: Rs. %s", doc.Summary.TotalWages.StringFixed(2)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Unique Employees: %d", doc.Summary.UniqueEmployees))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Sites: %d", doc.Summary.UniqueSites))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
