package report

import (
	"github.com/jung-kurt/gofpdf"
)

// Column width weights match the summary slide layout: acronym 15%,
// definition 60%, slide numbers 25%.
var pdfColumnWeights = [3]float64{0.15, 0.60, 0.25}

// WritePDF renders the rows as a simple one-table PDF. The layout is
// intentionally minimal: one bold title line, a bold header row, one bordered
// row per entry.
func WritePDF(title string, rows []Row, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	usable := pageW - left - right
	widths := [3]float64{
		usable * pdfColumnWeights[0],
		usable * pdfColumnWeights[1],
		usable * pdfColumnWeights[2],
	}

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range [3]string{"Acronym", "Definition", "Slide Numbers"} {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		pdf.CellFormat(widths[0], 6, r.Acronym, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.Definition, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.Slides, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	return pdf.OutputFileAndClose(outPath)
}
