package render

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/danielengelsman/Isratest/core"
	"github.com/danielengelsman/Isratest/core/dates"
)

// PDFDigest typesets a language's posts as a printable summary: title,
// localized date, category label, and excerpt per post. Core PDF fonts are
// Latin-1, so Hebrew text degrades to its transliterable subset; the PDF
// digest is primarily useful for the Latin locales.
type PDFDigest struct{}

// NewPDFDigest creates a PDFDigest.
func NewPDFDigest() *PDFDigest {
	return &PDFDigest{}
}

// Render converts the posts into PDF bytes.
func (d *PDFDigest) Render(loc *core.Locale, posts []core.Post) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, tr("isratest digest ("+loc.Code+")"), "", "L", false)
	pdf.Ln(6)

	for _, p := range posts {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.MultiCell(0, 6, tr(p.Title), "", "L", false)

		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		meta := dates.Format(loc, p.Date) + " · " + loc.CategoryLabel(p.Category)
		pdf.MultiCell(0, 5, tr(meta), "", "L", false)
		pdf.SetTextColor(0, 0, 0)

		if p.Excerpt != "" {
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr(p.Excerpt), "", "L", false)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (d *PDFDigest) Extension() string {
	return ".pdf"
}
