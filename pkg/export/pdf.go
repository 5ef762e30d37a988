package export

import (
	"io"
	"math"

	"github.com/phpdave11/gofpdf"

	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
)

const (
	pdfLabelWidth = 90.0
	pdfRowHeight  = 6.0
	pdfMaxDrawing = 120.0 // mm
)

// PDF writes an A4 report of r. A gore pattern is drawn to fit below the
// tables.
func PDF(w io.Writer, r Report) error {
	title := r.Title
	if title == "" {
		title = "Balloon Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	if !r.Generated.IsZero() {
		pdf.SetCreationDate(r.Generated)
	}
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	if !r.Generated.IsZero() {
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, "Date: "+r.Generated.Format("2006-01-02"))
		pdf.Ln(8)
	}

	for _, s := range sections(r) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, s.title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		for _, rw := range s.rows {
			pdf.CellFormat(pdfLabelWidth, pdfRowHeight, rw.label, "B", 0, "L", false, 0, "")
			pdf.CellFormat(0, pdfRowHeight, rw.value, "B", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	if g, ok := r.Pattern.(*pattern.GorePattern); ok {
		drawGore(pdf, g)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// drawGore draws the sewing and cutting outlines of one gore on a new page,
// scaled to fit.
func drawGore(pdf *gofpdf.Fpdf, g *pattern.GorePattern) {
	ps := gorePaths(g, false)
	mn, mx := bounds(ps)
	span := math.Max(mx.X-mn.X, mx.Y-mn.Y)
	if span <= 0 {
		return
	}
	scale := pdfMaxDrawing / span

	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Gore outline (not to scale)")
	pdf.Ln(10)

	pageW, _ := pdf.GetPageSize()
	left := (pageW - (mx.X-mn.X)*scale) / 2
	top := pdf.GetY() + 5

	pdf.SetLineWidth(0.2)
	for _, p := range ps {
		pts := make([]gofpdf.PointType, len(p.points))
		for i, v := range p.points {
			pts[i] = gofpdf.PointType{X: left + (v.X-mn.X)*scale, Y: top + (mx.Y-v.Y)*scale}
		}
		switch p.layer {
		case LayerCut:
			pdf.SetDrawColor(0, 0, 0)
		case LayerSew:
			pdf.SetDrawColor(31, 95, 191)
		default:
			pdf.SetDrawColor(192, 57, 43)
		}
		if p.closed {
			pdf.Polygon(pts, "D")
			continue
		}
		for i := 1; i < len(pts); i++ {
			pdf.Line(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y)
		}
	}
}
