// Package export renders solved balloons and their cutting patterns as SVG,
// DXF, PDF and XLSX documents. Exporters only read the records they are
// given.
package export

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/Mikanister/baloon-calc-sub001/pkg/analytics"
	"github.com/Mikanister/baloon-calc-sub001/pkg/cost"
	"github.com/Mikanister/baloon-calc-sub001/pkg/geo"
	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
)

// Format names an export document type.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatDXF  Format = "dxf"
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// Layers used by the drawing exporters.
const (
	LayerCut   = "CUT"
	LayerSew   = "SEW"
	LayerNotch = "NOTCH"
)

const (
	mmPerM       = 1000.0
	notchLengthM = 0.005
	panelGapM    = 0.05
)

// UnsupportedFormatError is returned for an unknown export format.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported export format %q (want svg, dxf, pdf or xlsx)", e.Format)
}

// ParseFormat accepts a format name or a file extension.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	switch f {
	case FormatSVG, FormatDXF, FormatPDF, FormatXLSX:
		return f, nil
	}
	return "", &UnsupportedFormatError{Format: s}
}

// ContentType returns the MIME type of documents in format f.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatDXF:
		return "application/dxf"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/octet-stream"
}

// Report bundles everything a document export can show. Only State is
// required; nil or empty parts are left out of the document.
type Report struct {
	Title     string
	Generated time.Time
	State     *solver.State
	Pattern   pattern.Pattern
	Cost      *cost.Breakdown
	Profile   []analytics.HeightPoint
}

// Write renders r in format f. The drawing formats need r.Pattern.
func Write(w io.Writer, f Format, r Report) error {
	switch f {
	case FormatSVG, FormatDXF:
		if r.Pattern == nil {
			return fmt.Errorf("export %s: no pattern to draw", f)
		}
		if f == FormatSVG {
			return SVG(w, r.Pattern, SVGOptions{})
		}
		return DXF(w, r.Pattern)
	case FormatPDF:
		return PDF(w, r)
	case FormatXLSX:
		return XLSX(w, r)
	}
	return &UnsupportedFormatError{Format: string(f)}
}

// path is one drawn line in metres on a layer.
type path struct {
	layer  string
	points []geo.Point2D
	closed bool
}

// paths lays a pattern out flat: a gore is drawn mirrored about x = 0 and
// the two pillow panels side by side.
func paths(p pattern.Pattern, smooth bool) ([]path, error) {
	switch pt := p.(type) {
	case *pattern.GorePattern:
		return gorePaths(pt, smooth), nil
	case *pattern.PanelPattern:
		return panelPaths(pt), nil
	}
	return nil, fmt.Errorf("export: unsupported pattern %T", p)
}

func gorePaths(g *pattern.GorePattern, smooth bool) []path {
	sew := g.Points
	if smooth && len(sew) >= 4 {
		sew = geo.CatmullRomSpline(sew, 4, 0.5).Points
		for i := range sew {
			sew[i].X = math.Max(0, sew[i].X)
		}
	}
	out := []path{{layer: LayerSew, points: geo.NewPolyline(sew...).MirrorClosed().Vertices, closed: true}}
	if g.SeamAllowanceM > 0 {
		out = append(out, path{layer: LayerCut, points: g.CutOutline().Vertices, closed: true})
	}

	tick := math.Max(notchLengthM, g.SeamAllowanceM)
	for _, y := range g.Notches {
		x := g.HalfWidthAt(y)
		out = append(out,
			path{layer: LayerNotch, points: []geo.Point2D{geo.Pt(x, y), geo.Pt(x+tick, y)}},
			path{layer: LayerNotch, points: []geo.Point2D{geo.Pt(-x, y), geo.Pt(-x-tick, y)}},
		)
	}
	return out
}

func panelPaths(pp *pattern.PanelPattern) []path {
	a := pp.SeamAllowanceM
	tick := math.Max(notchLengthM, a)
	var out []path
	for i, panel := range pp.Panels {
		shift := geo.Pt(float64(i)*(panel.LengthM+panelGapM), 0)
		cut := make([]geo.Point2D, len(panel.Outline.Vertices))
		for j, v := range panel.Outline.Vertices {
			cut[j] = v.Add(shift)
		}
		out = append(out, path{layer: LayerCut, points: cut, closed: true})
		if a > 0 {
			sew := geo.Rect(geo.Pt(a, a).Add(shift), pp.LengthM, pp.WidthM)
			out = append(out, path{layer: LayerSew, points: sew.Vertices, closed: true})
		}

		// The opening is marked at both of its ends on the sewing line.
		var ends [2]geo.Point2D
		var dir geo.Point2D
		if pp.OpeningSide == pattern.OpeningWidth {
			ends = [2]geo.Point2D{geo.Pt(a+pp.LengthM, a), geo.Pt(a+pp.LengthM, a+pp.WidthM)}
			dir = geo.Pt(tick, 0)
		} else {
			ends = [2]geo.Point2D{geo.Pt(a, a+pp.WidthM), geo.Pt(a+pp.LengthM, a+pp.WidthM)}
			dir = geo.Pt(0, tick)
		}
		for _, e := range ends {
			e = e.Add(shift)
			out = append(out, path{layer: LayerNotch, points: []geo.Point2D{e, e.Add(dir)}})
		}
	}
	return out
}

// bounds returns the bounding box of every path.
func bounds(ps []path) (geo.Point2D, geo.Point2D) {
	var all geo.Polygon
	for _, p := range ps {
		all.Vertices = append(all.Vertices, p.points...)
	}
	return all.BoundingBox()
}
