package export

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/Mikanister/baloon-calc-sub001/pkg/analytics"
	"github.com/Mikanister/baloon-calc-sub001/pkg/gas"
	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
)

func gore(t *testing.T) *pattern.GorePattern {
	t.Helper()
	p, err := pattern.Generate(shape.SphereParams{Radius: 1}, pattern.Options{NumGores: 8, NumPoints: 30, SeamAllowanceM: 0.01})
	if err != nil {
		t.Fatal(err)
	}
	return p.(*pattern.GorePattern)
}

func panels(t *testing.T) *pattern.PanelPattern {
	t.Helper()
	pp, err := pattern.GeneratePanels(shape.PillowParams{Length: 2, Width: 1, Thickness: 0.5}, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	return pp
}

func report(t *testing.T) Report {
	t.Helper()
	in := solver.Input{
		Gas:         gas.Helium,
		GasVolumeM3: 4,
		Material:    "TPU",
		ThicknessM:  35e-6,
		GroundTempC: 15,
		Shape:       shape.Sphere,
	}
	st, err := solver.StateAt(in)
	if err != nil {
		t.Fatal(err)
	}
	profile, err := analytics.HeightProfile(in, 2000, 1000)
	if err != nil {
		t.Fatal(err)
	}
	return Report{
		Title:     "Test balloon",
		Generated: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		State:     st,
		Pattern:   gore(t),
		Profile:   profile,
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"svg", ".DXF", " pdf ", "xlsx"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q): %v", s, err)
		}
	}
	var ue *UnsupportedFormatError
	if _, err := ParseFormat("png"); !errors.As(err, &ue) {
		t.Errorf("error = %v, want UnsupportedFormatError", err)
	}
}

func TestSVGGore(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, gore(t), SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", `id="CUT"`, `id="SEW"`, `id="NOTCH"`, "<polygon", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
	if n := strings.Count(out, "<polyline"); n != 2*len(pattern.NotchFractions) {
		t.Errorf("got %d notch ticks, want %d", n, 2*len(pattern.NotchFractions))
	}
}

func TestSVGSmoothAndPanels(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, gore(t), SVGOptions{Smooth: true}); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := SVG(&buf, panels(t), SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "<polygon"); n != 4 {
		t.Errorf("panel SVG has %d polygons, want 4", n)
	}
}

func TestSVGViewBoxInMillimetres(t *testing.T) {
	pp := panels(t)
	var buf bytes.Buffer
	if err := SVG(&buf, pp, SVGOptions{MarginMM: 5}); err != nil {
		t.Fatal(err)
	}
	// Two 2.02 m panels with a 50 mm gap, plus margins and opening ticks.
	mn, mx := bounds(panelPaths(pp))
	width := (mx.X-mn.X)*mmPerM + 10
	if !strings.Contains(buf.String(), `width="`+f2(width)+`mm"`) {
		t.Errorf("SVG width should be %.2fmm", width)
	}
	if math.Abs(mn.X) > 1e-12 || mx.X < 4.08 {
		t.Errorf("panel bounds %v..%v", mn, mx)
	}
}

func TestDXF(t *testing.T) {
	var buf bytes.Buffer
	if err := DXF(&buf, gore(t)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "0\nSECTION\n") || !strings.HasSuffix(out, "0\nEOF\n") {
		t.Error("DXF should start with a section and end with EOF")
	}
	for _, want := range []string{"AC1009", "2\nCUT\n", "2\nSEW\n", "2\nNOTCH\n", "POLYLINE", "SEQEND"} {
		if !strings.Contains(out, want) {
			t.Errorf("DXF missing %q", want)
		}
	}
	if n := strings.Count(out, "0\nLINE\n"); n != 2*len(pattern.NotchFractions) {
		t.Errorf("got %d LINE entities, want %d", n, 2*len(pattern.NotchFractions))
	}
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(&buf, report(t)); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not look like a PDF: %q", buf.Bytes()[:8])
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	r := report(t)
	var buf bytes.Buffer
	if err := XLSX(&buf, r); err != nil {
		t.Fatal(err)
	}
	points, err := ReadPatternPoints(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	g := r.Pattern.(*pattern.GorePattern)
	if len(points) != len(g.Points) {
		t.Fatalf("read %d points, want %d", len(points), len(g.Points))
	}
	for i, p := range points {
		if p.Distance(g.Points[i]) > 1e-9 {
			t.Errorf("point %d = %v, want %v", i, p, g.Points[i])
		}
	}
}

func TestReadPatternPointsNeedsSheet(t *testing.T) {
	r := report(t)
	r.Pattern = nil
	var buf bytes.Buffer
	if err := XLSX(&buf, r); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadPatternPoints(bytes.NewReader(buf.Bytes())); err == nil {
		t.Error("expected an error for a workbook without a Pattern sheet")
	}
}

func TestWriteNeedsPattern(t *testing.T) {
	r := report(t)
	r.Pattern = nil
	if err := Write(&bytes.Buffer{}, FormatSVG, r); err == nil {
		t.Error("expected an error drawing without a pattern")
	}
	if err := Write(&bytes.Buffer{}, FormatPDF, r); err != nil {
		t.Errorf("PDF without pattern: %v", err)
	}
}
