package geo

import (
	"math"
	"testing"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

// --- Point2D tests ---

func TestPointDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if !approxEqual(a.Distance(b), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", a.Distance(b))
	}
}

func TestPointNormalize(t *testing.T) {
	p := Pt(3, 4)
	n := p.Normalize()
	if !approxEqual(n.Length(), 1.0, tolerance) {
		t.Errorf("expected unit length, got %f", n.Length())
	}
	if z := (Point2D{}).Normalize(); z != (Point2D{}) {
		t.Errorf("expected zero vector, got %v", z)
	}
}

func TestPointLerpAndMirror(t *testing.T) {
	mid := Pt(0, 0).Lerp(Pt(10, 10), 0.5)
	if !approxEqual(mid.X, 5, tolerance) || !approxEqual(mid.Y, 5, tolerance) {
		t.Errorf("expected (5,5), got (%f,%f)", mid.X, mid.Y)
	}
	if m := Pt(2, 3).Mirror(); m != Pt(-2, 3) {
		t.Errorf("expected (-2,3), got %v", m)
	}
}

// --- Polygon tests ---

func TestPolygonAreaSquare(t *testing.T) {
	sq := Rect(Origin, 10, 10)
	if !approxEqual(sq.Area(), 100, tolerance) {
		t.Errorf("expected area 100, got %f", sq.Area())
	}
	if sq.SignedArea() <= 0 {
		t.Error("Rect should wind counterclockwise")
	}
}

func TestPolygonAreaTriangle(t *testing.T) {
	tri := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(0, 10))
	if !approxEqual(tri.Area(), 50, tolerance) {
		t.Errorf("expected area 50, got %f", tri.Area())
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	p := NewPolygon(Pt(-5, -3), Pt(10, 0), Pt(7, 12))
	mn, mx := p.BoundingBox()
	if !approxEqual(mn.X, -5, tolerance) || !approxEqual(mn.Y, -3, tolerance) {
		t.Errorf("expected min (-5,-3), got (%f,%f)", mn.X, mn.Y)
	}
	if !approxEqual(mx.X, 10, tolerance) || !approxEqual(mx.Y, 12, tolerance) {
		t.Errorf("expected max (10,12), got (%f,%f)", mx.X, mx.Y)
	}
}

// --- Polyline tests ---

// diamond is the right half of a diamond: centreline, out to x=1, back in.
func diamond() Polyline {
	return NewPolyline(Pt(0, 0), Pt(0.5, 0.5), Pt(1, 1), Pt(0.5, 1.5), Pt(0, 2))
}

func TestPolylineXAt(t *testing.T) {
	pl := diamond()
	cases := []struct{ y, want float64 }{
		{0, 0}, {0.25, 0.25}, {1, 1}, {1.75, 0.25}, {2, 0}, {-1, 0}, {3, 0},
	}
	for _, tc := range cases {
		if got := pl.XAt(tc.y); !approxEqual(got, tc.want, 1e-12) {
			t.Errorf("XAt(%v) = %v, want %v", tc.y, got, tc.want)
		}
	}
	if got := pl.MaxX(); got != 1 {
		t.Errorf("MaxX = %v, want 1", got)
	}
}

func TestOffsetOutwardMovesAwayFromCentreline(t *testing.T) {
	pl := diamond()
	off := pl.OffsetOutward(0.1)
	for i, p := range pl.Points {
		q := off.Points[i]
		if !approxEqual(p.Distance(q), 0.1, 1e-12) {
			t.Errorf("point %d moved %v, want 0.1", i, p.Distance(q))
		}
		dx := q.X - p.X
		switch {
		case p.X > 0 && dx <= 0:
			t.Errorf("point %d: offset x %v should be positive", i, dx)
		case p.X == 0 && dx != 0:
			t.Errorf("point %d on the centreline moved sideways by %v", i, dx)
		}
	}
	if off.Points[0].Y >= 0 || off.Points[4].Y <= 2 {
		t.Errorf("pole points should move along the axis away from the panel, got %v and %v",
			off.Points[0], off.Points[4])
	}
}

func TestOffsetOutwardDegenerateTangent(t *testing.T) {
	pl := NewPolyline(Pt(1, 0), Pt(1, 0))
	off := pl.OffsetOutward(0.5)
	// Zero tangent falls back to vertical, whose normal is horizontal.
	for i, q := range off.Points {
		if !approxEqual(q.X, 1.5, 1e-12) || !approxEqual(q.Y, 0, 1e-12) {
			t.Errorf("point %d = %v, want (1.5, 0)", i, q)
		}
	}
}

func TestMirrorClosedArea(t *testing.T) {
	outline := diamond().MirrorClosed()
	if outline.Len() != 8 {
		t.Fatalf("expected 8 vertices, got %d", outline.Len())
	}
	if !approxEqual(outline.Area(), 2, 1e-12) {
		t.Errorf("expected diamond area 2, got %f", outline.Area())
	}
}

func TestCatmullRomSplinePassesThroughControlPoints(t *testing.T) {
	pts := []Point2D{Pt(0, 0), Pt(100, 0), Pt(200, 100), Pt(300, 100)}
	spline := CatmullRomSpline(pts, 20, 0.5)

	if len(spline.Points) != 61 {
		t.Fatalf("expected 61 points, got %d", len(spline.Points))
	}
	for i, cp := range pts {
		got := spline.Points[i*20]
		if got.Distance(cp) > 1e-9 {
			t.Errorf("control point %d: spline at %v, want %v", i, got, cp)
		}
	}
}

func TestCatmullRomSplineTwoPointsLinear(t *testing.T) {
	spline := CatmullRomSpline([]Point2D{Pt(0, 0), Pt(100, 0)}, 10, 0.5)
	if len(spline.Points) != 11 {
		t.Fatalf("expected 11 points for 2-point spline with 10 samples, got %d", len(spline.Points))
	}
	for i, p := range spline.Points {
		if math.Abs(p.Y) > 0.01 {
			t.Errorf("point %d has Y=%.3f, expected 0 (linear)", i, p.Y)
		}
	}
}

func TestPolylineLength(t *testing.T) {
	pl := NewPolyline(Pt(0, 0), Pt(3, 4), Pt(3, 10))
	if got := pl.Length(); !approxEqual(got, 11, 1e-12) {
		t.Errorf("length = %v, want 11", got)
	}
	if got := NewPolyline(Pt(1, 1)).Length(); got != 0 {
		t.Errorf("single point length = %v, want 0", got)
	}
}
