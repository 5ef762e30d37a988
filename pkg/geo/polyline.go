package geo

import (
	"math"
	"sort"
)

// Polyline is an ordered sequence of points forming a path.
type Polyline struct {
	Points []Point2D `json:"points"`
}

// NewPolyline creates a polyline from a list of points.
func NewPolyline(pts ...Point2D) Polyline {
	return Polyline{Points: pts}
}

// Length returns the total arc length of the polyline.
func (pl Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl.Points); i++ {
		total += pl.Points[i-1].Distance(pl.Points[i])
	}
	return total
}

// MaxX returns the largest x coordinate, or 0 for an empty polyline.
func (pl Polyline) MaxX() float64 {
	m := 0.0
	for i, p := range pl.Points {
		if i == 0 || p.X > m {
			m = p.X
		}
	}
	return m
}

// XAt linearly interpolates x at height y on a polyline with increasing y.
// Outside the y range it returns 0.
func (pl Polyline) XAt(y float64) float64 {
	pts := pl.Points
	n := len(pts)
	if n == 0 || y < pts[0].Y || y > pts[n-1].Y {
		return 0
	}
	i := sort.Search(n, func(i int) bool { return pts[i].Y >= y })
	if i == 0 {
		return pts[0].X
	}
	a, b := pts[i-1], pts[i]
	if b.Y-a.Y <= 0 {
		return math.Max(a.X, b.X)
	}
	return a.Lerp(b, (y-a.Y)/(b.Y-a.Y)).X
}

// OffsetOutward displaces every point by distance along its normal, with
// the normal oriented away from the centreline x = 0.
//
// The tangent is a central difference of the neighbours (one-sided at the
// ends); a zero tangent falls back to vertical. Points lying on the
// centreline are pushed straight along the axis, down in the lower half of
// the path and up in the upper half, so their x is unchanged.
func (pl Polyline) OffsetOutward(distance float64) Polyline {
	n := len(pl.Points)
	if n < 2 {
		out := make([]Point2D, n)
		copy(out, pl.Points)
		return Polyline{Points: out}
	}

	result := make([]Point2D, n)
	for i, p := range pl.Points {
		var tangent Point2D
		switch i {
		case 0:
			tangent = pl.Points[1].Sub(p)
		case n - 1:
			tangent = p.Sub(pl.Points[n-2])
		default:
			tangent = pl.Points[i+1].Sub(pl.Points[i-1]).Scale(0.5)
		}
		tangent = tangent.Normalize()
		if tangent == (Point2D{}) {
			tangent = Pt(0, 1)
		}

		var normal Point2D
		switch {
		case p.X == 0:
			normal = Pt(0, 1)
			if 2*i < n-1 {
				normal = Pt(0, -1)
			}
		default:
			normal = Pt(-tangent.Y, tangent.X)
			if normal.X*p.X < 0 {
				normal = normal.Scale(-1)
			}
			if normal.X == 0 {
				normal = Pt(math.Copysign(1, p.X), 0)
			}
		}
		result[i] = p.Add(normal.Scale(distance))
	}
	return Polyline{Points: result}
}

// MirrorClosed joins the polyline with its reflection across x = 0 into a
// closed outline: up the right side, then back down the left.
func (pl Polyline) MirrorClosed() Polygon {
	n := len(pl.Points)
	verts := make([]Point2D, 0, 2*n)
	verts = append(verts, pl.Points...)
	for i := n - 1; i >= 0; i-- {
		m := pl.Points[i].Mirror()
		if m == pl.Points[i] {
			continue // on the centreline, already present
		}
		verts = append(verts, m)
	}
	return Polygon{Vertices: verts}
}

// CatmullRomSpline evaluates a Catmull-Rom spline through the given control
// points. It generates samplesPerSegment intermediate points per segment.
// Tension 0.5 gives the classic Catmull-Rom curve; 0 gives straight segments.
// Returns a polyline of sampled points.
func CatmullRomSpline(controlPoints []Point2D, samplesPerSegment int, tension float64) Polyline {
	n := len(controlPoints)
	if n == 0 {
		return Polyline{}
	}
	if n == 1 {
		return NewPolyline(controlPoints[0])
	}
	if samplesPerSegment < 1 {
		samplesPerSegment = 1
	}
	if n == 2 {
		// Degenerate: linear interpolation.
		pts := make([]Point2D, samplesPerSegment+1)
		for i := 0; i <= samplesPerSegment; i++ {
			t := float64(i) / float64(samplesPerSegment)
			pts[i] = controlPoints[0].Lerp(controlPoints[1], t)
		}
		return Polyline{Points: pts}
	}

	// Phantom endpoints reflect the first and last segments.
	extended := make([]Point2D, n+2)
	extended[0] = controlPoints[0].Add(controlPoints[0].Sub(controlPoints[1]))
	copy(extended[1:], controlPoints)
	extended[n+1] = controlPoints[n-1].Add(controlPoints[n-1].Sub(controlPoints[n-2]))

	pts := make([]Point2D, 0, (n-1)*samplesPerSegment+1)
	for i := 1; i < n; i++ {
		p0, p1, p2, p3 := extended[i-1], extended[i], extended[i+1], extended[i+2]
		for j := 0; j < samplesPerSegment; j++ {
			t := float64(j) / float64(samplesPerSegment)
			pts = append(pts, catmullRomPoint(p0, p1, p2, p3, t, tension))
		}
	}
	pts = append(pts, controlPoints[n-1])

	return Polyline{Points: pts}
}

// catmullRomPoint evaluates a single point on a Catmull-Rom spline segment.
func catmullRomPoint(p0, p1, p2, p3 Point2D, t, tension float64) Point2D {
	t2 := t * t
	t3 := t2 * t
	s := tension

	// Cardinal spline basis; passes through p1 at t=0 and p2 at t=1.
	eval := func(a, b, c, d float64) float64 {
		return (-s*a+(2-s)*b+(s-2)*c+s*d)*t3 +
			(2*s*a+(s-3)*b+(3-2*s)*c-s*d)*t2 +
			(-s*a+s*c)*t +
			b
	}
	return Point2D{X: eval(p0.X, p1.X, p2.X, p3.X), Y: eval(p0.Y, p1.Y, p2.Y, p3.Y)}
}
