package profile

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/mat"
)

const (
	slopeStep     = 1e-6
	quadEpsAbs    = 1e-9
	quadEpsRel    = 1e-8
	quadIntervals = 200

	// Curvature gains for adaptive axial sampling.
	patternGain = 3.0
	meshGain    = 2.0
)

// Integrator evaluates geometric integrals of a profile.
type Integrator struct {
	p Profile
}

// NewIntegrator returns an integrator bound to p.
func NewIntegrator(p Profile) *Integrator {
	return &Integrator{p: p}
}

// Profile returns the bound profile.
func (in *Integrator) Profile() Profile {
	return in.p
}

// Slope estimates dr/dz by finite differences. Central differences are used
// inside the range with the step shrunk near the ends so that no stencil
// point leaves the profile; at the ends a one-sided formula is used.
func (in *Integrator) Slope(z float64) float64 {
	p := in.p
	lo, hi := z-p.ZMin, p.ZMax-z
	settings := &fd.Settings{Formula: fd.Central, Step: slopeStep}
	switch {
	case p.Length() <= 0:
		return 0
	case lo <= 0:
		settings.Formula = fd.Forward
		settings.Step = math.Min(slopeStep, p.Length())
		z = p.ZMin
	case hi <= 0:
		settings.Formula = fd.Backward
		settings.Step = math.Min(slopeStep, p.Length())
		z = p.ZMax
	default:
		settings.Step = math.Min(slopeStep, 0.5*math.Min(lo, hi))
	}
	return fd.Derivative(p.RadiusAt, z, settings)
}

func (in *Integrator) arcIntegrand(z float64) float64 {
	return math.Hypot(1, in.Slope(z))
}

// MeridianLength is the arc length of the profile from ZMin to z, computed
// by adaptive Gauss-Kronrod quadrature of sqrt(1+(dr/dz)²). If the adaptive
// estimate is not finite the trapezoid polyline over samples points is used.
func (in *Integrator) MeridianLength(z float64, samples int) float64 {
	p := in.p
	if z <= p.ZMin {
		return 0
	}
	if z > p.ZMax {
		z = p.ZMax
	}
	s, _ := adaptiveQuad(in.arcIntegrand, p.ZMin, z, quadEpsAbs, quadEpsRel, quadIntervals)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return in.MeridianLengthTrapezoid(z, samples)
	}
	return s
}

// MeridianLengthTrapezoid is the polyline length of (r, z) on a uniform grid
// of samples points from ZMin to z.
func (in *Integrator) MeridianLengthTrapezoid(z float64, samples int) float64 {
	p := in.p
	if z <= p.ZMin {
		return 0
	}
	if z > p.ZMax {
		z = p.ZMax
	}
	if samples < 2 {
		samples = 2
	}
	zs := floats.Span(make([]float64, samples), p.ZMin, z)
	s := 0.0
	prevR := p.RadiusAt(zs[0])
	for i := 1; i < len(zs); i++ {
		r := p.RadiusAt(zs[i])
		s += math.Hypot(zs[i]-zs[i-1], r-prevR)
		prevR = r
	}
	return s
}

// TotalMeridianLength is MeridianLength evaluated at ZMax.
func (in *Integrator) TotalMeridianLength(samples int) float64 {
	return in.MeridianLength(in.p.ZMax, samples)
}

// ArcLengths returns the cumulative meridian length at each of the sorted
// axial positions zs. Segments are integrated independently, so the cost is
// linear in len(zs).
func (in *Integrator) ArcLengths(zs []float64) []float64 {
	out := make([]float64, len(zs))
	if len(zs) == 0 {
		return out
	}
	out[0] = in.MeridianLength(zs[0], 2)
	for i := 1; i < len(zs); i++ {
		a, b := zs[i-1], zs[i]
		seg, _ := adaptiveQuad(in.arcIntegrand, a, b, quadEpsAbs, quadEpsRel, quadIntervals)
		if math.IsNaN(seg) || math.IsInf(seg, 0) {
			seg = math.Hypot(b-a, in.p.RadiusAt(b)-in.p.RadiusAt(a))
		}
		out[i] = out[i-1] + seg
	}
	return out
}

// Volume is π∫r²dz by the trapezoidal rule over samples points.
func (in *Integrator) Volume(samples int) float64 {
	p := in.p
	if p.Length() <= 0 {
		return 0
	}
	if samples < 2 {
		samples = 2
	}
	zs := floats.Span(make([]float64, samples), p.ZMin, p.ZMax)
	r2 := make([]float64, samples)
	for i, z := range zs {
		r := p.RadiusAt(z)
		r2[i] = r * r
	}
	return math.Pi * integrate.Trapezoidal(zs, r2)
}

// SurfaceArea is 2π∫r·ds with the midpoint radius of each segment and the
// segment's chord length as ds.
func (in *Integrator) SurfaceArea(samples int) float64 {
	p := in.p
	if p.Length() <= 0 {
		return 0
	}
	if samples < 2 {
		samples = 2
	}
	zs := floats.Span(make([]float64, samples), p.ZMin, p.ZMax)
	area := 0.0
	prevR := p.RadiusAt(zs[0])
	for i := 1; i < len(zs); i++ {
		r := p.RadiusAt(zs[i])
		ds := math.Hypot(zs[i]-zs[i-1], r-prevR)
		area += 2 * math.Pi * 0.5 * (r + prevR) * ds
		prevR = r
	}
	return area
}

// AdaptiveAxialSamples returns an ordered axial grid over [zMin, zMax]:
// target uniform intervals, plus target extra points placed where |dr/dz|
// is large. No gap is wider than (zMax-zMin)/target.
func (in *Integrator) AdaptiveAxialSamples(zMin, zMax float64, target int) []float64 {
	return in.adaptiveSamples(zMin, zMax, target, patternGain)
}

func (in *Integrator) adaptiveSamples(zMin, zMax float64, target int, gain float64) []float64 {
	if target < 2 {
		target = 2
	}
	if zMax <= zMin {
		return []float64{zMin}
	}

	zs := floats.Span(make([]float64, target+1), zMin, zMax)

	intervals := 3 * target
	edges := floats.Span(make([]float64, intervals+1), zMin, zMax)
	slopes := make([]float64, intervals)
	for i := range slopes {
		slopes[i] = math.Abs(in.Slope(0.5 * (edges[i] + edges[i+1])))
	}
	maxSlope := floats.Max(slopes)
	if maxSlope <= 0 || math.IsNaN(maxSlope) || math.IsInf(maxSlope, 0) {
		return zs
	}

	weights := make([]float64, intervals)
	for i, s := range slopes {
		weights[i] = 1 + gain*s/maxSlope
	}
	for i, n := range allocate(weights, target) {
		width := edges[i+1] - edges[i]
		for k := 0; k < n; k++ {
			zs = append(zs, edges[i]+width*(float64(k)+0.5)/float64(n))
		}
	}

	if in.p.RadiusAt(zMax) <= in.p.poleTolerance() {
		span := zMax - zMin
		for _, f := range []float64{0.96, 0.97, 0.98, 0.99} {
			zs = append(zs, zMin+f*span)
		}
	}
	return dedupeSorted(zs, 1e-12*(zMax-zMin))
}

// allocate splits total points across intervals in proportion to weight,
// using largest remainders so the counts sum exactly to total.
func allocate(weights []float64, total int) []int {
	sum := floats.Sum(weights)
	counts := make([]int, len(weights))
	type rem struct {
		idx  int
		frac float64
	}
	rems := make([]rem, len(weights))
	assigned := 0
	for i, w := range weights {
		q := float64(total) * w / sum
		counts[i] = int(math.Floor(q))
		assigned += counts[i]
		rems[i] = rem{idx: i, frac: q - math.Floor(q)}
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].frac > rems[b].frac })
	for i := 0; assigned < total && i < len(rems); i++ {
		counts[rems[i].idx]++
		assigned++
	}
	return counts
}

func dedupeSorted(zs []float64, tol float64) []float64 {
	sort.Float64s(zs)
	out := zs[:0]
	for _, z := range zs {
		if len(out) > 0 && z-out[len(out)-1] <= tol {
			continue
		}
		out = append(out, z)
	}
	return out
}

// Mesh is a rotated profile sampled on a θ × z grid. Rows index z, columns
// index θ.
type Mesh struct {
	X, Y, Z *mat.Dense
	Theta   []float64
	Axial   []float64
}

// Mesh rotates r(z) about the z axis at numTheta azimuth angles over the
// adaptive axial grid. With centerAtOrigin the z coordinates are shifted so
// the middle of the axial range sits at 0.
func (in *Integrator) Mesh(numTheta, numZ int, centerAtOrigin bool) (*Mesh, error) {
	if numTheta < 3 || numZ < 2 {
		return nil, fmt.Errorf("mesh needs at least 3 azimuth and 2 axial samples, got %d×%d", numTheta, numZ)
	}
	p := in.p
	if p.Length() <= 0 {
		return nil, fmt.Errorf("mesh of empty axial range [%g, %g]", p.ZMin, p.ZMax)
	}

	zs := in.adaptiveSamples(p.ZMin, p.ZMax, numZ, meshGain)
	theta := floats.Span(make([]float64, numTheta), 0, 2*math.Pi)

	rows, cols := len(zs), numTheta
	x := mat.NewDense(rows, cols, nil)
	y := mat.NewDense(rows, cols, nil)
	zz := mat.NewDense(rows, cols, nil)

	shift := 0.0
	if centerAtOrigin {
		shift = 0.5 * (p.ZMin + p.ZMax)
	}
	for i, z := range zs {
		r := p.RadiusAt(z)
		for j, th := range theta {
			x.Set(i, j, r*math.Cos(th))
			y.Set(i, j, r*math.Sin(th))
			zz.Set(i, j, z-shift)
		}
	}
	return &Mesh{X: x, Y: y, Z: zz, Theta: theta, Axial: zs}, nil
}
