package pattern

import (
	"fmt"
	"math"
	"sort"

	"github.com/Mikanister/baloon-calc-sub001/pkg/geo"
	"github.com/Mikanister/baloon-calc-sub001/pkg/profile"
	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
)

// GorePattern is one flattened gore of a surface of revolution. Points run
// up the right half of the gore from base to apex: x is the half-width and
// y the meridian length. Mirroring across x = 0 gives the full gore.
type GorePattern struct {
	ShapeKind       shape.Kind    `json:"shape"`
	NumGores        int           `json:"num_gores"`
	Points          []geo.Point2D `json:"points"`
	CutPoints       []geo.Point2D `json:"cut_points"`
	MaxHalfWidthM   float64       `json:"max_half_width_m"`
	CutHalfWidthM   float64       `json:"cut_half_width_m"`
	MeridianLengthM float64       `json:"meridian_length_m"`
	AxisHeightM     float64       `json:"axis_height_m"`
	GoreAreaM2      float64       `json:"gore_area_m2"`
	TotalAreaM2     float64       `json:"total_area_m2"`
	SeamAllowanceM  float64       `json:"seam_allowance_m"`
	Notches         []float64     `json:"notches_m"`
	Smoothed        bool          `json:"smoothed"`
}

func (g *GorePattern) Shape() shape.Kind  { return g.ShapeKind }
func (g *GorePattern) TotalArea() float64 { return g.TotalAreaM2 }
func (*GorePattern) sealed()              {}

// MaxWidthM is the full width of a gore at its widest parallel.
func (g *GorePattern) MaxWidthM() float64 { return 2 * g.MaxHalfWidthM }

// Outline is the closed sewing line of one gore.
func (g *GorePattern) Outline() geo.Polygon {
	return geo.NewPolyline(g.Points...).MirrorClosed()
}

// CutOutline is the closed cutting line of one gore, seam allowance included.
func (g *GorePattern) CutOutline() geo.Polygon {
	return geo.NewPolyline(g.CutPoints...).MirrorClosed()
}

// HalfWidthAt reads the sewing-line half-width back at meridian length y.
func (g *GorePattern) HalfWidthAt(y float64) float64 {
	return geo.NewPolyline(g.Points...).XAt(y)
}

// SeamLengthM is the sewing length of the whole envelope: one seam per
// gore, each as long as the gore's curved edge.
func (g *GorePattern) SeamLengthM() float64 {
	return float64(g.NumGores) * geo.NewPolyline(g.Points...).Length()
}

// CutArea is the film cut for all gores, seam allowance included.
func (g *GorePattern) CutArea() float64 {
	return float64(g.NumGores) * g.CutOutline().Area()
}

// GenerateGores flattens a profile into a gore pattern. The gore count is
// clamped to [MinGores, MaxGores].
func GenerateGores(p profile.Profile, opts Options) (*GorePattern, error) {
	opts = opts.normalized()
	if p.Length() <= 0 {
		return nil, fmt.Errorf("pattern: empty axial range [%g, %g]", p.ZMin, p.ZMax)
	}
	in := profile.NewIntegrator(p)

	zs := in.AdaptiveAxialSamples(p.ZMin, p.ZMax, opts.NumPoints)
	zs = densify(p, zs, opts.NumPoints)
	ys := in.ArcLengths(zs)

	n := opts.NumGores
	scale := math.Pi / float64(n)
	points := make([]geo.Point2D, len(zs))
	for i, z := range zs {
		points[i] = geo.Pt(p.RadiusAt(z)*scale, ys[i])
	}

	smoothed := false
	if opts.Smooth {
		points, smoothed = smooth(points)
	}

	cut := copyPoints(points)
	if opts.SeamAllowanceM > 0 {
		cut = geo.NewPolyline(points...).OffsetOutward(opts.SeamAllowanceM).Points
	}

	meridian := ys[len(ys)-1]
	notches := make([]float64, len(NotchFractions))
	for i, f := range NotchFractions {
		notches[i] = f * meridian
	}

	total := in.SurfaceArea(areaSampleFactor * opts.NumPoints)
	return &GorePattern{
		NumGores:        n,
		Points:          points,
		CutPoints:       cut,
		MaxHalfWidthM:   geo.NewPolyline(points...).MaxX(),
		CutHalfWidthM:   geo.NewPolyline(cut...).MaxX(),
		MeridianLengthM: meridian,
		AxisHeightM:     p.Length(),
		GoreAreaM2:      total / float64(n),
		TotalAreaM2:     total,
		SeamAllowanceM:  opts.SeamAllowanceM,
		Notches:         notches,
		Smoothed:        smoothed,
	}, nil
}

// densify adds intermediate samples where the radius changes steeply and
// in the last tenth of the range before a pole, where the gore narrows to
// its tip.
func densify(p profile.Profile, zs []float64, numPoints int) []float64 {
	span := p.Length()
	maxR, _ := p.MaxRadius(4 * numPoints)
	if maxR <= 0 || len(zs) < 2 {
		return zs
	}
	steep := 2 * maxR / span
	topPole, bottomPole := p.PoleAtTop(), p.PoleAtBottom()

	out := append([]float64(nil), zs...)
	for i := 0; i+1 < len(zs); i++ {
		a, b := zs[i], zs[i+1]
		gap := b - a
		if gap <= 0 {
			continue
		}
		nearPole := (topPole && b > p.ZMin+0.9*span) || (bottomPole && a < p.ZMin+0.1*span)
		k := 0
		switch {
		case nearPole:
			k = 6
		case math.Abs(p.RadiusAt(b)-p.RadiusAt(a))/gap > steep:
			k = 4
		}
		for j := 1; j <= k; j++ {
			out = append(out, a+gap*float64(j)/float64(k+1))
		}
	}
	sort.Float64s(out)
	dedup := out[:0]
	for _, z := range out {
		if len(dedup) > 0 && z-dedup[len(dedup)-1] <= 1e-12*span {
			continue
		}
		dedup = append(dedup, z)
	}
	return dedup
}
