package pattern

import (
	"math"

	"gonum.org/v1/gonum/interp"

	"github.com/Mikanister/baloon-calc-sub001/pkg/geo"
)

const minSmoothKnots = 4

// smooth refits the half-width through every other sample with a monotone
// Fritsch-Butland cubic and re-evaluates it at all samples, which irons out
// single-sample faceting without overshoot. The curve is parametrised by
// meridian length when that is strictly increasing and by sample index
// otherwise. The end points are kept exactly. It reports false and returns
// the input unchanged when there are too few samples or the fit fails.
func smooth(points []geo.Point2D) ([]geo.Point2D, bool) {
	n := len(points)
	if n < 2*minSmoothKnots-1 {
		return points, false
	}

	param := make([]float64, n)
	increasing := true
	for i, p := range points {
		param[i] = p.Y
		if i > 0 && p.Y <= points[i-1].Y {
			increasing = false
		}
	}
	if !increasing {
		for i := range param {
			param[i] = float64(i)
		}
	}

	var ks, kx []float64
	for i := 0; i < n; i += 2 {
		ks = append(ks, param[i])
		kx = append(kx, points[i].X)
	}
	if (n-1)%2 != 0 {
		ks = append(ks, param[n-1])
		kx = append(kx, points[n-1].X)
	}

	var fb interp.FritschButland
	if err := fb.Fit(ks, kx); err != nil {
		return points, false
	}

	out := make([]geo.Point2D, n)
	for i, p := range points {
		x := p.X
		if i > 0 && i < n-1 {
			x = math.Max(0, fb.Predict(param[i]))
		}
		out[i] = geo.Pt(x, p.Y)
	}
	return out, true
}
