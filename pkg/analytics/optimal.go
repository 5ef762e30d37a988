package analytics

import (
	"math"

	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
)

const (
	scanSteps       = 100
	goldenTolerance = 1.0 // m
	goldenMaxIter   = 100
)

var invPhi = (math.Sqrt(5) - 1) / 2

// Optimum is the height that maximises payload for a fixed gas volume.
type Optimum struct {
	HeightM float64       `json:"optimal_height_m"`
	State   *solver.State `json:"state"`
}

// OptimalHeight scans [0, maxHeightM] on a coarse grid, then refines the
// best bracket by golden-section search. It returns the last NoLiftError
// when no height in range produces lift.
func OptimalHeight(in solver.Input, maxHeightM float64) (*Optimum, error) {
	if maxHeightM <= 0 {
		maxHeightM = DefaultMaxHeightM
	}

	var lastErr error
	payload := func(h float64) float64 {
		st, err := atHeight(in, h)
		if err != nil {
			lastErr = err
			return math.Inf(-1)
		}
		return st.PayloadKg
	}

	step := maxHeightM / scanSteps
	best, bestPayload := -1.0, math.Inf(-1)
	for i := 0; i <= scanSteps; i++ {
		h := float64(i) * step
		if p := payload(h); p > bestPayload {
			best, bestPayload = h, p
		}
	}
	if best < 0 {
		return nil, lastErr
	}

	a := math.Max(0, best-step)
	b := math.Min(maxHeightM, best+step)
	h := goldenSection(payload, a, b)
	if payload(h) < bestPayload {
		h = best
	}

	st, err := atHeight(in, h)
	if err != nil {
		return nil, err
	}
	return &Optimum{HeightM: h, State: st}, nil
}

// goldenSection maximises f on [a, b].
func goldenSection(f func(float64) float64, a, b float64) float64 {
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := f(c), f(d)
	for i := 0; i < goldenMaxIter && b-a > goldenTolerance; i++ {
		if fc >= fd {
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
	}
	if fc >= fd {
		return c
	}
	return d
}
