package shape

import (
	"math"

	"github.com/Mikanister/baloon-calc-sub001/pkg/profile"
)

const (
	pearConeFraction = 0.6
	pearHeightRatio  = 2.5 // height / top radius
	pearBottomRatio  = 0.5 // bottom radius / top radius
	pearSamples      = 2000
)

// PearParams describes a cone widening to a rounded crown.
type PearParams struct {
	Height       float64 `json:"height"`
	TopRadius    float64 `json:"top_radius"`
	BottomRadius float64 `json:"bottom_radius"`
}

func (PearParams) Kind() Kind { return Pear }

func (p PearParams) Validate() error {
	if err := requirePositive(Pear, "height", p.Height); err != nil {
		return err
	}
	if err := requirePositive(Pear, "top_radius", p.TopRadius); err != nil {
		return err
	}
	return requireNonNegative(Pear, "bottom_radius", p.BottomRadius)
}

func (p PearParams) hint() error {
	if err := requireNonNegative(Pear, "height", p.Height); err != nil {
		return err
	}
	if err := requireNonNegative(Pear, "top_radius", p.TopRadius); err != nil {
		return err
	}
	return requireNonNegative(Pear, "bottom_radius", p.BottomRadius)
}

var pearEntry = entry{
	name:   "Pear",
	fields: []string{"height", "top_radius", "bottom_radius"},
	zero:   func() Params { return PearParams{} },
	fromFields: func(f Fields) Params {
		return PearParams{Height: f.Height, TopRadius: f.TopRadius, BottomRadius: f.BottomRadius}
	},
	toFields: func(p Params) Fields {
		pp := p.(PearParams)
		return Fields{Height: pp.Height, TopRadius: pp.TopRadius, BottomRadius: pp.BottomRadius}
	},
	profile: func(p Params) profile.Profile {
		pp := p.(PearParams)
		return pearProfile(pp.Height, pp.TopRadius, pp.BottomRadius)
	},
	volume: func(p Params) float64 {
		pp := p.(PearParams)
		return pearVolume(pp.Height, pp.TopRadius, pp.BottomRadius)
	},
	area: func(p Params) float64 {
		pp := p.(PearParams)
		return profile.NewIntegrator(pearProfile(pp.Height, pp.TopRadius, pp.BottomRadius)).SurfaceArea(pearSamples)
	},
	fromVolume: pearFromVolume,
	charRadius: func(p Params) float64 {
		pp := p.(PearParams)
		return (pp.TopRadius + pp.BottomRadius) / 2
	},
}

// pearProfile is a cone from bottom at z=0 to top at 0.6h, then a circular
// crown of radius top centred at 0.6h, closed by a straight taper that
// reaches r = 0 exactly at z = h. When the crown fits below h the taper is
// its tangent through the apex; when it would overshoot, the crown is left
// at d = span²/top.
func pearProfile(h, top, bottom float64) profile.Profile {
	zc := pearConeFraction * h
	span := h - zc
	// Crown exit point, measured from zc.
	dk := math.Min(top, span) * math.Min(top, span) / math.Max(top, span)
	rk := math.Sqrt(math.Max(0, (top-dk)*(top+dk)))

	return profile.New(0, h, func(z float64) float64 {
		if z <= zc {
			return bottom + (top-bottom)*z/zc
		}
		d := z - zc
		if d <= dk {
			return math.Sqrt(math.Max(0, (top-d)*(top+d)))
		}
		if span-dk <= 0 {
			return 0
		}
		return rk * (span - d) / (span - dk)
	}).WithCaps(true, false, top)
}

func pearVolume(h, top, bottom float64) float64 {
	return profile.NewIntegrator(pearProfile(h, top, bottom)).Volume(pearSamples)
}

// pearFromVolume keeps every given dimension and fills the others from the
// default ratios, scaling the free dimensions until the volume matches.
func pearFromVolume(v float64, hint Params) (Params, error) {
	h := hint.(PearParams)
	hasH, hasT, hasB := h.Height > 0, h.TopRadius > 0, h.BottomRadius > 0

	var build func(s float64) PearParams
	switch {
	case hasH && hasT && hasB:
		return h, nil
	case !hasH && !hasT && !hasB:
		unit := pearVolume(pearHeightRatio, 1, pearBottomRatio)
		s := math.Cbrt(v / unit)
		return PearParams{Height: pearHeightRatio * s, TopRadius: s, BottomRadius: pearBottomRatio * s}, nil
	case hasH && hasT:
		build = func(s float64) PearParams { return PearParams{Height: h.Height, TopRadius: h.TopRadius, BottomRadius: s} }
	case hasH && hasB:
		build = func(s float64) PearParams { return PearParams{Height: h.Height, TopRadius: s, BottomRadius: h.BottomRadius} }
	case hasT && hasB:
		build = func(s float64) PearParams { return PearParams{Height: s, TopRadius: h.TopRadius, BottomRadius: h.BottomRadius} }
	case hasH:
		build = func(s float64) PearParams {
			return PearParams{Height: h.Height, TopRadius: s, BottomRadius: pearBottomRatio * s}
		}
	case hasT:
		build = func(s float64) PearParams {
			return PearParams{Height: s, TopRadius: h.TopRadius, BottomRadius: pearBottomRatio * h.TopRadius}
		}
	default: // bottom only
		build = func(s float64) PearParams {
			return PearParams{Height: pearHeightRatio * s, TopRadius: s, BottomRadius: h.BottomRadius}
		}
	}

	s, ok := solveIncreasing(func(s float64) float64 {
		p := build(s)
		return pearVolume(p.Height, p.TopRadius, p.BottomRadius)
	}, v)
	if !ok {
		return nil, &DegenerateProfileError{Kind: Pear, Field: "volume", Value: v, Reason: "given dimensions already enclose more than this volume"}
	}
	return build(s), nil
}
