package shape

import (
	"math"

	"github.com/Mikanister/baloon-calc-sub001/pkg/profile"
)

// PillowParams describes a flat two-panel envelope. Thickness is the
// inflated depth used for the box volume approximation.
type PillowParams struct {
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Thickness float64 `json:"thickness"`
}

func (PillowParams) Kind() Kind { return Pillow }

func (p PillowParams) Validate() error {
	if err := requirePositive(Pillow, "length", p.Length); err != nil {
		return err
	}
	if err := requirePositive(Pillow, "width", p.Width); err != nil {
		return err
	}
	return requirePositive(Pillow, "thickness", p.Thickness)
}

func (p PillowParams) hint() error {
	if err := requireNonNegative(Pillow, "length", p.Length); err != nil {
		return err
	}
	if err := requireNonNegative(Pillow, "width", p.Width); err != nil {
		return err
	}
	return requireNonNegative(Pillow, "thickness", p.Thickness)
}

var pillowEntry = entry{
	name:   "Pillow",
	fields: []string{"length", "width", "thickness"},
	zero:   func() Params { return PillowParams{} },
	fromFields: func(f Fields) Params {
		return PillowParams{Length: f.Length, Width: f.Width, Thickness: f.Thickness}
	},
	toFields: func(p Params) Fields {
		pp := p.(PillowParams)
		return Fields{Length: pp.Length, Width: pp.Width, Thickness: pp.Thickness}
	},
	// Box approximation: constant half-width over the inflated depth.
	profile: func(p Params) profile.Profile {
		pp := p.(PillowParams)
		half := pp.Width / 2
		return profile.New(0, pp.Thickness, func(float64) float64 { return half })
	},
	volume: func(p Params) float64 {
		pp := p.(PillowParams)
		return pp.Length * pp.Width * pp.Thickness
	},
	area: func(p Params) float64 {
		pp := p.(PillowParams)
		return 2 * pp.Length * pp.Width
	},
	fromVolume: pillowFromVolume,
	charRadius: func(p Params) float64 {
		pp := p.(PillowParams)
		return math.Min(pp.Length, pp.Width) / 2
	},
}

// pillowFromVolume derives any missing side from the remaining volume,
// keeping L:W:T at 3:2:1 for sides that are not given.
func pillowFromVolume(v float64, hint Params) (Params, error) {
	h := hint.(PillowParams)
	hasL, hasW, hasT := h.Length > 0, h.Width > 0, h.Thickness > 0
	switch {
	case hasL && hasW && hasT:
	case hasL && hasW:
		h.Thickness = v / (h.Length * h.Width)
	case hasL && hasT:
		h.Width = v / (h.Length * h.Thickness)
	case hasW && hasT:
		h.Length = v / (h.Width * h.Thickness)
	case hasL:
		h.Width = h.Length * 2 / 3
		h.Thickness = v / (h.Length * h.Width)
	case hasW:
		h.Length = h.Width * 1.5
		h.Thickness = v / (h.Length * h.Width)
	case hasT:
		a := math.Sqrt(v / (6 * h.Thickness))
		h.Length, h.Width = 3*a, 2*a
	default:
		t := math.Cbrt(v / 6)
		h = PillowParams{Length: 3 * t, Width: 2 * t, Thickness: t}
	}
	return h, nil
}
