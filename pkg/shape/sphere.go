package shape

import (
	"math"

	"github.com/Mikanister/baloon-calc-sub001/pkg/profile"
)

// SphereParams describes a spherical envelope.
type SphereParams struct {
	Radius float64 `json:"radius"`
}

func (SphereParams) Kind() Kind { return Sphere }

func (p SphereParams) Validate() error {
	return requirePositive(Sphere, "radius", p.Radius)
}

func (p SphereParams) hint() error {
	return requireNonNegative(Sphere, "radius", p.Radius)
}

var sphereEntry = entry{
	name:   "Sphere",
	fields: []string{"radius"},
	zero:   func() Params { return SphereParams{} },
	fromFields: func(f Fields) Params {
		return SphereParams{Radius: f.Radius}
	},
	toFields: func(p Params) Fields {
		return Fields{Radius: p.(SphereParams).Radius}
	},
	profile: func(p Params) profile.Profile {
		r := p.(SphereParams).Radius
		return profile.New(0, 2*r, func(z float64) float64 {
			return math.Sqrt(math.Max(0, z*(2*r-z)))
		}).WithCaps(true, true, r)
	},
	volume: func(p Params) float64 {
		r := p.(SphereParams).Radius
		return 4.0 / 3.0 * math.Pi * r * r * r
	},
	area: func(p Params) float64 {
		r := p.(SphereParams).Radius
		return 4 * math.Pi * r * r
	},
	fromVolume: func(v float64, hint Params) (Params, error) {
		h := hint.(SphereParams)
		if h.Radius > 0 {
			return h, nil
		}
		return SphereParams{Radius: math.Cbrt(3 * v / (4 * math.Pi))}, nil
	},
	charRadius: func(p Params) float64 {
		return p.(SphereParams).Radius
	},
}
