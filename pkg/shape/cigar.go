package shape

import (
	"math"

	"github.com/Mikanister/baloon-calc-sub001/pkg/profile"
)

const (
	cigarAspect    = 5.0
	cigarTolerance = 1e-9
)

// CigarParams describes a cylinder closed by hemispherical caps. Length is
// the overall length including both caps.
type CigarParams struct {
	Length float64 `json:"length"`
	Radius float64 `json:"radius"`
}

func (CigarParams) Kind() Kind { return Cigar }

func (p CigarParams) Validate() error {
	if err := requirePositive(Cigar, "length", p.Length); err != nil {
		return err
	}
	if err := requirePositive(Cigar, "radius", p.Radius); err != nil {
		return err
	}
	if 2*p.Radius > p.Length*(1+cigarTolerance) {
		return &DegenerateProfileError{Kind: Cigar, Field: "radius", Value: p.Radius, Reason: "diameter exceeds length"}
	}
	return nil
}

func (p CigarParams) hint() error {
	if err := requireNonNegative(Cigar, "length", p.Length); err != nil {
		return err
	}
	return requireNonNegative(Cigar, "radius", p.Radius)
}

// cylinder returns the straight section length, never negative.
func (p CigarParams) cylinder() float64 {
	return math.Max(0, p.Length-2*p.Radius)
}

var cigarEntry = entry{
	name:   "Cigar",
	fields: []string{"length", "radius"},
	zero:   func() Params { return CigarParams{} },
	fromFields: func(f Fields) Params {
		return CigarParams{Length: f.Length, Radius: f.Radius}
	},
	toFields: func(p Params) Fields {
		cp := p.(CigarParams)
		return Fields{Length: cp.Length, Radius: cp.Radius}
	},
	profile: func(p Params) profile.Profile {
		cp := p.(CigarParams)
		r, l := cp.Radius, cp.Length
		return profile.New(0, l, func(z float64) float64 {
			switch {
			case z < r:
				return math.Sqrt(math.Max(0, z*(2*r-z)))
			case z > l-r:
				u := l - z
				return math.Sqrt(math.Max(0, u*(2*r-u)))
			default:
				return r
			}
		}).WithCaps(true, true, r)
	},
	volume: func(p Params) float64 {
		cp := p.(CigarParams)
		return cigarVolume(cp.Radius, cp.cylinder())
	},
	area: func(p Params) float64 {
		cp := p.(CigarParams)
		r := cp.Radius
		return 2*math.Pi*r*cp.cylinder() + 4*math.Pi*r*r
	},
	fromVolume: cigarFromVolume,
	charRadius: func(p Params) float64 {
		return p.(CigarParams).Radius
	},
}

func cigarVolume(r, cyl float64) float64 {
	return math.Pi*r*r*cyl + 4.0/3.0*math.Pi*r*r*r
}

// lengthFor is the overall length enclosing v with radius r.
func lengthFor(v, r float64) float64 {
	return (v-4.0/3.0*math.Pi*r*r*r)/(math.Pi*r*r) + 2*r
}

func cigarFromVolume(v float64, hint Params) (Params, error) {
	h := hint.(CigarParams)
	switch {
	case h.Length > 0 && h.Radius > 0:
		return h, nil

	case h.Radius > 0:
		l := lengthFor(v, h.Radius)
		if l < 2*h.Radius {
			// Smaller than the sphere of that radius: collapse to a capsule.
			r := math.Cbrt(3 * v / (4 * math.Pi))
			return CigarParams{Length: 2 * r, Radius: r}, nil
		}
		return CigarParams{Length: l, Radius: h.Radius}, nil

	case h.Length > 0:
		l := h.Length
		if v >= math.Pi*l*l*l/6 {
			// Even a capsule of this length is too small; widen to r = L/2
			// and extend.
			r := l / 2
			return CigarParams{Length: lengthFor(v, r), Radius: r}, nil
		}
		// V(r) = πr²L − (2/3)πr³ is increasing on (0, L/2].
		lo, hi := 0.0, l/2
		for i := 0; i < 200 && hi-lo > 1e-13*l; i++ {
			mid := 0.5 * (lo + hi)
			if cigarVolume(mid, l-2*mid) < v {
				lo = mid
			} else {
				hi = mid
			}
		}
		return CigarParams{Length: l, Radius: 0.5 * (lo + hi)}, nil

	default:
		r := math.Cbrt(3 * v / (13 * math.Pi))
		return CigarParams{Length: cigarAspect * r, Radius: r}, nil
	}
}
