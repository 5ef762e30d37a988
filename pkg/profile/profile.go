// Package profile represents an envelope as a surface of revolution r(z)
// and integrates it into volume, surface area and meridian length.
package profile

import "math"

// RadiusFunc returns the envelope radius at axial position z.
type RadiusFunc func(z float64) float64

// Profile is a radius function over an axial range with optional end caps.
// It is immutable; construct one per calculation.
type Profile struct {
	ZMin         float64 `json:"z_min"`
	ZMax         float64 `json:"z_max"`
	HasTopCap    bool    `json:"has_top_cap"`
	HasBottomCap bool    `json:"has_bottom_cap"`
	CapRadius    float64 `json:"cap_radius,omitempty"`

	radius RadiusFunc
}

// New builds a profile over [zMin, zMax].
func New(zMin, zMax float64, r RadiusFunc) Profile {
	return Profile{ZMin: zMin, ZMax: zMax, radius: r}
}

// WithCaps returns a copy flagged with end caps of the given radius.
func (p Profile) WithCaps(top, bottom bool, capRadius float64) Profile {
	p.HasTopCap = top
	p.HasBottomCap = bottom
	p.CapRadius = capRadius
	return p
}

// RadiusAt returns r(z). It is 0 outside the axial range and never negative.
func (p Profile) RadiusAt(z float64) float64 {
	if p.radius == nil || z < p.ZMin || z > p.ZMax {
		return 0
	}
	r := p.radius(z)
	if r < 0 || math.IsNaN(r) {
		return 0
	}
	return r
}

// Length is the axial extent.
func (p Profile) Length() float64 {
	return p.ZMax - p.ZMin
}

// poleTolerance is the radius below which an end counts as a pole.
func (p Profile) poleTolerance() float64 {
	return 1e-9 * math.Max(1, p.Length())
}

// PoleAtTop reports whether the profile closes to a point at ZMax.
func (p Profile) PoleAtTop() bool {
	return p.RadiusAt(p.ZMax) <= p.poleTolerance()
}

// PoleAtBottom reports whether the profile closes to a point at ZMin.
func (p Profile) PoleAtBottom() bool {
	return p.RadiusAt(p.ZMin) <= p.poleTolerance()
}

// MaxRadius scans the profile on n uniform samples and returns the widest
// radius and where it occurs.
func (p Profile) MaxRadius(n int) (r, z float64) {
	if n < 2 {
		n = 2
	}
	step := p.Length() / float64(n-1)
	for i := 0; i < n; i++ {
		zi := p.ZMin + step*float64(i)
		if ri := p.RadiusAt(zi); ri > r {
			r, z = ri, zi
		}
	}
	return r, z
}
