// Package shape builds envelope profiles for the supported balloon shapes
// and resolves shape dimensions from a target volume.
//
// Every shape is one entry in a dispatch table mapping its Kind to a
// profile builder, volume and area functions and a dimension inverter.
package shape

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Mikanister/baloon-calc-sub001/pkg/profile"
)

// Kind identifies an envelope shape.
type Kind string

const (
	Sphere Kind = "sphere"
	Pillow Kind = "pillow"
	Pear   Kind = "pear"
	Cigar  Kind = "cigar"
)

// Params is a shape parameter set. Zero-valued fields mean "derive from
// volume" when used as a hint for DimensionsFromVolume.
type Params interface {
	Kind() Kind
	// Validate checks that every dimension is set and physically valid.
	Validate() error
	// hint checks that the set dimensions are usable as a partial hint.
	hint() error
}

// Fields is the flat parameter bag used by design files and the HTTP API.
// All values are in metres.
type Fields struct {
	Radius       float64 `json:"radius,omitempty" yaml:"radius,omitempty"`
	Length       float64 `json:"length,omitempty" yaml:"length,omitempty"`
	Width        float64 `json:"width,omitempty" yaml:"width,omitempty"`
	Thickness    float64 `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	Height       float64 `json:"height,omitempty" yaml:"height,omitempty"`
	TopRadius    float64 `json:"top_radius,omitempty" yaml:"top_radius,omitempty"`
	BottomRadius float64 `json:"bottom_radius,omitempty" yaml:"bottom_radius,omitempty"`
}

// Dimensions is a shape resolved for a particular volume.
type Dimensions struct {
	Kind                 Kind    `json:"kind"`
	Volume               float64 `json:"volume_m3"`
	SurfaceArea          float64 `json:"surface_area_m2"`
	CharacteristicRadius float64 `json:"characteristic_radius_m"`
	Params               Params  `json:"params"`
}

// UnsupportedKindError is returned for a shape name outside the table.
type UnsupportedKindError struct {
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported shape kind %q (want one of %s)", e.Kind, strings.Join(kindNames(), ", "))
}

// DegenerateProfileError is returned when shape parameters collapse the
// axial range or violate the shape's geometry.
type DegenerateProfileError struct {
	Kind   Kind
	Field  string
	Value  float64
	Reason string
}

func (e *DegenerateProfileError) Error() string {
	return fmt.Sprintf("degenerate %s profile: %s = %g: %s", e.Kind, e.Field, e.Value, e.Reason)
}

// ParamsKindError is returned when a parameter set of one shape is passed
// for another.
type ParamsKindError struct {
	Want, Got Kind
}

func (e *ParamsKindError) Error() string {
	return fmt.Sprintf("%s parameters given for a %s shape", e.Got, e.Want)
}

type entry struct {
	name       string
	fields     []string
	zero       func() Params
	fromFields func(Fields) Params
	profile    func(Params) profile.Profile
	volume     func(Params) float64
	area       func(Params) float64
	fromVolume func(volume float64, hint Params) (Params, error)
	charRadius func(Params) float64
	toFields   func(Params) Fields
}

var registry = map[Kind]entry{
	Sphere: sphereEntry,
	Pillow: pillowEntry,
	Pear:   pearEntry,
	Cigar:  cigarEntry,
}

func kindNames() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, string(k))
	}
	sort.Strings(names)
	return names
}

// Kinds returns the supported shapes in a stable order.
func Kinds() []Kind {
	return []Kind{Sphere, Pillow, Pear, Cigar}
}

// ParseKind maps a name onto a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[k]; !ok {
		return "", &UnsupportedKindError{Kind: s}
	}
	return k, nil
}

func lookup(k Kind) (entry, error) {
	e, ok := registry[k]
	if !ok {
		return entry{}, &UnsupportedKindError{Kind: string(k)}
	}
	return e, nil
}

// Description summarises a shape for listings.
type Description struct {
	Kind   Kind     `json:"kind"`
	Name   string   `json:"name"`
	Fields []string `json:"fields"`
}

// Describe lists every supported shape.
func Describe() []Description {
	out := make([]Description, 0, len(registry))
	for _, k := range Kinds() {
		e := registry[k]
		out = append(out, Description{Kind: k, Name: e.name, Fields: e.fields})
	}
	return out
}

// NewParams builds the parameter set for kind from a flat field bag.
func NewParams(k Kind, f Fields) (Params, error) {
	e, err := lookup(k)
	if err != nil {
		return nil, err
	}
	return e.fromFields(f), nil
}

// ToFields flattens a parameter set.
func ToFields(p Params) Fields {
	if p == nil {
		return Fields{}
	}
	e, err := lookup(p.Kind())
	if err != nil {
		return Fields{}
	}
	return e.toFields(p)
}

// NewProfile builds the r(z) profile for fully specified parameters.
func NewProfile(p Params) (profile.Profile, error) {
	if p == nil {
		return profile.Profile{}, &UnsupportedKindError{Kind: ""}
	}
	e, err := lookup(p.Kind())
	if err != nil {
		return profile.Profile{}, err
	}
	if err := p.Validate(); err != nil {
		return profile.Profile{}, err
	}
	return e.profile(p), nil
}

// Volume returns the enclosed volume in m³.
func Volume(p Params) (float64, error) {
	e, err := validated(p)
	if err != nil {
		return 0, err
	}
	return e.volume(p), nil
}

// SurfaceArea returns the envelope film area in m².
func SurfaceArea(p Params) (float64, error) {
	e, err := validated(p)
	if err != nil {
		return 0, err
	}
	return e.area(p), nil
}

// CharacteristicRadius is the radius used for hoop stress.
func CharacteristicRadius(p Params) (float64, error) {
	e, err := validated(p)
	if err != nil {
		return 0, err
	}
	return e.charRadius(p), nil
}

func validated(p Params) (entry, error) {
	if p == nil {
		return entry{}, &UnsupportedKindError{Kind: ""}
	}
	e, err := lookup(p.Kind())
	if err != nil {
		return entry{}, err
	}
	return e, p.Validate()
}

// DimensionsFromVolume resolves the dimensions of a kind-shaped envelope
// enclosing volume. Dimensions set in hint are kept; the rest are derived.
// A zero volume yields zero dimensions; a negative volume is degenerate.
func DimensionsFromVolume(k Kind, volume float64, hint Params) (Dimensions, error) {
	e, err := lookup(k)
	if err != nil {
		return Dimensions{}, err
	}
	if hint == nil {
		hint = e.zero()
	}
	if hint.Kind() != k {
		return Dimensions{}, &ParamsKindError{Want: k, Got: hint.Kind()}
	}
	if err := hint.hint(); err != nil {
		return Dimensions{}, err
	}
	if volume < 0 {
		return Dimensions{}, &DegenerateProfileError{Kind: k, Field: "volume", Value: volume, Reason: "volume must not be negative"}
	}
	if volume == 0 {
		return Dimensions{Kind: k, Params: e.zero()}, nil
	}

	p, err := e.fromVolume(volume, hint)
	if err != nil {
		return Dimensions{}, err
	}
	if err := p.Validate(); err != nil {
		return Dimensions{}, err
	}
	return Dimensions{
		Kind:                 k,
		Volume:               e.volume(p),
		SurfaceArea:          e.area(p),
		CharacteristicRadius: e.charRadius(p),
		Params:               p,
	}, nil
}

func requirePositive(k Kind, field string, v float64) error {
	if !(v > 0) {
		return &DegenerateProfileError{Kind: k, Field: field, Value: v, Reason: "must be positive"}
	}
	return nil
}

func requireNonNegative(k Kind, field string, v float64) error {
	if v < 0 {
		return &DegenerateProfileError{Kind: k, Field: field, Value: v, Reason: "must not be negative"}
	}
	return nil
}

// solveIncreasing finds x > 0 with f(x) = target for an increasing f by
// bracketing and bisection. It reports false when target is below f near 0.
func solveIncreasing(f func(float64) float64, target float64) (float64, bool) {
	lo, hi := 0.0, 1.0
	if f(1e-12) > target {
		return 0, false
	}
	for i := 0; f(hi) < target; i++ {
		if i > 200 {
			return 0, false
		}
		lo = hi
		hi *= 2
	}
	for i := 0; i < 200 && hi-lo > 1e-13*hi; i++ {
		mid := 0.5 * (lo + hi)
		if f(mid) < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 0.5 * (lo + hi), true
}
