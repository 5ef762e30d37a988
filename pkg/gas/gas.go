// Package gas provides lifting-gas densities from the ideal-gas law.
package gas

import (
	"fmt"
	"strings"

	"github.com/Mikanister/baloon-calc-sub001/pkg/atmosphere"
)

// Kind identifies a lifting gas.
type Kind string

const (
	Helium   Kind = "helium"
	Hydrogen Kind = "hydrogen"
	HotAir   Kind = "hot_air"
)

// Specific gas constants in J/(kg·K).
const (
	HeliumGasConstant   = 2077.1
	HydrogenGasConstant = 4124.2
)

// UnsupportedKindError is returned for a gas identifier outside the known set.
type UnsupportedKindError struct {
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("unsupported gas kind %q (want helium, hydrogen or hot_air)", e.Kind)
}

// Kinds returns the supported gases in display order.
func Kinds() []Kind {
	return []Kind{Helium, Hydrogen, HotAir}
}

// ParseKind maps a user-supplied name onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "helium", "he":
		return Helium, nil
	case "hydrogen", "h2":
		return Hydrogen, nil
	case "hot_air", "hot-air", "hotair", "hot air":
		return HotAir, nil
	}
	return "", &UnsupportedKindError{Kind: s}
}

// SpecificGasConstant returns R_specific for the gas.
func SpecificGasConstant(k Kind) (float64, error) {
	switch k {
	case Helium:
		return HeliumGasConstant, nil
	case Hydrogen:
		return HydrogenGasConstant, nil
	case HotAir:
		return atmosphere.AirGasConstant, nil
	}
	return 0, &UnsupportedKindError{Kind: string(k)}
}

// DensityOf returns the gas density in kg/m³ at the given pressure and
// temperature. For HotAir the temperature must be the envelope-internal one.
func DensityOf(k Kind, pressurePa, temperatureK float64) (float64, error) {
	r, err := SpecificGasConstant(k)
	if err != nil {
		return 0, err
	}
	return pressurePa / (r * temperatureK), nil
}

// IsPermeating reports whether the gas escapes through the envelope wall
// over a flight. Hot air is replenished by the burner.
func IsPermeating(k Kind) bool {
	return k == Helium || k == Hydrogen
}
