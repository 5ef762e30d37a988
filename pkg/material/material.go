// Package material holds the envelope film catalogue: density, tensile
// stress limit, gas permeability and reference price.
package material

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Mikanister/baloon-calc-sub001/pkg/gas"
)

// Material describes one envelope film.
type Material struct {
	Name        string  `json:"name" yaml:"name"`
	Density     float64 `json:"density_kg_m3" yaml:"density_kg_m3"`
	StressLimit float64 `json:"stress_limit_pa" yaml:"stress_limit_pa"`
	// Helium permeability in m²/(s·Pa). Hydrogen scales by HydrogenFactor.
	HeliumPermeability float64 `json:"helium_permeability" yaml:"helium_permeability"`
	PricePerKg         float64 `json:"price_per_kg" yaml:"price_per_kg"`
}

// HydrogenFactor scales helium permeability to hydrogen for the same film.
const HydrogenFactor = 1.8

// UnknownError is returned for a material name outside the catalogue.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown material %q", e.Name)
}

var catalogue = map[string]Material{}

func register(m Material) {
	catalogue[strings.ToLower(m.Name)] = m
}

func init() {
	tpu := Material{Name: "TPU"}
	tpu.Density = 1200         // kg/m³
	tpu.StressLimit = 35e6     // Pa
	tpu.HeliumPermeability = 2e-13
	tpu.PricePerKg = 80
	register(tpu)

	hdpe := Material{Name: "HDPE"}
	hdpe.Density = 950
	hdpe.StressLimit = 20e6
	hdpe.HeliumPermeability = 3e-13
	hdpe.PricePerKg = 25
	register(hdpe)

	mylar := Material{Name: "Mylar"}
	mylar.Density = 1390
	mylar.StressLimit = 100e6
	mylar.HeliumPermeability = 2e-15 // metallised PET, lowest loss
	mylar.PricePerKg = 120
	register(mylar)

	nylon := Material{Name: "Nylon"}
	nylon.Density = 1140
	nylon.StressLimit = 75e6
	nylon.HeliumPermeability = 5e-14
	nylon.PricePerKg = 60
	register(nylon)

	pet := Material{Name: "PET"}
	pet.Density = 1380
	pet.StressLimit = 55e6
	pet.HeliumPermeability = 1e-14
	pet.PricePerKg = 35
	register(pet)
}

// Lookup finds a material by case-insensitive name.
func Lookup(name string) (Material, error) {
	m, ok := catalogue[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Material{}, &UnknownError{Name: name}
	}
	return m, nil
}

// Names returns the catalogue names sorted alphabetically.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for _, m := range catalogue {
		names = append(names, m.Name)
	}
	sort.Strings(names)
	return names
}

// All returns every material sorted by name.
func All() []Material {
	out := make([]Material, 0, len(catalogue))
	for _, n := range Names() {
		out = append(out, catalogue[strings.ToLower(n)])
	}
	return out
}

// Permeability returns the film permeability for the gas. Hot air reports
// false: it is not a stored gas.
func (m Material) Permeability(k gas.Kind) (float64, bool) {
	switch k {
	case gas.Helium:
		return m.HeliumPermeability, true
	case gas.Hydrogen:
		return m.HeliumPermeability * HydrogenFactor, true
	}
	return 0, false
}

// HoopStress is the thin-wall membrane stress σ = ΔP·r/(2t). Zero for a
// non-positive pressure difference or thickness.
func HoopStress(deltaP, radius, thickness float64) float64 {
	if thickness <= 0 || deltaP <= 0 {
		return 0
	}
	return deltaP * radius / (2 * thickness)
}
