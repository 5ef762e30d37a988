package cost

import "github.com/Mikanister/baloon-calc-sub001/pkg/gas"

// Reference gas prices per m³ at ground conditions. Hot air is the fuel
// needed to heat the envelope.
var gasPricePerM3 = map[gas.Kind]float64{
	gas.Helium:   150,
	gas.Hydrogen: 5,
	gas.HotAir:   0.1,
}

// minUsefulLiftKg keeps the per-kg cost finite for balloons that only just
// carry their own shell.
const minUsefulLiftKg = 0.001

// Amounts are rounded to this many decimal places.
const currencyPlaces = 2
