// Package atmosphere models temperature, pressure and air density with
// altitude using the standard-atmosphere troposphere and an isothermal
// layer above the tropopause.
package atmosphere

import "math"

// Standard atmosphere constants.
const (
	SeaLevelPressure = 101325.0     // Pa
	KelvinOffset     = 273.15       // K
	LapseRate        = 0.0065       // K/m
	Gravity          = 9.80665      // m/s²
	MolarMassAir     = 0.0289644    // kg/mol
	UniversalGas     = 8.314462618  // J/(mol·K)
	AirGasConstant   = 287.05       // J/(kg·K)
	TropopauseHeight = 11000.0      // m
	StandardGroundC  = 15.0         // °C
)

// barometricExponent is g·M/(R·L) for the linear-lapse pressure law.
var barometricExponent = Gravity * MolarMassAir / (UniversalGas * LapseRate)

// State is the atmosphere at a given height above the launch site.
type State struct {
	HeightM      float64 `json:"height_m"`
	GroundTempC  float64 `json:"ground_temp_c"`
	TemperatureC float64 `json:"temperature_c"`
	PressurePa   float64 `json:"pressure_pa"`
	DensityKgM3  float64 `json:"density_kg_m3"`
}

// TemperatureK returns the ambient temperature in kelvin.
func (s State) TemperatureK() float64 {
	return s.TemperatureC + KelvinOffset
}

// At returns the atmospheric state at heightM for a ground temperature in °C.
// Negative heights extrapolate the tropospheric laws. Above the tropopause
// the temperature is held constant and pressure decays exponentially.
func At(heightM, groundTempC float64) State {
	tGround := groundTempC + KelvinOffset

	var tK, p float64
	if heightM <= TropopauseHeight {
		tK = tGround - LapseRate*heightM
		p = SeaLevelPressure * math.Pow(tK/tGround, barometricExponent)
	} else {
		t11 := tGround - LapseRate*TropopauseHeight
		p11 := SeaLevelPressure * math.Pow(t11/tGround, barometricExponent)
		tK = t11
		p = p11 * math.Exp(-Gravity*MolarMassAir*(heightM-TropopauseHeight)/(UniversalGas*t11))
	}

	return State{
		HeightM:      heightM,
		GroundTempC:  groundTempC,
		TemperatureC: tK - KelvinOffset,
		PressurePa:   p,
		DensityKgM3:  p / (AirGasConstant * tK),
	}
}

// SeaLevel returns the state at the launch site.
func SeaLevel(groundTempC float64) State {
	return At(0, groundTempC)
}
