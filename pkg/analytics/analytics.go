// Package analytics runs the solver across heights, flight durations and
// materials to answer design questions about a balloon.
package analytics

import (
	"errors"

	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
)

const (
	// DefaultMaxHeightM bounds height scans when no ceiling is given.
	DefaultMaxHeightM = 50000.0
	// DefaultStepM is the height profile spacing.
	DefaultStepM = 500.0
)

// HeightPoint is the balloon state summarised at one height.
type HeightPoint struct {
	HeightM          float64 `json:"height_m"`
	TemperatureC     float64 `json:"temperature_c"`
	PressurePa       float64 `json:"pressure_pa"`
	AirDensity       float64 `json:"rho_air"`
	GasDensity       float64 `json:"rho_gas"`
	NetLiftPerM3     float64 `json:"net_lift_per_m3"`
	LiftKg           float64 `json:"lift_kg"`
	PayloadKg        float64 `json:"payload_kg"`
	ShellMassKg      float64 `json:"shell_mass_kg"`
	RequiredVolumeM3 float64 `json:"required_volume_m3"`
	RadiusM          float64 `json:"radius_m"`
	NoLift           bool    `json:"no_lift,omitempty"`
}

// atHeight evaluates in with the whole flight height given as work height.
func atHeight(in solver.Input, h float64) (*solver.State, error) {
	in.LaunchHeightM = 0
	in.WorkHeightM = h
	in.DurationH = 0
	return solver.StateAt(in)
}

func pointFrom(st *solver.State) HeightPoint {
	return HeightPoint{
		HeightM:          st.HeightM,
		TemperatureC:     st.OutsideTempC,
		PressurePa:       st.OutsidePressurePa,
		AirDensity:       st.AirDensity,
		GasDensity:       st.GasDensity,
		NetLiftPerM3:     st.NetLiftPerM3,
		LiftKg:           st.LiftKg,
		PayloadKg:        st.PayloadKg,
		ShellMassKg:      st.ShellMassKg,
		RequiredVolumeM3: st.RequiredVolumeM3,
		RadiusM:          st.CharacteristicRadiusM,
	}
}

// HeightProfile evaluates the balloon from the ground up to maxHeightM every
// stepM metres. Heights without lift are recorded with zero lift, payload
// and volume; heights whose geometry cannot be resolved are skipped.
func HeightProfile(in solver.Input, maxHeightM, stepM float64) ([]HeightPoint, error) {
	if maxHeightM <= 0 {
		maxHeightM = DefaultMaxHeightM
	}
	if stepM <= 0 {
		stepM = DefaultStepM
	}

	n := int(maxHeightM/stepM) + 1
	points := make([]HeightPoint, 0, n)
	for i := 0; i < n; i++ {
		h := float64(i) * stepM
		st, err := atHeight(in, h)
		var noLift *solver.NoLiftError
		switch {
		case errors.As(err, &noLift):
			points = append(points, HeightPoint{
				HeightM:    h,
				AirDensity: noLift.AirDensity,
				GasDensity: noLift.GasDensity,
				NoLift:     true,
			})
			continue
		case err != nil:
			if !skippable(err) {
				return nil, err
			}
			continue
		}
		points = append(points, pointFrom(st))
	}
	return points, nil
}

// skippable reports whether err is tied to a single height rather than to
// the input as a whole.
func skippable(err error) bool {
	var degenerate *shape.DegenerateProfileError
	return errors.As(err, &degenerate)
}
