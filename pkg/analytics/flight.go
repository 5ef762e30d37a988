package analytics

import (
	"math"

	"github.com/Mikanister/baloon-calc-sub001/pkg/gas"
	"github.com/Mikanister/baloon-calc-sub001/pkg/material"
	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
)

// FlightTime is how long a balloon keeps its payload while gas permeates
// through the envelope. Unlimited is set when nothing is lost; the hour
// fields are then zero.
type FlightTime struct {
	Unlimited          bool    `json:"unlimited"`
	Hours              float64 `json:"max_time_hours"`
	HoursToZeroPayload float64 `json:"time_to_zero_payload_hours"`
	InitialPayloadKg   float64 `json:"initial_payload_kg"`
	MinPayloadKg       float64 `json:"min_payload_kg"`
	LossRateM3PerH     float64 `json:"gas_loss_rate_m3_per_h"`
	GasExhausted       bool    `json:"gas_exhausted,omitempty"`
}

// MaxFlightTime returns the hours until the payload falls to minPayloadKg.
// Loss is linear in time, so the result is closed form: the payload margin
// divided by the hourly lift loss, capped at the time the gas runs out.
func MaxFlightTime(in solver.Input, minPayloadKg float64) (*FlightTime, error) {
	in.DurationH = 0
	st, err := solver.StateAt(in)
	if err != nil {
		return nil, err
	}
	ft := &FlightTime{InitialPayloadKg: st.PayloadKg, MinPayloadKg: minPayloadKg}

	mat, err := material.Lookup(in.Material)
	if err != nil {
		return nil, err
	}
	perm, ok := mat.Permeability(in.Gas)
	if !gas.IsPermeating(in.Gas) || !ok {
		ft.Unlimited = true
		return ft, nil
	}
	mult := in.PermMult
	if mult <= 0 {
		mult = 1
	}
	deltaP := math.Abs(st.InsidePressurePa - st.OutsidePressurePa)
	ft.LossRateM3PerH = solver.CalculateGasLoss(perm*mult, st.EffectiveSurfaceAreaM2, deltaP, 1, in.ThicknessM)
	if ft.LossRateM3PerH <= 0 {
		ft.Unlimited = true
		return ft, nil
	}
	if st.PayloadKg <= minPayloadKg {
		return ft, nil
	}

	liftRate := st.NetLiftPerM3 * ft.LossRateM3PerH
	exhausted := st.GasVolumeM3 / ft.LossRateM3PerH
	ft.Hours = (st.PayloadKg - minPayloadKg) / liftRate
	if ft.Hours > exhausted {
		ft.Hours = exhausted
		ft.GasExhausted = true
	}
	if st.PayloadKg > 0 {
		ft.HoursToZeroPayload = math.Min(st.PayloadKg/liftRate, exhausted)
	}
	return ft, nil
}
