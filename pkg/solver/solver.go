// Package solver computes the full state of a balloon at its working height
// and inverts it to find the gas volume that carries a target payload.
package solver

import (
	"math"

	"github.com/Mikanister/baloon-calc-sub001/pkg/atmosphere"
	"github.com/Mikanister/baloon-calc-sub001/pkg/budget"
	"github.com/Mikanister/baloon-calc-sub001/pkg/gas"
	"github.com/Mikanister/baloon-calc-sub001/pkg/material"
	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
)

// MinPressureDelta floors the pressure difference driving permeation.
const MinPressureDelta = 100.0

// Input describes one balloon. Lengths are in metres, masses in kg,
// temperatures in °C. Zero-valued optional fields take their neutral value.
type Input struct {
	Gas         gas.Kind `json:"gas"`
	GasVolumeM3 float64  `json:"gas_volume_m3"` // at ground level
	Material    string   `json:"material"`
	ThicknessM  float64  `json:"thickness_m"`

	LaunchHeightM float64 `json:"launch_height_m"`
	WorkHeightM   float64 `json:"work_height_m"`
	GroundTempC   float64 `json:"ground_temp_c"`
	InsideTempC   float64 `json:"inside_temp_c"` // hot air only

	Shape       shape.Kind   `json:"shape"`
	ShapeParams shape.Params `json:"shape_params,omitempty"` // partial hint

	ExtraMassKg      float64 `json:"extra_mass_kg"`
	SeamFactor       float64 `json:"seam_factor"` // ≤ 0 means 1
	ReinforcementsKg float64 `json:"reinforcements_kg"`
	SafetyMarginPct  float64 `json:"safety_margin_pct"`
	SuperpressurePa  float64 `json:"superpressure_pa"`

	DurationH float64 `json:"duration_h"`
	PermMult  float64 `json:"perm_mult"` // ≤ 0 means 1
}

// TotalHeightM is launch plus working height.
func (in Input) TotalHeightM() float64 {
	return in.LaunchHeightM + in.WorkHeightM
}

func (in Input) seamFactor() float64 {
	if in.SeamFactor <= 0 {
		return 1
	}
	return in.SeamFactor
}

func (in Input) permMult() float64 {
	if in.PermMult <= 0 {
		return 1
	}
	return in.PermMult
}

// Flight is the permeation loss over the flight duration.
type Flight struct {
	DurationH        float64 `json:"duration_h"`
	GasLossM3        float64 `json:"gas_loss_m3"`
	FinalGasVolumeM3 float64 `json:"final_gas_volume_m3"`
	LiftEndKg        float64 `json:"lift_end_kg"`
	PayloadEndKg     float64 `json:"payload_end_kg"`
}

// SolveInfo records how a payload solve terminated.
type SolveInfo struct {
	TargetPayloadKg float64 `json:"target_payload_kg"`
	Iterations      int     `json:"iterations"`
	Converged       bool    `json:"converged"`
	LastDeltaM3     float64 `json:"last_delta_m3"`
}

// State is the computed condition of a balloon at its working height.
type State struct {
	Gas      gas.Kind   `json:"gas"`
	Material string     `json:"material"`
	Shape    shape.Kind `json:"shape"`
	HeightM  float64    `json:"height_m"`

	GasVolumeM3      float64 `json:"gas_volume_m3"`
	RequiredVolumeM3 float64 `json:"required_volume_m3"`
	PayloadKg        float64 `json:"payload_kg"`
	ShellMassKg      float64 `json:"shell_mass_kg"`
	ExtraMassKg      float64 `json:"extra_mass_kg"`
	LiftKg           float64 `json:"lift_kg"`

	CharacteristicRadiusM  float64          `json:"radius_m"`
	Dimensions             shape.Dimensions `json:"dimensions"`
	SurfaceAreaM2          float64          `json:"surface_area_m2"`
	EffectiveSurfaceAreaM2 float64          `json:"effective_surface_area_m2"`

	OutsideTempC      float64 `json:"outside_temp_c"`
	OutsidePressurePa float64 `json:"outside_pressure_pa"`
	InsidePressurePa  float64 `json:"inside_pressure_pa"`
	AirDensity        float64 `json:"rho_air"`
	GasDensity        float64 `json:"rho_gas"`
	NetLiftPerM3      float64 `json:"net_lift_per_m3"`

	StressPa      float64 `json:"stress_pa"`
	StressLimitPa float64 `json:"stress_limit_pa"`
	// SafetyFactor is StressLimitPa/StressPa, or 0 when the film is unstressed.
	SafetyFactor float64 `json:"stress_safety_factor"`

	Mass   budget.MassBudget `json:"mass_budget"`
	Lift   budget.LiftBudget `json:"lift_budget"`
	Flight Flight            `json:"flight"`
	Solve  *SolveInfo        `json:"solve,omitempty"`
}

// ambient holds the conditions that do not depend on the gas volume.
type ambient struct {
	air        atmosphere.State
	gasDensity float64
	insideP    float64
	net        float64
	mat        material.Material
}

func conditions(in Input) (ambient, error) {
	mat, err := material.Lookup(in.Material)
	if err != nil {
		return ambient{}, err
	}
	h := in.TotalHeightM()
	air := atmosphere.At(h, in.GroundTempC)

	gasT := air.TemperatureK()
	if in.Gas == gas.HotAir {
		gasT = in.InsideTempC + atmosphere.KelvinOffset
	}
	rhoGas, err := gas.DensityOf(in.Gas, air.PressurePa, gasT)
	if err != nil {
		return ambient{}, err
	}
	if air.DensityKgM3 <= rhoGas {
		return ambient{}, &NoLiftError{HeightM: h, AirDensity: air.DensityKgM3, GasDensity: rhoGas}
	}
	return ambient{
		air:        air,
		gasDensity: rhoGas,
		insideP:    air.PressurePa + in.SuperpressurePa,
		net:        air.DensityKgM3 - rhoGas,
		mat:        mat,
	}, nil
}

// RequiredVolume rescales a ground-level gas volume to the envelope volume
// at pressure p and temperature tK by the combined gas law, referenced to
// standard sea-level pressure and the ground temperature.
func RequiredVolume(groundVolume, groundTempC, p, tK float64) float64 {
	return groundVolume * (atmosphere.SeaLevelPressure / p) * (tK / (groundTempC + atmosphere.KelvinOffset))
}

// geometry resolves the envelope for a ground gas volume and returns its
// dimensions, effective area and shell mass.
func geometry(in Input, amb ambient, volume float64) (required float64, dims shape.Dimensions, effArea, shell float64, err error) {
	required = RequiredVolume(volume, in.GroundTempC, amb.air.PressurePa, amb.air.TemperatureK())
	dims, err = shape.DimensionsFromVolume(in.Shape, required, in.ShapeParams)
	if err != nil {
		return 0, shape.Dimensions{}, 0, 0, err
	}
	effArea = dims.SurfaceArea * in.seamFactor()
	shell = effArea * in.ThicknessM * amb.mat.Density
	return required, dims, effArea, shell, nil
}

// StateAt computes the balloon state for in.GasVolumeM3 of gas at the
// working height.
func StateAt(in Input) (*State, error) {
	amb, err := conditions(in)
	if err != nil {
		return nil, err
	}
	return stateAt(in, amb)
}

func stateAt(in Input, amb ambient) (*State, error) {
	v := in.GasVolumeM3
	required, dims, effArea, shell, err := geometry(in, amb, v)
	if err != nil {
		return nil, err
	}

	lift := amb.net * v
	payload := lift - shell - in.ExtraMassKg - in.ReinforcementsKg

	mass := budget.ComputeMassBudget(budget.MassInputs{
		GasVolume:          v,
		GasDensity:         amb.gasDensity,
		SurfaceArea:        dims.SurfaceArea,
		ThicknessM:         in.ThicknessM,
		MaterialDensity:    amb.mat.Density,
		SeamFactor:         in.seamFactor(),
		ReinforcementsMass: in.ReinforcementsKg,
		PayloadMass:        payload,
		SafetyMarginPct:    in.SafetyMarginPct,
		ExtraMass:          in.ExtraMassKg,
	})

	deltaP := amb.insideP - amb.air.PressurePa
	stress := material.HoopStress(deltaP, dims.CharacteristicRadius, in.ThicknessM)
	safety := 0.0
	if stress > 0 {
		safety = amb.mat.StressLimit / stress
	}

	st := &State{
		Gas:                    in.Gas,
		Material:               amb.mat.Name,
		Shape:                  in.Shape,
		HeightM:                in.TotalHeightM(),
		GasVolumeM3:            v,
		RequiredVolumeM3:       required,
		PayloadKg:              payload,
		ShellMassKg:            shell,
		ExtraMassKg:            in.ExtraMassKg,
		LiftKg:                 lift,
		CharacteristicRadiusM:  dims.CharacteristicRadius,
		Dimensions:             dims,
		SurfaceAreaM2:          dims.SurfaceArea,
		EffectiveSurfaceAreaM2: effArea,
		OutsideTempC:           amb.air.TemperatureC,
		OutsidePressurePa:      amb.air.PressurePa,
		InsidePressurePa:       amb.insideP,
		AirDensity:             amb.air.DensityKgM3,
		GasDensity:             amb.gasDensity,
		NetLiftPerM3:           amb.net,
		StressPa:               stress,
		StressLimitPa:          amb.mat.StressLimit,
		SafetyFactor:           safety,
		Mass:                   mass,
		Lift:                   budget.ComputeLiftBudget(v, amb.air.DensityKgM3, amb.gasDensity, mass),
	}
	st.Flight = flight(in, amb, st)
	return st, nil
}

func flight(in Input, amb ambient, st *State) Flight {
	f := Flight{
		DurationH:        in.DurationH,
		FinalGasVolumeM3: st.GasVolumeM3,
		LiftEndKg:        st.LiftKg,
		PayloadEndKg:     st.PayloadKg,
	}
	if !gas.IsPermeating(in.Gas) || in.DurationH <= 0 {
		return f
	}
	perm, ok := amb.mat.Permeability(in.Gas)
	if !ok {
		return f
	}
	deltaP := math.Max(math.Abs(st.InsidePressurePa-st.OutsidePressurePa), MinPressureDelta)
	f.GasLossM3 = CalculateGasLoss(perm*in.permMult(), st.EffectiveSurfaceAreaM2, deltaP, in.DurationH, in.ThicknessM)
	f.FinalGasVolumeM3 = math.Max(0, st.GasVolumeM3-f.GasLossM3)
	f.LiftEndKg = st.NetLiftPerM3 * f.FinalGasVolumeM3
	f.PayloadEndKg = f.LiftEndKg - st.ShellMassKg - st.ExtraMassKg - in.ReinforcementsKg
	return f
}

// CalculateGasLoss is the volume (m³) permeating through the film:
// perm·area·max(ΔP, MinPressureDelta)·t/thickness with t in seconds. It is
// zero for zero permeability, a non-positive duration or thickness.
func CalculateGasLoss(permeability, areaM2, deltaP, durationH, thicknessM float64) float64 {
	if permeability <= 0 || durationH <= 0 || thicknessM <= 0 {
		return 0
	}
	deltaP = math.Max(deltaP, MinPressureDelta)
	return permeability * areaM2 * deltaP * durationH * 3600 / thicknessM
}
