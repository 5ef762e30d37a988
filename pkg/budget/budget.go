// Package budget breaks a balloon's mass and lift down into components.
// All masses are in kg; lift is expressed as the mass it can carry.
package budget

import "math"

// MassBudget itemises everything the envelope carries.
type MassBudget struct {
	Gas            float64 `json:"gas_kg"`
	Envelope       float64 `json:"envelope_kg"`
	Seams          float64 `json:"seams_kg"`
	Reinforcements float64 `json:"reinforcements_kg"`
	Payload        float64 `json:"payload_kg"`
	SafetyMargin   float64 `json:"safety_margin_kg"`
	Extra          float64 `json:"extra_kg"`
}

// StructuralMass is envelope plus seams plus reinforcements.
func (m MassBudget) StructuralMass() float64 {
	return m.Envelope + m.Seams + m.Reinforcements
}

// TotalMass is the sum of every component.
func (m MassBudget) TotalMass() float64 {
	return m.Gas + m.StructuralMass() + m.Payload + m.SafetyMargin + m.Extra
}

// Share returns component/total, or 0 for an empty budget.
func (m MassBudget) Share(component float64) float64 {
	total := m.TotalMass()
	if total <= 0 {
		return 0
	}
	return component / total
}

// MassInputs are the quantities a mass budget is computed from.
type MassInputs struct {
	GasVolume          float64 // m³
	GasDensity         float64 // kg/m³
	SurfaceArea        float64 // m²
	ThicknessM         float64
	MaterialDensity    float64 // kg/m³
	SeamFactor         float64 // ≥ 1; values below add no seam mass
	ReinforcementsMass float64
	PayloadMass        float64
	SafetyMarginPct    float64
	ExtraMass          float64
}

// ComputeMassBudget itemises the mass of a balloon. Seams add the fraction
// of envelope mass above a seam factor of 1; the safety margin is a
// percentage of everything else.
func ComputeMassBudget(in MassInputs) MassBudget {
	m := MassBudget{
		Gas:            in.GasVolume * in.GasDensity,
		Envelope:       in.SurfaceArea * in.ThicknessM * in.MaterialDensity,
		Reinforcements: in.ReinforcementsMass,
		Payload:        in.PayloadMass,
		Extra:          in.ExtraMass,
	}
	m.Seams = m.Envelope * math.Max(0, in.SeamFactor-1)
	m.SafetyMargin = (m.Gas + m.StructuralMass() + m.Payload + m.Extra) * in.SafetyMarginPct / 100
	return m
}

// LiftBudget splits the buoyant lift into what is used and what remains.
// RemainingLift below zero means the balloon is overloaded.
type LiftBudget struct {
	GrossLift     float64 `json:"gross_lift_kg"`
	GasMass       float64 `json:"gas_mass_kg"`
	NetLift       float64 `json:"net_lift_kg"`
	AvailableLift float64 `json:"available_lift_kg"`
	UsedLift      float64 `json:"used_lift_kg"`
	RemainingLift float64 `json:"remaining_lift_kg"`
}

// LiftEfficiency is used/available, or 0 when nothing is available.
func (l LiftBudget) LiftEfficiency() float64 {
	if l.AvailableLift <= 0 {
		return 0
	}
	return l.UsedLift / l.AvailableLift
}

// Overloaded reports whether the used lift exceeds the available lift.
func (l LiftBudget) Overloaded() bool {
	return l.RemainingLift < 0
}

// ComputeLiftBudget balances the lift of gasVolume against a mass budget.
// Gross lift is the mass of displaced air; net lift removes the gas itself.
// gasDensity is used when m carries no gas mass.
func ComputeLiftBudget(gasVolume, airDensity, gasDensity float64, m MassBudget) LiftBudget {
	gross := airDensity * gasVolume
	if m.Gas == 0 {
		m.Gas = gasDensity * gasVolume
	}
	net := gross - m.Gas
	used := m.StructuralMass() + m.Payload + m.Extra + m.SafetyMargin
	return LiftBudget{
		GrossLift:     gross,
		GasMass:       m.Gas,
		NetLift:       net,
		AvailableLift: net,
		UsedLift:      used,
		RemainingLift: net - used,
	}
}
