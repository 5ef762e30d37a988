package budget

import (
	"math"
	"testing"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestComputeMassBudget(t *testing.T) {
	m := ComputeMassBudget(MassInputs{
		GasVolume:          10,
		GasDensity:         0.17,
		SurfaceArea:        22,
		ThicknessM:         35e-6,
		MaterialDensity:    1200,
		SeamFactor:         1.1,
		ReinforcementsMass: 0.2,
		PayloadMass:        5,
		SafetyMarginPct:    10,
		ExtraMass:          0.3,
	})

	if !approxEqual(m.Gas, 1.7, 1e-12) {
		t.Errorf("gas = %v, want 1.7", m.Gas)
	}
	if !approxEqual(m.Envelope, 0.924, 1e-12) {
		t.Errorf("envelope = %v, want 0.924", m.Envelope)
	}
	if !approxEqual(m.Seams, 0.0924, 1e-12) {
		t.Errorf("seams = %v, want 0.0924", m.Seams)
	}
	if want := 0.924 + 0.0924 + 0.2; !approxEqual(m.StructuralMass(), want, 1e-12) {
		t.Errorf("structural = %v, want %v", m.StructuralMass(), want)
	}
	base := 1.7 + m.StructuralMass() + 5 + 0.3
	if !approxEqual(m.SafetyMargin, base*0.1, 1e-12) {
		t.Errorf("safety = %v, want %v", m.SafetyMargin, base*0.1)
	}
	if !approxEqual(m.TotalMass(), base*1.1, 1e-12) {
		t.Errorf("total = %v, want %v", m.TotalMass(), base*1.1)
	}
}

func TestSeamFactorBelowOne(t *testing.T) {
	m := ComputeMassBudget(MassInputs{SurfaceArea: 1, ThicknessM: 1e-4, MaterialDensity: 1000, SeamFactor: 0.5})
	if m.Seams != 0 {
		t.Errorf("seams = %v, want 0", m.Seams)
	}
}

func TestComputeLiftBudget(t *testing.T) {
	m := MassBudget{Gas: 1.7, Envelope: 1, Payload: 3, Extra: 0.5, SafetyMargin: 0.2}
	l := ComputeLiftBudget(10, 1.225, 0.17, m)

	if !approxEqual(l.GrossLift, 12.25, 1e-12) {
		t.Errorf("gross = %v, want 12.25", l.GrossLift)
	}
	if !approxEqual(l.NetLift, 10.55, 1e-12) || l.AvailableLift != l.NetLift {
		t.Errorf("net = %v, available = %v, want 10.55", l.NetLift, l.AvailableLift)
	}
	if !approxEqual(l.UsedLift, 4.7, 1e-12) {
		t.Errorf("used = %v, want 4.7", l.UsedLift)
	}
	if !approxEqual(l.RemainingLift, 5.85, 1e-12) || l.Overloaded() {
		t.Errorf("remaining = %v, want 5.85", l.RemainingLift)
	}
	if !approxEqual(l.LiftEfficiency(), 4.7/10.55, 1e-12) {
		t.Errorf("efficiency = %v", l.LiftEfficiency())
	}
}

func TestOverloadIsNotAnError(t *testing.T) {
	l := ComputeLiftBudget(1, 1.225, 0.17, MassBudget{Payload: 10})
	if !l.Overloaded() || l.RemainingLift >= 0 {
		t.Errorf("remaining = %v, want negative", l.RemainingLift)
	}

	none := ComputeLiftBudget(1, 0.1, 0.17, MassBudget{})
	if none.NetLift >= 0 || none.LiftEfficiency() != 0 {
		t.Errorf("efficiency with no available lift = %v, want 0", none.LiftEfficiency())
	}
}

func TestShare(t *testing.T) {
	m := MassBudget{Gas: 1, Payload: 3}
	if got := m.Share(m.Payload); got != 0.75 {
		t.Errorf("payload share = %v, want 0.75", got)
	}
	if got := (MassBudget{}).Share(1); got != 0 {
		t.Errorf("share of empty budget = %v, want 0", got)
	}
}
