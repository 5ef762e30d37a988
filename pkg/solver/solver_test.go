package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/Mikanister/baloon-calc-sub001/pkg/gas"
	"github.com/Mikanister/baloon-calc-sub001/pkg/material"
	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func heliumSphere(volume float64) Input {
	return Input{
		Gas:         gas.Helium,
		GasVolumeM3: volume,
		Material:    "TPU",
		ThicknessM:  35e-6,
		GroundTempC: 15,
		Shape:       shape.Sphere,
	}
}

func TestStateAtSeaLevel(t *testing.T) {
	st, err := StateAt(heliumSphere(10))
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(st.AirDensity, 1.225, 2e-3) {
		t.Errorf("air density = %v, want ~1.225", st.AirDensity)
	}
	if !approxEqual(st.NetLiftPerM3, 1.056, 5e-3) {
		t.Errorf("net lift = %v, want ~1.056", st.NetLiftPerM3)
	}
	if !approxEqual(st.RequiredVolumeM3, 10, 1e-9) {
		t.Errorf("required volume = %v, want 10", st.RequiredVolumeM3)
	}
	if st.PayloadKg <= 0 || st.PayloadKg >= st.LiftKg {
		t.Errorf("payload = %v, lift = %v", st.PayloadKg, st.LiftKg)
	}
	r := math.Cbrt(3 * 10 / (4 * math.Pi))
	if !approxEqual(st.CharacteristicRadiusM, r, 1e-9) {
		t.Errorf("radius = %v, want %v", st.CharacteristicRadiusM, r)
	}
	wantShell := 4 * math.Pi * r * r * 35e-6 * 1200
	if !approxEqual(st.ShellMassKg, wantShell, 1e-9) {
		t.Errorf("shell = %v, want %v", st.ShellMassKg, wantShell)
	}
	if !approxEqual(st.PayloadKg, st.LiftKg-st.ShellMassKg, 1e-12) {
		t.Errorf("payload %v != lift - shell %v", st.PayloadKg, st.LiftKg-st.ShellMassKg)
	}
	if st.StressPa != 0 || st.SafetyFactor != 0 {
		t.Errorf("unpressurised film: stress = %v, factor = %v", st.StressPa, st.SafetyFactor)
	}
	if st.Mass.Payload != st.PayloadKg {
		t.Errorf("budget payload = %v, want %v", st.Mass.Payload, st.PayloadKg)
	}
}

func TestRequiredVolumeGrowsWithHeight(t *testing.T) {
	in := heliumSphere(5)
	in.LaunchHeightM = 1000
	in.WorkHeightM = 4000
	st, err := StateAt(in)
	if err != nil {
		t.Fatal(err)
	}
	if st.HeightM != 5000 {
		t.Errorf("height = %v, want 5000", st.HeightM)
	}
	if st.RequiredVolumeM3 <= 5 {
		t.Errorf("required volume %v should exceed ground volume", st.RequiredVolumeM3)
	}
	if st.OutsidePressurePa >= 101325 {
		t.Errorf("pressure = %v", st.OutsidePressurePa)
	}
}

func TestSuperpressureStress(t *testing.T) {
	in := heliumSphere(10)
	in.SuperpressurePa = 500
	st, err := StateAt(in)
	if err != nil {
		t.Fatal(err)
	}
	want := material.HoopStress(500, st.CharacteristicRadiusM, 35e-6)
	if !approxEqual(st.StressPa, want, 1e-6) {
		t.Errorf("stress = %v, want %v", st.StressPa, want)
	}
	if !approxEqual(st.SafetyFactor, 35e6/want, 1e-9) {
		t.Errorf("safety factor = %v, want %v", st.SafetyFactor, 35e6/want)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	for _, target := range []float64{1, 2.5, 10, 40, 100} {
		st, err := SolvePayloadToVolume(heliumSphere(0), target, DefaultOptions())
		if err != nil {
			t.Fatalf("payload %v: %v", target, err)
		}
		if !st.Solve.Converged {
			t.Errorf("payload %v: not converged after %d", target, st.Solve.Iterations)
		}
		back, err := SolveVolumeToPayload(heliumSphere(st.GasVolumeM3))
		if err != nil {
			t.Fatal(err)
		}
		if !approxEqual(back.PayloadKg, target, 0.1) {
			t.Errorf("payload %v: round trip gives %v", target, back.PayloadKg)
		}
	}
}

func TestSolveIncludesExtraMass(t *testing.T) {
	in := heliumSphere(0)
	in.ExtraMassKg = 2
	in.ReinforcementsKg = 0.5
	st, err := SolvePayloadToVolume(in, 5, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !approxEqual(st.PayloadKg, 5, 0.05) {
		t.Errorf("payload = %v, want 5", st.PayloadKg)
	}
	plain, err := SolvePayloadToVolume(heliumSphere(0), 5, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if st.GasVolumeM3 <= plain.GasVolumeM3 {
		t.Errorf("volume with extra mass %v should exceed %v", st.GasVolumeM3, plain.GasVolumeM3)
	}
}

func TestNonPositiveTargets(t *testing.T) {
	var target *NonPositiveTargetError
	if _, err := SolvePayloadToVolume(heliumSphere(0), 0, DefaultOptions()); !errors.As(err, &target) {
		t.Errorf("zero payload: error = %v", err)
	}
	if _, err := SolveVolumeToPayload(heliumSphere(-1)); !errors.As(err, &target) {
		t.Errorf("negative volume: error = %v", err)
	}
}

func TestStrictNonConvergence(t *testing.T) {
	_, err := SolvePayloadToVolume(heliumSphere(0), 10, Options{MaxIterations: 1, Tolerance: 1e-12, Strict: true})
	var nc *NotConvergedError
	if !errors.As(err, &nc) {
		t.Fatalf("error = %v, want NotConvergedError", err)
	}
	if nc.Iterations != 1 {
		t.Errorf("iterations = %d, want 1", nc.Iterations)
	}

	st, err := SolvePayloadToVolume(heliumSphere(0), 10, Options{MaxIterations: 1, Tolerance: 1e-12})
	if err != nil {
		t.Fatal(err)
	}
	if st.Solve.Converged {
		t.Error("lenient solve reported convergence")
	}
}

func TestHotAirColderThanAmbient(t *testing.T) {
	in := heliumSphere(10)
	in.Gas = gas.HotAir
	in.InsideTempC = 5
	_, err := StateAt(in)
	var nl *NoLiftError
	if !errors.As(err, &nl) {
		t.Fatalf("error = %v, want NoLiftError", err)
	}

	in.InsideTempC = 100
	st, err := StateAt(in)
	if err != nil {
		t.Fatal(err)
	}
	if st.Flight.GasLossM3 != 0 {
		t.Errorf("hot air gas loss = %v, want 0", st.Flight.GasLossM3)
	}
}

func TestUnknownMaterial(t *testing.T) {
	in := heliumSphere(1)
	in.Material = "paper"
	_, err := StateAt(in)
	var ue *material.UnknownError
	if !errors.As(err, &ue) {
		t.Errorf("error = %v, want UnknownError", err)
	}
}

func TestCalculateGasLoss(t *testing.T) {
	if got := CalculateGasLoss(0, 10, 500, 24, 35e-6); got != 0 {
		t.Errorf("zero permeability loss = %v", got)
	}
	if got := CalculateGasLoss(1e-13, 10, 500, 0, 35e-6); got != 0 {
		t.Errorf("zero duration loss = %v", got)
	}
	one := CalculateGasLoss(1e-13, 10, 500, 1, 35e-6)
	two := CalculateGasLoss(1e-13, 10, 500, 2, 35e-6)
	if !approxEqual(two, 2*one, 1e-15) {
		t.Errorf("loss not linear in time: %v, %v", one, two)
	}
	if got, want := CalculateGasLoss(1e-13, 10, 0, 1, 35e-6), CalculateGasLoss(1e-13, 10, MinPressureDelta, 1, 35e-6); got != want {
		t.Errorf("pressure floor: %v, want %v", got, want)
	}
}

func TestFlightLoss(t *testing.T) {
	in := heliumSphere(10)
	in.DurationH = 48
	st, err := StateAt(in)
	if err != nil {
		t.Fatal(err)
	}
	f := st.Flight
	if f.GasLossM3 <= 0 {
		t.Fatalf("loss = %v, want positive", f.GasLossM3)
	}
	if !approxEqual(f.FinalGasVolumeM3, 10-f.GasLossM3, 1e-12) {
		t.Errorf("final volume = %v", f.FinalGasVolumeM3)
	}
	if f.PayloadEndKg >= st.PayloadKg {
		t.Errorf("payload at end %v should drop below %v", f.PayloadEndKg, st.PayloadKg)
	}

	in.Gas = gas.Hydrogen
	h2, err := StateAt(in)
	if err != nil {
		t.Fatal(err)
	}
	if h2.Flight.GasLossM3 <= f.GasLossM3 {
		t.Errorf("hydrogen loss %v should exceed helium loss %v", h2.Flight.GasLossM3, f.GasLossM3)
	}
}
