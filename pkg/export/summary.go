package export

import (
	"fmt"

	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
)

type row struct {
	label string
	value string
}

type section struct {
	title string
	rows  []row
}

func f2(v float64) string { return fmt.Sprintf("%.2f", v) }
func f3(v float64) string { return fmt.Sprintf("%.3f", v) }
func f4(v float64) string { return fmt.Sprintf("%.4f", v) }

// sections lays out the report as titled label/value tables, shared by the
// PDF and XLSX exporters.
func sections(r Report) []section {
	var out []section
	if st := r.State; st != nil {
		out = append(out,
			section{title: "Balloon", rows: []row{
				{"Gas", string(st.Gas)},
				{"Material", st.Material},
				{"Shape", string(st.Shape)},
				{"Height (m)", f2(st.HeightM)},
				{"Gas volume (m3)", f3(st.GasVolumeM3)},
				{"Required volume (m3)", f3(st.RequiredVolumeM3)},
				{"Characteristic radius (m)", f3(st.CharacteristicRadiusM)},
				{"Surface area (m2)", f3(st.SurfaceAreaM2)},
				{"Effective surface area (m2)", f3(st.EffectiveSurfaceAreaM2)},
			}},
			section{title: "Conditions", rows: []row{
				{"Outside temperature (C)", f2(st.OutsideTempC)},
				{"Outside pressure (Pa)", f2(st.OutsidePressurePa)},
				{"Inside pressure (Pa)", f2(st.InsidePressurePa)},
				{"Air density (kg/m3)", f4(st.AirDensity)},
				{"Gas density (kg/m3)", f4(st.GasDensity)},
				{"Net lift (kg/m3)", f4(st.NetLiftPerM3)},
				{"Film stress (Pa)", f2(st.StressPa)},
				{"Stress safety factor", f2(st.SafetyFactor)},
			}},
			section{title: "Mass and lift", rows: []row{
				{"Lift (kg)", f3(st.LiftKg)},
				{"Payload (kg)", f3(st.PayloadKg)},
				{"Shell mass (kg)", f3(st.ShellMassKg)},
				{"Gas mass (kg)", f3(st.Mass.Gas)},
				{"Seams (kg)", f3(st.Mass.Seams)},
				{"Reinforcements (kg)", f3(st.Mass.Reinforcements)},
				{"Extra mass (kg)", f3(st.Mass.Extra)},
				{"Safety margin (kg)", f3(st.Mass.SafetyMargin)},
				{"Remaining lift (kg)", f3(st.Lift.RemainingLift)},
				{"Lift efficiency", f3(st.Lift.LiftEfficiency())},
			}},
		)
		if st.Flight.DurationH > 0 {
			out = append(out, section{title: "Flight", rows: []row{
				{"Duration (h)", f2(st.Flight.DurationH)},
				{"Gas loss (m3)", f4(st.Flight.GasLossM3)},
				{"Final gas volume (m3)", f3(st.Flight.FinalGasVolumeM3)},
				{"Payload at end (kg)", f3(st.Flight.PayloadEndKg)},
			}})
		}
		if st.Solve != nil {
			out = append(out, section{title: "Solve", rows: []row{
				{"Target payload (kg)", f3(st.Solve.TargetPayloadKg)},
				{"Iterations", fmt.Sprint(st.Solve.Iterations)},
				{"Converged", fmt.Sprint(st.Solve.Converged)},
			}})
		}
	}

	switch p := r.Pattern.(type) {
	case *pattern.GorePattern:
		out = append(out, section{title: "Gore pattern", rows: []row{
			{"Gores", fmt.Sprint(p.NumGores)},
			{"Meridian length (m)", f3(p.MeridianLengthM)},
			{"Max gore width (m)", f4(p.MaxWidthM())},
			{"Seam length (m)", f3(p.SeamLengthM())},
			{"Gore area (m2)", f4(p.GoreAreaM2)},
			{"Total area (m2)", f3(p.TotalAreaM2)},
			{"Seam allowance (mm)", f2(p.SeamAllowanceM * mmPerM)},
			{"Cut area (m2)", f3(p.CutArea())},
		}})
	case *pattern.PanelPattern:
		out = append(out, section{title: "Panel pattern", rows: []row{
			{"Panels", "2"},
			{"Panel size (m)", fmt.Sprintf("%s x %s", f3(p.Panels[0].LengthM), f3(p.Panels[0].WidthM))},
			{"Seam length (m)", f3(p.SeamLengthM)},
			{"Opening", fmt.Sprintf("%s, %s m", p.OpeningSide, f3(p.OpeningSizeM))},
			{"Cut area (m2)", f3(p.CutArea())},
		}})
	}

	if c := r.Cost; c != nil {
		out = append(out, section{title: "Cost", rows: []row{
			{"Material cost", c.MaterialCost.StringFixed(2)},
			{"Gas cost", c.GasCost.StringFixed(2)},
			{"Total", c.Total.StringFixed(2)},
			{"Per kg of payload", c.CostPerKgPayload.StringFixed(2)},
		}})
	}
	return out
}
