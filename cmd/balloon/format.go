package main

import (
	"fmt"
	"math"

	"github.com/Mikanister/baloon-calc-sub001/internal/pipeline"
	"github.com/Mikanister/baloon-calc-sub001/pkg/analytics"
	"github.com/Mikanister/baloon-calc-sub001/pkg/cost"
	"github.com/Mikanister/baloon-calc-sub001/pkg/material"
	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
	"github.com/Mikanister/baloon-calc-sub001/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			printResult(e)
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			printResult(w)
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printResult(res validation.Result) {
	fmt.Printf("  [%s] %s\n", res.Level, res.Message)
	if res.SpecPath != "" {
		fmt.Printf("    -> %s = %v\n", res.SpecPath, res.ActualValue)
	}
	if res.Expected != "" {
		fmt.Printf("    expected: %s\n", res.Expected)
	}
	for _, s := range res.Suggestions {
		fmt.Printf("    * %s\n", s)
	}
}

func printState(res *pipeline.Result) {
	st := res.State
	fmt.Printf("%s (%s mode)\n", res.Name, res.Mode)
	fmt.Println("==============================")
	fmt.Println()
	fmt.Printf("  Gas / material:        %s / %s\n", st.Gas, st.Material)
	fmt.Printf("  Shape:                 %s\n", st.Shape)
	fmt.Printf("  Working height:        %.0f m\n", st.HeightM)
	fmt.Printf("  Outside air:           %.1f °C, %.0f Pa, %.4f kg/m³\n", st.OutsideTempC, st.OutsidePressurePa, st.AirDensity)
	fmt.Printf("  Gas density:           %.4f kg/m³\n", st.GasDensity)
	fmt.Println()
	fmt.Printf("  Gas volume (ground):   %.3f m³\n", st.GasVolumeM3)
	fmt.Printf("  Volume at height:      %.3f m³\n", st.RequiredVolumeM3)
	fmt.Printf("  Radius:                %.3f m\n", st.CharacteristicRadiusM)
	fmt.Printf("  Surface area:          %.3f m² (%.3f m² with seams)\n", st.SurfaceAreaM2, st.EffectiveSurfaceAreaM2)
	fmt.Println()
	fmt.Printf("  Lift:                  %.3f kg\n", st.LiftKg)
	fmt.Printf("  Shell mass:            %.3f kg\n", st.ShellMassKg)
	if st.ExtraMassKg > 0 {
		fmt.Printf("  Extra mass:            %.3f kg\n", st.ExtraMassKg)
	}
	fmt.Printf("  Payload:               %.3f kg\n", st.PayloadKg)
	if st.StressPa > 0 {
		fmt.Printf("  Film stress:           %.3g Pa (safety factor %.2f)\n", st.StressPa, st.SafetyFactor)
	}
	if st.Flight.DurationH > 0 {
		fmt.Printf("  After %.0f h:           %.3f m³ lost, payload %.3f kg\n", st.Flight.DurationH, st.Flight.GasLossM3, st.Flight.PayloadEndKg)
	}
	if st.Solve != nil {
		fmt.Printf("  Solve:                 %d iterations, converged=%t\n", st.Solve.Iterations, st.Solve.Converged)
	}
}

func printPattern(p pattern.Pattern) {
	switch pt := p.(type) {
	case *pattern.GorePattern:
		fmt.Printf("%s gore pattern: %d gores\n", pt.ShapeKind, pt.NumGores)
		fmt.Printf("  Meridian length:  %.3f m\n", pt.MeridianLengthM)
		fmt.Printf("  Max gore width:   %.3f m (cut %.3f m)\n", pt.MaxWidthM(), 2*pt.CutHalfWidthM)
		fmt.Printf("  Film area:        %.3f m² (cut %.3f m²)\n", pt.TotalAreaM2, pt.CutArea())
		fmt.Printf("  Seam length:      %.3f m\n", pt.SeamLengthM())
		fmt.Println()
		fmt.Printf("%10s %10s\n", "y (m)", "x (m)")
		for _, v := range pt.Points {
			fmt.Printf("%10.4f %10.4f\n", v.Y, v.X)
		}
	case *pattern.PanelPattern:
		fmt.Println("pillow panel pattern: 2 panels")
		fmt.Printf("  Panel:            %.3f × %.3f m (cut)\n", pt.Panels[0].LengthM, pt.Panels[0].WidthM)
		fmt.Printf("  Seam length:      %.3f m\n", pt.SeamLengthM)
		fmt.Printf("  Opening:          %s side, %.3f m\n", pt.OpeningSide, pt.OpeningSizeM)
		fmt.Printf("  Film area:        %.3f m² (cut %.3f m²)\n", pt.TotalAreaM2, pt.CutArea())
	}
}

func printCost(b *cost.Breakdown) {
	fmt.Println("Cost Estimate")
	fmt.Println("=============")
	fmt.Println()
	fmt.Printf("  Material (%s):  %8.3f kg × %s = %s\n", b.Material, b.ShellMassKg, b.MaterialPerKg.StringFixed(2), b.MaterialCost.StringFixed(2))
	fmt.Printf("  Gas (%s):       %8.3f m³ × %s = %s\n", b.Gas, b.GasVolumeM3, b.GasPerM3.StringFixed(2), b.GasCost.StringFixed(2))
	fmt.Printf("  Total:                %s\n", b.Total.StringFixed(2))
	fmt.Printf("  Per kg of payload:    %s\n", b.CostPerKgPayload.StringFixed(2))
}

func printProfile(pts []analytics.HeightPoint) {
	fmt.Printf("%8s %8s %10s %8s %10s %10s %10s\n",
		"h (m)", "T (°C)", "P (Pa)", "ρ air", "lift (kg)", "payload", "V (m³)")
	for _, p := range pts {
		if p.NoLift {
			fmt.Printf("%8.0f %8.1f %10.0f %8.4f %10s\n", p.HeightM, p.TemperatureC, p.PressurePa, p.AirDensity, "no lift")
			continue
		}
		fmt.Printf("%8.0f %8.1f %10.0f %8.4f %10.3f %10.3f %10.3f\n",
			p.HeightM, p.TemperatureC, p.PressurePa, p.AirDensity, p.LiftKg, p.PayloadKg, p.RequiredVolumeM3)
	}
}

func printOptimum(o *analytics.Optimum) {
	fmt.Printf("Optimal height: %.0f m\n", o.HeightM)
	fmt.Printf("  Payload:      %.3f kg\n", o.State.PayloadKg)
	fmt.Printf("  Lift:         %.3f kg\n", o.State.LiftKg)
}

func printFlightTime(f *analytics.FlightTime) {
	if f.Unlimited {
		fmt.Println("Flight time: unlimited (no gas is lost through the envelope)")
		return
	}
	fmt.Printf("Flight time: %.1f h until payload falls to %.3f kg\n", f.Hours, f.MinPayloadKg)
	fmt.Printf("  Initial payload:   %.3f kg\n", f.InitialPayloadKg)
	fmt.Printf("  Gas loss rate:     %.3g m³/h\n", f.LossRateM3PerH)
	if !math.IsInf(f.HoursToZeroPayload, 0) {
		fmt.Printf("  To zero payload:   %.1f h\n", f.HoursToZeroPayload)
	}
	if f.GasExhausted {
		fmt.Println("  Limited by the gas running out")
	}
}

func printMaterialComparison(rs []analytics.MaterialResult) {
	fmt.Printf("%-8s %12s %12s %12s\n", "Material", "shell (kg)", "payload (kg)", "safety")
	for _, r := range rs {
		fmt.Printf("%-8s %12.3f %12.3f %12s\n", r.Material.Name, r.State.ShellMassKg, r.State.PayloadKg, safety(r.State.SafetyFactor))
	}
}

func safety(f float64) string {
	if f == 0 {
		return "-"
	}
	return fmt.Sprintf("%.2f", f)
}

func printMaterials(ms []material.Material) {
	fmt.Printf("%-8s %14s %16s %16s %12s\n", "Name", "density kg/m³", "stress limit Pa", "He perm m²/s·Pa", "price /kg")
	for _, m := range ms {
		fmt.Printf("%-8s %14.0f %16.3g %16.3g %12.2f\n", m.Name, m.Density, m.StressLimit, m.HeliumPermeability, m.PricePerKg)
	}
}
