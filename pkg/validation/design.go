package validation

import (
	"fmt"
	"strings"

	"github.com/Mikanister/baloon-calc-sub001/pkg/atmosphere"
	"github.com/Mikanister/baloon-calc-sub001/pkg/gas"
	"github.com/Mikanister/baloon-calc-sub001/pkg/material"
	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
	"github.com/Mikanister/baloon-calc-sub001/pkg/spec"
)

// Design limits.
const (
	MaxThicknessUM = 10000.0
	MaxHeightM     = 50000.0
)

// ValidateDesign performs schema validation on a parsed design. It checks
// the design before any computation.
func ValidateDesign(d *spec.Design) *Report {
	r := NewReport()

	validateKinds(d, r)
	validateFilm(d, r)
	validateHeights(d, r)
	validateMode(d, r)
	validateShape(d, r)
	validateAdvanced(d, r)
	validatePattern(d, r)

	return r
}

func validateKinds(d *spec.Design, r *Report) {
	g, err := gas.ParseKind(d.Gas)
	if err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     err.Error(),
			SpecPath:    "gas",
			ActualValue: d.Gas,
			Expected:    joinKinds(gas.Kinds()),
		})
	}
	if _, err := material.Lookup(d.Material); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     err.Error(),
			SpecPath:    "material",
			ActualValue: d.Material,
			Expected:    strings.Join(material.Names(), ", "),
		})
	}
	if _, err := shape.ParseKind(d.Shape.Kind); err != nil {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     err.Error(),
			SpecPath:    "shape.kind",
			ActualValue: d.Shape.Kind,
			Expected:    joinKinds(shape.Kinds()),
		})
	}

	if g == gas.HotAir && d.InsideTemp() <= d.GroundTemp() {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("inside temperature %.1f °C must exceed ground temperature %.1f °C for hot air", d.InsideTemp(), d.GroundTemp()),
			SpecPath:    "inside_temp_c",
			ActualValue: d.InsideTemp(),
			Expected:    fmt.Sprintf("> %.1f", d.GroundTemp()),
			Suggestions: []string{"Raise inside_temp_c", "Use helium or hydrogen"},
		})
	}
}

func validateFilm(d *spec.Design, r *Report) {
	if d.ThicknessUM <= 0 || d.ThicknessUM > MaxThicknessUM {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "film thickness out of range",
			SpecPath:    "thickness_um",
			ActualValue: d.ThicknessUM,
			Expected:    fmt.Sprintf("> 0 and <= %.0f", MaxThicknessUM),
		})
	}
}

func validateHeights(d *spec.Design, r *Report) {
	for path, v := range map[string]float64{"launch_height_m": d.LaunchHeightM, "work_height_m": d.WorkHeightM} {
		if v < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     path + " must be non-negative",
				SpecPath:    path,
				ActualValue: v,
				Expected:    ">= 0",
			})
		}
	}

	total := d.LaunchHeightM + d.WorkHeightM
	switch {
	case total > MaxHeightM:
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("total height %.0f m exceeds %.0f m", total, MaxHeightM),
			SpecPath:    "work_height_m",
			ActualValue: total,
			Expected:    fmt.Sprintf("<= %.0f", MaxHeightM),
		})
	case total > atmosphere.TropopauseHeight:
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("total height %.0f m is above the tropopause; temperature is held constant", total),
			SpecPath:    "work_height_m",
			ActualValue: total,
		})
	}
}

func validateMode(d *spec.Design, r *Report) {
	switch d.EffectiveMode() {
	case spec.ModeVolume:
		if d.GasVolumeM3 <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "gas volume must be positive in volume mode",
				SpecPath:    "gas_volume_m3",
				ActualValue: d.GasVolumeM3,
				Expected:    "> 0",
			})
		}
	case spec.ModePayload:
		if d.TargetPayloadKg <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "target payload must be positive in payload mode",
				SpecPath:    "target_payload_kg",
				ActualValue: d.TargetPayloadKg,
				Expected:    "> 0",
			})
		}
	default:
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("unknown mode %q", d.Mode),
			SpecPath:    "mode",
			ActualValue: d.Mode,
			Expected:    "volume or payload",
		})
	}
}

func validateShape(d *spec.Design, r *Report) {
	s := d.Shape
	fields := map[string]float64{
		"radius":        s.Radius,
		"length":        s.Length,
		"width":         s.Width,
		"thickness":     s.Thickness,
		"height":        s.Height,
		"top_radius":    s.TopRadius,
		"bottom_radius": s.BottomRadius,
	}
	for name, v := range fields {
		if v < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("shape.%s must be non-negative", name),
				SpecPath:    "shape." + name,
				ActualValue: v,
				Expected:    ">= 0",
			})
		}
	}

	if k, err := shape.ParseKind(s.Kind); err == nil && k == shape.Cigar && s.Radius > 0 && s.Length > 0 && 2*s.Radius > s.Length {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("cigar diameter %.3f m exceeds length %.3f m", 2*s.Radius, s.Length),
			SpecPath:    "shape.radius",
			ActualValue: s.Radius,
			Expected:    fmt.Sprintf("<= %.3f", s.Length/2),
			Suggestions: []string{"Leave length unset to derive it from the volume"},
		})
	}
}

func validateAdvanced(d *spec.Design, r *Report) {
	a := d.Advanced
	if a == nil {
		return
	}
	if a.SeamFactor != 0 && a.SeamFactor < 1 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "seam factor below 1 reduces the envelope area",
			SpecPath:    "advanced.seam_factor",
			ActualValue: a.SeamFactor,
			Expected:    ">= 1",
		})
	}
	for path, v := range map[string]float64{
		"advanced.extra_mass_kg":     a.ExtraMassKg,
		"advanced.reinforcements_kg": a.ReinforcementsKg,
		"advanced.safety_margin_pct": a.SafetyMarginPct,
		"advanced.duration_h":        a.DurationH,
		"advanced.superpressure_pa":  a.SuperpressurePa,
	} {
		if v < 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     path + " must be non-negative",
				SpecPath:    path,
				ActualValue: v,
				Expected:    ">= 0",
			})
		}
	}
}

func validatePattern(d *spec.Design, r *Report) {
	p := d.Pattern
	if p == nil || p.Gores == 0 {
		return
	}
	if p.Gores < pattern.MinGores || p.Gores > pattern.MaxGores {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("gore count %d will be clamped to %d", p.Gores, pattern.ClampGores(p.Gores)),
			SpecPath:    "pattern.gores",
			ActualValue: p.Gores,
			Expected:    fmt.Sprintf("%d-%d", pattern.MinGores, pattern.MaxGores),
		})
	}
}

func joinKinds[K ~string](kinds []K) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
