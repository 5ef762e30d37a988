package validation

import (
	"fmt"

	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
)

// Analytical thresholds.
const (
	MinSafetyFactor = 1.5
	// MaxStructuralShare is the fraction of lift the envelope, extra mass
	// and reinforcements may use before the design is flagged.
	MaxStructuralShare = 0.95
)

// Analytical checks a solved state.
func Analytical(st *solver.State) *Report {
	r := NewReport()

	if st.PayloadKg <= 0 {
		r.AddError(Result{
			Level:       LevelAnalytical,
			Message:     fmt.Sprintf("no payload capacity: shell and extra mass need %.3f kg of %.3f kg lift", st.LiftKg-st.PayloadKg, st.LiftKg),
			SpecPath:    "gas_volume_m3",
			ActualValue: st.PayloadKg,
			Expected:    "> 0",
			Suggestions: []string{"Increase the gas volume", "Use a thinner or lighter film"},
		})
	}

	if st.StressPa > 0 && st.SafetyFactor < MinSafetyFactor {
		r.AddWarning(Result{
			Level:       LevelAnalytical,
			Message:     fmt.Sprintf("film stress %.3g Pa leaves a safety factor of %.2f", st.StressPa, st.SafetyFactor),
			SpecPath:    "advanced.superpressure_pa",
			ActualValue: st.SafetyFactor,
			Expected:    fmt.Sprintf(">= %.1f", MinSafetyFactor),
			Suggestions: []string{"Reduce superpressure", "Use a thicker or stronger film"},
		})
	}

	if st.LiftKg > 0 {
		if share := (st.LiftKg - st.PayloadKg) / st.LiftKg; share > MaxStructuralShare && st.PayloadKg > 0 {
			r.AddWarning(Result{
				Level:       LevelAnalytical,
				Message:     fmt.Sprintf("envelope and fixed masses take %.0f%% of the lift", share*100),
				SpecPath:    "lift_budget",
				ActualValue: share,
				Expected:    fmt.Sprintf("<= %.2f", MaxStructuralShare),
			})
		}
	}

	if st.Flight.DurationH > 0 && st.PayloadKg > 0 && st.Flight.PayloadEndKg <= 0 {
		r.AddWarning(Result{
			Level:       LevelAnalytical,
			Message:     fmt.Sprintf("payload capacity is lost to permeation within %.1f h", st.Flight.DurationH),
			SpecPath:    "advanced.duration_h",
			ActualValue: st.Flight.PayloadEndKg,
			Expected:    "> 0",
		})
	}

	if st.Solve != nil && !st.Solve.Converged {
		r.AddWarning(Result{
			Level:       LevelAnalytical,
			Message:     fmt.Sprintf("volume solve stopped after %d iterations without converging", st.Solve.Iterations),
			SpecPath:    "target_payload_kg",
			ActualValue: st.Solve.LastDeltaM3,
		})
	}

	return r
}
