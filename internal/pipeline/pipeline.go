// Package pipeline runs a design through validation, the solver, pattern
// generation and costing. The CLI and the HTTP server both drive it.
package pipeline

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Mikanister/baloon-calc-sub001/internal/config"
	apperrors "github.com/Mikanister/baloon-calc-sub001/internal/errors"
	"github.com/Mikanister/baloon-calc-sub001/internal/logging"
	"github.com/Mikanister/baloon-calc-sub001/pkg/analytics"
	"github.com/Mikanister/baloon-calc-sub001/pkg/cost"
	"github.com/Mikanister/baloon-calc-sub001/pkg/export"
	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
	"github.com/Mikanister/baloon-calc-sub001/pkg/spec"
	"github.com/Mikanister/baloon-calc-sub001/pkg/validation"
)

// Settings are the defaults a design file may override.
type Settings struct {
	Solver  solver.Options
	Pattern pattern.Options
	Prices  cost.Prices
}

// DefaultSettings uses the package defaults and reference prices.
func DefaultSettings() Settings {
	return Settings{
		Solver:  solver.DefaultOptions(),
		Pattern: pattern.DefaultOptions(),
	}
}

// SettingsFrom reads the solver, pattern and price sections of cfg.
func SettingsFrom(cfg *config.Config) Settings {
	return Settings{
		Solver:  cfg.SolverOptions(),
		Pattern: cfg.PatternOptions(),
		Prices:  cfg.Prices,
	}
}

// Result is everything computed for one design. Later stages are nil when
// an earlier one failed or was not requested.
type Result struct {
	Name       string             `json:"name,omitempty"`
	Mode       spec.Mode          `json:"mode"`
	Validation *validation.Report `json:"validation"`
	State      *solver.State      `json:"state,omitempty"`
	Pattern    pattern.Pattern    `json:"pattern,omitempty"`
	Cost       *cost.Breakdown    `json:"cost,omitempty"`
}

// Solve validates d and solves it in mode, or in the design's own mode when
// mode is empty. A design with schema errors is not solved; the returned
// Result still carries the report.
func Solve(d *spec.Design, mode spec.Mode, s Settings) (*Result, error) {
	if mode == "" {
		mode = d.EffectiveMode()
	}
	res := &Result{Name: d.Name, Mode: mode, Validation: validation.ValidateDesign(d)}
	if !res.Validation.Valid {
		return res, apperrors.New(apperrors.TypeInput, "design has validation errors").
			WithContext("summary", res.Validation.Summary)
	}

	in, err := d.SolverInput()
	if err != nil {
		return res, err
	}

	start := time.Now()
	var st *solver.State
	switch mode {
	case spec.ModePayload:
		st, err = solver.SolvePayloadToVolume(in, d.TargetPayloadKg, s.Solver)
	case spec.ModeVolume:
		st, err = solver.SolveVolumeToPayload(in)
	default:
		return res, apperrors.Newf(apperrors.TypeInput, "unknown mode %q", mode)
	}
	if err != nil {
		return res, err
	}
	logging.Debug("design solved",
		zap.String("design", d.Name),
		zap.String("mode", string(mode)),
		zap.Float64("gas_volume_m3", st.GasVolumeM3),
		zap.Float64("payload_kg", st.PayloadKg),
		zap.Duration("elapsed", time.Since(start)),
	)

	res.State = st
	res.Validation.Merge(validation.Analytical(st))
	return res, nil
}

// AddPattern generates the cutting pattern of the solved envelope.
func (r *Result) AddPattern(d *spec.Design, s Settings) error {
	if r.State == nil {
		return apperrors.New(apperrors.TypeInternal, "pattern requested before solving")
	}
	p, err := pattern.Generate(r.State.Dimensions.Params, d.PatternOptions(s.Pattern))
	if err != nil {
		return err
	}
	r.Pattern = p
	return nil
}

// AddCost prices the solved balloon. Design prices win over settings.
func (r *Result) AddCost(d *spec.Design, s Settings) error {
	if r.State == nil {
		return apperrors.New(apperrors.TypeInternal, "cost requested before solving")
	}
	b, err := cost.Estimate(r.State, d.PriceOverrides().Merge(s.Prices))
	if err != nil {
		return err
	}
	r.Cost = b
	return nil
}

// Full solves d in its own mode and adds the pattern and cost.
func Full(d *spec.Design, s Settings) (*Result, error) {
	res, err := Solve(d, "", s)
	if err != nil {
		return res, err
	}
	if err := res.AddPattern(d, s); err != nil {
		return res, err
	}
	if err := res.AddCost(d, s); err != nil {
		return res, err
	}
	return res, nil
}

// Report assembles an export report. profile may be nil.
func (r *Result) Report(profile []analytics.HeightPoint) export.Report {
	title := r.Name
	if title == "" {
		title = "Balloon design"
	}
	return export.Report{
		Title:     title,
		Generated: time.Now(),
		State:     r.State,
		Pattern:   r.Pattern,
		Cost:      r.Cost,
		Profile:   profile,
	}
}

// AnalysisKind names one of the analyses of pkg/analytics.
type AnalysisKind string

const (
	AnalysisProfile   AnalysisKind = "profile"
	AnalysisOptimal   AnalysisKind = "optimal"
	AnalysisFlight    AnalysisKind = "flight"
	AnalysisMaterials AnalysisKind = "materials"
)

// AnalysisKinds lists the kinds in display order.
func AnalysisKinds() []AnalysisKind {
	return []AnalysisKind{AnalysisProfile, AnalysisOptimal, AnalysisFlight, AnalysisMaterials}
}

// AnalysisOptions tunes Analyze. Zero values use the analytics defaults.
type AnalysisOptions struct {
	MaxHeightM   float64
	StepM        float64
	MinPayloadKg float64
}

// Analyze solves d and runs one analysis at its gas volume. Payload-mode
// designs are analysed at the solved volume. The returned value is one of
// []analytics.HeightPoint, *analytics.Optimum, *analytics.FlightTime or
// []analytics.MaterialResult.
func Analyze(d *spec.Design, kind AnalysisKind, opts AnalysisOptions, s Settings) (any, error) {
	res, err := Solve(d, "", s)
	if err != nil {
		return nil, err
	}
	in, err := d.SolverInput()
	if err != nil {
		return nil, err
	}
	in.GasVolumeM3 = res.State.GasVolumeM3

	switch AnalysisKind(strings.ToLower(string(kind))) {
	case AnalysisProfile:
		return analytics.HeightProfile(in, opts.MaxHeightM, opts.StepM)
	case AnalysisOptimal:
		return analytics.OptimalHeight(in, opts.MaxHeightM)
	case AnalysisFlight:
		return analytics.MaxFlightTime(in, opts.MinPayloadKg)
	case AnalysisMaterials:
		return analytics.CompareMaterials(in)
	}
	return nil, apperrors.Newf(apperrors.TypeInput, "unknown analysis %q (want %s)", kind, joinKinds())
}

func joinKinds() string {
	names := make([]string, 0, len(AnalysisKinds()))
	for _, k := range AnalysisKinds() {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
