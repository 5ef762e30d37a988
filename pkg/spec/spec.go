// Package spec reads balloon design files and converts them into solver
// and pattern inputs.
package spec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"gopkg.in/yaml.v3"

	"github.com/Mikanister/baloon-calc-sub001/pkg/cost"
	"github.com/Mikanister/baloon-calc-sub001/pkg/gas"
	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
	"github.com/Mikanister/baloon-calc-sub001/pkg/solver"
)

// Format is a design file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

// Defaults applied when a design leaves the field unset.
const (
	DefaultGroundTempC = 15.0
	DefaultInsideTempC = 100.0
)

// ProjectFiles are the names LoadProject looks for, in order.
var ProjectFiles = []string{"balloon.yaml", "balloon.yml", "balloon.hcl", "balloon.json"}

// FormatFromPath picks the syntax from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".hcl":
		return FormatHCL, nil
	}
	return "", fmt.Errorf("unrecognised design file extension %q (want .yaml, .yml, .json or .hcl)", filepath.Ext(path))
}

// Load reads a design file, choosing the parser by extension.
func Load(path string) (*Design, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading design file: %w", err)
	}
	return Parse(data, format)
}

// LoadProject loads the design file from a project directory.
func LoadProject(projectDir string) (*Design, error) {
	for _, name := range ProjectFiles {
		p := filepath.Join(projectDir, name)
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return nil, fmt.Errorf("no design file in %s (looked for %s)", projectDir, strings.Join(ProjectFiles, ", "))
}

// Parse decodes an in-memory design body.
func Parse(data []byte, format Format) (*Design, error) {
	var d Design
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing design YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("parsing design JSON: %w", err)
		}
	case FormatHCL:
		if err := hclsimple.Decode("design.hcl", data, nil, &d); err != nil {
			return nil, fmt.Errorf("parsing design HCL: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported design format %q", format)
	}
	return &d, nil
}

// EffectiveMode returns the design mode, volume when unset.
func (d *Design) EffectiveMode() Mode {
	if d.Mode == "" {
		return ModeVolume
	}
	return Mode(strings.ToLower(string(d.Mode)))
}

// GroundTemp returns the ground temperature in °C.
func (d *Design) GroundTemp() float64 {
	if d.GroundTempC == nil {
		return DefaultGroundTempC
	}
	return *d.GroundTempC
}

// InsideTemp returns the hot-air envelope temperature in °C.
func (d *Design) InsideTemp() float64 {
	if d.InsideTempC == nil {
		return DefaultInsideTempC
	}
	return *d.InsideTempC
}

// ShapeParams builds the shape parameter hint.
func (d *Design) ShapeParams() (shape.Kind, shape.Params, error) {
	k, err := shape.ParseKind(d.Shape.Kind)
	if err != nil {
		return "", nil, err
	}
	p, err := shape.NewParams(k, shape.Fields{
		Radius:       d.Shape.Radius,
		Length:       d.Shape.Length,
		Width:        d.Shape.Width,
		Thickness:    d.Shape.Thickness,
		Height:       d.Shape.Height,
		TopRadius:    d.Shape.TopRadius,
		BottomRadius: d.Shape.BottomRadius,
	})
	if err != nil {
		return "", nil, err
	}
	return k, p, nil
}

// SolverInput converts the design to solver units: µm to m for the film.
func (d *Design) SolverInput() (solver.Input, error) {
	g, err := gas.ParseKind(d.Gas)
	if err != nil {
		return solver.Input{}, err
	}
	k, params, err := d.ShapeParams()
	if err != nil {
		return solver.Input{}, err
	}
	in := solver.Input{
		Gas:           g,
		GasVolumeM3:   d.GasVolumeM3,
		Material:      d.Material,
		ThicknessM:    d.ThicknessUM * 1e-6,
		LaunchHeightM: d.LaunchHeightM,
		WorkHeightM:   d.WorkHeightM,
		GroundTempC:   d.GroundTemp(),
		InsideTempC:   d.InsideTemp(),
		Shape:         k,
		ShapeParams:   params,
	}
	if a := d.Advanced; a != nil {
		in.ExtraMassKg = a.ExtraMassKg
		in.SeamFactor = a.SeamFactor
		in.ReinforcementsKg = a.ReinforcementsKg
		in.SafetyMarginPct = a.SafetyMarginPct
		in.SuperpressurePa = a.SuperpressurePa
		in.DurationH = a.DurationH
		in.PermMult = a.PermMult
	}
	return in, nil
}

// PatternOptions converts the pattern block, mm to m for the seam
// allowance. Unset values fall back to base.
func (d *Design) PatternOptions(base pattern.Options) pattern.Options {
	opts := base
	if p := d.Pattern; p != nil {
		if p.Gores > 0 {
			opts.NumGores = p.Gores
		}
		if p.Points > 0 {
			opts.NumPoints = p.Points
		}
		if p.SeamAllowanceMM > 0 {
			opts.SeamAllowanceM = p.SeamAllowanceMM / 1000
		}
		opts.Smooth = opts.Smooth || p.Smooth
	}
	return opts
}

// PriceOverrides returns the price overrides of the design.
func (d *Design) PriceOverrides() cost.Prices {
	if d.Prices == nil {
		return cost.Prices{}
	}
	return cost.Prices{MaterialPerKg: d.Prices.MaterialPerKg, GasPerM3: d.Prices.GasPerM3}
}
