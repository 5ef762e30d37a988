package spec

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Mikanister/baloon-calc-sub001/pkg/gas"
	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
)

func TestLoadProjectYAML(t *testing.T) {
	d, err := LoadProject("../../examples/weather-balloon")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if d.Name != "weather-balloon" {
		t.Errorf("name = %q, want %q", d.Name, "weather-balloon")
	}
	if d.EffectiveMode() != ModeVolume {
		t.Errorf("mode = %q, want volume", d.EffectiveMode())
	}
	if d.GasVolumeM3 != 10 {
		t.Errorf("gas_volume_m3 = %v, want 10", d.GasVolumeM3)
	}

	in, err := d.SolverInput()
	if err != nil {
		t.Fatal(err)
	}
	if in.Gas != gas.Helium || in.Shape != shape.Sphere {
		t.Errorf("gas/shape = %v/%v", in.Gas, in.Shape)
	}
	if math.Abs(in.ThicknessM-35e-6) > 1e-15 {
		t.Errorf("thickness = %v m, want 35e-6", in.ThicknessM)
	}
	if in.SeamFactor != 1.05 || in.DurationH != 24 {
		t.Errorf("advanced = %v, %v", in.SeamFactor, in.DurationH)
	}

	opts := d.PatternOptions(pattern.DefaultOptions())
	if opts.NumGores != 12 || opts.NumPoints != 60 || math.Abs(opts.SeamAllowanceM-0.01) > 1e-15 {
		t.Errorf("pattern options = %+v", opts)
	}
	if p := d.PriceOverrides(); p.GasPerM3 != 140 || p.MaterialPerKg != 0 {
		t.Errorf("prices = %+v", p)
	}
}

func TestLoadProjectHCL(t *testing.T) {
	d, err := LoadProject("../../examples/hot-air")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if d.Gas != "hot_air" || d.Material != "Nylon" {
		t.Errorf("gas/material = %q/%q", d.Gas, d.Material)
	}
	if d.GroundTemp() != 10 || d.InsideTemp() != 100 {
		t.Errorf("temperatures = %v/%v, want 10/100", d.GroundTemp(), d.InsideTemp())
	}
	if d.Advanced == nil || d.Advanced.ExtraMassKg != 15 {
		t.Errorf("advanced = %+v", d.Advanced)
	}
	if d.Pattern == nil || d.Pattern.Gores != 16 || !d.Pattern.Smooth {
		t.Errorf("pattern = %+v", d.Pattern)
	}
	if d.Prices != nil {
		t.Errorf("prices = %+v, want nil", d.Prices)
	}
}

func TestLoadProjectJSON(t *testing.T) {
	d, err := LoadProject("../../examples/cigar-payload")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if d.EffectiveMode() != ModePayload || d.TargetPayloadKg != 2.5 {
		t.Errorf("mode = %q, target = %v", d.EffectiveMode(), d.TargetPayloadKg)
	}
	in, err := d.SolverInput()
	if err != nil {
		t.Fatal(err)
	}
	cp, ok := in.ShapeParams.(shape.CigarParams)
	if !ok || cp.Radius != 0.8 || cp.Length != 0 {
		t.Errorf("shape hint = %#v", in.ShapeParams)
	}
	if in.GroundTempC != DefaultGroundTempC {
		t.Errorf("ground temp = %v, want default %v", in.GroundTempC, DefaultGroundTempC)
	}
}

func TestLoadProjectMissing(t *testing.T) {
	if _, err := LoadProject(t.TempDir()); err == nil {
		t.Error("expected error for a directory without a design file")
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	body := "gas = \"helium\"\nmaterial = \"HDPE\"\nthickness_um = 20\ngas_volume_m3 = 3\nshape {\n  kind = \"pillow\"\n  length = 2\n}\n"
	path := filepath.Join(dir, "design.hcl")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	d, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if d.Shape.Kind != "pillow" || d.Shape.Length != 2 {
		t.Errorf("shape = %+v", d.Shape)
	}

	if _, err := Load(filepath.Join(dir, "design.toml")); err == nil {
		t.Error("expected error for unknown extension")
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("gas: [unclosed"), FormatYAML); err == nil {
		t.Error("expected YAML error")
	}
	if _, err := Parse([]byte("{"), FormatJSON); err == nil {
		t.Error("expected JSON error")
	}
	if _, err := Parse([]byte("gas = \"helium\"\n"), FormatHCL); err == nil {
		t.Error("expected HCL error for missing required attributes")
	}
}

func TestSolverInputUnknownKinds(t *testing.T) {
	d := &Design{Gas: "argon", Material: "TPU", ThicknessUM: 30, Shape: ShapeDef{Kind: "sphere"}}
	var ge *gas.UnsupportedKindError
	if _, err := d.SolverInput(); !errors.As(err, &ge) {
		t.Errorf("error = %v, want gas.UnsupportedKindError", err)
	}

	d.Gas = "helium"
	d.Shape.Kind = "torus"
	var se *shape.UnsupportedKindError
	if _, err := d.SolverInput(); !errors.As(err, &se) {
		t.Errorf("error = %v, want shape.UnsupportedKindError", err)
	}
}
