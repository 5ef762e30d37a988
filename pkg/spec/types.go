package spec

// Design describes one balloon as read from a design file. Lengths are in
// metres except the film thickness (µm) and seam allowance (mm).
type Design struct {
	Name        string  `yaml:"name" json:"name" hcl:"name,optional"`
	Gas         string  `yaml:"gas" json:"gas" hcl:"gas"`
	Material    string  `yaml:"material" json:"material" hcl:"material"`
	ThicknessUM float64 `yaml:"thickness_um" json:"thickness_um" hcl:"thickness_um"`

	LaunchHeightM float64  `yaml:"launch_height_m" json:"launch_height_m" hcl:"launch_height_m,optional"`
	WorkHeightM   float64  `yaml:"work_height_m" json:"work_height_m" hcl:"work_height_m,optional"`
	GroundTempC   *float64 `yaml:"ground_temp_c" json:"ground_temp_c" hcl:"ground_temp_c,optional"`
	InsideTempC   *float64 `yaml:"inside_temp_c" json:"inside_temp_c" hcl:"inside_temp_c,optional"`

	Mode            Mode    `yaml:"mode" json:"mode" hcl:"mode,optional"`
	GasVolumeM3     float64 `yaml:"gas_volume_m3" json:"gas_volume_m3" hcl:"gas_volume_m3,optional"`
	TargetPayloadKg float64 `yaml:"target_payload_kg" json:"target_payload_kg" hcl:"target_payload_kg,optional"`

	Shape    ShapeDef     `yaml:"shape" json:"shape" hcl:"shape,block"`
	Advanced *AdvancedDef `yaml:"advanced" json:"advanced,omitempty" hcl:"advanced,block"`
	Pattern  *PatternDef  `yaml:"pattern" json:"pattern,omitempty" hcl:"pattern,block"`
	Prices   *PricesDef   `yaml:"prices" json:"prices,omitempty" hcl:"prices,block"`
}

// Mode selects which quantity the design fixes.
type Mode string

const (
	// ModeVolume fixes the gas volume and reports the payload.
	ModeVolume Mode = "volume"
	// ModePayload fixes the payload and solves for the gas volume.
	ModePayload Mode = "payload"
)

// ShapeDef is the envelope shape. Unset dimensions are derived from the
// gas volume.
type ShapeDef struct {
	Kind         string  `yaml:"kind" json:"kind" hcl:"kind"`
	Radius       float64 `yaml:"radius,omitempty" json:"radius,omitempty" hcl:"radius,optional"`
	Length       float64 `yaml:"length,omitempty" json:"length,omitempty" hcl:"length,optional"`
	Width        float64 `yaml:"width,omitempty" json:"width,omitempty" hcl:"width,optional"`
	Thickness    float64 `yaml:"thickness,omitempty" json:"thickness,omitempty" hcl:"thickness,optional"`
	Height       float64 `yaml:"height,omitempty" json:"height,omitempty" hcl:"height,optional"`
	TopRadius    float64 `yaml:"top_radius,omitempty" json:"top_radius,omitempty" hcl:"top_radius,optional"`
	BottomRadius float64 `yaml:"bottom_radius,omitempty" json:"bottom_radius,omitempty" hcl:"bottom_radius,optional"`
}

type AdvancedDef struct {
	ExtraMassKg      float64 `yaml:"extra_mass_kg" json:"extra_mass_kg" hcl:"extra_mass_kg,optional"`
	SeamFactor       float64 `yaml:"seam_factor" json:"seam_factor" hcl:"seam_factor,optional"`
	ReinforcementsKg float64 `yaml:"reinforcements_kg" json:"reinforcements_kg" hcl:"reinforcements_kg,optional"`
	SafetyMarginPct  float64 `yaml:"safety_margin_pct" json:"safety_margin_pct" hcl:"safety_margin_pct,optional"`
	SuperpressurePa  float64 `yaml:"superpressure_pa" json:"superpressure_pa" hcl:"superpressure_pa,optional"`
	DurationH        float64 `yaml:"duration_h" json:"duration_h" hcl:"duration_h,optional"`
	PermMult         float64 `yaml:"perm_mult" json:"perm_mult" hcl:"perm_mult,optional"`
}

type PatternDef struct {
	Gores           int     `yaml:"gores" json:"gores" hcl:"gores,optional"`
	Points          int     `yaml:"points" json:"points" hcl:"points,optional"`
	SeamAllowanceMM float64 `yaml:"seam_allowance_mm" json:"seam_allowance_mm" hcl:"seam_allowance_mm,optional"`
	Smooth          bool    `yaml:"smooth" json:"smooth" hcl:"smooth,optional"`
}

type PricesDef struct {
	MaterialPerKg float64 `yaml:"material_per_kg" json:"material_per_kg" hcl:"material_per_kg,optional"`
	GasPerM3      float64 `yaml:"gas_per_m3" json:"gas_per_m3" hcl:"gas_per_m3,optional"`
}
