package pattern

import (
	"github.com/Mikanister/baloon-calc-sub001/pkg/geo"
	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
)

// Opening sides of a pillow.
const (
	OpeningWidth  = "width"
	OpeningLength = "length"
)

// Panel is one flat rectangle of a pillow. Length and Width are the cut
// dimensions, seam allowance included.
type Panel struct {
	LengthM float64     `json:"length_m"`
	WidthM  float64     `json:"width_m"`
	AreaM2  float64     `json:"area_m2"`
	Outline geo.Polygon `json:"outline"`
}

// PanelPattern is the two-panel pattern of a pillow. The shorter edge is
// left unsewn as the filling opening.
type PanelPattern struct {
	LengthM        float64  `json:"length_m"`
	WidthM         float64  `json:"width_m"`
	ThicknessM     float64  `json:"thickness_m"`
	Panels         [2]Panel `json:"panels"`
	SeamAllowanceM float64  `json:"seam_allowance_m"`
	SeamLengthM    float64  `json:"seam_length_m"`
	OpeningSide    string   `json:"opening_side"`
	OpeningSizeM   float64  `json:"opening_size_m"`
	TotalAreaM2    float64  `json:"total_area_m2"`
}

func (*PanelPattern) Shape() shape.Kind    { return shape.Pillow }
func (pp *PanelPattern) TotalArea() float64 { return pp.TotalAreaM2 }
func (*PanelPattern) sealed()              {}

// CutArea is the area of both panels including seam allowance.
func (pp *PanelPattern) CutArea() float64 {
	return pp.Panels[0].AreaM2 + pp.Panels[1].AreaM2
}

// GeneratePanels builds the pillow pattern. Seam allowance widens every
// edge of each panel; the seam length runs round the design outline less
// the opening.
func GeneratePanels(p shape.PillowParams, seamAllowanceM float64) (*PanelPattern, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if seamAllowanceM < 0 {
		seamAllowanceM = 0
	}

	out := &PanelPattern{
		LengthM:        p.Length,
		WidthM:         p.Width,
		ThicknessM:     p.Thickness,
		SeamAllowanceM: seamAllowanceM,
		TotalAreaM2:    2 * p.Length * p.Width,
	}
	if p.Width <= p.Length {
		out.OpeningSide, out.OpeningSizeM = OpeningWidth, p.Width
		out.SeamLengthM = 2*p.Length + p.Width
	} else {
		out.OpeningSide, out.OpeningSizeM = OpeningLength, p.Length
		out.SeamLengthM = 2*p.Width + p.Length
	}

	l := p.Length + 2*seamAllowanceM
	w := p.Width + 2*seamAllowanceM
	panel := Panel{
		LengthM: l,
		WidthM:  w,
		AreaM2:  l * w,
		Outline: geo.Rect(geo.Origin, l, w),
	}
	out.Panels = [2]Panel{panel, panel}
	out.Panels[1].Outline = geo.Rect(geo.Origin, l, w)
	return out, nil
}
