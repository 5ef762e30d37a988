// Package pattern flattens envelope profiles into cutting patterns: gores
// for surfaces of revolution and rectangular panels for pillows.
package pattern

import (
	"fmt"

	"github.com/Mikanister/baloon-calc-sub001/pkg/geo"
	"github.com/Mikanister/baloon-calc-sub001/pkg/shape"
)

const (
	MinGores         = 4
	MaxGores         = 32
	DefaultGores     = 12
	DefaultPoints    = 50
	minPoints        = 4
	areaSampleFactor = 8
)

// NotchFractions are the positions of the alignment notches as fractions of
// the meridian length.
var NotchFractions = []float64{0.1, 0.3, 0.5, 0.7, 0.9}

// Options controls pattern generation. Lengths are in metres.
type Options struct {
	NumGores       int     `json:"num_gores" yaml:"gores"`
	NumPoints      int     `json:"num_points" yaml:"points"`
	SeamAllowanceM float64 `json:"seam_allowance_m" yaml:"seam_allowance_m"`
	Smooth         bool    `json:"smooth" yaml:"smooth"`
}

// DefaultOptions returns 12 gores, 50 points, no seam allowance.
func DefaultOptions() Options {
	return Options{NumGores: DefaultGores, NumPoints: DefaultPoints}
}

func (o Options) normalized() Options {
	if o.NumGores <= 0 {
		o.NumGores = DefaultGores
	}
	o.NumGores = ClampGores(o.NumGores)
	if o.NumPoints <= 0 {
		o.NumPoints = DefaultPoints
	}
	if o.NumPoints < minPoints {
		o.NumPoints = minPoints
	}
	if o.SeamAllowanceM < 0 {
		o.SeamAllowanceM = 0
	}
	return o
}

// ClampGores limits a gore count to [MinGores, MaxGores].
func ClampGores(n int) int {
	if n < MinGores {
		return MinGores
	}
	if n > MaxGores {
		return MaxGores
	}
	return n
}

// Pattern is either a *GorePattern or a *PanelPattern.
type Pattern interface {
	Shape() shape.Kind
	// TotalArea is the design film area without seam allowance, in m².
	TotalArea() float64
	// CutArea is the film area to cut including seam allowance, in m².
	CutArea() float64
	sealed()
}

// Generate builds the pattern for fully specified shape parameters.
func Generate(params shape.Params, opts Options) (Pattern, error) {
	if params == nil {
		return nil, fmt.Errorf("pattern: no shape parameters")
	}
	if pp, ok := params.(shape.PillowParams); ok {
		return GeneratePanels(pp, opts.SeamAllowanceM)
	}
	prof, err := shape.NewProfile(params)
	if err != nil {
		return nil, err
	}
	gp, err := GenerateGores(prof, opts)
	if err != nil {
		return nil, err
	}
	gp.ShapeKind = params.Kind()
	return gp, nil
}

func copyPoints(pts []geo.Point2D) []geo.Point2D {
	out := make([]geo.Point2D, len(pts))
	copy(out, pts)
	return out
}
