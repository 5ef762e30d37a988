package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/Mikanister/baloon-calc-sub001/pkg/geo"
	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
)

// SVGOptions controls SVG rendering.
type SVGOptions struct {
	// Smooth redraws the sewing line as a Catmull-Rom spline through the
	// pattern points.
	Smooth   bool
	MarginMM float64 // default 10
	StrokeMM float64 // default 0.3
}

var svgStyles = map[string]string{
	LayerCut:   `stroke="#000000" fill="none"`,
	LayerSew:   `stroke="#1f5fbf" fill="none" stroke-dasharray="4 2"`,
	LayerNotch: `stroke="#c0392b" fill="none"`,
}

// SVG draws the pattern at full scale. The document is sized and the
// viewBox laid out in millimetres with y pointing up the gore.
func SVG(w io.Writer, p pattern.Pattern, opts SVGOptions) error {
	if opts.MarginMM <= 0 {
		opts.MarginMM = 10
	}
	if opts.StrokeMM <= 0 {
		opts.StrokeMM = 0.3
	}
	ps, err := paths(p, opts.Smooth)
	if err != nil {
		return err
	}
	mn, mx := bounds(ps)
	width := (mx.X-mn.X)*mmPerM + 2*opts.MarginMM
	height := (mx.Y-mn.Y)*mmPerM + 2*opts.MarginMM
	toMM := func(v geo.Point2D) (float64, float64) {
		return (v.X-mn.X)*mmPerM + opts.MarginMM, (mx.Y-v.Y)*mmPerM + opts.MarginMM
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%.2fmm" height="%.2fmm" viewBox="0 0 %.2f %.2f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&b, "<title>%s pattern</title>\n", p.Shape())

	for _, layer := range []string{LayerCut, LayerSew, LayerNotch} {
		fmt.Fprintf(&b, `<g id="%s" stroke-width="%.2f">`+"\n", layer, opts.StrokeMM)
		for _, pth := range ps {
			if pth.layer != layer {
				continue
			}
			tag := "polyline"
			if pth.closed {
				tag = "polygon"
			}
			b.WriteString("<" + tag + ` points="`)
			for i, v := range pth.points {
				x, y := toMM(v)
				if i > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "%.3f,%.3f", x, y)
			}
			fmt.Fprintf(&b, `" %s/>`+"\n", svgStyles[layer])
		}
		b.WriteString("</g>\n")
	}
	b.WriteString("</svg>\n")

	_, err = io.WriteString(w, b.String())
	return err
}
