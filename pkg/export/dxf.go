package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Mikanister/baloon-calc-sub001/pkg/pattern"
)

// AutoCAD colour index per layer.
var dxfColors = map[string]int{
	LayerCut:   7,
	LayerSew:   5,
	LayerNotch: 1,
}

// DXF writes the pattern as an AutoCAD R12 ASCII drawing in millimetres.
// Outlines become POLYLINE entities and notches LINE entities, each on its
// CUT, SEW or NOTCH layer.
func DXF(w io.Writer, p pattern.Pattern) error {
	ps, err := paths(p, false)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	pair := func(code int, value string) {
		fmt.Fprintf(bw, "%d\n%s\n", code, value)
	}
	num := func(code int, v float64) {
		pair(code, fmt.Sprintf("%.4f", v))
	}

	pair(0, "SECTION")
	pair(2, "HEADER")
	pair(9, "$ACADVER")
	pair(1, "AC1009")
	pair(9, "$INSUNITS")
	pair(70, "4")
	pair(0, "ENDSEC")

	pair(0, "SECTION")
	pair(2, "TABLES")
	pair(0, "TABLE")
	pair(2, "LAYER")
	pair(70, fmt.Sprint(len(dxfColors)))
	for _, layer := range []string{LayerCut, LayerSew, LayerNotch} {
		pair(0, "LAYER")
		pair(2, layer)
		pair(70, "0")
		pair(62, fmt.Sprint(dxfColors[layer]))
		pair(6, "CONTINUOUS")
	}
	pair(0, "ENDTAB")
	pair(0, "ENDSEC")

	pair(0, "SECTION")
	pair(2, "ENTITIES")
	for _, pth := range ps {
		if len(pth.points) == 2 && !pth.closed {
			a, b := pth.points[0], pth.points[1]
			pair(0, "LINE")
			pair(8, pth.layer)
			num(10, a.X*mmPerM)
			num(20, a.Y*mmPerM)
			num(30, 0)
			num(11, b.X*mmPerM)
			num(21, b.Y*mmPerM)
			num(31, 0)
			continue
		}
		flags := "0"
		if pth.closed {
			flags = "1"
		}
		pair(0, "POLYLINE")
		pair(8, pth.layer)
		pair(66, "1")
		pair(70, flags)
		num(10, 0)
		num(20, 0)
		num(30, 0)
		for _, v := range pth.points {
			pair(0, "VERTEX")
			pair(8, pth.layer)
			num(10, v.X*mmPerM)
			num(20, v.Y*mmPerM)
			num(30, 0)
		}
		pair(0, "SEQEND")
		pair(8, pth.layer)
	}
	pair(0, "ENDSEC")
	pair(0, "EOF")

	return bw.Flush()
}
