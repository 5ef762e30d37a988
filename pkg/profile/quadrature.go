package profile

import (
	"container/heap"
	"math"
)

// 15-point Kronrod nodes (positive half, descending) with the embedded
// 7-point Gauss rule on the odd-indexed nodes and the centre.
var (
	kronrodNodes = [8]float64{
		0.991455371120812639206854697526329,
		0.949107912342758524526189684047851,
		0.864864423359769072789712788640926,
		0.741531185599394439863864773280788,
		0.586087235467691130294144845693013,
		0.405845151377397166906606412076961,
		0.207784955007898467600689403773245,
		0,
	}
	kronrodWeights = [8]float64{
		0.022935322010529224963732008058970,
		0.063092092629978553290700663189204,
		0.104790010322250183839876322541518,
		0.140653259715525918745189590510238,
		0.169004726639267902826583426598550,
		0.190350578064785409913256402421014,
		0.204432940075298892414161999234649,
		0.209482141084727828012999174891714,
	}
	gaussWeights = [4]float64{
		0.129484966168869693270611432679082,
		0.279705391489276667901467771423780,
		0.381830050505118944950369775488975,
		0.417959183673469387755102040816327,
	}
)

type quadInterval struct {
	a, b       float64
	value, err float64
}

func gk15(f func(float64) float64, a, b float64) quadInterval {
	c := 0.5 * (a + b)
	h := 0.5 * (b - a)
	fc := f(c)
	resK := kronrodWeights[7] * fc
	resG := gaussWeights[3] * fc
	for j := 0; j < 7; j++ {
		x := h * kronrodNodes[j]
		sum := f(c-x) + f(c+x)
		resK += kronrodWeights[j] * sum
		if j%2 == 1 {
			resG += gaussWeights[j/2] * sum
		}
	}
	return quadInterval{a: a, b: b, value: resK * h, err: math.Abs((resK - resG) * h)}
}

// intervalHeap orders intervals by descending error estimate.
type intervalHeap []quadInterval

func (h intervalHeap) Len() int            { return len(h) }
func (h intervalHeap) Less(i, j int) bool  { return h[i].err > h[j].err }
func (h intervalHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *intervalHeap) Push(x interface{}) { *h = append(*h, x.(quadInterval)) }
func (h *intervalHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// adaptiveQuad integrates f over [a, b] with globally adaptive G7-K15
// bisection, always splitting the interval with the largest error. It stops
// once the summed error meets max(epsAbs, epsRel·|I|) or limit intervals are
// in use, and reports whether the tolerance was met.
func adaptiveQuad(f func(float64) float64, a, b, epsAbs, epsRel float64, limit int) (float64, bool) {
	if b <= a {
		return 0, true
	}
	h := &intervalHeap{gk15(f, a, b)}
	minWidth := 1e-14 * (b - a)

	for {
		total, errSum := 0.0, 0.0
		for _, it := range *h {
			total += it.value
			errSum += it.err
		}
		if errSum <= math.Max(epsAbs, epsRel*math.Abs(total)) {
			return total, true
		}
		if h.Len() >= limit {
			return total, false
		}
		worst := heap.Pop(h).(quadInterval)
		if worst.b-worst.a < minWidth {
			heap.Push(h, worst)
			return total, false
		}
		mid := 0.5 * (worst.a + worst.b)
		heap.Push(h, gk15(f, worst.a, mid))
		heap.Push(h, gk15(f, mid, worst.b))
	}
}
