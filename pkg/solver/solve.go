package solver

import "math"

// Options controls the payload-to-volume fixed-point iteration.
type Options struct {
	MaxIterations int
	Tolerance     float64 // m³
	// Strict turns an exhausted iteration budget into a NotConvergedError
	// instead of returning the last iterate.
	Strict bool
}

// DefaultOptions returns 20 iterations at a 0.001 m³ tolerance.
func DefaultOptions() Options {
	return Options{MaxIterations: 20, Tolerance: 0.001}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.MaxIterations <= 0 {
		o.MaxIterations = d.MaxIterations
	}
	if o.Tolerance <= 0 {
		o.Tolerance = d.Tolerance
	}
	return o
}

// SolveVolumeToPayload is StateAt with the volume validated as positive.
func SolveVolumeToPayload(in Input) (*State, error) {
	if in.GasVolumeM3 <= 0 {
		return nil, &NonPositiveTargetError{Field: "gas volume", Value: in.GasVolumeM3}
	}
	return StateAt(in)
}

// SolvePayloadToVolume finds the ground gas volume whose payload capacity
// equals targetPayloadKg. in.GasVolumeM3 is ignored. The envelope mass
// grows with the volume, so the volume is refined by the fixed point
// V = (target + shell(V) + extra + reinforcements)/net starting from
// target/net.
func SolvePayloadToVolume(in Input, targetPayloadKg float64, opts Options) (*State, error) {
	if targetPayloadKg <= 0 {
		return nil, &NonPositiveTargetError{Field: "payload", Value: targetPayloadKg}
	}
	opts = opts.normalized()

	amb, err := conditions(in)
	if err != nil {
		return nil, err
	}

	v := targetPayloadKg / amb.net
	info := &SolveInfo{TargetPayloadKg: targetPayloadKg}
	for info.Iterations < opts.MaxIterations {
		info.Iterations++
		_, _, _, shell, err := geometry(in, amb, v)
		if err != nil {
			return nil, err
		}
		next := (targetPayloadKg + shell + in.ExtraMassKg + in.ReinforcementsKg) / amb.net
		info.LastDeltaM3 = math.Abs(next - v)
		v = next
		if info.LastDeltaM3 < opts.Tolerance {
			info.Converged = true
			break
		}
	}
	if !info.Converged && opts.Strict {
		return nil, &NotConvergedError{Iterations: info.Iterations, LastDelta: info.LastDeltaM3, Tolerance: opts.Tolerance}
	}

	in.GasVolumeM3 = v
	st, err := stateAt(in, amb)
	if err != nil {
		return nil, err
	}
	st.Solve = info
	return st, nil
}
