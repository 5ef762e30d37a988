package solver

import "fmt"

// NoLiftError is returned when the lifting gas is no lighter than the
// surrounding air at the working height.
type NoLiftError struct {
	HeightM    float64
	AirDensity float64
	GasDensity float64
}

func (e *NoLiftError) Error() string {
	return fmt.Sprintf("no lift at %.0f m: air density %.4f kg/m³ <= gas density %.4f kg/m³",
		e.HeightM, e.AirDensity, e.GasDensity)
}

// NonPositiveTargetError is returned for a payload or volume target ≤ 0.
type NonPositiveTargetError struct {
	Field string
	Value float64
}

func (e *NonPositiveTargetError) Error() string {
	return fmt.Sprintf("%s must be positive, got %g", e.Field, e.Value)
}

// NotConvergedError is returned by a strict payload solve that used up its
// iterations.
type NotConvergedError struct {
	Iterations int
	LastDelta  float64
	Tolerance  float64
}

func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("volume did not converge after %d iterations (last change %.6g m³, tolerance %g m³)",
		e.Iterations, e.LastDelta, e.Tolerance)
}
