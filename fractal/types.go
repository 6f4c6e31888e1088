// Package fractal - types, options and sentinel errors for the orbit check.
package fractal

import "errors"

// Sentinel errors for fractal operations.
var (
	// ErrBadDepth indicates Depth outside [MinDepth, MaxDepth].
	ErrBadDepth = errors.New("fractal: depth must be in [1, 20]")
)

// Depth bounds. The ceiling keeps the recurrence cheap enough to treat as a
// pure function; the floor guarantees at least one step executes.
const (
	// MinDepth is the smallest accepted iteration depth.
	MinDepth = 1
	// MaxDepth is the largest accepted iteration depth.
	MaxDepth = 20
)

// Fixed recurrence constant c = CReal + CImag·i. Frozen: every recorded
// pattern depends on it.
const (
	// CReal is the real part of the recurrence constant.
	CReal = -0.8
	// CImag is the imaginary part of the recurrence constant.
	CImag = 0.156
)

// EscapeRadius is the magnitude beyond which the orbit counts as escaped.
const EscapeRadius = 2.0

// Options configures the bounded recurrence.
//
// Depth            – number of z ← z²+c steps to attempt; must be in
//
//	[MinDepth, MaxDepth].
//
// ReturnTrajectory – if true, State.Trajectory records z₀..z_k (k =
//
//	iterations executed); otherwise Trajectory is nil.
type Options struct {
	Depth            int
	ReturnTrajectory bool
}

// DefaultOptions returns Options with Depth=10 and no trajectory capture.
func DefaultOptions() Options {
	return Options{
		Depth:            10,
		ReturnTrajectory: false,
	}
}

// State is the outcome of the bounded recurrence. Immutable once returned.
type State struct {
	// Real and Imag are the components of the final orbit point.
	Real float64
	Imag float64
	// Iterations is the number of steps executed before escape or before
	// the depth limit; never exceeds Options.Depth.
	Iterations int
	// Escaped reports whether |z| exceeded EscapeRadius (or went non-finite)
	// before the depth limit.
	Escaped bool
	// Trajectory holds z₀..z_Iterations when requested, nil otherwise.
	Trajectory []complex128
}
