// Package pattern - options, result record and sentinel errors for the
// pipeline entrypoint.
package pattern

import (
	"errors"

	"github.com/katalvlaran/bazinga/cycle"
	"github.com/katalvlaran/bazinga/fractal"
	"github.com/katalvlaran/bazinga/textfeat"
)

// Sentinel errors for pipeline validation. All of them are detected before
// any computation starts.
var (
	// ErrEmptyInput indicates the input text is empty.
	ErrEmptyInput = errors.New("pattern: input text must be non-empty")
	// ErrBadDepth indicates Depth outside [fractal.MinDepth, fractal.MaxDepth].
	ErrBadDepth = errors.New("pattern: depth must be in [1, 20]")
	// ErrBadCycleDays indicates a non-positive CycleDays.
	ErrBadCycleDays = errors.New("pattern: cycleDays must be positive")
)

// Phi is the golden ratio, the fixed blending constant of the frequency
// formula. Frozen: not user-configurable, shared with the cycle mapper.
const Phi = 1.618033988749895

// Options configures one pipeline invocation.
//
// Depth            – fractal iteration bound, in [1, 20].
// CycleDays        – cycle length for the principle mapper, > 0.
// ReturnTrajectory – capture the fractal orbit points in Result.Fractal.
type Options struct {
	Depth            int
	CycleDays        int
	ReturnTrajectory bool
}

// DefaultOptions returns the canonical configuration: Depth=10,
// CycleDays=40, no trajectory capture.
func DefaultOptions() Options {
	return Options{
		Depth:            10,
		CycleDays:        40,
		ReturnTrajectory: false,
	}
}

// Result is the fully-populated output record of one Compute call.
// It is a plain value: callers and renderers must treat it as read-only.
type Result struct {
	// Features holds the normalized lexical statistics of the input.
	Features textfeat.TextFeatures
	// Seed is the deterministic integer in [0, 1000) every downstream
	// value traces back to.
	Seed int
	// Frequency is the scalar pattern frequency (§ Frequency).
	Frequency float64
	// Resonance is the bounded scalar in [0.1, 1.0] (§ ResonanceFactor).
	Resonance float64
	// Fractal is the outcome of the bounded orbit check.
	Fractal fractal.State
	// Day is the pseudo-day index derived from the orbit, in [0, CycleDays).
	Day float64
	// Cycle holds the five weighted principles.
	Cycle cycle.Resonance
}
