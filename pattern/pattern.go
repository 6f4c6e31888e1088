package pattern

import (
	"github.com/katalvlaran/bazinga/cycle"
	"github.com/katalvlaran/bazinga/fractal"
	"github.com/katalvlaran/bazinga/seed"
	"github.com/katalvlaran/bazinga/textfeat"
)

// Compute runs the full deterministic pipeline over text.
//
// Stages, in order:
//  1. validate — fail fast on empty text or out-of-range options.
//  2. textfeat.Extract — lexical statistics (degenerate-input safe).
//  3. seed.New — deterministic seed in [0, 1000).
//  4. Frequency / ResonanceFactor — the two derived scalars.
//  5. fractal.Iterate — bounded orbit seeded by the frequency.
//  6. cycle.Day + cycle.Map — periodic principle weighting.
//
// A nil opts uses DefaultOptions. Compute allocates nothing beyond the
// Result (plus the trajectory when requested) and is safe for concurrent
// use: separate invocations share no state.
//
// Complexity: O(len(text) + Depth) time.
func Compute(text string, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := validate(text, o); err != nil {
		return Result{}, err
	}

	features := textfeat.Extract(text)
	s := seed.New(text)
	frequency := Frequency(s, features)
	resonance := ResonanceFactor(s, features)

	fOpts := fractal.Options{Depth: o.Depth, ReturnTrajectory: o.ReturnTrajectory}
	state, err := fractal.Iterate(frequency, &fOpts)
	if err != nil {
		// Unreachable after validate, kept as a guard against drift between
		// the two depth ranges.
		return Result{}, err
	}

	day := cycle.Day(state.Real, o.CycleDays)
	weights, err := cycle.Map(day, resonance, o.CycleDays)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Features:  features,
		Seed:      s,
		Frequency: frequency,
		Resonance: resonance,
		Fractal:   state,
		Day:       day,
		Cycle:     weights,
	}, nil
}
