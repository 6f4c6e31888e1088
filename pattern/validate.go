// Package pattern - input and option validation.
//
// Validation here follows the fail-fast contract: every invalid call is
// rejected with a sentinel error before any pipeline stage runs, so a
// caller never observes a partially-populated Result.
package pattern

import "github.com/katalvlaran/bazinga/fractal"

// validate checks the input text and the resolved Options.
//
// Contract:
//   - text must be non-empty (whitespace-only text is accepted: the
//     feature extractor handles it as degenerate input, not an error).
//   - Depth must be in [fractal.MinDepth, fractal.MaxDepth].
//   - CycleDays must be positive.
//
// Complexity: O(1).
func validate(text string, opts Options) error {
	if len(text) == 0 {
		return ErrEmptyInput
	}
	if opts.Depth < fractal.MinDepth || opts.Depth > fractal.MaxDepth {
		return ErrBadDepth
	}
	if opts.CycleDays <= 0 {
		return ErrBadCycleDays
	}

	return nil
}
