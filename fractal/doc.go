// Package fractal runs the bounded complex-number recurrence at the heart
// of the bazinga pattern pipeline.
//
// 🚀 What is it?
//
//	A Julia-style orbit check: starting from z₀ = frequency + 0i, iterate
//	z ← z² + c with the fixed constant c = -0.8 + 0.156i, stopping when
//	|z| exceeds 2 ("escape") or when the configured depth is exhausted.
//	The final real part seeds the cycle mapper's day index; the orbit is
//	never rendered as an image.
//
// ✨ Key features:
//   - Bounded: at most Depth steps, Depth validated into [MinDepth, MaxDepth]
//     before the loop starts — the only work bound the pipeline needs.
//   - Overflow-safe: a non-finite magnitude counts as an immediate escape,
//     so NaN/Inf can never leak downstream.
//   - Optional trajectory: ReturnTrajectory records every orbit point for
//     visualizers (mirrors ReturnPath elsewhere in this module family).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bazinga/fractal"
//
//	opts := fractal.DefaultOptions() // Depth=10, no trajectory
//	st, err := fractal.Iterate(1.826, &opts)
//	if err != nil {
//	  // handle ErrBadDepth
//	}
//	fmt.Println(st.Iterations, st.Escaped)
//
// Complexity: O(Depth) time, O(1) memory (O(Depth) with ReturnTrajectory).
package fractal
