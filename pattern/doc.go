// Package pattern is the public entrypoint of the bazinga deterministic
// pattern pipeline: one pure function from input text (plus a small numeric
// option set) to a reproducible record of derived features and weights.
//
// 🚀 The pipeline, leaves first:
//
//	textfeat.Extract  — normalized lexical statistics of the input
//	seed.New          — deterministic integer seed in [0, 1000)
//	Frequency         — seed + features → the scalar pattern frequency
//	ResonanceFactor   — seed + features → bounded scalar in [0.1, 1.0]
//	fractal.Iterate   — bounded z←z²+c orbit seeded by the frequency
//	cycle.Map         — periodic five-way principle weighting
//
// Control flow is strictly sequential and acyclic except for the bounded
// loop inside fractal.Iterate.
//
// ✨ Guarantees:
//   - Determinism: identical (text, Options) ⇒ bit-identical Result, on any
//     platform. No clocks, no locale, no environment discovery.
//   - Fail fast: invalid Options or empty input are rejected before any
//     computation; no partial Result is ever returned.
//   - Purity: no I/O and no shared mutable state, so Compute is safe for
//     concurrent use across goroutines.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bazinga/pattern"
//
//	opts := pattern.DefaultOptions() // Depth=10, CycleDays=40
//	res, err := pattern.Compute("AI applications in healthcare", &opts)
//	if err != nil {
//	  // ErrEmptyInput, ErrBadDepth or ErrBadCycleDays
//	}
//	fmt.Println(res.Seed, res.Frequency, res.Cycle.Observation)
//
// Downstream consumers (report renderers, visualizers) treat the Result as
// a read-only value; the pipeline never learns about output formats.
//
// Complexity: O(len(text) + Depth) per call, O(1) memory beyond the Result.
package pattern
