// Package bazinga is a deterministic text→pattern toolkit: one pure
// pipeline from an input string (plus a small numeric option set) to a
// reproducible record of derived features, a bounded fractal orbit and a
// cyclic weighting vector.
//
// 🚀 What is bazinga?
//
//	A small, dependency-light library that brings together:
//		• Lexical features: vowel/consonant ratios, complexity, sentiment
//		• Deterministic seeding: FNV-1a over the input, the root of it all
//		• Derived scalars: pattern frequency & bounded resonance factor
//		• Fractal orbit: bounded z←z²+c recurrence with escape detection
//		• Cycle resonance: five principle weights on a configurable cycle
//		• Renderers: Markdown analysis reports & ASCII orbit plots
//
// ✨ Why choose bazinga?
//
//   - Reproducible – same text, same options ⇒ bit-identical records on
//     every platform; no clocks, no locale, no environment discovery
//   - Total – degenerate input and numeric overflow have documented
//     fallbacks, never NaN/Inf surprises
//   - Pure Go core – side-effect free, trivially parallel across inputs
//
// Everything is organized under topical subpackages:
//
//	textfeat/ — lexical feature extraction with fixed sentiment lexicons
//	seed/     — deterministic text→integer seeding
//	fractal/  — bounded complex recurrence with optional trajectory
//	cycle/    — periodic five-principle weighting
//	pattern/  — options, validation and the Compute entrypoint
//	report/   — Markdown & ASCII renderers over read-only records
//
// Quick taste:
//
//	res, err := pattern.Compute("AI applications in healthcare", nil)
//	// res.Seed == 356, res.Fractal.Escaped == true, ...
//
// Dive into the doc comments in each subpackage, the runnable programs
// under examples/, and the bazinga CLI under cmd/bazinga.
//
//	go get github.com/katalvlaran/bazinga
package bazinga
