// Package textfeat derives normalized lexical statistics from raw input
// text. It is the first stage of the bazinga pattern pipeline: every
// downstream scalar (frequency, resonance, cycle weights) is a pure
// function of the features computed here plus the deterministic seed.
//
// 🚀 What does textfeat measure?
//
//	Given any non-empty string, Extract produces a small immutable record:
//	  • vowelRatio / consonantRatio — letter-class distribution in [0,1]
//	  • avgWordLength               — letters per whitespace token
//	  • complexityFactor            — avgWordLength rescaled into [0.1,1.0]
//	  • sentimentFactor             — lexicon hit ratio in [0,1]
//
// ✨ Key guarantees:
//   - Deterministic: same text ⇒ bit-identical TextFeatures, on any platform.
//   - Total: degenerate input (no letters, no words) yields documented
//     fallback values instead of NaN/Inf — never a division by zero.
//   - Pure: no I/O, no locale or clock dependence, no shared state.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bazinga/textfeat"
//
//	f := textfeat.Extract("AI applications in healthcare")
//	fmt.Println(f.ComplexityFactor) // 0.5
//
// Complexity: O(n) over the input bytes, O(1) extra memory.
//
// See pattern.Compute for the full pipeline that consumes these features.
package textfeat
