// Package cycle maps a day index and a resonance factor through periodic
// functions into the five named BAZINGA principle weights.
//
// 🚀 What does it compute?
//
//	The pipeline derives a pseudo-"day" from the fractal orbit, converts
//	it to a phase on a configurable cycle (cycleDays, typically 40 or 42),
//	and weights five principles — observation, operation, verification,
//	integration, execution — by fixed sine/cosine blends of that phase,
//	each scaled by the resonance factor.
//
// ✨ Guarantees:
//   - Periodic: Map(day+k·cycleDays, …) == Map(day, …) for any integer k≥0.
//   - Deterministic: pure float64 math, no clock or locale influence.
//   - Validated: cycleDays ≤ 0 is rejected before any computation.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bazinga/cycle"
//
//	day := cycle.Day(st.Real, 40)       // |real·100 mod 40|
//	r, err := cycle.Map(day, 0.85, 40)  // five weighted principles
//
// Complexity: O(1).
package cycle
