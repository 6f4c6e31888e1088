package cycle

import "math"

// phi is the golden ratio, the fixed blending constant shared with the
// frequency calculator. Frozen: not user-configurable.
const phi = 1.618033988749895

// Day derives the pseudo-day index from the final orbit real part:
// |real·100 mod cycleDays|. The caller validates cycleDays; Day itself is
// total for any finite input.
//
// Complexity: O(1).
func Day(orbitReal float64, cycleDays int) float64 {
	return math.Abs(math.Mod(orbitReal*100, float64(cycleDays)))
}

// Map weights the five principles for the given day and resonance factor.
//
// Algorithm:
//
//	phase = (day mod cycleDays)/cycleDays · 2π;  s = sin(phase), c = cos(phase)
//	observation  = (0.7 + 0.3·s)        · resonance
//	operation    = (0.6 + 0.4·c)        · resonance
//	verification = (0.5 + 0.5·s·c)      · resonance
//	integration  = (0.4 + 0.6·(s+c)/2)  · resonance
//	execution    = (0.3 + 0.7·φ·s)      · resonance
//
// The inner (day mod cycleDays) makes the mapping periodic in day with
// period cycleDays, which is the property renderers rely on.
//
// Complexity: O(1).
func Map(day, resonance float64, cycleDays int) (Resonance, error) {
	if cycleDays <= 0 {
		return Resonance{}, ErrBadCycleDays
	}

	period := float64(cycleDays)
	phase := math.Mod(day, period) / period * 2 * math.Pi
	s, c := math.Sin(phase), math.Cos(phase)

	return Resonance{
		Observation:  (0.7 + 0.3*s) * resonance,
		Operation:    (0.6 + 0.4*c) * resonance,
		Verification: (0.5 + 0.5*s*c) * resonance,
		Integration:  (0.4 + 0.6*(s+c)/2) * resonance,
		Execution:    (0.3 + 0.7*(phi*s)) * resonance,
	}, nil
}
