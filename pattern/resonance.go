package pattern

import "github.com/katalvlaran/bazinga/textfeat"

// Resonance clamp bounds. Every cycle weight scales with this factor, so
// the clamp is what keeps the principle weights in a renderable range.
const (
	// MinResonance is the floor of the resonance factor.
	MinResonance = 0.1
	// MaxResonance is the ceiling of the resonance factor.
	MaxResonance = 1.0
)

// seedVarianceMod and seedVarianceScale turn the seed's low decimal digits
// into a small additive variance: (seed mod 20)/100 ∈ [0, 0.19].
const (
	seedVarianceMod   = 20
	seedVarianceScale = 100
)

// ResonanceFactor combines the seed and the text features into the bounded
// modulating scalar consumed by the cycle mapper.
//
// Formula:
//
//	base     = 0.3 + complexityFactor + sentimentFactor/2
//	variance = (seed mod 20) / 100
//	factor   = clamp(base + variance, 0.1, 1.0)
//
// Complexity: O(1).
func ResonanceFactor(s int, f textfeat.TextFeatures) float64 {
	base := 0.3 + f.ComplexityFactor + f.SentimentFactor/2
	variance := float64(s%seedVarianceMod) / seedVarianceScale

	return clamp(base+variance, MinResonance, MaxResonance)
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
