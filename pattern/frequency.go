package pattern

import (
	"github.com/katalvlaran/bazinga/seed"
	"github.com/katalvlaran/bazinga/textfeat"
)

// Frequency combines the seed and the text features into the scalar
// pattern frequency — the primary "signature" number of an input.
//
// Formula:
//
//	base     = 1 + seed/1000
//	adjusted = base · (1 + complexityFactor) · (0.5 + sentimentFactor)
//	final    = (adjusted + φ) / 2
//
// The result is unbounded in principle but lands near [1.0, 3.0] for the
// clamped feature ranges.
//
// Complexity: O(1).
func Frequency(s int, f textfeat.TextFeatures) float64 {
	base := 1 + float64(s)/seed.Range
	adjusted := base * (1 + f.ComplexityFactor) * (0.5 + f.SentimentFactor)

	return (adjusted + Phi) / 2
}
