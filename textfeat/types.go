// Package textfeat - core types and tunable constants for feature extraction.
package textfeat

// TextFeatures holds the normalized lexical statistics of one input string.
// It is computed once per input and never mutated afterwards.
type TextFeatures struct {
	// VowelRatio is vowels/letters, in [0,1]; 0 for letterless input.
	VowelRatio float64
	// ConsonantRatio is (letters-vowels)/letters, in [0,1]; 0 for letterless input.
	ConsonantRatio float64
	// AvgWordLength is letters per whitespace-delimited token; 0 for wordless input.
	AvgWordLength float64
	// ComplexityFactor is (AvgWordLength-3)/7 clamped into [MinComplexity, MaxComplexity].
	ComplexityFactor float64
	// SentimentFactor is the lexicon hit ratio in [0,1]; NeutralSentiment when
	// neither lexicon matches.
	SentimentFactor float64
}

// Complexity clamp bounds. The lower bound doubles as the fallback for
// degenerate (letterless or wordless) input.
const (
	// MinComplexity is the floor of ComplexityFactor.
	MinComplexity = 0.1
	// MaxComplexity is the ceiling of ComplexityFactor.
	MaxComplexity = 1.0
)

// NeutralSentiment is the SentimentFactor assigned when the input matches
// neither the positive nor the negative lexicon.
const NeutralSentiment = 0.5

// complexityOffset and complexityScale map AvgWordLength onto the complexity
// scale: words of 3 letters sit at the floor, words of 10 letters at the
// ceiling. Values between are linear.
const (
	complexityOffset = 3.0
	complexityScale  = 7.0
)
