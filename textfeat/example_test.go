package textfeat_test

import (
	"fmt"

	"github.com/katalvlaran/bazinga/textfeat"
)

// ExampleExtract demonstrates feature extraction on a short headline.
//
// Scenario:
//
//	"AI applications in healthcare" has 26 letters across 4 words,
//	12 of them vowels, and hits neither sentiment lexicon.
//
// Complexity: O(n) over the input.
func ExampleExtract() {
	f := textfeat.Extract("AI applications in healthcare")

	fmt.Printf("vowelRatio=%.4f\n", f.VowelRatio)
	fmt.Printf("avgWordLength=%.2f\n", f.AvgWordLength)
	fmt.Printf("complexity=%.2f\n", f.ComplexityFactor)
	fmt.Printf("sentiment=%.2f\n", f.SentimentFactor)
	// Output:
	// vowelRatio=0.4615
	// avgWordLength=6.50
	// complexity=0.50
	// sentiment=0.50
}
