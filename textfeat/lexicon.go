// Package textfeat - fixed sentiment lexicons.
//
// The lexicons are intentionally small and frozen: sentiment here is a
// deterministic weighting signal for the pattern pipeline, not a claim of
// linguistic accuracy. Changing either list changes every downstream
// pattern, so treat additions as a breaking change.
package textfeat

import "strings"

// positiveLexicon lists the words counted as positive hits.
var positiveLexicon = []string{
	"good", "great", "excellent", "love", "happy",
	"success", "improve", "benefit", "win", "positive",
}

// negativeLexicon lists the words counted as negative hits.
var negativeLexicon = []string{
	"bad", "fail", "error", "problem", "hate",
	"sad", "broken", "wrong", "loss", "negative",
}

// countHits returns the total number of occurrences of lexicon entries in
// the lowercased text. Matching is substring-based, so inflected forms
// ("errors", "goodness") still count; each occurrence counts once.
//
// Complexity: O(len(text) · len(lexicon)).
func countHits(lower string, lexicon []string) int {
	var hits int
	for _, w := range lexicon {
		hits += strings.Count(lower, w)
	}

	return hits
}
