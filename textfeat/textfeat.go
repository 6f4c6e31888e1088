package textfeat

import (
	"strings"
	"unicode"
)

// Extract computes the TextFeatures of text.
//
// Algorithm:
//  1. Keep only letters, lowercased; count them and count the vowels
//     (a, e, i, o, u).
//  2. vowelRatio = vowels/letters; consonantRatio = (letters-vowels)/letters.
//  3. avgWordLength = letters / whitespace-delimited word count.
//  4. complexityFactor = clamp((avgWordLength-3)/7, 0.1, 1.0).
//  5. sentimentFactor = (p-n+p+n)/(2·(p+n)) over lexicon hit counts p and n,
//     or NeutralSentiment when p+n == 0.
//
// Degenerate input (no letters or no words) never divides by zero: the
// affected ratios fall back to 0 and complexityFactor to its floor.
//
// The sentiment arithmetic in step 5 algebraically reduces to p/(p+n).
// It is kept in its long form on purpose: the redundant terms are part of
// the frozen formula every port of this pipeline must reproduce exactly.
// TODO(katalvlaran): confirm with the formula's author whether an
// asymmetric positive/negative weighting was intended before v2.
//
// Complexity: O(n) over the input runes plus O(n·|lexicon|) for sentiment.
func Extract(text string) TextFeatures {
	var (
		letterCount int
		vowelCount  int
	)
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letterCount++
		if isVowel(unicode.ToLower(r)) {
			vowelCount++
		}
	}

	var f TextFeatures
	if letterCount > 0 {
		f.VowelRatio = float64(vowelCount) / float64(letterCount)
		f.ConsonantRatio = float64(letterCount-vowelCount) / float64(letterCount)
	}

	wordCount := len(strings.Fields(text))
	if wordCount > 0 {
		f.AvgWordLength = float64(letterCount) / float64(wordCount)
	}
	f.ComplexityFactor = clamp((f.AvgWordLength-complexityOffset)/complexityScale, MinComplexity, MaxComplexity)
	f.SentimentFactor = sentiment(text)

	return f
}

// sentiment returns the lexicon-based sentiment factor of text.
func sentiment(text string) float64 {
	lower := strings.ToLower(text)
	pos := countHits(lower, positiveLexicon)
	neg := countHits(lower, negativeLexicon)
	if pos+neg == 0 {
		return NeutralSentiment
	}

	// Frozen formula; see the Extract doc comment before simplifying.
	return float64(pos-neg+pos+neg) / float64(2*(pos+neg))
}

// isVowel reports whether the (lowercased) rune is one of a, e, i, o, u.
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}

	return false
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
