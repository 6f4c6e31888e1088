package seed

import "hash/fnv"

// Range is the exclusive upper bound of every seed: New returns values
// in [0, Range). Changing it changes every downstream pattern.
const Range = 1000

// New returns the deterministic seed of text.
//
// The digest is FNV-1a 32-bit over the raw UTF-8 bytes, reduced modulo
// Range. FNV-1a is order-sensitive, so "ab" and "ba" seed differently.
//
// Complexity: O(len(text)).
func New(text string) int {
	h := fnv.New32a()
	// fnv's Write never returns an error.
	_, _ = h.Write([]byte(text))

	return int(h.Sum32() % Range)
}
