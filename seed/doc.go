// Package seed reduces input text to a small deterministic integer.
//
// The seed is the root of every downstream "pattern": frequency, resonance
// and the fractal orbit all trace back to it, so its portability contract
// is the strictest in the module — identical text must map to the identical
// seed on every platform, architecture and Go release.
//
// 🚀 How?
//
//	New hashes the UTF-8 bytes of the text with FNV-1a (32-bit), a
//	documented, order-sensitive, platform-independent hash, and reduces
//	the digest modulo 1000.
//
// ✨ Guarantees:
//   - Deterministic and stable: no clock, locale, map-order or
//     hash-randomization influence.
//   - Range: the seed is always in [0, Range).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bazinga/seed"
//
//	s := seed.New("AI applications in healthcare") // 356
//
// Complexity: O(n) over the input bytes, zero allocations.
package seed
