package fractal_test

import (
	"testing"

	"github.com/katalvlaran/bazinga/fractal"
)

// benchmarkIterate runs the orbit check at the given depth, with and
// without trajectory capture, failing on unexpected errors.
func benchmarkIterate(b *testing.B, depth int, trajectory bool) {
	opts := fractal.Options{Depth: depth, ReturnTrajectory: trajectory}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err := fractal.Iterate(0.137, &opts) // bounded orbit: worst case, full depth
		if err != nil {
			b.Fatalf("Iterate failed: %v", err)
		}
	}
}

// BenchmarkIterate_Depth10 benchmarks the default depth without trajectory.
func BenchmarkIterate_Depth10(b *testing.B) {
	benchmarkIterate(b, 10, false)
}

// BenchmarkIterate_Depth20 benchmarks the maximum depth without trajectory.
func BenchmarkIterate_Depth20(b *testing.B) {
	benchmarkIterate(b, 20, false)
}

// BenchmarkIterate_Depth20Trajectory benchmarks the maximum depth with
// trajectory capture (one allocation per call).
func BenchmarkIterate_Depth20Trajectory(b *testing.B) {
	benchmarkIterate(b, 20, true)
}
