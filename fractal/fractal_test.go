package fractal_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/bazinga/fractal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIterate_BadDepth rejects depths outside [MinDepth, MaxDepth] before
// any computation.
func TestIterate_BadDepth(t *testing.T) {
	for _, depth := range []int{0, -1, 21, 100} {
		opts := fractal.DefaultOptions()
		opts.Depth = depth

		_, err := fractal.Iterate(1.0, &opts)
		assert.ErrorIs(t, err, fractal.ErrBadDepth, "depth %d must be rejected", depth)
	}
}

// TestIterate_NilOptionsUseDefaults verifies a nil Options pointer behaves
// like DefaultOptions.
func TestIterate_NilOptionsUseDefaults(t *testing.T) {
	st, err := fractal.Iterate(0.1, nil)
	require.NoError(t, err)

	def := fractal.DefaultOptions()
	assert.LessOrEqual(t, st.Iterations, def.Depth)
	assert.Nil(t, st.Trajectory, "defaults do not capture the trajectory")
}

// TestIterate_DepthOneSingleStep pins the depth=1 contract: exactly one
// recurrence step regardless of escape.
func TestIterate_DepthOneSingleStep(t *testing.T) {
	opts := fractal.DefaultOptions()
	opts.Depth = 1

	// Non-escaping start: z1 = 0²+c = c, |c| < 2.
	st, err := fractal.Iterate(0, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Iterations)
	assert.False(t, st.Escaped)
	assert.InDelta(t, fractal.CReal, st.Real, 1e-15)
	assert.InDelta(t, fractal.CImag, st.Imag, 1e-15)

	// Escaping start: z1 = 100²+c, far outside the radius.
	st, err = fractal.Iterate(100, &opts)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Iterations)
	assert.True(t, st.Escaped)
}

// TestIterate_IterationsNeverExceedDepth sweeps frequencies and depths and
// checks the structural bounds promised by the State contract.
func TestIterate_IterationsNeverExceedDepth(t *testing.T) {
	for _, freq := range []float64{-3, -1.5, 0, 0.3, 1.0, 1.826, 2.5, 10} {
		for depth := fractal.MinDepth; depth <= fractal.MaxDepth; depth++ {
			opts := fractal.Options{Depth: depth}

			st, err := fractal.Iterate(freq, &opts)
			require.NoError(t, err)
			assert.LessOrEqual(t, st.Iterations, depth, "freq=%v depth=%d", freq, depth)
			if !st.Escaped {
				assert.Equal(t, depth, st.Iterations, "non-escaped orbits must run the full depth")
			}
		}
	}
}

// TestIterate_EscapeMagnitude verifies the escape flag matches the final
// magnitude: escaped orbits end beyond the radius, bounded orbits inside.
func TestIterate_EscapeMagnitude(t *testing.T) {
	opts := fractal.DefaultOptions()

	escapedSt, err := fractal.Iterate(2.5, &opts)
	require.NoError(t, err)
	require.True(t, escapedSt.Escaped)
	assert.Greater(t, cmplx.Abs(complex(escapedSt.Real, escapedSt.Imag)), fractal.EscapeRadius)

	boundedSt, err := fractal.Iterate(0, &opts)
	require.NoError(t, err)
	require.False(t, boundedSt.Escaped)
	assert.LessOrEqual(t, cmplx.Abs(complex(boundedSt.Real, boundedSt.Imag)), fractal.EscapeRadius)
}

// TestIterate_NonFiniteIsEscape feeds a frequency that overflows z² within
// a couple of steps; the non-finite magnitude must read as an escape, not
// leak NaN/Inf with Escaped=false.
func TestIterate_NonFiniteIsEscape(t *testing.T) {
	opts := fractal.DefaultOptions()

	st, err := fractal.Iterate(1e200, &opts)
	require.NoError(t, err)
	assert.True(t, st.Escaped, "overflowing orbit counts as escaped")
	assert.LessOrEqual(t, st.Iterations, opts.Depth)
}

// TestIterate_MaxFloatFrequencyIsEscape squares the largest finite float;
// the +Inf magnitude must register as an immediate escape.
func TestIterate_MaxFloatFrequencyIsEscape(t *testing.T) {
	opts := fractal.DefaultOptions()
	opts.Depth = 5

	st, err := fractal.Iterate(math.MaxFloat64, &opts)
	require.NoError(t, err)
	assert.True(t, st.Escaped)
	assert.Equal(t, 1, st.Iterations, "overflow on the first step stops the orbit")
}

// TestIterate_Trajectory checks trajectory capture: length is
// iterations+1 (z₀ included), first point is the seed, last point is the
// final state, and no trajectory is allocated when not requested.
func TestIterate_Trajectory(t *testing.T) {
	opts := fractal.DefaultOptions()
	opts.ReturnTrajectory = true

	st, err := fractal.Iterate(1.826, &opts)
	require.NoError(t, err)
	require.Len(t, st.Trajectory, st.Iterations+1)
	assert.Equal(t, complex(1.826, 0), st.Trajectory[0])
	assert.Equal(t, complex(st.Real, st.Imag), st.Trajectory[len(st.Trajectory)-1])

	opts.ReturnTrajectory = false
	st, err = fractal.Iterate(1.826, &opts)
	require.NoError(t, err)
	assert.Nil(t, st.Trajectory)
}

// TestIterate_Deterministic runs the same orbit twice and expects
// bit-identical states.
func TestIterate_Deterministic(t *testing.T) {
	opts := fractal.DefaultOptions()
	opts.ReturnTrajectory = true

	a, err := fractal.Iterate(1.4142135623, &opts)
	require.NoError(t, err)
	b, err := fractal.Iterate(1.4142135623, &opts)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
