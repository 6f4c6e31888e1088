package fractal

import (
	"math"
	"math/cmplx"
)

// Iterate runs the bounded orbit check seeded by frequency.
//
// Algorithm:
//  1. z₀ = frequency + 0i.
//  2. For i in 0..Depth-1: z ← z² + c, then test |z|.
//  3. Stop early with Escaped=true when |z| > EscapeRadius or |z| is
//     non-finite; Iterations records the step count reached.
//  4. Otherwise Escaped=false and Iterations == Depth.
//
// A nil opts uses DefaultOptions. Depth is validated before any work
// starts; no partial State is returned on error.
//
// Complexity: O(Depth) time; O(Depth) memory only with ReturnTrajectory.
func Iterate(frequency float64, opts *Options) (State, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Depth < MinDepth || o.Depth > MaxDepth {
		return State{}, ErrBadDepth
	}

	c := complex(CReal, CImag)
	z := complex(frequency, 0)

	var trajectory []complex128
	if o.ReturnTrajectory {
		trajectory = make([]complex128, 0, o.Depth+1)
		trajectory = append(trajectory, z)
	}

	st := State{}
	for i := 0; i < o.Depth; i++ {
		z = z*z + c
		st.Iterations = i + 1
		if o.ReturnTrajectory {
			trajectory = append(trajectory, z)
		}
		if escaped(cmplx.Abs(z)) {
			st.Escaped = true

			break
		}
	}

	st.Real = real(z)
	st.Imag = imag(z)
	st.Trajectory = trajectory

	return st, nil
}

// escaped reports whether the magnitude leaves the bounded region.
// Non-finite magnitudes (overflow, NaN) count as escaped so they can never
// propagate into the cycle mapper.
func escaped(magnitude float64) bool {
	if math.IsNaN(magnitude) || math.IsInf(magnitude, 0) {
		return true
	}

	return magnitude > EscapeRadius
}
