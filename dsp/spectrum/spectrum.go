package spectrum

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
)

// split returns the real and imaginary parts of x as two planar slices, the
// layout the vecmath kernels expect.
func split(x []complex128) (re, im []float64) {
	buf := make([]float64, 2*len(x))
	re, im = buf[:len(x)], buf[len(x):]
	for i, c := range x {
		re[i], im[i] = real(c), imag(c)
	}
	return re, im
}

// Magnitude returns |x[k]| for each sample.
func Magnitude(x []complex128) []float64 {
	if len(x) == 0 {
		return nil
	}

	re, im := split(x)
	out := make([]float64, len(x))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |x[k]|² for each sample. Radiated power and energy densities
// are built on it.
func Power(x []complex128) []float64 {
	if len(x) == 0 {
		return nil
	}

	re, im := split(x)
	out := make([]float64, len(x))
	vecmath.Power(out, re, im)
	return out
}

// Phase returns arg(x[k]) in (-π, π].
func Phase(x []complex128) []float64 {
	if len(x) == 0 {
		return nil
	}

	out := make([]float64, len(x))
	for i, c := range x {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase accumulates the wrapped increments of phase, so consecutive
// outputs never differ by more than π. The first value is kept as is.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}

	out := make([]float64, len(phase))
	out[0] = phase[0]
	for i := 1; i < len(phase); i++ {
		out[i] = out[i-1] + math.Remainder(phase[i]-phase[i-1], 2*math.Pi)
	}
	return out
}
