// Package core holds small numeric helpers shared by the dsp and waves packages.
package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
// eps is used both as an absolute and as a relative tolerance.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// RelativelyEqual reports whether |a-b| <= eps*|scale|. Unlike NearlyEqual it
// has no absolute floor.
func RelativelyEqual(a, b, scale, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	return math.Abs(a-b) <= eps*math.Abs(scale)
}

// Sign returns -1, 0 or +1 following the sign of x. NaN maps to NaN.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	case x == 0:
		return 0
	default:
		return math.NaN()
	}
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
