package interp

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmpty indicates interpolation over no samples.
	ErrEmpty = errors.New("interp: requires non-empty x and y")
	// ErrLengthMismatch indicates x and y of different length.
	ErrLengthMismatch = errors.New("interp: x/y length mismatch")
	// ErrNotIncreasing indicates abscissae that are not strictly increasing.
	ErrNotIncreasing = errors.New("interp: x must be strictly increasing")
)

// Bracket returns the index j and fraction f such that q lies between x[j]
// and x[j+1] with q = x[j] + f*(x[j+1]-x[j]). Queries at or beyond the ends
// return (0, 0) or (len(x)-2, 1). x must hold at least two values.
func Bracket(x []float64, q float64) (int, float64) {
	last := len(x) - 1
	if q <= x[0] {
		return 0, 0
	}
	if q >= x[last] {
		return last - 1, 1
	}

	j := sort.SearchFloat64s(x, q)
	if x[j] == q {
		if j == last {
			return j - 1, 1
		}
		return j, 0
	}

	x0, x1 := x[j-1], x[j]
	return j - 1, (q - x0) / (x1 - x0)
}

// Linear performs piecewise-linear interpolation of real samples at queryX.
func Linear(x, y, queryX []float64) ([]float64, error) {
	if err := validate(x, len(y)); err != nil {
		return nil, err
	}

	out := make([]float64, len(queryX))
	if len(x) == 1 {
		for i := range out {
			out[i] = y[0]
		}
		return out, nil
	}

	for i, q := range queryX {
		j, f := Bracket(x, q)
		out[i] = y[j] + f*(y[j+1]-y[j])
	}
	return out, nil
}

// LinearComplex performs piecewise-linear interpolation of complex samples at
// queryX. Real and imaginary parts are interpolated independently.
func LinearComplex(x []float64, y []complex128, queryX []float64) ([]complex128, error) {
	if err := validate(x, len(y)); err != nil {
		return nil, err
	}

	out := make([]complex128, len(queryX))
	if len(x) == 1 {
		for i := range out {
			out[i] = y[0]
		}
		return out, nil
	}

	for i, q := range queryX {
		j, f := Bracket(x, q)
		out[i] = y[j] + complex(f, 0)*(y[j+1]-y[j])
	}
	return out, nil
}

func validate(x []float64, ny int) error {
	if len(x) == 0 || ny == 0 {
		return ErrEmpty
	}
	if len(x) != ny {
		return fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(x), ny)
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return fmt.Errorf("%w at index %d", ErrNotIncreasing, i)
		}
	}
	return nil
}
