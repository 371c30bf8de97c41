package spectrum

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-waves/dsp/core"
)

// minPlanSize is the smallest length handed to algo-fft plans. Shorter
// power-of-two transforms go through the generic path.
const minPlanSize = 16

// ErrEmptyInput indicates a transform of zero length.
var ErrEmptyInput = errors.New("spectrum: transform input must not be empty")

// FFT returns the forward DFT X[k] = sum_n x[n] exp(-2πi kn/N) of x.
// x is not modified.
func FFT(x []complex128) ([]complex128, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	if usePlan(len(x)) {
		plan, err := algofft.NewPlan64(len(x))
		if err != nil {
			return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
		}

		out := make([]complex128, len(x))
		if err := plan.Forward(out, x); err != nil {
			return nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
		}
		return out, nil
	}

	return fft.FFT(clone(x)), nil
}

// IFFT returns the normalized inverse DFT of bins, so IFFT(FFT(x)) == x.
// bins is not modified.
func IFFT(bins []complex128) ([]complex128, error) {
	if len(bins) == 0 {
		return nil, ErrEmptyInput
	}

	if usePlan(len(bins)) {
		plan, err := algofft.NewPlan64(len(bins))
		if err != nil {
			return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
		}

		out := make([]complex128, len(bins))
		if err := plan.Inverse(out, bins); err != nil {
			return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
		}
		return out, nil
	}

	return fft.IFFT(clone(bins)), nil
}

// Frequencies returns the bin frequencies for an n-point transform of samples
// spaced by dt, in the order produced by [FFT]:
// [0, 1, ..., ceil(n/2)-1, -floor(n/2), ..., -1] / (n*dt).
func Frequencies(n int, dt float64) []float64 {
	if n <= 0 || dt <= 0 {
		return nil
	}

	out := make([]float64, n)
	scale := 1 / (float64(n) * dt)
	half := (n - 1) / 2
	for k := range out {
		if k <= half {
			out[k] = float64(k) * scale
		} else {
			out[k] = float64(k-n) * scale
		}
	}
	return out
}

// AngularFrequencies returns 2π times [Frequencies].
func AngularFrequencies(n int, dt float64) []float64 {
	out := Frequencies(n, dt)
	for i := range out {
		out[i] *= 2 * math.Pi
	}
	return out
}

func usePlan(n int) bool {
	return n >= minPlanSize && core.IsPowerOfTwo(n)
}

func clone(x []complex128) []complex128 {
	return append([]complex128(nil), x...)
}
