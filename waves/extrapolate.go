package waves

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-waves/astro"
	"github.com/cwbudde/algo-waves/dsp/series"
	"github.com/cwbudde/algo-waves/internal/polyfit"
)

// RetardedTimeFunc maps retarded times at extraction radius r to coordinate
// times for a spacetime of the given ADM mass.
type RetardedTimeFunc func(u []float64, r, mass float64) ([]float64, error)

// ExtrapolationOptions controls ExtrapolateToInfinity.
type ExtrapolationOptions struct {
	// Order of the polynomial in 1/r; must be below the number of radii.
	Order int
	// Mass is the ADM mass entering the tortoise coordinate.
	Mass float64
	// AmplitudePhase fits |h| and the unwrapped phase instead of Re h and Im h.
	AmplitudePhase bool
	// RetardedToCoordinate defaults to astro.RetardedToCoordinateTimes.
	RetardedToCoordinate RetardedTimeFunc
}

// DefaultExtrapolationOptions returns a second-order fit for unit mass.
func DefaultExtrapolationOptions() ExtrapolationOptions {
	return ExtrapolationOptions{Order: 2, Mass: 1}
}

// ExtrapolateToInfinity evaluates each wave at the coordinate times that
// correspond to the retarded times at its radius, fits every retarded-time
// sample with a polynomial of the given order in 1/r and returns the constant
// term as a series on retarded.
//
// Radii need not be sorted but must be distinct and positive. Retarded times
// that map outside a wave's time span fail with [series.ErrOutOfRange].
func ExtrapolateToInfinity(radii []float64, waves []*series.Series, retarded []float64, opts ExtrapolationOptions) (*series.Series, error) {
	if len(radii) != len(waves) {
		return nil, fmt.Errorf("%w: %d radii, %d waveforms", ErrRadiiMismatch, len(radii), len(waves))
	}

	if len(retarded) == 0 {
		return nil, ErrNoRetardedTimes
	}

	if opts.Order < 0 || opts.Order >= len(radii) {
		return nil, fmt.Errorf("%w: order %d with %d radii", ErrOrderTooHigh, opts.Order, len(radii))
	}

	toCoordinate := opts.RetardedToCoordinate
	if toCoordinate == nil {
		toCoordinate = astro.RetardedToCoordinateTimes
	}

	inverse := make([]float64, len(radii))

	for i, r := range radii {
		if !(r > 0) || math.IsInf(r, 0) {
			return nil, fmt.Errorf("%w: %g", ErrInvalidRadius, r)
		}

		if waves[i] == nil {
			return nil, fmt.Errorf("%w: no waveform at radius %g", ErrRadiiMismatch, r)
		}

		inverse[i] = 1 / r
	}

	fit, err := polyfit.New(inverse, opts.Order)
	if errors.Is(err, polyfit.ErrDuplicateAbscissa) {
		return nil, fmt.Errorf("%w: %w", ErrDuplicateRadius, err)
	}

	if err != nil {
		return nil, err
	}

	// One row per radius, one column per retarded time.
	var first, second [][]float64

	for i, w := range waves {
		times, err := toCoordinate(retarded, radii[i], opts.Mass)
		if err != nil {
			return nil, fmt.Errorf("radius %g: %w", radii[i], err)
		}

		at, err := w.Resample(times)
		if err != nil {
			return nil, fmt.Errorf("radius %g: %w", radii[i], err)
		}

		// Phases are unwrapped on the shared retarded grid so that every
		// radius starts on the same branch at retarded[0].
		a, b := at.Real(), at.Imag()
		if opts.AmplitudePhase {
			a, b = at.Abs(), at.UnfoldedPhase()
		}

		first = append(first, a.RealValues())
		second = append(second, b.RealValues())
	}

	x, err := fit.Intercepts(transpose(first))
	if err != nil {
		return nil, err
	}

	y, err := fit.Intercepts(transpose(second))
	if err != nil {
		return nil, err
	}

	values := make([]complex128, len(retarded))

	for i := range values {
		if opts.AmplitudePhase {
			values[i] = complex(x[i], 0) * cmplx.Exp(complex(0, y[i]))
		} else {
			values[i] = complex(x[i], y[i])
		}
	}

	return series.New(retarded, values)
}

// transpose turns one row per radius into one row per retarded time.
func transpose(m [][]float64) [][]float64 {
	out := make([][]float64, len(m[0]))

	for j := range out {
		out[j] = make([]float64, len(m))
		for i := range m {
			out[j][i] = m[i][j]
		}
	}

	return out
}
