package astro

import (
	"errors"
	"fmt"
	"math"
)

// ErrInsideHorizon is returned when a radius is not outside r = 2M.
var ErrInsideHorizon = errors.New("astro: radius not outside horizon")

// ErrNegativeMass is returned for a negative ADM mass.
var ErrNegativeMass = errors.New("astro: negative mass")

// Tortoise returns the Schwarzschild tortoise coordinate
//
//	r* = r + 2M ln(r/2M - 1).
//
// A zero mass gives r* = r.
func Tortoise(r, mass float64) (float64, error) {
	if mass < 0 {
		return 0, fmt.Errorf("%w: %g", ErrNegativeMass, mass)
	}

	if mass == 0 {
		return r, nil
	}

	if r <= 2*mass {
		return 0, fmt.Errorf("%w: r=%g, M=%g", ErrInsideHorizon, r, mass)
	}

	return r + 2*mass*math.Log(r/(2*mass)-1), nil
}

// RetardedToCoordinateTimes maps retarded times u at extraction radius r to
// the coordinate times t = u + r* at which they are observed.
func RetardedToCoordinateTimes(u []float64, r, mass float64) ([]float64, error) {
	rstar, err := Tortoise(r, mass)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(u))
	for i, v := range u {
		out[i] = v + rstar
	}

	return out, nil
}
