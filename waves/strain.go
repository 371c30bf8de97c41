package waves

import (
	"errors"
	"fmt"
	"time"

	"github.com/cwbudde/algo-waves/astro"
	"github.com/cwbudde/algo-waves/dsp/series"
)

// SkyPosition locates a source on the sky for an observation. Angles are in
// radians.
type SkyPosition struct {
	RightAscension float64
	Declination    float64
	Time           time.Time
	Polarization   float64
}

// StrainForMode returns r·(h₊ - i h×) of mode (l, m): the mode integrated
// twice with cutoff period pcut, optionally tapered first and trimmed by pcut
// at both ends afterwards (the default), then scaled by the radius.
func (d *Detector) StrainForMode(l, m int, pcut float64, opts ...QueryOption) (*series.Series, error) {
	if d.field != Gravitational {
		return nil, fmt.Errorf("%w: strain for %s", ErrUnsupported, d.field)
	}

	if !(pcut > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidCutoff, pcut)
	}

	psi4, err := d.Mode(l, m)
	if err != nil {
		return nil, err
	}

	if psi4.Duration() < 2*pcut {
		return nil, fmt.Errorf("%w: duration %g, pcut %g", ErrCutoffTooLarge, psi4.Duration(), pcut)
	}

	q := newQuery(opts)

	if q.window != nil {
		weights, err := q.window.Weights(psi4.Len())
		if err != nil {
			return nil, err
		}

		psi4, err = psi4.Windowed(weights)
		if err != nil {
			return nil, err
		}
	}

	h, err := d.ffi.Integrate(psi4, pcut, 2)
	if err != nil {
		return nil, err
	}

	if q.trimEnds {
		h, err = h.Crop(h.TMin()+pcut, h.TMax()-pcut)
		if errors.Is(err, series.ErrEmptyCrop) {
			return nil, fmt.Errorf("%w: no samples left after trimming %g at both ends", ErrCutoffTooLarge, pcut)
		}

		if err != nil {
			return nil, err
		}
	}

	return h.ScaleReal(d.radius), nil
}

// StrainAtAngle returns r·(h₊ - i h×) seen from direction (theta, phi) of the
// source frame: the sum of every mode's strain weighted by ₋₂Y_lm(θ, φ).
func (d *Detector) StrainAtAngle(theta, phi, pcut float64, opts ...QueryOption) (*series.Series, error) {
	q := newQuery(opts)

	return d.Sum(q.maxDegree, func(_ *series.Series, l, m int, _ float64) (*series.Series, error) {
		h, err := d.StrainForMode(l, m, pcut, opts...)
		if err != nil {
			return nil, err
		}

		return h.Scale(d.cfg.harmonic(-2, l, m, theta, phi)), nil
	})
}

// ObservedStrain projects the strain seen from (theta, phi) onto each
// interferometer as F₊ Re(h) - F× Im(h), for a source at sky.
func (d *Detector) ObservedStrain(sky SkyPosition, theta, phi, pcut float64, opts ...QueryOption) (astro.Detectors[*series.Series], error) {
	response := d.cfg.antenna(sky.RightAscension, sky.Declination, sky.Time, sky.Polarization)

	h, err := d.StrainAtAngle(theta, phi, pcut, opts...)
	if err != nil {
		return astro.Detectors[*series.Series]{}, err
	}

	return astro.Map(response, func(_ astro.Site, p astro.AntennaPattern) *series.Series {
		return h.Map(func(v complex128) complex128 {
			return complex(p.Plus*real(v)-p.Cross*imag(v), 0)
		})
	}), nil
}
