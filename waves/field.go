package waves

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-waves/dsp/series"
)

// Field selects the curvature scalar a detector carries.
type Field int

const (
	// Gravitational is the Weyl scalar Psi4.
	Gravitational Field = iota
	// Electromagnetic is the Maxwell scalar Phi2.
	Electromagnetic
)

// Name returns the multipole variable name, "Psi4" or "Phi2".
func (f Field) Name() string {
	switch f {
	case Gravitational:
		return "Psi4"
	case Electromagnetic:
		return "Phi2"
	default:
		return fmt.Sprintf("waves.Field(%d)", int(f))
	}
}

// String implements fmt.Stringer.
func (f Field) String() string { return f.Name() }

// MinDegree returns the lowest radiative multipole.
func (f Field) MinDegree() int {
	if f == Electromagnetic {
		return 1
	}

	return 2
}

// Spin returns the spin weight of the field.
func (f Field) Spin() int {
	if f == Electromagnetic {
		return 1
	}

	return 2
}

func (f Field) valid() bool {
	return f == Gravitational || f == Electromagnetic
}

func (f Field) channel() channel {
	if f == Electromagnetic {
		return electromagneticChannel{}
	}

	return gravitationalChannel{}
}

// channel carries the per-field radiative physics.
type channel interface {
	power(d *Detector, mode Mode, pcut float64) (*series.Series, error)
	torque(d *Detector, mode Mode, pcut float64) (*series.Series, error)
	hasTorque() bool
}

type gravitationalChannel struct{}

// power is r²/16π |∫Psi4|².
func (gravitationalChannel) power(d *Detector, mode Mode, pcut float64) (*series.Series, error) {
	psi4, err := d.lookup(mode)
	if err != nil {
		return nil, err
	}

	dh, err := d.ffi.Integrate(psi4, pcut, 1)
	if err != nil {
		return nil, err
	}

	return dh.AbsSquared().ScaleReal(d.radius * d.radius / (16 * math.Pi)), nil
}

// torque is m r²/16π Im(conj(∫Psi4) ∫∫Psi4).
func (gravitationalChannel) torque(d *Detector, mode Mode, pcut float64) (*series.Series, error) {
	psi4, err := d.lookup(mode)
	if err != nil {
		return nil, err
	}

	dh, err := d.ffi.Integrate(psi4, pcut, 1)
	if err != nil {
		return nil, err
	}

	h, err := d.ffi.Integrate(psi4, pcut, 2)
	if err != nil {
		return nil, err
	}

	prod, err := dh.Conj().Mul(h)
	if err != nil {
		return nil, err
	}

	scale := float64(mode.Order) * d.radius * d.radius / (16 * math.Pi)

	return prod.Imag().ScaleReal(scale), nil
}

func (gravitationalChannel) hasTorque() bool { return true }

type electromagneticChannel struct{}

// power is r²/4π |Phi2|²; no integration is involved so pcut is unused.
func (electromagneticChannel) power(d *Detector, mode Mode, _ float64) (*series.Series, error) {
	phi2, err := d.lookup(mode)
	if err != nil {
		return nil, err
	}

	return phi2.AbsSquared().ScaleReal(d.radius * d.radius / (4 * math.Pi)), nil
}

func (electromagneticChannel) torque(_ *Detector, _ Mode, _ float64) (*series.Series, error) {
	return nil, errNoTorque(Electromagnetic)
}

func (electromagneticChannel) hasTorque() bool { return false }

func errNoTorque(f Field) error {
	return fmt.Errorf("%w: torque for %s", ErrUnsupported, f)
}
