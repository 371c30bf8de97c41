package waves

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-waves/dsp/core"
	"github.com/cwbudde/algo-waves/dsp/series"
	"github.com/cwbudde/algo-waves/dsp/spectrum"
)

// Integrator performs fixed-frequency integration.
type Integrator struct {
	logger *zap.Logger
}

// NewIntegrator returns an Integrator that reports advisories to logger.
// A nil logger discards them.
func NewIntegrator(logger *zap.Logger) *Integrator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Integrator{logger: logger}
}

// FixedFrequencyIntegrate integrates s order times with a low-frequency floor
// at ω₀ = 2π/pcut. See [Integrator.Integrate].
func FixedFrequencyIntegrate(s *series.Series, pcut float64, order int) (*series.Series, error) {
	return NewIntegrator(nil).Integrate(s, pcut, order)
}

// Integrate returns the order-fold time integral of s computed in the
// frequency domain. Each bin is divided by (i sign(ω) max(|ω|, ω₀))^order with
// ω₀ = 2π/pcut, so frequencies below ω₀ integrate as if they sat at ω₀. The
// zero-frequency bin is dropped, which removes any constant drift.
//
// Irregularly sampled input is resampled onto a uniform grid with the same
// number of samples; a warning is logged and the result is interpolated back
// onto the input times.
func (in *Integrator) Integrate(s *series.Series, pcut float64, order int) (*series.Series, error) {
	if !(pcut > 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidCutoff, pcut)
	}

	if order < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrder, order)
	}

	if s.Len() < 2 {
		return nil, fmt.Errorf("%w: fixed-frequency integration needs 2 samples, got %d", series.ErrTooShort, s.Len())
	}

	work := s
	resampled := !s.IsRegular()

	if resampled {
		in.logger.Warn("Irregularly sampled series resampled for fixed-frequency integration",
			zap.Int("samples", s.Len()),
			zap.Float64("tmin", s.TMin()),
			zap.Float64("tmax", s.TMax()))

		var err error

		work, err = s.RegularResampled()
		if err != nil {
			return nil, err
		}
	}

	bins, err := spectrum.FFT(work.Values())
	if err != nil {
		return nil, err
	}

	omega := spectrum.AngularFrequencies(work.Len(), work.Dt())
	omega0 := 2 * math.Pi / pcut

	for i, w := range omega {
		sign := core.Sign(w)
		if sign == 0 {
			bins[i] = 0
			continue
		}

		bins[i] *= cpow(complex(0, -sign/math.Max(math.Abs(w), omega0)), order)
	}

	values, err := spectrum.IFFT(bins)
	if err != nil {
		return nil, err
	}

	out, err := series.New(work.Times(), values)
	if err != nil {
		return nil, err
	}

	if resampled {
		return out.Resample(s.Times())
	}

	return out, nil
}

// cpow returns z^n for n ≥ 1.
func cpow(z complex128, n int) complex128 {
	r := z
	for range n - 1 {
		r *= z
	}

	return r
}
