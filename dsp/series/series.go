package series

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-waves/dsp/core"
	"github.com/cwbudde/algo-waves/dsp/interp"
	"github.com/cwbudde/algo-waves/dsp/spectrum"
	"github.com/cwbudde/algo-waves/dsp/window"
)

// RegularTolerance is the relative deviation of a sample spacing from the
// mean spacing still accepted as regular sampling.
const RegularTolerance = 1e-6

// edgeTolerance is the fraction of the mean spacing by which a query may
// overshoot the series span and still be clamped onto it.
const edgeTolerance = 1e-9

// Series is an immutable sequence of complex samples at strictly increasing times.
type Series struct {
	t []float64
	y []complex128
}

// New returns a Series holding copies of t and y.
func New(t []float64, y []complex128) (*Series, error) {
	if len(t) == 0 {
		return nil, fmt.Errorf("%w: no samples", ErrTooShort)
	}
	if len(t) != len(y) {
		return nil, fmt.Errorf("%w: %d times, %d values", ErrLengthMismatch, len(t), len(y))
	}
	for i := 1; i < len(t); i++ {
		if !(t[i] > t[i-1]) {
			return nil, fmt.Errorf("%w at index %d", ErrNotIncreasing, i)
		}
	}

	return &Series{
		t: append([]float64(nil), t...),
		y: append([]complex128(nil), y...),
	}, nil
}

// NewReal returns a Series of real samples.
func NewReal(t, y []float64) (*Series, error) {
	if len(t) != len(y) {
		return nil, fmt.Errorf("%w: %d times, %d values", ErrLengthMismatch, len(t), len(y))
	}
	c := make([]complex128, len(y))
	for i, v := range y {
		c[i] = complex(v, 0)
	}
	return New(t, c)
}

// wrap takes ownership of t and y without validation. Callers guarantee
// equal lengths and increasing times.
func wrap(t []float64, y []complex128) *Series {
	return &Series{t: t, y: y}
}

// Len returns the number of samples.
func (s *Series) Len() int { return len(s.t) }

// Times returns a copy of the sample times.
func (s *Series) Times() []float64 { return append([]float64(nil), s.t...) }

// Values returns a copy of the sample values.
func (s *Series) Values() []complex128 { return append([]complex128(nil), s.y...) }

// At returns the i-th sample.
func (s *Series) At(i int) (float64, complex128) { return s.t[i], s.y[i] }

// TMin returns the first sample time.
func (s *Series) TMin() float64 { return s.t[0] }

// TMax returns the last sample time.
func (s *Series) TMax() float64 { return s.t[len(s.t)-1] }

// Duration returns TMax - TMin.
func (s *Series) Duration() float64 { return s.TMax() - s.TMin() }

// Dt returns the mean sample spacing, or 0 for a single sample.
func (s *Series) Dt() float64 {
	if len(s.t) < 2 {
		return 0
	}
	return s.Duration() / float64(len(s.t)-1)
}

// IsRegular reports whether all sample spacings match the mean spacing within
// RegularTolerance.
func (s *Series) IsRegular() bool {
	if len(s.t) < 3 {
		return true
	}

	dt := s.Dt()
	for i := 1; i < len(s.t); i++ {
		if !core.RelativelyEqual(s.t[i]-s.t[i-1], dt, dt, RegularTolerance) {
			return false
		}
	}
	return true
}

// RegularTimes returns Len() evenly spaced times spanning [TMin, TMax].
func (s *Series) RegularTimes() []float64 {
	n := len(s.t)
	out := make([]float64, n)
	if n == 1 {
		out[0] = s.t[0]
		return out
	}

	t0, dt := s.TMin(), s.Dt()
	for i := range out {
		out[i] = t0 + float64(i)*dt
	}
	out[n-1] = s.TMax()
	return out
}

// RegularResampled returns the series resampled onto RegularTimes.
func (s *Series) RegularResampled() (*Series, error) {
	return s.Resample(s.RegularTimes())
}

// Resample returns the series linearly interpolated at times. times must be
// strictly increasing and lie inside [TMin, TMax]; overshoots below a
// billionth of the sample spacing are clamped onto the span.
func (s *Series) Resample(times []float64) (*Series, error) {
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: no resample times", ErrTooShort)
	}

	tol := edgeTolerance * s.Dt()
	lo, hi := s.TMin(), s.TMax()
	q := make([]float64, len(times))
	for i, tq := range times {
		if i > 0 && !(tq > times[i-1]) {
			return nil, fmt.Errorf("%w: resample times at index %d", ErrNotIncreasing, i)
		}
		if tq < lo-tol || tq > hi+tol {
			return nil, fmt.Errorf("%w: %g not in [%g, %g]", ErrOutOfRange, tq, lo, hi)
		}
		q[i] = core.Clamp(tq, lo, hi)
	}

	y, err := interp.LinearComplex(s.t, s.y, q)
	if err != nil {
		return nil, err
	}
	return wrap(append([]float64(nil), times...), y), nil
}

// Crop returns the samples with tmin <= t <= tmax. Bounds are compared with a
// tolerance of a billionth of the sample spacing.
func (s *Series) Crop(tmin, tmax float64) (*Series, error) {
	tol := edgeTolerance * s.Dt()

	first, last := -1, -1
	for i, ti := range s.t {
		if ti >= tmin-tol && ti <= tmax+tol {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrEmptyCrop, tmin, tmax)
	}

	return wrap(
		append([]float64(nil), s.t[first:last+1]...),
		append([]complex128(nil), s.y[first:last+1]...),
	), nil
}

// Map returns a series with f applied to every value.
func (s *Series) Map(f func(complex128) complex128) *Series {
	y := make([]complex128, len(s.y))
	for i, v := range s.y {
		y[i] = f(v)
	}
	return wrap(s.Times(), y)
}

// Scale returns the series multiplied by c.
func (s *Series) Scale(c complex128) *Series {
	return s.Map(func(v complex128) complex128 { return c * v })
}

// ScaleReal returns the series multiplied by f.
func (s *Series) ScaleReal(f float64) *Series {
	return s.Scale(complex(f, 0))
}

// Conj returns the complex conjugate series.
func (s *Series) Conj() *Series {
	return s.Map(cmplx.Conj)
}

// Real returns the real part as a real series.
func (s *Series) Real() *Series {
	return s.Map(func(v complex128) complex128 { return complex(real(v), 0) })
}

// Imag returns the imaginary part as a real series.
func (s *Series) Imag() *Series {
	return s.Map(func(v complex128) complex128 { return complex(imag(v), 0) })
}

// RealValues returns the real parts of the values.
func (s *Series) RealValues() []float64 {
	out := make([]float64, len(s.y))
	for i, v := range s.y {
		out[i] = real(v)
	}
	return out
}

// ImagValues returns the imaginary parts of the values.
func (s *Series) ImagValues() []float64 {
	out := make([]float64, len(s.y))
	for i, v := range s.y {
		out[i] = imag(v)
	}
	return out
}

// Abs returns |y| as a real series.
func (s *Series) Abs() *Series {
	return wrap(s.Times(), toComplex(spectrum.Magnitude(s.y)))
}

// AbsSquared returns |y|^2 as a real series.
func (s *Series) AbsSquared() *Series {
	return wrap(s.Times(), toComplex(spectrum.Power(s.y)))
}

// UnfoldedPhase returns the continuously unwrapped phase of y as a real series.
func (s *Series) UnfoldedPhase() *Series {
	return wrap(s.Times(), toComplex(spectrum.UnwrapPhase(spectrum.Phase(s.y))))
}

// Add returns the elementwise sum. Both series must share the time grid.
func (s *Series) Add(o *Series) (*Series, error) {
	return s.combine(o, func(a, b complex128) complex128 { return a + b })
}

// Sub returns the elementwise difference. Both series must share the time grid.
func (s *Series) Sub(o *Series) (*Series, error) {
	return s.combine(o, func(a, b complex128) complex128 { return a - b })
}

// Mul returns the elementwise product. Both series must share the time grid.
func (s *Series) Mul(o *Series) (*Series, error) {
	return s.combine(o, func(a, b complex128) complex128 { return a * b })
}

// SameGrid reports whether s and o have identical sample times.
func (s *Series) SameGrid(o *Series) bool {
	return floats.Equal(s.t, o.t)
}

func (s *Series) combine(o *Series, f func(a, b complex128) complex128) (*Series, error) {
	if !s.SameGrid(o) {
		return nil, fmt.Errorf("%w: %d and %d samples on [%g, %g] and [%g, %g]",
			ErrGridMismatch, s.Len(), o.Len(), s.TMin(), s.TMax(), o.TMin(), o.TMax())
	}

	y := make([]complex128, len(s.y))
	for i := range y {
		y[i] = f(s.y[i], o.y[i])
	}
	return wrap(s.Times(), y), nil
}

// Windowed returns the series multiplied sample by sample with weights.
func (s *Series) Windowed(weights []float64) (*Series, error) {
	if len(weights) != len(s.y) {
		return nil, fmt.Errorf("%w: %d weights for %d samples", ErrLengthMismatch, len(weights), len(s.y))
	}

	re, im := s.RealValues(), s.ImagValues()
	vecmath.MulBlockInPlace(re, weights)
	vecmath.MulBlockInPlace(im, weights)

	y := make([]complex128, len(s.y))
	for i := range y {
		y[i] = complex(re[i], im[i])
	}
	return wrap(s.Times(), y), nil
}

// WindowedByName applies the registered window name (see [window.Names]).
func (s *Series) WindowedByName(name string, opts ...window.Option) (*Series, error) {
	w, err := window.GenerateByName(name, s.Len(), opts...)
	if err != nil {
		return nil, err
	}
	return s.Windowed(w)
}

// Integrated returns the cumulative trapezoidal integral, starting at zero at TMin.
func (s *Series) Integrated() *Series {
	y := make([]complex128, len(s.y))
	for i := 1; i < len(y); i++ {
		h := complex(0.5*(s.t[i]-s.t[i-1]), 0)
		y[i] = y[i-1] + h*(s.y[i]+s.y[i-1])
	}
	return wrap(s.Times(), y)
}

// MaxAbs returns the time and magnitude of the sample with the largest |y|.
func (s *Series) MaxAbs() (float64, float64) {
	mag := spectrum.Magnitude(s.y)
	i := floats.MaxIdx(mag)
	return s.t[i], mag[i]
}

// IsReal reports whether every imaginary part is exactly zero.
func (s *Series) IsReal() bool {
	for _, v := range s.y {
		if imag(v) != 0 {
			return false
		}
	}
	return true
}

// HasNaN reports whether any value is NaN in either component.
func (s *Series) HasNaN() bool {
	for _, v := range s.y {
		if math.IsNaN(real(v)) || math.IsNaN(imag(v)) {
			return true
		}
	}
	return false
}

func toComplex(x []float64) []complex128 {
	out := make([]complex128, len(x))
	for i, v := range x {
		out[i] = complex(v, 0)
	}
	return out
}
