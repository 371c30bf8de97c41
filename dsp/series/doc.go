// Package series provides an immutable, complex-valued time series.
//
// A [Series] is an ordered sequence of (time, value) samples with strictly
// increasing times. Real-valued quantities (power, energy, amplitudes) are
// stored with a zero imaginary part. No method mutates its receiver: every
// transformation (resample, crop, window, scale, conjugate, integrate)
// returns a new Series.
//
// Resampling is piecewise linear and only defined inside [TMin, TMax]; query
// times outside the span fail with [ErrOutOfRange] instead of extrapolating.
package series
