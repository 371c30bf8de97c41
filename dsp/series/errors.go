package series

import "errors"

var (
	// ErrTooShort indicates a series with fewer samples than an operation needs.
	ErrTooShort = errors.New("series: too few samples")
	// ErrLengthMismatch indicates times and values (or weights) of different length.
	ErrLengthMismatch = errors.New("series: length mismatch")
	// ErrNotIncreasing indicates sample times that are not strictly increasing.
	ErrNotIncreasing = errors.New("series: times must be strictly increasing")
	// ErrOutOfRange indicates a resample time outside [TMin, TMax].
	ErrOutOfRange = errors.New("series: time outside series span")
	// ErrGridMismatch indicates elementwise arithmetic on different time grids.
	ErrGridMismatch = errors.New("series: time grids differ")
	// ErrEmptyCrop indicates a crop interval containing no samples.
	ErrEmptyCrop = errors.New("series: crop interval contains no samples")
)
