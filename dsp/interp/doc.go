// Package interp provides interpolation primitives for non-uniformly sampled
// data.
//
// Available functions:
//
//   - [Bracket]:        locate the interval containing a query abscissa
//   - [Linear]:         piecewise-linear interpolation of real samples
//   - [LinearComplex]:  piecewise-linear interpolation of complex samples
//
// All functions require strictly increasing abscissae. Queries outside the
// sampled span are clamped to the nearest endpoint value; callers that need
// strict bounds (such as [series.Series.Resample]) check them first.
package interp
