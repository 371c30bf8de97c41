// Package spectrum provides the discrete Fourier transform and
// spectrum-domain helpers used by the spectral integrators.
//
// [FFT] and [IFFT] accept any transform length. Power-of-two lengths run on
// algo-fft plans; every other length falls back to the Bluestein transform of
// go-dsp. [AngularFrequencies] returns the angular-frequency grid matching the
// bin layout of both backends (numpy fftfreq ordering, scaled by 2π).
package spectrum
