// Package testutil provides deterministic synthetic signals and tolerance
// assertions shared by package tests.
package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// UniformTimes returns n sample times t0, t0+dt, ..., t0+(n-1)*dt.
func UniformTimes(t0, dt float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = t0 + float64(i)*dt
	}
	return out
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Phasor returns amplitude * exp(i*omega*t) at every time in t.
func Phasor(t []float64, omega float64, amplitude complex128) []complex128 {
	out := make([]complex128, len(t))
	for i, ti := range t {
		out[i] = amplitude * cmplx.Exp(complex(0, omega*ti))
	}
	return out
}

// GaussianPulse returns a Gaussian-enveloped oscillation centred on t0:
// amplitude * exp(-((t-t0)/width)^2/2) * exp(i*omega*(t-t0)).
func GaussianPulse(t []float64, t0, width, omega float64, amplitude complex128) []complex128 {
	out := make([]complex128, len(t))
	for i, ti := range t {
		x := (ti - t0) / width
		env := math.Exp(-0.5 * x * x)
		out[i] = amplitude * complex(env, 0) * cmplx.Exp(complex(0, omega*(ti-t0)))
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}
