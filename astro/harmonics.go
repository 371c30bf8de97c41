package astro

import (
	"math"
	"math/cmplx"
)

// SpinWeightedHarmonic evaluates the spin-weighted spherical harmonic
// sYlm(θ, φ) with the Goldberg phase convention,
//
//	sYlm = (-1)^s sqrt((2l+1)/4π) d^l_{m,-s}(θ) e^{imφ}.
//
// It returns zero when l < |s| or |m| > l.
func SpinWeightedHarmonic(s, l, m int, theta, phi float64) complex128 {
	if l < abs(s) || abs(m) > l {
		return 0
	}

	norm := math.Sqrt(float64(2*l+1) / (4 * math.Pi))
	if s%2 != 0 {
		norm = -norm
	}

	d := wignerD(l, m, -s, theta)

	return complex(norm*d, 0) * cmplx.Exp(complex(0, float64(m)*phi))
}

// wignerD evaluates the Wigner small-d matrix element d^l_{mp,m}(θ).
func wignerD(l, mp, m int, theta float64) float64 {
	c := math.Cos(theta / 2)
	s := math.Sin(theta / 2)

	// log of sqrt((l+m)!(l-m)!(l+mp)!(l-mp)!)
	pre := 0.5 * (lfact(l+m) + lfact(l-m) + lfact(l+mp) + lfact(l-mp))

	kmin := max(0, m-mp)
	kmax := min(l+m, l-mp)

	var sum float64

	for k := kmin; k <= kmax; k++ {
		cpow := 2*l - 2*k + m - mp
		spow := 2*k - m + mp

		term := math.Exp(pre - lfact(l+m-k) - lfact(k) - lfact(l-k-mp) - lfact(k-m+mp))
		term *= ipow(c, cpow) * ipow(s, spow)

		if (k-m+mp)%2 != 0 {
			term = -term
		}

		sum += term
	}

	return sum
}

func lfact(n int) float64 {
	v, _ := math.Lgamma(float64(n) + 1)
	return v
}

// ipow returns x^n for n >= 0 with 0^0 = 1.
func ipow(x float64, n int) float64 {
	r := 1.0
	for range n {
		r *= x
	}

	return r
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
