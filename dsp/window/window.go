// Package window generates tapering windows applied to time series before
// spectral integration, and resolves windows by name through a closed
// registry.
package window

import (
	"fmt"
	"math"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris4Term
	TypeFlatTop
	TypeKaiser
	TypeTukey
	TypeTriangle
	TypeCosine
	TypeWelch
	TypeGauss
)

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha    float64
	hasAlpha bool
	periodic bool
}

// WithAlpha sets the shape parameter of parametric windows: Kaiser beta,
// Tukey taper fraction or Gauss width factor. Other windows ignore it.
func WithAlpha(v float64) Option {
	return func(c *config) {
		c.alpha = v
		c.hasAlpha = true
	}
}

// WithPeriodic samples the window over [0, 1) instead of [0, 1].
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns length coefficients of window t. Parametric windows use
// their registry default unless WithAlpha is given.
func Generate(t Type, length int, opts ...Option) ([]float64, error) {
	sh, ok := shapeOf(t)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknown, t)
	}
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if !cfg.hasAlpha {
		cfg.alpha = sh.alpha
	}
	if sh.validAlpha != nil && !sh.validAlpha(cfg.alpha) {
		return nil, fmt.Errorf("%w: %s alpha %g", ErrInvalidAlpha, sh.name, cfg.alpha)
	}

	if length == 1 {
		return []float64{sh.at(0.5, cfg.alpha)}, nil
	}

	den := float64(length - 1)
	if cfg.periodic {
		den = float64(length)
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = sh.at(float64(i)/den, cfg.alpha)
	}
	return out, nil
}

// cosineSum returns x -> Σ c[k]·cos(2πkx), the generalized cosine window.
func cosineSum(c ...float64) func(x, _ float64) float64 {
	return func(x, _ float64) float64 {
		var sum float64
		for k, ck := range c {
			sum += ck * math.Cos(2*math.Pi*float64(k)*x)
		}
		return sum
	}
}

func rectangular(_, _ float64) float64 { return 1 }

func triangle(x, _ float64) float64 { return 1 - math.Abs(2*x-1) }

func sine(x, _ float64) float64 { return math.Sin(math.Pi * x) }

func welch(x, _ float64) float64 {
	d := 2*x - 1
	return 1 - d*d
}

func kaiser(x, beta float64) float64 {
	r := 2*x - 1
	return besselI0(beta*math.Sqrt(math.Max(0, 1-r*r))) / besselI0(beta)
}

// tukey is flat in the middle and tapers with a raised cosine over alpha/2 of
// the width at each edge.
func tukey(x, alpha float64) float64 {
	d := math.Min(x, 1-x)
	if d >= alpha/2 {
		return 1
	}
	return 0.5 * (1 - math.Cos(2*math.Pi*d/alpha))
}

func gauss(x, alpha float64) float64 {
	v := (2*x - 1) * alpha
	return math.Exp(-math.Ln2 * v * v)
}

// besselI0 evaluates the modified Bessel function of the first kind of order
// zero by its power series Σ ((x/2)^k / k!)².
func besselI0(x float64) float64 {
	q := x * x / 4
	sum, term := 1.0, 1.0
	for k := 1; k < 500; k++ {
		term *= q / float64(k*k)
		sum += term
		if term < sum*1e-17 {
			break
		}
	}
	return sum
}
