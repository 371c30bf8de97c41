package waves

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-waves/astro"
	"github.com/cwbudde/algo-waves/dsp/window"
)

// HarmonicFunc evaluates the spin-weighted spherical harmonic sYlm(θ, φ).
type HarmonicFunc func(s, l, m int, theta, phi float64) complex128

// AntennaFunc returns the network antenna response for a source at right
// ascension ra and declination dec observed at t with polarisation psi.
type AntennaFunc func(ra, dec float64, t time.Time, psi float64) astro.AntennaResponse

// Option configures a Detector or a Collection.
type Option func(*config)

type config struct {
	logger   *zap.Logger
	workers  int
	harmonic HarmonicFunc
	antenna  AntennaFunc
}

func defaultConfig() config {
	return config{
		logger:   zap.NewNop(),
		workers:  runtime.GOMAXPROCS(0),
		harmonic: astro.SpinWeightedHarmonic,
		antenna:  astro.AntennaResponses,
	}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithLogger sets the logger for advisories such as irregular sampling.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithWorkers bounds the number of modes or radii evaluated concurrently.
// Values below one are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithHarmonic replaces the spin-weighted harmonic evaluator.
func WithHarmonic(fn HarmonicFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.harmonic = fn
		}
	}
}

// WithAntenna replaces the antenna response function.
func WithAntenna(fn AntennaFunc) Option {
	return func(c *config) {
		if fn != nil {
			c.antenna = fn
		}
	}
}

// AllDegrees disables the degree cutoff of mode sums.
const AllDegrees = -1

// QueryOption configures a strain or total computation.
type QueryOption func(*query)

type query struct {
	window    Window
	trimEnds  bool
	maxDegree int
}

func newQuery(opts []QueryOption) query {
	q := query{trimEnds: true, maxDegree: AllDegrees}

	for _, opt := range opts {
		if opt != nil {
			opt(&q)
		}
	}

	return q
}

// WithWindow tapers each mode before integration. A nil window disables tapering.
func WithWindow(w Window) QueryOption {
	return func(q *query) {
		q.window = w
	}
}

// WithTrimEnds controls removal of one cutoff period at both ends of the
// integrated strain. Trimming is on by default.
func WithTrimEnds(trim bool) QueryOption {
	return func(q *query) {
		q.trimEnds = trim
	}
}

// WithMaxDegree restricts mode sums to degree ≤ l. [AllDegrees] removes the limit.
func WithMaxDegree(l int) QueryOption {
	return func(q *query) {
		q.maxDegree = l
	}
}

// Window produces tapering weights for a series of n samples.
type Window interface {
	Weights(n int) ([]float64, error)
}

// WindowFunc adapts a weighting function of the sample count.
type WindowFunc func(n int) []float64

// Weights implements Window.
func (f WindowFunc) Weights(n int) ([]float64, error) {
	return f(n), nil
}

type namedWindow struct {
	name string
	opts []window.Option
}

// NamedWindow resolves name through the window registry (see [window.Names])
// when weights are requested. Unknown names fail with [ErrUnknownWindow].
func NamedWindow(name string, opts ...window.Option) Window {
	return namedWindow{name: name, opts: opts}
}

func (w namedWindow) Weights(n int) ([]float64, error) {
	weights, err := window.GenerateByName(w.name, n, w.opts...)
	if errors.Is(err, window.ErrUnknown) {
		return nil, fmt.Errorf("%w: %w", ErrUnknownWindow, err)
	}

	if err != nil {
		return nil, err
	}

	return weights, nil
}
