package waves

import (
	"context"
	"fmt"
	"maps"
	"math"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-waves/dsp/series"
)

// Detector is the set of modes of one field extracted at one radius.
// It is immutable and safe for concurrent use.
type Detector struct {
	field  Field
	radius float64
	modes  []Mode
	data   map[Mode]*series.Series

	cfg config
	ch  channel
	ffi *Integrator
}

// NewDetector builds a detector for field at the given extraction radius.
// Every mode must satisfy field.MinDegree() ≤ l and |m| ≤ l.
func NewDetector(field Field, radius float64, modes map[Mode]*series.Series, opts ...Option) (*Detector, error) {
	if !field.valid() {
		return nil, fmt.Errorf("%w: unknown field %d", ErrInvalidMode, int(field))
	}

	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: %g", ErrInvalidRadius, radius)
	}

	if len(modes) == 0 {
		return nil, fmt.Errorf("%w: radius %g", ErrNoModes, radius)
	}

	for mode, s := range modes {
		if mode.Degree < field.MinDegree() || abs(mode.Order) > mode.Degree {
			return nil, fmt.Errorf("%w: %s for %s", ErrInvalidMode, mode, field)
		}

		if s == nil {
			return nil, fmt.Errorf("%w: %s has no series", ErrInvalidMode, mode)
		}
	}

	cfg := newConfig(opts)

	d := &Detector{
		field:  field,
		radius: radius,
		modes:  slices.Collect(maps.Keys(modes)),
		data:   maps.Clone(modes),
		cfg:    cfg,
		ch:     field.channel(),
		ffi:    NewIntegrator(cfg.logger.With(zap.String("field", field.Name()), zap.Float64("radius", radius))),
	}
	sortModes(d.modes)

	return d, nil
}

// Field returns the field carried by the detector.
func (d *Detector) Field() Field { return d.field }

// Radius returns the extraction radius.
func (d *Detector) Radius() float64 { return d.radius }

// Spin returns the spin weight of the field.
func (d *Detector) Spin() int { return d.field.Spin() }

// Modes returns the available modes in ascending (l, m).
func (d *Detector) Modes() []Mode { return slices.Clone(d.modes) }

// MaxDegree returns the largest available degree.
func (d *Detector) MaxDegree() int { return d.modes[len(d.modes)-1].Degree }

// Has reports whether mode (l, m) is available.
func (d *Detector) Has(l, m int) bool {
	_, ok := d.data[Mode{l, m}]
	return ok
}

// Mode returns the raw series of mode (l, m).
func (d *Detector) Mode(l, m int) (*series.Series, error) {
	return d.lookup(Mode{l, m})
}

func (d *Detector) lookup(mode Mode) (*series.Series, error) {
	s, ok := d.data[mode]
	if !ok {
		return nil, fmt.Errorf("%w: l=%d, m=%d at radius %g", ErrModeNotAvailable, mode.Degree, mode.Order, d.radius)
	}

	return s, nil
}

// Visitor computes one mode's contribution to a sum.
type Visitor func(s *series.Series, degree, order int, radius float64) (*series.Series, error)

// Sum evaluates visitor on every mode with degree ≤ maxDegree ([AllDegrees]
// for all) and adds the results in ascending (l, m). Modes are evaluated on up
// to WithWorkers goroutines; the first failure aborts the sum.
func (d *Detector) Sum(maxDegree int, visitor Visitor) (*series.Series, error) {
	var modes []Mode

	for _, mode := range d.modes {
		if maxDegree == AllDegrees || mode.Degree <= maxDegree {
			modes = append(modes, mode)
		}
	}

	if len(modes) == 0 {
		return nil, fmt.Errorf("%w: none with degree <= %d at radius %g", ErrNoModes, maxDegree, d.radius)
	}

	terms := make([]*series.Series, len(modes))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(d.cfg.workers)

	for i, mode := range modes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			term, err := visitor(d.data[mode], mode.Degree, mode.Order, d.radius)
			if err != nil {
				return fmt.Errorf("mode %s: %w", mode, err)
			}

			terms[i] = term

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := terms[0]

	for i, term := range terms[1:] {
		var err error

		total, err = total.Add(term)
		if err != nil {
			return nil, fmt.Errorf("mode %s: %w", modes[i+1], err)
		}
	}

	return total, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
