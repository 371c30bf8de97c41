package waves

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-waves/dsp/series"
)

// Multipole is one raw (l, m) component of a field at one extraction radius.
type Multipole struct {
	Degree int
	Order  int
	Radius float64
	Series *series.Series
}

// Source supplies the multipoles of a named field ("Psi4", "Phi2").
// A field that is not present yields an empty slice and no error.
type Source interface {
	Multipoles(field string) ([]Multipole, error)
}

// MemorySource is a Source backed by a map from field name to multipoles.
type MemorySource map[string][]Multipole

// Multipoles implements Source.
func (m MemorySource) Multipoles(field string) ([]Multipole, error) {
	return slices.Clone(m[field]), nil
}

// Collection holds one Detector per extraction radius for a single field.
// An empty collection is valid; radius queries on it fail with [ErrNoData].
type Collection struct {
	field     Field
	radii     []float64
	detectors map[float64]*Detector
	cfg       config
}

// GravitationalWaves builds the Psi4 collection of src.
func GravitationalWaves(src Source, opts ...Option) (*Collection, error) {
	return NewCollection(Gravitational, src, opts...)
}

// ElectromagneticWaves builds the Phi2 collection of src.
func ElectromagneticWaves(src Source, opts ...Option) (*Collection, error) {
	return NewCollection(Electromagnetic, src, opts...)
}

// NewCollection reads the multipoles of field from src, drops degrees below
// the field's minimum and builds one Detector per radius. Options are passed
// on to every detector.
func NewCollection(field Field, src Source, opts ...Option) (*Collection, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: nil source", ErrInvalidSource)
	}

	if !field.valid() {
		return nil, fmt.Errorf("%w: unknown field %d", ErrInvalidSource, int(field))
	}

	multipoles, err := src.Multipoles(field.Name())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSource, err)
	}

	grouped := make(map[float64]map[Mode]*series.Series)

	for _, mp := range multipoles {
		if mp.Degree < field.MinDegree() {
			continue
		}

		byMode, ok := grouped[mp.Radius]
		if !ok {
			byMode = make(map[Mode]*series.Series)
			grouped[mp.Radius] = byMode
		}

		mode := Mode{mp.Degree, mp.Order}
		if _, dup := byMode[mode]; dup {
			return nil, fmt.Errorf("%w: %s at radius %g", ErrDuplicateMode, mode, mp.Radius)
		}

		byMode[mode] = mp.Series
	}

	c := &Collection{
		field:     field,
		radii:     slices.Sorted(maps.Keys(grouped)),
		detectors: make(map[float64]*Detector, len(grouped)),
		cfg:       newConfig(opts),
	}

	for _, r := range c.radii {
		d, err := NewDetector(field, r, grouped[r], opts...)
		if err != nil {
			return nil, err
		}

		c.detectors[r] = d
	}

	c.cfg.logger.Debug("Built wave collection",
		zap.String("field", field.Name()),
		zap.Int("radii", len(c.radii)),
		zap.Int("multipoles", len(multipoles)))

	return c, nil
}

// Field returns the field of the collection.
func (c *Collection) Field() Field { return c.field }

// Radii returns the extraction radii in ascending order.
func (c *Collection) Radii() []float64 { return slices.Clone(c.radii) }

// Len returns the number of extraction radii.
func (c *Collection) Len() int { return len(c.radii) }

// Empty reports whether the field was absent from the source.
func (c *Collection) Empty() bool { return len(c.radii) == 0 }

// Detector returns the detector at radius r.
func (c *Collection) Detector(r float64) (*Detector, error) {
	d, ok := c.detectors[r]
	if !ok {
		return nil, fmt.Errorf("%w: %s at radius %g", ErrNoData, c.field, r)
	}

	return d, nil
}

// Outermost returns the detector at the largest radius.
func (c *Collection) Outermost() (*Detector, error) {
	if c.Empty() {
		return nil, fmt.Errorf("%w: %s collection is empty", ErrNoData, c.field)
	}

	return c.detectors[c.radii[len(c.radii)-1]], nil
}

// ExtrapolateStrainToInfinity computes StrainForMode(l, m, pcut, opts...) at
// each of radii (all radii when nil) and extrapolates the results to r → ∞ on
// the retarded times.
func (c *Collection) ExtrapolateStrainToInfinity(l, m int, pcut float64, radii, retarded []float64, xopts ExtrapolationOptions, opts ...QueryOption) (*series.Series, error) {
	if c.Empty() {
		return nil, fmt.Errorf("%w: %s collection is empty", ErrNoData, c.field)
	}

	if radii == nil {
		radii = c.radii
	}

	radii = slices.Sorted(slices.Values(radii))
	strains := make([]*series.Series, len(radii))

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(c.cfg.workers)

	for i, r := range radii {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			d, err := c.Detector(r)
			if err != nil {
				return err
			}

			h, err := d.StrainForMode(l, m, pcut, opts...)
			if err != nil {
				return fmt.Errorf("radius %g: %w", r, err)
			}

			strains[i] = h

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ExtrapolateToInfinity(radii, strains, retarded, xopts)
}
