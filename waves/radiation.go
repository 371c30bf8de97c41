package waves

import (
	"github.com/cwbudde/algo-waves/dsp/series"
)

// Power returns the power radiated in mode (l, m). pcut is the cutoff period
// of the fixed-frequency integration and is ignored by the electromagnetic
// field, whose scalar needs no integration.
func (d *Detector) Power(l, m int, pcut float64) (*series.Series, error) {
	return d.ch.power(d, Mode{l, m}, pcut)
}

// Energy returns the cumulative energy radiated in mode (l, m).
func (d *Detector) Energy(l, m int, pcut float64) (*series.Series, error) {
	p, err := d.Power(l, m, pcut)
	if err != nil {
		return nil, err
	}

	return p.Integrated(), nil
}

// TotalPower sums Power over the modes selected by WithMaxDegree.
func (d *Detector) TotalPower(pcut float64, opts ...QueryOption) (*series.Series, error) {
	return d.Sum(newQuery(opts).maxDegree, func(_ *series.Series, l, m int, _ float64) (*series.Series, error) {
		return d.Power(l, m, pcut)
	})
}

// TotalEnergy sums Energy over the modes selected by WithMaxDegree.
func (d *Detector) TotalEnergy(pcut float64, opts ...QueryOption) (*series.Series, error) {
	return d.Sum(newQuery(opts).maxDegree, func(_ *series.Series, l, m int, _ float64) (*series.Series, error) {
		return d.Energy(l, m, pcut)
	})
}

// TorqueZ returns the z component of the angular momentum flux of mode (l, m).
// The electromagnetic field fails with [ErrUnsupported].
func (d *Detector) TorqueZ(l, m int, pcut float64) (*series.Series, error) {
	return d.ch.torque(d, Mode{l, m}, pcut)
}

// AngularMomentumZ returns the cumulative z angular momentum radiated in mode (l, m).
func (d *Detector) AngularMomentumZ(l, m int, pcut float64) (*series.Series, error) {
	tq, err := d.TorqueZ(l, m, pcut)
	if err != nil {
		return nil, err
	}

	return tq.Integrated(), nil
}

// TotalTorqueZ sums TorqueZ over the modes selected by WithMaxDegree.
func (d *Detector) TotalTorqueZ(pcut float64, opts ...QueryOption) (*series.Series, error) {
	if !d.ch.hasTorque() {
		return nil, errNoTorque(d.field)
	}

	return d.Sum(newQuery(opts).maxDegree, func(_ *series.Series, l, m int, _ float64) (*series.Series, error) {
		return d.TorqueZ(l, m, pcut)
	})
}

// TotalAngularMomentumZ sums AngularMomentumZ over the modes selected by WithMaxDegree.
func (d *Detector) TotalAngularMomentumZ(pcut float64, opts ...QueryOption) (*series.Series, error) {
	if !d.ch.hasTorque() {
		return nil, errNoTorque(d.field)
	}

	return d.Sum(newQuery(opts).maxDegree, func(_ *series.Series, l, m int, _ float64) (*series.Series, error) {
		return d.AngularMomentumZ(l, m, pcut)
	})
}
