// Package polyfit provides least-squares polynomial fits in a single
// abscissa. One factorisation of the Vandermonde matrix is shared by every
// ordinate vector fitted against the same abscissae.
package polyfit

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrTooFewPoints is returned when the order is not below the number of points.
	ErrTooFewPoints = errors.New("polyfit: polynomial order must be less than number of points")
	// ErrDuplicateAbscissa is returned when two abscissae coincide.
	ErrDuplicateAbscissa = errors.New("polyfit: duplicate abscissa")
	// ErrLengthMismatch is returned when an ordinate vector does not match the abscissae.
	ErrLengthMismatch = errors.New("polyfit: ordinate length does not match abscissae")
)

// Fit is a factorised least-squares problem for polynomials of a fixed order
// evaluated at fixed abscissae.
type Fit struct {
	points int
	qr     mat.QR
}

// New factorises the Vandermonde matrix V[i][k] = x[i]^k, k = 0..order.
func New(x []float64, order int) (*Fit, error) {
	if order < 0 {
		return nil, fmt.Errorf("%w: order %d", ErrTooFewPoints, order)
	}

	if order >= len(x) {
		return nil, fmt.Errorf("%w: order %d with %d points", ErrTooFewPoints, order, len(x))
	}

	seen := make(map[float64]struct{}, len(x))
	for _, v := range x {
		if _, dup := seen[v]; dup {
			return nil, fmt.Errorf("%w: %g", ErrDuplicateAbscissa, v)
		}

		seen[v] = struct{}{}
	}

	cols := order + 1
	vander := mat.NewDense(len(x), cols, nil)

	for i, v := range x {
		p := 1.0
		for k := range cols {
			vander.Set(i, k, p)
			p *= v
		}
	}

	f := &Fit{points: len(x)}
	f.qr.Factorize(vander)

	return f, nil
}

// Intercepts fits every row independently and returns each constant
// coefficient, i.e. the fitted polynomial evaluated at zero. All rows are
// solved in one pass against the shared factorisation.
func (f *Fit) Intercepts(rows [][]float64) ([]float64, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	sol, err := f.solve(rows)
	if err != nil {
		return nil, err
	}

	return mat.Row(nil, 0, sol), nil
}

// solve returns the (order+1) x len(rows) coefficient matrix.
func (f *Fit) solve(rows [][]float64) (*mat.Dense, error) {
	n := f.points
	rhs := mat.NewDense(n, len(rows), nil)

	for j, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrLengthMismatch, j, len(row), n)
		}

		for i, v := range row {
			rhs.Set(i, j, v)
		}
	}

	var sol mat.Dense
	if err := f.qr.SolveTo(&sol, false, rhs); err != nil {
		return nil, fmt.Errorf("polyfit: solve: %w", err)
	}

	return &sol, nil
}
