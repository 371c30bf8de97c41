package polyfit

import (
	"errors"
	"math"
	"testing"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name  string
		x     []float64
		order int
		want  error
	}{
		{name: "order equals points", x: []float64{1, 2}, order: 2, want: ErrTooFewPoints},
		{name: "negative order", x: []float64{1, 2}, order: -1, want: ErrTooFewPoints},
		{name: "duplicate", x: []float64{1, 2, 2}, order: 1, want: ErrDuplicateAbscissa},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.x, tt.order); !errors.Is(err, tt.want) {
				t.Fatalf("New() err=%v, want %v", err, tt.want)
			}
		})
	}
}

func TestInterceptExactQuadratic(t *testing.T) {
	x := []float64{0.01, 0.02, 0.05, 0.1}

	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = 3 - 2*v + 7*v*v
	}

	fit, err := New(x, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	got, err := fit.Intercepts([][]float64{y})
	if err != nil {
		t.Fatalf("Intercepts error: %v", err)
	}

	if len(got) != 1 || math.Abs(got[0]-3) > 1e-8 {
		t.Fatalf("intercepts=%v want [3]", got)
	}
}

func TestInterceptsPerRow(t *testing.T) {
	x := []float64{1.0 / 50, 1.0 / 80, 1.0 / 120}

	fit, err := New(x, 2)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	rows := make([][]float64, 5)
	for j := range rows {
		a, b, c := float64(j)-2, 0.5*float64(j), -float64(j*j)
		rows[j] = make([]float64, len(x))

		for i, v := range x {
			rows[j][i] = a + b*v + c*v*v
		}
	}

	got, err := fit.Intercepts(rows)
	if err != nil {
		t.Fatalf("Intercepts error: %v", err)
	}

	for j := range rows {
		want := float64(j) - 2
		if math.Abs(got[j]-want) > 1e-9 {
			t.Fatalf("intercept[%d]=%v want %v", j, got[j], want)
		}
	}
}

func TestLeastSquaresLine(t *testing.T) {
	// Normal equations give slope Sxy/Sxx = 4/5 about the centroid (1.5, 2.5).
	x := []float64{0, 1, 2, 3}
	y := []float64{1.5, 1.5, 3.5, 3.5}

	fit, err := New(x, 1)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	got, err := fit.Intercepts([][]float64{y})
	if err != nil {
		t.Fatalf("Intercepts error: %v", err)
	}

	if math.Abs(got[0]-1.3) > 1e-12 {
		t.Fatalf("intercept=%v want 1.3", got[0])
	}
}

func TestRowLengthMismatch(t *testing.T) {
	fit, err := New([]float64{1, 2, 3}, 1)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if _, err := fit.Intercepts([][]float64{{1, 2}}); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}
