package waves

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cwbudde/algo-waves/dsp/series"
	"github.com/cwbudde/algo-waves/internal/testutil"
)

// constantSeries returns v on the shared test grid.
func constantSeries(t *testing.T, v complex128) *series.Series {
	t.Helper()

	ts := testutil.UniformTimes(0, testDt, testSamples)
	ys := make([]complex128, len(ts))

	for i := range ys {
		ys[i] = v
	}

	s, err := series.New(ts, ys)
	if err != nil {
		t.Fatalf("series.New: %v", err)
	}

	return s
}

func mustDetector(t *testing.T, field Field, radius float64, modes map[Mode]*series.Series, opts ...Option) *Detector {
	t.Helper()

	d, err := NewDetector(field, radius, modes, opts...)
	if err != nil {
		t.Fatalf("NewDetector: %v", err)
	}

	return d
}

func TestNewDetectorValidation(t *testing.T) {
	s := constantSeries(t, 1)

	tests := []struct {
		name   string
		field  Field
		radius float64
		modes  map[Mode]*series.Series
		want   error
	}{
		{name: "degree below psi4 minimum", field: Gravitational, radius: 10, modes: map[Mode]*series.Series{{1, 0}: s}, want: ErrInvalidMode},
		{name: "degree below phi2 minimum", field: Electromagnetic, radius: 10, modes: map[Mode]*series.Series{{0, 0}: s}, want: ErrInvalidMode},
		{name: "order beyond degree", field: Gravitational, radius: 10, modes: map[Mode]*series.Series{{2, -3}: s}, want: ErrInvalidMode},
		{name: "nil series", field: Gravitational, radius: 10, modes: map[Mode]*series.Series{{2, 2}: nil}, want: ErrInvalidMode},
		{name: "no modes", field: Gravitational, radius: 10, modes: nil, want: ErrNoModes},
		{name: "zero radius", field: Gravitational, radius: 0, modes: map[Mode]*series.Series{{2, 2}: s}, want: ErrInvalidRadius},
		{name: "infinite radius", field: Gravitational, radius: math.Inf(1), modes: map[Mode]*series.Series{{2, 2}: s}, want: ErrInvalidRadius},
		{name: "unknown field", field: Field(7), radius: 10, modes: map[Mode]*series.Series{{2, 2}: s}, want: ErrInvalidMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewDetector(tt.field, tt.radius, tt.modes); !errors.Is(err, tt.want) {
				t.Fatalf("err=%v want %v", err, tt.want)
			}
		})
	}
}

func TestDetectorAccessors(t *testing.T) {
	s := constantSeries(t, 1)
	modes := map[Mode]*series.Series{
		{3, 1}: s, {2, 2}: s, {2, -2}: s, {3, -3}: s, {2, 0}: s,
	}

	d := mustDetector(t, Gravitational, 75, modes)

	want := []Mode{{2, -2}, {2, 0}, {2, 2}, {3, -3}, {3, 1}}
	if diff := cmp.Diff(want, d.Modes()); diff != "" {
		t.Fatalf("Modes() mismatch (-want +got):\n%s", diff)
	}

	if d.Radius() != 75 || d.Field() != Gravitational || d.Spin() != 2 || d.MaxDegree() != 3 {
		t.Fatalf("unexpected accessors: r=%v field=%v spin=%d lmax=%d", d.Radius(), d.Field(), d.Spin(), d.MaxDegree())
	}

	if !d.Has(3, -3) || d.Has(3, 3) {
		t.Fatal("Has() mismatch")
	}

	if _, err := d.Mode(4, 0); !errors.Is(err, ErrModeNotAvailable) {
		t.Fatalf("expected ErrModeNotAvailable, got %v", err)
	}

	// The detector keeps its own copy of the mode map.
	delete(modes, Mode{2, 2})

	if !d.Has(2, 2) {
		t.Fatal("detector shares the caller's map")
	}
}

func TestFieldTags(t *testing.T) {
	if Gravitational.Name() != "Psi4" || Gravitational.MinDegree() != 2 || Gravitational.Spin() != 2 {
		t.Fatalf("gravitational tags: %s %d %d", Gravitational, Gravitational.MinDegree(), Gravitational.Spin())
	}

	if Electromagnetic.Name() != "Phi2" || Electromagnetic.MinDegree() != 1 || Electromagnetic.Spin() != 1 {
		t.Fatalf("electromagnetic tags: %s %d %d", Electromagnetic, Electromagnetic.MinDegree(), Electromagnetic.Spin())
	}
}

// modeValue gives every mode a distinct constant.
func modeValue(l, m int) complex128 {
	return complex(float64(10*l+m), float64(l))
}

func sumDetector(t *testing.T, workers int) *Detector {
	t.Helper()

	modes := map[Mode]*series.Series{}

	for l := 2; l <= 4; l++ {
		for m := -l; m <= l; m++ {
			modes[Mode{l, m}] = constantSeries(t, modeValue(l, m))
		}
	}

	return mustDetector(t, Gravitational, 100, modes, WithWorkers(workers))
}

func TestSumAddsSelectedModes(t *testing.T) {
	d := sumDetector(t, 4)

	identity := func(s *series.Series, _, _ int, _ float64) (*series.Series, error) { return s, nil }

	tests := []struct {
		name string
		lmax int
	}{
		{name: "all", lmax: AllDegrees},
		{name: "l<=2", lmax: 2},
		{name: "l<=3", lmax: 3},
		{name: "above available", lmax: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := d.Sum(tt.lmax, identity)
			if err != nil {
				t.Fatalf("Sum: %v", err)
			}

			var want complex128

			for l := 2; l <= 4; l++ {
				if tt.lmax != AllDegrees && l > tt.lmax {
					continue
				}

				for m := -l; m <= l; m++ {
					want += modeValue(l, m)
				}
			}

			_, v := got.At(0)
			if v != want {
				t.Fatalf("sum=%v want %v", v, want)
			}
		})
	}

	if _, err := d.Sum(1, identity); !errors.Is(err, ErrNoModes) {
		t.Fatalf("expected ErrNoModes, got %v", err)
	}
}

func TestSumOrderIndependentOfWorkers(t *testing.T) {
	visitor := func(s *series.Series, l, m int, r float64) (*series.Series, error) {
		// Magnitudes spanning many decades make the result order-sensitive.
		return s.ScaleReal(math.Pow(10, float64(3*m-l)) / r), nil
	}

	serial, err := sumDetector(t, 1).Sum(AllDegrees, visitor)
	if err != nil {
		t.Fatalf("Sum serial: %v", err)
	}

	parallel, err := sumDetector(t, 16).Sum(AllDegrees, visitor)
	if err != nil {
		t.Fatalf("Sum parallel: %v", err)
	}

	if diff := cmp.Diff(serial.Values(), parallel.Values()); diff != "" {
		t.Fatalf("sums differ with worker count (-serial +parallel):\n%s", diff)
	}
}

func TestSumVisitsInAscendingOrderAndFailsFast(t *testing.T) {
	d := sumDetector(t, 1)
	boom := errors.New("boom")

	var (
		visited []Mode
		calls   atomic.Int32
	)

	_, err := d.Sum(AllDegrees, func(s *series.Series, l, m int, _ float64) (*series.Series, error) {
		calls.Add(1)
		visited = append(visited, Mode{l, m})

		if l == 3 && m == 0 {
			return nil, boom
		}

		return s, nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected visitor error, got %v", err)
	}

	// With one worker modes run in order and nothing runs after the failure.
	want := []Mode{{2, -2}, {2, -1}, {2, 0}, {2, 1}, {2, 2}, {3, -3}, {3, -2}, {3, -1}, {3, 0}}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Fatalf("visit order mismatch (-want +got):\n%s", diff)
	}

	if int(calls.Load()) != len(want) {
		t.Fatalf("calls=%d want %d", calls.Load(), len(want))
	}
}
