package waves

import (
	"errors"
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/cwbudde/algo-waves/dsp/series"
	"github.com/cwbudde/algo-waves/internal/testutil"
)

const (
	testSamples = 256
	testDt      = 0.125
)

// binOmega returns the angular frequency of FFT bin k on the test grid.
func binOmega(k int) float64 {
	return 2 * math.Pi * float64(k) / (testSamples * testDt)
}

func phasorSeries(t *testing.T, omega float64, amp complex128) *series.Series {
	t.Helper()

	ts := testutil.UniformTimes(0, testDt, testSamples)

	s, err := series.New(ts, testutil.Phasor(ts, omega, amp))
	if err != nil {
		t.Fatalf("series.New: %v", err)
	}

	return s
}

func TestIntegrateSinusoidAnalytic(t *testing.T) {
	tests := []struct {
		name  string
		omega float64
		order int
	}{
		{name: "positive single", omega: binOmega(8), order: 1},
		{name: "negative single", omega: binOmega(-12), order: 1},
		{name: "positive double", omega: binOmega(8), order: 2},
		{name: "negative double", omega: binOmega(-12), order: 2},
		{name: "triple", omega: binOmega(20), order: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amp := complex(1.5, -0.5)
			s := phasorSeries(t, tt.omega, amp)

			got, err := FixedFrequencyIntegrate(s, 8, tt.order)
			if err != nil {
				t.Fatalf("Integrate: %v", err)
			}

			// ∫ e^{iωt} = e^{iωt}/(iω), applied order times.
			factor := cpow(complex(0, -1/tt.omega), tt.order)
			want := testutil.Phasor(s.Times(), tt.omega, amp*factor)

			testutil.RequireComplexNearlyEqual(t, got.Values(), want, 1e-10)
		})
	}
}

func TestIntegrateRealSine(t *testing.T) {
	ts := testutil.UniformTimes(0, testDt, testSamples)
	omega := binOmega(5)

	y := make([]float64, len(ts))
	for i, v := range ts {
		y[i] = math.Sin(omega * v)
	}

	s, err := series.NewReal(ts, y)
	if err != nil {
		t.Fatalf("NewReal: %v", err)
	}

	got, err := FixedFrequencyIntegrate(s, 10, 1)
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}

	want := make([]float64, len(ts))
	for i, v := range ts {
		want[i] = -math.Cos(omega*v) / omega
	}

	testutil.RequireSliceNearlyEqual(t, got.RealValues(), want, 1e-10)
	testutil.RequireSliceNearlyEqual(t, got.ImagValues(), make([]float64, len(ts)), 1e-10)
}

func TestIntegrateDoubleEqualsChainedSingle(t *testing.T) {
	ts := testutil.UniformTimes(0, testDt, testSamples)
	a := testutil.Phasor(ts, binOmega(6), 1)
	b := testutil.Phasor(ts, binOmega(-17), 0.25i)

	for i := range a {
		a[i] += b[i]
	}

	s, err := series.New(ts, a)
	if err != nil {
		t.Fatalf("series.New: %v", err)
	}

	double, err := FixedFrequencyIntegrate(s, 8, 2)
	if err != nil {
		t.Fatalf("Integrate order 2: %v", err)
	}

	once, err := FixedFrequencyIntegrate(s, 8, 1)
	if err != nil {
		t.Fatalf("Integrate order 1: %v", err)
	}

	twice, err := FixedFrequencyIntegrate(once, 8, 1)
	if err != nil {
		t.Fatalf("Integrate chained: %v", err)
	}

	testutil.RequireComplexNearlyEqual(t, double.Values(), twice.Values(), 1e-10)
}

func TestIntegrateRemovesDC(t *testing.T) {
	omega := binOmega(9)
	s := phasorSeries(t, omega, 1)
	withDC := s.Map(func(v complex128) complex128 { return v + 3 - 2i })

	got, err := FixedFrequencyIntegrate(withDC, 8, 1)
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}

	want := testutil.Phasor(s.Times(), omega, complex(0, -1/omega))
	testutil.RequireComplexNearlyEqual(t, got.Values(), want, 1e-10)

	// A constant integrates to nothing at all.
	dc := s.Map(func(complex128) complex128 { return 7 })

	flat, err := FixedFrequencyIntegrate(dc, 8, 2)
	if err != nil {
		t.Fatalf("Integrate constant: %v", err)
	}

	if peak := testutil.MaxAbs(flat.Values()); peak > 1e-10 {
		t.Fatalf("integrated constant has amplitude %g", peak)
	}
}

func TestIntegrateBelowCutoffUsesFloor(t *testing.T) {
	omega := binOmega(-1)
	pcut := 4.0
	omega0 := 2 * math.Pi / pcut

	if math.Abs(omega) >= omega0 {
		t.Fatalf("test frequency %g not below floor %g", omega, omega0)
	}

	s := phasorSeries(t, omega, 1)

	got, err := FixedFrequencyIntegrate(s, pcut, 1)
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}

	// sign(ω)/(i ω₀) with sign = -1.
	want := testutil.Phasor(s.Times(), omega, complex(0, 1/omega0))
	testutil.RequireComplexNearlyEqual(t, got.Values(), want, 1e-10)
}

func TestIntegrateValidation(t *testing.T) {
	s := phasorSeries(t, binOmega(3), 1)

	single, err := series.New([]float64{0}, []complex128{1})
	if err != nil {
		t.Fatalf("series.New: %v", err)
	}

	tests := []struct {
		name  string
		s     *series.Series
		pcut  float64
		order int
		want  error
	}{
		{name: "zero cutoff", s: s, pcut: 0, order: 1, want: ErrInvalidCutoff},
		{name: "negative cutoff", s: s, pcut: -1, order: 1, want: ErrInvalidCutoff},
		{name: "NaN cutoff", s: s, pcut: math.NaN(), order: 1, want: ErrInvalidCutoff},
		{name: "zero order", s: s, pcut: 1, order: 0, want: ErrInvalidOrder},
		{name: "single sample", s: single, pcut: 1, order: 1, want: series.ErrTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FixedFrequencyIntegrate(tt.s, tt.pcut, tt.order); !errors.Is(err, tt.want) {
				t.Fatalf("err=%v want %v", err, tt.want)
			}
		})
	}
}

func TestIntegrateIrregularWarnsAndKeepsGrid(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	in := NewIntegrator(zap.New(core))

	ts := make([]float64, 64)
	for i := range ts {
		ts[i] = 0.1*float64(i) + 0.02*math.Sin(float64(i))
	}

	s, err := series.New(ts, testutil.Phasor(ts, 2, 1))
	if err != nil {
		t.Fatalf("series.New: %v", err)
	}

	got, err := in.Integrate(s, 3, 1)
	if err != nil {
		t.Fatalf("Integrate: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, got.Times(), ts, 0)

	entries := logs.FilterMessageSnippet("Irregularly sampled").All()
	if len(entries) != 1 {
		t.Fatalf("expected one warning, got %d", len(entries))
	}

	if n := entries[0].ContextMap()["samples"]; n != int64(64) {
		t.Fatalf("samples field=%v want 64", n)
	}

	// Regular input is silent.
	if _, err := in.Integrate(phasorSeries(t, binOmega(3), 1), 3, 1); err != nil {
		t.Fatalf("Integrate regular: %v", err)
	}

	if logs.Len() != 1 {
		t.Fatalf("regular input logged %d entries", logs.Len()-1)
	}
}
