package window

import (
	"fmt"
	"sort"
	"strings"
)

type shape struct {
	name string
	typ  Type
	at   func(x, alpha float64) float64
	// alpha is the default shape parameter; validAlpha is nil for windows
	// without one.
	alpha      float64
	validAlpha func(float64) bool
}

// shapes is the closed set of windows reachable by Type and by name.
var shapes = []shape{
	{name: "rectangular", typ: TypeRectangular, at: rectangular},
	{name: "hann", typ: TypeHann, at: cosineSum(0.5, -0.5)},
	{name: "hamming", typ: TypeHamming, at: cosineSum(0.54, -0.46)},
	{name: "blackman", typ: TypeBlackman, at: cosineSum(0.42, -0.5, 0.08)},
	{name: "blackman-harris", typ: TypeBlackmanHarris4Term, at: cosineSum(0.35875, -0.48829, 0.14128, -0.01168)},
	{name: "flat-top", typ: TypeFlatTop, at: cosineSum(0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368)},
	{
		name: "kaiser", typ: TypeKaiser, at: kaiser, alpha: 8.6,
		validAlpha: func(a float64) bool { return a >= 0 },
	},
	{
		name: "tukey", typ: TypeTukey, at: tukey, alpha: 0.5,
		validAlpha: func(a float64) bool { return a >= 0 && a <= 1 },
	},
	{name: "triangle", typ: TypeTriangle, at: triangle},
	{name: "cosine", typ: TypeCosine, at: sine},
	{name: "welch", typ: TypeWelch, at: welch},
	{
		name: "gauss", typ: TypeGauss, at: gauss, alpha: 2.5,
		validAlpha: func(a float64) bool { return a > 0 },
	},
}

func shapeOf(t Type) (shape, bool) {
	if t < 0 || int(t) >= len(shapes) {
		return shape{}, false
	}
	return shapes[t], true
}

// Lookup resolves a registered window name (case-insensitive) to its Type.
func Lookup(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, sh := range shapes {
		if sh.name == key {
			return sh.typ, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Names returns all registered window names in sorted order.
func Names() []string {
	out := make([]string, len(shapes))
	for i, sh := range shapes {
		out[i] = sh.name
	}
	sort.Strings(out)
	return out
}

// String returns the registered name of t.
func (t Type) String() string {
	if sh, ok := shapeOf(t); ok {
		return sh.name
	}
	return fmt.Sprintf("window.Type(%d)", int(t))
}

// GenerateByName is [Lookup] followed by [Generate].
func GenerateByName(name string, length int, opts ...Option) ([]float64, error) {
	t, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return Generate(t, length, opts...)
}
