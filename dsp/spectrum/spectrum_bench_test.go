package spectrum

import (
	"testing"
)

func BenchmarkFFT(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"1K-plan", 1024},
		{"1000-bluestein", 1000},
		{"4K-plan", 4096},
		{"4001-bluestein", 4001},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			inData := make([]complex128, testCase.size)
			for i := range inData {
				inData[i] = complex(float64(i)/10.0, float64(testCase.size-i)/10.0)
			}

			b.SetBytes(int64(testCase.size * 16)) // complex128 = 16 bytes
			b.ResetTimer()

			for range b.N {
				_, _ = FFT(inData)
			}
		})
	}
}

func BenchmarkPower(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"256", 256},
		{"4K", 4096},
		{"16K", 16384},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			inData := make([]complex128, testCase.size)
			for i := range inData {
				inData[i] = complex(float64(i)/10.0, float64(testCase.size-i)/10.0)
			}

			b.SetBytes(int64(testCase.size * 16))
			b.ResetTimer()

			for range b.N {
				_ = Power(inData)
			}
		})
	}
}
