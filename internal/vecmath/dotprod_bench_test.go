package vecmath

import (
	"testing"
)

// Benchmark sizes are complex sample counts; buffers hold 2n float32 values.
var benchSizes = []int{16, 64, 256, 1024, 4096, 16384}

func BenchmarkDotInterleaved(b *testing.B) {
	for _, ks := range allKernels {
		b.Run(ks.name, func(b *testing.B) {
			for _, n := range benchSizes {
				h := make([]float32, 2*n)
				x := make([]float32, 2*n)
				fillTestVectors(h, x)

				b.Run(sizeStr(n), func(b *testing.B) {
					b.SetBytes(int64(2 * n * 4 * 2)) // two float32 slices read
					for i := 0; i < b.N; i++ {
						_, _ = ks.interleaved(h, x)
					}
				})
			}
		})
	}
}

func BenchmarkDotInterleaved4(b *testing.B) {
	for _, ks := range allKernels {
		b.Run(ks.name, func(b *testing.B) {
			for _, n := range benchSizes {
				h := make([]float32, 2*n)
				x := make([]float32, 2*n)
				fillTestVectors(h, x)

				b.Run(sizeStr(n), func(b *testing.B) {
					b.SetBytes(int64(2 * n * 4 * 2))
					for i := 0; i < b.N; i++ {
						_, _ = ks.interleaved4(h, x)
					}
				})
			}
		})
	}
}

func BenchmarkDotReal(b *testing.B) {
	for _, ks := range allKernels {
		b.Run(ks.name, func(b *testing.B) {
			for _, n := range benchSizes {
				x := make([]float32, n)
				y := make([]float32, n)
				fillTestVectors(x, y)

				b.Run(sizeStr(n), func(b *testing.B) {
					b.SetBytes(int64(n * 4 * 2))
					for i := 0; i < b.N; i++ {
						_ = ks.real(x, y)
					}
				})
			}
		})
	}
}
