package vecmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Test helper functions shared across all test files

// closeEnough32 compares two float32 values with a relative tolerance loose
// enough to cover summation-order differences between kernels on long
// vectors.
func closeEnough32(a, b float32) bool {
	const epsilon = 1e-4
	if a == b {
		return true
	}
	diff := math32.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < epsilon
	}
	return diff/math32.Max(math32.Abs(a), math32.Abs(b)) < epsilon
}

func sizeStr(n int) string {
	return fmt.Sprintf("n=%d", n)
}

// fillTestVectors writes deterministic, positive-biased data so the dot
// product is well conditioned (no catastrophic cancellation between terms).
func fillTestVectors(h, x []float32) {
	for i := range h {
		h[i] = float32((i*37)%113)*0.0625 + 0.125
	}
	for i := range x {
		x[i] = float32((i*53)%97)*0.03125 + 0.25
	}
}

// scalar references

func dotInterleavedRef(h, x []float32) (re, im float32) {
	for i := 0; i+1 < len(x); i += 2 {
		re += h[i] * x[i]
		im += h[i+1] * x[i+1]
	}
	return re, im
}

func dotRealRef(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
