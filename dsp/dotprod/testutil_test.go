package dotprod

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

func closeEnoughCmplx(a, b complex64) bool {
	return closeEnough32(real(a), real(b)) && closeEnough32(imag(a), imag(b))
}

func sizeStr(n int) string {
	return fmt.Sprintf("n=%d", n)
}

// makeTestInput returns deterministic, positive-biased coefficients and
// samples so the dot product is well conditioned.
func makeTestInput(n int) ([]float32, []complex64) {
	c := make([]float32, n)
	x := make([]complex64, n)
	for i := range n {
		c[i] = float32((i*37)%113)*0.0625 + 0.125
		x[i] = complex(
			float32((i*53)%97)*0.03125+0.25,
			float32((i*29)%89)*0.03125+0.5,
		)
	}
	return c, x
}

func reverse32(c []float32) []float32 {
	r := make([]float32, len(c))
	for i, v := range c {
		r[len(c)-1-i] = v
	}
	return r
}
