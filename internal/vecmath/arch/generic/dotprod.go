// Package generic provides the scalar (pure Go, non-blocked) dot-product
// kernels. They are the baseline fallback when no vector register class is
// available and the semantic reference for every blocked kernel.
package generic

// DotInterleaved computes the dot product of a duplicated coefficient buffer
// against an interleaved re/im sample buffer: both slices hold 2n float32
// values, even indices carry real terms, odd indices imaginary terms.
// Returns (0, 0) for empty input.
func DotInterleaved(h, x []float32) (re, im float32) {
	n := len(x)
	for i := 0; i+1 < n; i += 2 {
		re += h[i] * x[i]
		im += h[i+1] * x[i+1]
	}
	return re, im
}

// DotInterleaved4 computes the same result as DotInterleaved with the loop
// unrolled by four complex samples (eight reals) per pass. The remainder is
// handled one pair at a time. The result may differ from DotInterleaved only
// in floating-point summation order.
func DotInterleaved4(h, x []float32) (re, im float32) {
	n := len(x)

	// t = 8*floor(n/8)
	t := n &^ 7

	i := 0
	for ; i < t; i += 8 {
		re += h[i]*x[i] + h[i+2]*x[i+2] + h[i+4]*x[i+4] + h[i+6]*x[i+6]
		im += h[i+1]*x[i+1] + h[i+3]*x[i+3] + h[i+5]*x[i+5] + h[i+7]*x[i+7]
	}

	for ; i+1 < n; i += 2 {
		re += h[i] * x[i]
		im += h[i+1] * x[i+1]
	}
	return re, im
}

// DotReal returns the dot product of a and b: sum(a[i] * b[i]).
// Slices must have equal length. Returns 0 for empty input.
func DotReal(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// DotReal4 computes the same result as DotReal with the loop unrolled by
// four terms per pass and a one-at-a-time remainder.
func DotReal4(a, b []float32) float32 {
	n := len(a)

	// t = 4*floor(n/4)
	t := n &^ 3

	var sum float32
	i := 0
	for ; i < t; i += 4 {
		sum += a[i]*b[i] + a[i+1]*b[i+1] + a[i+2]*b[i+2] + a[i+3]*b[i+3]
	}

	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
