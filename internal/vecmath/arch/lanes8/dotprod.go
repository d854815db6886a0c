// Package lanes8 provides dot-product kernels blocked for 8 float32 lanes,
// the 256-bit register class (AVX/AVX2). The kernels are written as
// fixed-width array operations so the blocked body maps onto one vector
// register per accumulator.
package lanes8

const lanes = 8

// vec is one register's worth of float32 lanes.
type vec = [lanes]float32

// DotInterleaved computes the dot product of a duplicated coefficient buffer
// against an interleaved re/im sample buffer using a single accumulator
// register. Both slices hold 2n float32 values.
//
// Full blocks of 8 reals are multiplied element-wise and accumulated; the
// accumulator is then folded into separate even-lane (real) and odd-lane
// (imaginary) sums, and the remainder is handled one re/im pair at a time.
func DotInterleaved(h, x []float32) (re, im float32) {
	n := len(x)

	var sum vec

	// t = 8*floor(n/8)
	t := n &^ (lanes - 1)

	i := 0
	for ; i < t; i += lanes {
		hv := (*vec)(h[i:])
		xv := (*vec)(x[i:])
		for l := range lanes {
			sum[l] += hv[l] * xv[l]
		}
	}

	// fold down even/odd lanes into re/im sums
	for l := 0; l < lanes; l += 2 {
		re += sum[l]
		im += sum[l+1]
	}

	// cleanup (n is always even)
	for ; i+1 < n; i += 2 {
		re += h[i] * x[i]
		im += h[i+1] * x[i+1]
	}
	return re, im
}

// DotInterleaved4 is the four-way unrolled variant of DotInterleaved: each
// iteration issues four independent 8-lane load/multiply blocks (32 reals)
// into four accumulators, hiding load latency on long coefficient vectors.
// The accumulators are combined before the same even/odd fold and pair-wise
// remainder as DotInterleaved.
func DotInterleaved4(h, x []float32) (re, im float32) {
	n := len(x)

	var sum0, sum1, sum2, sum3 vec

	// t = 32*floor(n/32)
	t := n &^ (4*lanes - 1)

	i := 0
	for ; i < t; i += 4 * lanes {
		h0 := (*vec)(h[i:])
		h1 := (*vec)(h[i+lanes:])
		h2 := (*vec)(h[i+2*lanes:])
		h3 := (*vec)(h[i+3*lanes:])
		x0 := (*vec)(x[i:])
		x1 := (*vec)(x[i+lanes:])
		x2 := (*vec)(x[i+2*lanes:])
		x3 := (*vec)(x[i+3*lanes:])
		for l := range lanes {
			sum0[l] += h0[l] * x0[l]
			sum1[l] += h1[l] * x1[l]
			sum2[l] += h2[l] * x2[l]
			sum3[l] += h3[l] * x3[l]
		}
	}

	for l := range lanes {
		sum0[l] += sum1[l] + sum2[l] + sum3[l]
	}

	for l := 0; l < lanes; l += 2 {
		re += sum0[l]
		im += sum0[l+1]
	}

	for ; i+1 < n; i += 2 {
		re += h[i] * x[i]
		im += h[i+1] * x[i+1]
	}
	return re, im
}

// DotReal returns the dot product of a and b using a single accumulator
// register with full-lane reduction and a one-at-a-time remainder.
// Slices must have equal length.
func DotReal(a, b []float32) float32 {
	n := len(a)

	var sum vec

	t := n &^ (lanes - 1)

	i := 0
	for ; i < t; i += lanes {
		av := (*vec)(a[i:])
		bv := (*vec)(b[i:])
		for l := range lanes {
			sum[l] += av[l] * bv[l]
		}
	}

	var s float32
	for l := range lanes {
		s += sum[l]
	}

	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

// DotReal4 is the four-way unrolled variant of DotReal.
func DotReal4(a, b []float32) float32 {
	n := len(a)

	var sum0, sum1, sum2, sum3 vec

	t := n &^ (4*lanes - 1)

	i := 0
	for ; i < t; i += 4 * lanes {
		a0 := (*vec)(a[i:])
		a1 := (*vec)(a[i+lanes:])
		a2 := (*vec)(a[i+2*lanes:])
		a3 := (*vec)(a[i+3*lanes:])
		b0 := (*vec)(b[i:])
		b1 := (*vec)(b[i+lanes:])
		b2 := (*vec)(b[i+2*lanes:])
		b3 := (*vec)(b[i+3*lanes:])
		for l := range lanes {
			sum0[l] += a0[l] * b0[l]
			sum1[l] += a1[l] * b1[l]
			sum2[l] += a2[l] * b2[l]
			sum3[l] += a3[l] * b3[l]
		}
	}

	var s float32
	for l := range lanes {
		s += sum0[l] + sum1[l] + sum2[l] + sum3[l]
	}

	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}
