package dotprod

// Direct computes the dot product sum(c[i] * x[i]) with an ordinary
// sequential multiply-accumulate. It is the semantic reference every
// structured kernel must agree with within floating-point tolerance.
// len(x) must be at least len(c).
func Direct(c []float32, x []complex64) complex64 {
	var re, im float32
	for i, h := range c {
		re += h * real(x[i])
		im += h * imag(x[i])
	}
	return complex(re, im)
}

// Direct4 computes the same result as Direct with the loop unrolled in
// groups of four terms and a one-at-a-time remainder. It may differ from
// Direct only in floating-point summation order, not in mathematical result.
func Direct4(c []float32, x []complex64) complex64 {
	n := len(c)

	// t = 4*floor(n/4)
	t := n &^ 3

	var re, im float32
	i := 0
	for ; i < t; i += 4 {
		re += c[i]*real(x[i]) + c[i+1]*real(x[i+1]) +
			c[i+2]*real(x[i+2]) + c[i+3]*real(x[i+3])
		im += c[i]*imag(x[i]) + c[i+1]*imag(x[i+1]) +
			c[i+2]*imag(x[i+2]) + c[i+3]*imag(x[i+3])
	}

	for ; i < n; i++ {
		re += c[i] * real(x[i])
		im += c[i] * imag(x[i])
	}
	return complex(re, im)
}

// DirectReal computes the real dot product sum(c[i] * x[i]) with an
// ordinary sequential multiply-accumulate. len(x) must be at least len(c).
func DirectReal(c, x []float32) float32 {
	var sum float32
	for i, h := range c {
		sum += h * x[i]
	}
	return sum
}

// DirectReal4 computes the same result as DirectReal with the loop unrolled
// in groups of four terms and a one-at-a-time remainder.
func DirectReal4(c, x []float32) float32 {
	n := len(c)

	t := n &^ 3

	var sum float32
	i := 0
	for ; i < t; i += 4 {
		sum += c[i]*x[i] + c[i+1]*x[i+1] + c[i+2]*x[i+2] + c[i+3]*x[i+3]
	}

	for ; i < n; i++ {
		sum += c[i] * x[i]
	}
	return sum
}
