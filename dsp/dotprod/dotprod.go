package dotprod

import (
	"errors"
	"fmt"
	"io"
	"unsafe"

	"github.com/myd7349/liquid-dsp/internal/vecmath"
)

// Errors returned by lifecycle operations.
var (
	ErrNilObject = errors.New("dotprod: object cannot be nil")
)

// wideThreshold is the coefficient count at which Execute switches from the
// single-accumulator kernel to the four-way unrolled kernel. Below it the
// wide kernel's fixed reduction overhead outweighs its latency hiding; the
// value follows the empirical crossover of the reference implementation.
const wideThreshold = 128

// Complex is a structured dot product of a fixed real coefficient vector
// against complex samples.
//
// The coefficients are stored duplicated in an interleaved, 64-byte-aligned
// buffer so a single vector multiply applies one real coefficient to both
// the real and imaginary lane of an interleaved complex sample. The object
// is immutable after creation.
type Complex struct {
	n int
	h []float32 // length 2n, aligned; h[2k] == h[2k+1] == k-th stored coefficient
}

// NewComplex creates a structured dot product from the given coefficients.
// The slice is copied; an empty slice yields a valid object whose Execute
// always returns 0.
func NewComplex(c []float32) *Complex {
	return newComplex(c, false)
}

// NewComplexReversed creates a structured dot product with the coefficients
// stored in reverse order, as needed for convolution-style (matched filter)
// application.
func NewComplexReversed(c []float32) *Complex {
	return newComplex(c, true)
}

func newComplex(c []float32, reversed bool) *Complex {
	n := len(c)
	q := &Complex{
		n: n,
		h: vecmath.AlignedFloat32(2 * n),
	}

	// set coefficients, repeated:
	//  h = { c[0], c[0], c[1], c[1], ... c[n-1], c[n-1] }
	for i := range n {
		k := i
		if reversed {
			k = n - 1 - i
		}
		q.h[2*i] = c[k]
		q.h[2*i+1] = c[k]
	}
	return q
}

// Recreate closes q and returns a new object built from c. The old handle
// must not be used after the call.
func (q *Complex) Recreate(c []float32) *Complex {
	q.Close()
	return NewComplex(c)
}

// RecreateReversed closes q and returns a new object with c stored in
// reverse order. The old handle must not be used after the call.
func (q *Complex) RecreateReversed(c []float32) *Complex {
	q.Close()
	return NewComplexReversed(c)
}

// Copy returns an independent deep copy of q: a fresh aligned buffer with
// identical contents, sharing no memory with the original.
func (q *Complex) Copy() (*Complex, error) {
	if q == nil {
		return nil, ErrNilObject
	}
	cp := &Complex{
		n: q.n,
		h: vecmath.AlignedFloat32(len(q.h)),
	}
	copy(cp.h, q.h)
	return cp, nil
}

// Close releases the coefficient buffer. A closed object behaves like one
// created from an empty coefficient vector; closing twice is a no-op.
func (q *Complex) Close() {
	if q == nil {
		return
	}
	q.n = 0
	q.h = nil
}

// Len returns the coefficient count.
func (q *Complex) Len() int {
	return q.n
}

// Coefficients returns a copy of the coefficients in stored order (reversed
// for objects created with NewComplexReversed), with the interleaved
// duplicates collapsed.
func (q *Complex) Coefficients() []float32 {
	c := make([]float32, q.n)
	for i := range q.n {
		c[i] = q.h[2*i]
	}
	return c
}

// Execute computes the dot product of the stored coefficients against the
// first Len() samples of x. It allocates nothing and does not mutate the
// object. Panics if len(x) < Len(); a zero-length object returns 0 without
// touching x.
func (q *Complex) Execute(x []complex64) complex64 {
	if q.n == 0 {
		return 0
	}
	x = x[:q.n]

	// view the complex samples as a flat re/im float32 array
	xf := unsafe.Slice((*float32)(unsafe.Pointer(&x[0])), 2*q.n)

	var re, im float32
	if q.n < wideThreshold {
		re, im = vecmath.DotInterleaved(q.h, xf)
	} else {
		re, im = vecmath.DotInterleaved4(q.h, xf)
	}
	return complex(re, im)
}

// Dump writes a human-readable listing of the stored coefficients to w,
// skipping the odd buffer entries (duplicates of the interleaved layout).
// Diagnostic only.
func (q *Complex) Dump(w io.Writer) {
	fmt.Fprintf(w, "%s\n", q)
	for i := range q.n {
		fmt.Fprintf(w, "  %3d : %12.9f\n", i, q.h[2*i])
	}
}

// String returns a one-line summary naming the kernel set in use.
func (q *Complex) String() string {
	return fmt.Sprintf("dotprod.Complex [%s, %d coefficients]", vecmath.Implementation(), q.n)
}
