package dotprod

import (
	"fmt"
	"io"

	"github.com/myd7349/liquid-dsp/internal/vecmath"
)

// Real is a structured dot product of a fixed real coefficient vector
// against real samples.
//
// Real samples need no lane interleaving, so the coefficients are stored
// once in a 64-byte-aligned buffer. Lifecycle and dispatch mirror [Complex].
type Real struct {
	n int
	h []float32 // length n, aligned
}

// NewReal creates a structured real dot product from the given coefficients.
// The slice is copied.
func NewReal(c []float32) *Real {
	return newReal(c, false)
}

// NewRealReversed creates a structured real dot product with the
// coefficients stored in reverse order.
func NewRealReversed(c []float32) *Real {
	return newReal(c, true)
}

func newReal(c []float32, reversed bool) *Real {
	n := len(c)
	q := &Real{
		n: n,
		h: vecmath.AlignedFloat32(n),
	}
	for i := range n {
		k := i
		if reversed {
			k = n - 1 - i
		}
		q.h[i] = c[k]
	}
	return q
}

// Recreate closes q and returns a new object built from c. The old handle
// must not be used after the call.
func (q *Real) Recreate(c []float32) *Real {
	q.Close()
	return NewReal(c)
}

// RecreateReversed closes q and returns a new object with c stored in
// reverse order. The old handle must not be used after the call.
func (q *Real) RecreateReversed(c []float32) *Real {
	q.Close()
	return NewRealReversed(c)
}

// Copy returns an independent deep copy of q.
func (q *Real) Copy() (*Real, error) {
	if q == nil {
		return nil, ErrNilObject
	}
	cp := &Real{
		n: q.n,
		h: vecmath.AlignedFloat32(q.n),
	}
	copy(cp.h, q.h)
	return cp, nil
}

// Close releases the coefficient buffer. A closed object behaves like one
// created from an empty coefficient vector; closing twice is a no-op.
func (q *Real) Close() {
	if q == nil {
		return
	}
	q.n = 0
	q.h = nil
}

// Len returns the coefficient count.
func (q *Real) Len() int {
	return q.n
}

// Coefficients returns a copy of the coefficients in stored order.
func (q *Real) Coefficients() []float32 {
	c := make([]float32, q.n)
	copy(c, q.h)
	return c
}

// Execute computes the dot product of the stored coefficients against the
// first Len() samples of x. Panics if len(x) < Len(); a zero-length object
// returns 0 without touching x.
func (q *Real) Execute(x []float32) float32 {
	if q.n == 0 {
		return 0
	}
	x = x[:q.n]

	if q.n < wideThreshold {
		return vecmath.DotReal(q.h, x)
	}
	return vecmath.DotReal4(q.h, x)
}

// Dump writes a human-readable listing of the stored coefficients to w.
// Diagnostic only.
func (q *Real) Dump(w io.Writer) {
	fmt.Fprintf(w, "%s\n", q)
	for i := range q.n {
		fmt.Fprintf(w, "  %3d : %12.9f\n", i, q.h[i])
	}
}

// String returns a one-line summary naming the kernel set in use.
func (q *Real) String() string {
	return fmt.Sprintf("dotprod.Real [%s, %d coefficients]", vecmath.Implementation(), q.n)
}
