package dotprod

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/myd7349/liquid-dsp/internal/vecmath"
)

func TestComplexKnownValues(t *testing.T) {
	cases := []struct {
		name     string
		c        []float32
		reversed bool
		x        []complex64
		want     complex64
	}{
		{
			// 1*(1,0) + 2*(0,1) + 3*(1,1) = (4, 5)
			name: "three taps",
			c:    []float32{1, 2, 3},
			x:    []complex64{complex(1, 0), complex(0, 1), complex(1, 1)},
			want: complex(4, 5),
		},
		{
			// symmetric coefficients: reversal is a no-op
			name:     "symmetric reversed",
			c:        []float32{0.5, 0.5},
			reversed: true,
			x:        []complex64{complex(2, 0), complex(4, 0)},
			want:     complex(3, 0),
		},
		{
			name:     "asymmetric reversed",
			c:        []float32{1, 0},
			reversed: true,
			x:        []complex64{complex(2, 3), complex(4, 5)},
			want:     complex(4, 5),
		},
		{
			name: "single tap",
			c:    []float32{2},
			x:    []complex64{complex(3, -4)},
			want: complex(6, -8),
		},
		{
			name: "empty",
			c:    nil,
			x:    nil,
			want: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var q *Complex
			if tc.reversed {
				q = NewComplexReversed(tc.c)
			} else {
				q = NewComplex(tc.c)
			}
			defer q.Close()

			if got := q.Execute(tc.x); !closeEnoughCmplx(got, tc.want) {
				t.Errorf("Execute() = %v, want %v", got, tc.want)
			}

			if !tc.reversed {
				if got := Direct(tc.c, tc.x); !closeEnoughCmplx(got, tc.want) {
					t.Errorf("Direct() = %v, want %v", got, tc.want)
				}
				if got := Direct4(tc.c, tc.x); !closeEnoughCmplx(got, tc.want) {
					t.Errorf("Direct4() = %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestComplexReferenceParity(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 15, 16, 17, 31, 32, 33, 63, 64, 65, 100, 127, 128, 129, 200, 255, 256, 500, 777, 1000}
	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			c, x := makeTestInput(n)

			q := NewComplex(c)
			defer q.Close()

			want := Direct(c, x)
			if got := q.Execute(x); !closeEnoughCmplx(got, want) {
				t.Fatalf("Execute() = %v, want %v", got, want)
			}
			if got := Direct4(c, x); !closeEnoughCmplx(got, want) {
				t.Fatalf("Direct4() = %v, want %v", got, want)
			}
		})
	}
}

// Results must be continuous across the narrow/wide kernel crossover.
func TestComplexDispatchBoundary(t *testing.T) {
	for _, n := range []int{wideThreshold - 1, wideThreshold, wideThreshold + 1} {
		t.Run(sizeStr(n), func(t *testing.T) {
			c, x := makeTestInput(n)

			q := NewComplex(c)
			defer q.Close()

			want := Direct(c, x)
			if got := q.Execute(x); !closeEnoughCmplx(got, want) {
				t.Fatalf("Execute() = %v, want %v", got, want)
			}
		})
	}
}

func TestComplexReversedEquivalence(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 17, 64, 129, 500} {
		t.Run(sizeStr(n), func(t *testing.T) {
			c, x := makeTestInput(n)

			rev := NewComplexReversed(c)
			defer rev.Close()
			fwd := NewComplex(reverse32(c))
			defer fwd.Close()

			got := rev.Execute(x)
			want := fwd.Execute(x)
			if got != want {
				t.Fatalf("reversed Execute() = %v, forward-of-reversed = %v", got, want)
			}
		})
	}
}

func TestComplexLayoutInvariant(t *testing.T) {
	c := []float32{1, 2, 3, 4, 5}

	q := NewComplex(c)
	defer q.Close()
	rev := NewComplexReversed(c)
	defer rev.Close()

	if len(q.h) != 2*len(c) {
		t.Fatalf("buffer length = %d, want %d", len(q.h), 2*len(c))
	}
	if !vecmath.Aligned(q.h) {
		t.Error("coefficient buffer not aligned")
	}
	for k := range len(c) {
		if q.h[2*k] != q.h[2*k+1] {
			t.Errorf("h[%d] = %v, h[%d] = %v, want duplicated", 2*k, q.h[2*k], 2*k+1, q.h[2*k+1])
		}
		if q.h[2*k] != c[k] {
			t.Errorf("forward h[%d] = %v, want %v", 2*k, q.h[2*k], c[k])
		}
		if rev.h[2*k] != c[len(c)-1-k] {
			t.Errorf("reversed h[%d] = %v, want %v", 2*k, rev.h[2*k], c[len(c)-1-k])
		}
	}
}

func TestComplexCopy(t *testing.T) {
	c, x := makeTestInput(50)

	q := NewComplex(c)
	defer q.Close()

	cp, err := q.Copy()
	if err != nil {
		t.Fatalf("Copy() error: %v", err)
	}
	defer cp.Close()

	if diff := cmp.Diff(q.Coefficients(), cp.Coefficients()); diff != "" {
		t.Fatalf("coefficient mismatch (-orig +copy):\n%s", diff)
	}
	if got, want := cp.Execute(x), q.Execute(x); got != want {
		t.Fatalf("copy Execute() = %v, original = %v", got, want)
	}

	// The copy must survive the original being closed.
	want := cp.Execute(x)
	q.Close()
	if got := cp.Execute(x); got != want {
		t.Fatalf("copy Execute() after original Close = %v, want %v", got, want)
	}
}

func TestComplexCopyNil(t *testing.T) {
	var q *Complex
	if _, err := q.Copy(); !errors.Is(err, ErrNilObject) {
		t.Fatalf("Copy() error = %v, want ErrNilObject", err)
	}
}

func TestComplexRecreate(t *testing.T) {
	_, x := makeTestInput(3)

	q := NewComplex([]float32{9, 9, 9})
	q = q.Recreate([]float32{1, 2, 3})
	defer q.Close()

	want := Direct([]float32{1, 2, 3}, x)
	if got := q.Execute(x); !closeEnoughCmplx(got, want) {
		t.Fatalf("Execute() after Recreate = %v, want %v", got, want)
	}

	q2 := q.RecreateReversed([]float32{1, 2, 3})
	defer q2.Close()
	if diff := cmp.Diff([]float32{3, 2, 1}, q2.Coefficients()); diff != "" {
		t.Fatalf("coefficients after RecreateReversed (-want +got):\n%s", diff)
	}
}

func TestComplexClose(t *testing.T) {
	q := NewComplex([]float32{1, 2, 3})

	q.Close()
	if q.Len() != 0 {
		t.Fatalf("Len() after Close = %d, want 0", q.Len())
	}
	if got := q.Execute(nil); got != 0 {
		t.Fatalf("Execute() after Close = %v, want 0", got)
	}
	q.Close() // second Close is a no-op
}

func TestComplexZeroLength(t *testing.T) {
	q := NewComplex(nil)
	defer q.Close()

	if got := q.Execute(nil); got != 0 {
		t.Fatalf("Execute() = %v, want 0", got)
	}
	if got := q.Execute([]complex64{complex(1, 1)}); got != 0 {
		t.Fatalf("Execute() with extra samples = %v, want 0", got)
	}
}

func TestComplexShortSamplesPanics(t *testing.T) {
	q := NewComplex([]float32{1, 2, 3})
	defer q.Close()

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on short sample slice")
		}
	}()
	q.Execute([]complex64{complex(1, 0)})
}

func TestComplexDump(t *testing.T) {
	q := NewComplex([]float32{1, 0.5, -0.25})
	defer q.Close()

	var sb strings.Builder
	q.Dump(&sb)
	out := sb.String()

	if !strings.Contains(out, "3 coefficients") {
		t.Errorf("Dump output missing coefficient count:\n%s", out)
	}
	if !strings.Contains(out, "0.500000000") {
		t.Errorf("Dump output missing coefficient value:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != 4 {
		t.Errorf("Dump output has %d lines, want 4:\n%s", got, out)
	}
}
