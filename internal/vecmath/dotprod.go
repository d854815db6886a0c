// Package vecmath selects and exposes the dot-product kernels.
//
// The kernel variants (scalar plus 4/8/16-lane blocked) live in the arch
// subpackages and register themselves with the registry; this package picks
// the widest variant the current CPU can drive and routes all calls to it.
package vecmath

import (
	"sync"

	"github.com/myd7349/liquid-dsp/internal/cpu"
	"github.com/myd7349/liquid-dsp/internal/vecmath/registry"
)

var (
	// dispatchEntry holds the kernel set selected for this process.
	dispatchEntry *registry.OpEntry

	// dispatchOnce ensures kernel selection runs exactly once.
	dispatchOnce sync.Once

	// dispatchMutex serializes access to dispatchOnce/dispatchEntry so tests
	// can reset the selection.
	dispatchMutex sync.Mutex
)

func initDispatch() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("vecmath: no dot-product implementation registered")
	}
	if entry.DotInterleaved == nil || entry.DotInterleaved4 == nil ||
		entry.DotReal == nil || entry.DotReal4 == nil {
		panic("vecmath: selected implementation missing kernels")
	}
	dispatchEntry = entry
}

func kernels() *registry.OpEntry {
	dispatchMutex.Lock()
	dispatchOnce.Do(initDispatch)
	entry := dispatchEntry
	dispatchMutex.Unlock()
	return entry
}

// resetDispatch clears the cached kernel selection so the next call re-runs
// the registry lookup. Tests use it together with cpu.SetForcedFeatures.
func resetDispatch() {
	dispatchMutex.Lock()
	dispatchOnce = sync.Once{}
	dispatchEntry = nil
	dispatchMutex.Unlock()
}

// Implementation returns the name of the kernel set selected for this
// process (e.g. "generic", "lanes8").
func Implementation() string {
	return kernels().Name
}

// DotInterleaved computes the dot product of a duplicated coefficient buffer
// against an interleaved re/im sample buffer using the single-accumulator
// kernel. Both slices hold 2n float32 values. Panics if lengths differ.
func DotInterleaved(h, x []float32) (re, im float32) {
	if len(h) != len(x) {
		panic("vecmath: slice length mismatch")
	}
	return kernels().DotInterleaved(h, x)
}

// DotInterleaved4 is the four-way unrolled variant of DotInterleaved,
// preferred for long coefficient vectors. Panics if lengths differ.
func DotInterleaved4(h, x []float32) (re, im float32) {
	if len(h) != len(x) {
		panic("vecmath: slice length mismatch")
	}
	return kernels().DotInterleaved4(h, x)
}

// DotReal returns the dot product of a and b: sum(a[i] * b[i]).
// Panics if lengths differ.
func DotReal(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("vecmath: slice length mismatch")
	}
	return kernels().DotReal(a, b)
}

// DotReal4 is the four-way unrolled variant of DotReal.
// Panics if lengths differ.
func DotReal4(a, b []float32) float32 {
	if len(a) != len(b) {
		panic("vecmath: slice length mismatch")
	}
	return kernels().DotReal4(a, b)
}
