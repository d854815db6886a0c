// Package registry provides the implementation registry for dot-product kernels.
//
// The registry-based dispatch system allows multiple kernel variants
// (scalar, 4-lane, 8-lane, 16-lane) to coexist. The widest kernel the
// current CPU can drive is selected automatically at runtime.
//
// Lane-width-specific kernel packages register themselves via init()
// functions, and the vecmath package uses the registry to select the best
// implementation based on detected CPU features.
package registry

import (
	"sync"

	"github.com/myd7349/liquid-dsp/internal/cpu"
)

// OpEntry represents a registered kernel variant.
//
// Each entry carries the four dot-product kernels at one float32 lane width.
// All slots must be populated for an entry to be usable.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation
	// (e.g., "generic", "lanes8").
	Name string

	// Lanes is the float32 lane count the kernels are blocked for.
	// 0 denotes scalar kernels.
	Lanes int

	// Priority determines selection order when multiple compatible
	// implementations exist. Higher priority implementations are preferred.
	// Suggested priorities:
	//   - generic (scalar): 0
	//   - lanes4 (SSE2/NEON class): 10
	//   - lanes8 (AVX/AVX2 class): 20
	//   - lanes16 (AVX-512 class): 30
	Priority int

	// DotInterleaved computes the dot product of a duplicated coefficient
	// buffer against an interleaved re/im sample buffer using a single
	// accumulator. Both slices have length 2n.
	DotInterleaved func(h, x []float32) (re, im float32)

	// DotInterleaved4 is the four-way unrolled variant of DotInterleaved,
	// preferred for long coefficient vectors.
	DotInterleaved4 func(h, x []float32) (re, im float32)

	// DotReal computes the real dot product sum(a[i] * b[i]).
	DotReal func(a, b []float32) float32

	// DotReal4 is the four-way unrolled variant of DotReal.
	DotReal4 func(a, b []float32) float32
}

// OpRegistry manages the registration and lookup of kernel variants.
//
// Implementations register themselves via init() functions. At runtime,
// Lookup() selects the highest-priority implementation compatible with the
// current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by all vecmath operations.
var Global = &OpRegistry{}

// Register adds a kernel variant to the registry.
//
// This function is typically called from init() functions in lane-width-
// specific kernel packages. It is safe to call concurrently, but all
// registrations should complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best kernel variant for the given CPU features.
//
// Returns the highest-priority entry the CPU can drive. If no compatible
// implementations are found, returns nil (which should never happen if the
// scalar fallback is registered).
//
// This function is thread-safe and performs lazy sorting of entries on
// first call.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.Lanes) {
			return entry
		}
	}

	return nil // Should never happen if the scalar fallback is registered
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, ~4 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
