// Package cpu provides CPU feature detection for dot-product kernel selection.
//
// This package detects SIMD instruction set extensions (SSE2, AVX, AVX2,
// AVX-512, NEON) available on the current processor and maps them onto the
// float32 lane width the kernel packages are written for.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls.
package cpu

import (
	"sync"
)

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2   bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX    bool // Advanced Vector Extensions
	HasAVX2   bool // Advanced Vector Extensions 2
	HasAVX512 bool // Advanced Vector Extensions 512

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Control flags
	ForceGeneric bool // Disable all SIMD-class kernels (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent
// calls. This function is thread-safe and can be called concurrently from
// multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// VectorLanes returns the widest float32 lane count the given features can
// drive: 16 for the 512-bit register class (AVX-512), 8 for the 256-bit
// class (AVX/AVX2), 4 for the 128-bit class (SSE2/NEON), and 0 when only
// scalar code should run.
func VectorLanes(f Features) int {
	if f.ForceGeneric {
		return 0
	}
	switch {
	case f.HasAVX512:
		return 16
	case f.HasAVX2 || f.HasAVX:
		return 8
	case f.HasSSE2 || f.HasNEON:
		return 4
	}
	return 0
}

// Supports returns true if the given CPU features can drive a kernel written
// for the specified float32 lane count. Lane count 0 denotes scalar kernels,
// which every CPU supports.
func Supports(f Features, lanes int) bool {
	if lanes == 0 {
		return true
	}
	return VectorLanes(f) >= lanes
}
