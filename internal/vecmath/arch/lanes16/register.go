package lanes16

import (
	"github.com/myd7349/liquid-dsp/internal/vecmath/registry"
)

// init registers the 16-lane kernels with the vecmath registry.
//
// The 512-bit register class requires AVX-512F, available on Intel Skylake-X
// (2017+) and AMD Zen 4 (2022+).
//
// Priority: 30 (highest - preferred whenever the CPU can drive it)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     "lanes16",
		Lanes:    lanes,
		Priority: 30,

		DotInterleaved:  DotInterleaved,
		DotInterleaved4: DotInterleaved4,
		DotReal:         DotReal,
		DotReal4:        DotReal4,
	})
}
