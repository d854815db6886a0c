package generic

import (
	"github.com/myd7349/liquid-dsp/internal/vecmath/registry"
)

// init registers the scalar kernels with the vecmath registry.
//
// They serve as the baseline fallback when no vector register class is
// available or when ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest - used only when no blocked alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     "generic",
		Lanes:    0,
		Priority: 0,

		DotInterleaved:  DotInterleaved,
		DotInterleaved4: DotInterleaved4,
		DotReal:         DotReal,
		DotReal4:        DotReal4,
	})
}
