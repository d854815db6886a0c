package lanes4

import (
	"github.com/myd7349/liquid-dsp/internal/vecmath/registry"
)

// init registers the 4-lane kernels with the vecmath registry.
//
// The 128-bit register class is the amd64 baseline (SSE2) and mandatory on
// ARMv8 (NEON), so these kernels run on essentially all supported hardware.
//
// Priority: 10 (preferred over generic, superseded by wider classes)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     "lanes4",
		Lanes:    lanes,
		Priority: 10,

		DotInterleaved:  DotInterleaved,
		DotInterleaved4: DotInterleaved4,
		DotReal:         DotReal,
		DotReal4:        DotReal4,
	})
}
