package lanes8

import (
	"github.com/myd7349/liquid-dsp/internal/vecmath/registry"
)

// init registers the 8-lane kernels with the vecmath registry.
//
// The 256-bit register class is available on Intel Sandy Bridge (2011+,
// AVX) and AMD Bulldozer (2011+).
//
// Priority: 20 (preferred over lanes4 and generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     "lanes8",
		Lanes:    lanes,
		Priority: 20,

		DotInterleaved:  DotInterleaved,
		DotInterleaved4: DotInterleaved4,
		DotReal:         DotReal,
		DotReal4:        DotReal4,
	})
}
