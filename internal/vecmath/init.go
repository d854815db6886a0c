package vecmath

// This file imports the kernel packages to trigger their init() functions,
// which register implementations with the global registry. The blocked
// kernels are portable Go, so every architecture carries the full set;
// CPU feature detection decides which one runs.

import (
	// Import registry package
	_ "github.com/myd7349/liquid-dsp/internal/vecmath/registry"

	// Scalar implementations (reference fallback)
	_ "github.com/myd7349/liquid-dsp/internal/vecmath/arch/generic"

	// Lane-blocked implementations
	_ "github.com/myd7349/liquid-dsp/internal/vecmath/arch/lanes16"
	_ "github.com/myd7349/liquid-dsp/internal/vecmath/arch/lanes4"
	_ "github.com/myd7349/liquid-dsp/internal/vecmath/arch/lanes8"
)
