package sh

// Expansion limits
const (
	// MaxOrder is the highest degree accepted by New and the one-shot
	// helpers. Normalization factorials overflow past degree 85.
	MaxOrder = 32

	minOrder = 0
)

// Sampling constants
const (
	minSampleCount = 1 // Monte-Carlo needs at least one stratum
	autoWorkers    = 0 // Workers value selecting runtime.GOMAXPROCS(0)
)

// Image constants
const (
	minImageSize = 1 // smallest width or height of a projectable image
)
