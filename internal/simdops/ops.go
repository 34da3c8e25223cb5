// Package simdops routes the vector kernels used by the projectors to
// github.com/tphakala/simd, which selects AVX2/SSE/NEON code paths at runtime.
package simdops

import (
	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated float64 operations.
// Function pointers let tests and benchmarks swap in reference kernels.
type Ops struct {
	// DotProduct returns Σ a[i]*b[i] over the shorter of the two slices.
	DotProduct func(a, b []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)
}

var ops64 = Ops{
	DotProduct: f64.DotProduct,
	Scale:      f64.Scale,
}

// Default returns the package-wide float64 operations.
func Default() *Ops {
	return &ops64
}

// Info describes the instruction set selected by the simd package.
func Info() string {
	return cpu.Info()
}
