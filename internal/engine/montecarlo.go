package engine

import (
	"math"

	"github.com/tphakala/go-sh/internal/basis"
	"github.com/tphakala/go-sh/internal/simdops"
)

// sphereSample is one stratified direction in spherical coordinates.
type sphereSample struct {
	phi, theta float64
}

// StratifiedSide returns the side length of the square stratification grid
// used for sampleCount requested samples: floor(sqrt(sampleCount)).
func StratifiedSide(sampleCount int) int {
	if sampleCount <= 0 {
		return 0
	}
	side := int(math.Sqrt(float64(sampleCount)))
	for side*side > sampleCount {
		side--
	}
	for (side+1)*(side+1) <= sampleCount {
		side++
	}
	return side
}

// EffectiveSamples returns how many samples ProjectMonteCarlo actually
// draws for sampleCount requested: the largest perfect square not above it.
func EffectiveSamples(sampleCount int) int {
	side := StratifiedSide(sampleCount)
	return side * side
}

// ProjectMonteCarlo estimates the projection of f onto every basis function
// up to order by stratified sampling of the sphere.
//
// The unit square is split into a side×side grid (side = floor(√sampleCount))
// and one jittered point is drawn per cell. Points map to the sphere with
// φ = 2πβ and θ = acos(2α-1), which is uniform in solid angle, so the
// estimator is Σ f·Y_l^m scaled by 4π/side². A request that is not a perfect
// square silently uses side² samples.
//
// All random values are drawn from rng on the calling goroutine, alpha
// before beta, row by row, before f is evaluated. The sequence consumed is
// therefore the same for any worker count. With workers > 1, f is called
// concurrently and must be safe for that.
func ProjectMonteCarlo(order, sampleCount int, rng RandomSource, f Func, workers int) []float64 {
	n := basis.CoefficientCount(order)
	coeffs := make([]float64, n)

	side := StratifiedSide(sampleCount)
	if side == 0 {
		return coeffs
	}
	samples := drawStratified(side, rng)

	spans := splitSpans(len(samples), workers)
	partials := make([][]float64, len(spans))

	runSpans(spans, func(part int, s span) {
		acc := make([]float64, n)
		var row []float64

		for _, smp := range samples[s.lo:s.hi] {
			v := f(smp.phi, smp.theta)
			row = basis.EvalAll(order, smp.phi, smp.theta, row)
			for k, sh := range row {
				acc[k] += v * sh
			}
		}
		partials[part] = acc
	})

	for _, acc := range partials {
		for k := range coeffs {
			coeffs[k] += acc[k]
		}
	}

	simdops.Default().Scale(coeffs, coeffs, sphereArea/float64(side*side))
	return coeffs
}

// drawStratified draws one jittered sample per cell of a side×side grid.
func drawStratified(side int, rng RandomSource) []sphereSample {
	samples := make([]sphereSample, 0, side*side)
	fside := float64(side)

	for t := range side {
		for p := range side {
			alpha := (float64(t) + rng.Float64()) / fside
			beta := (float64(p) + rng.Float64()) / fside

			samples = append(samples, sphereSample{
				phi:   twoPi * beta,
				theta: math.Acos(2*alpha - 1),
			})
		}
	}
	return samples
}
