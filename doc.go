// Package sh projects functions defined on the sphere onto the real
// spherical harmonics basis.
//
// Three projectors are provided, each turning a different kind of input into
// the coefficients of an expansion up to a chosen maximum degree (the order):
//
//   - Dense: quadrature over every pixel of an equirectangular image.
//   - Monte-Carlo: stratified random sampling of an analytic function.
//   - Sparse: least-squares fit to values observed at scattered directions.
//
// An expansion of order n has (n+1)² coefficients. The coefficient of the
// basis function Y_l^m (0 <= l <= n, -l <= m <= l) is stored at [Index](l, m)
// = l(l+1)+m.
//
// # Quick Start
//
// One-shot projection of an image:
//
//	coeffs, err := sh.ProjectDense(2, img)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A reusable projector with parallel evaluation:
//
//	p, err := sh.New(&sh.Config{Order: 3, SampleCount: 10000, EnableParallel: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	rng := rand.New(rand.NewPCG(1, 2))
//	coeffs, err := p.MonteCarlo(rng, func(phi, theta float64) float64 {
//	    return math.Max(0, math.Cos(theta))
//	})
//
// # Conventions
//
// Angles are in radians. phi is the azimuth in [0, 2π) measured from +X
// towards +Y; theta is the polar angle in [0, π] measured from +Z. The basis
// is real, orthonormal over the sphere, and includes the Condon-Shortley
// phase. Directions are [Direction] values (r3.Vector from
// github.com/golang/geo) and are expected to be unit length.
//
// # Monte-Carlo Sample Counts
//
// The Monte-Carlo projector draws one jittered sample in each cell of a
// side×side grid with side = floor(√SampleCount). A count that is not a
// perfect square is silently reduced to side²; [EffectiveSamples] reports
// the count actually used.
//
// # Thread Safety
//
// A [Projector] holds only its configuration and is safe for concurrent
// use. The random source passed to [Projector.MonteCarlo] is only read on
// the calling goroutine; with parallelism enabled the integrand is called
// from several goroutines at once and must tolerate that.
package sh
