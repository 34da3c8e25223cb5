package engine

import (
	"math"

	"github.com/tphakala/go-sh/internal/basis"
)

// ProjectDense integrates img against every basis function up to order and
// returns one color coefficient per basis function, in basis.Index order.
//
// Each pixel contributes color·Y_l^m·w with w = ΔφΔθ·sin θ, the solid angle
// of the pixel cell. The grid is uniform in angle, so ΔφΔθ is computed once
// from the image size.
//
// With workers > 1 the rows are split into contiguous spans accumulated
// concurrently; partial sums are added in span order, so the result is
// deterministic for a given worker count.
func ProjectDense(order int, img Image, workers int) []Color {
	n := basis.CoefficientCount(order)
	width, height := img.Width(), img.Height()
	pixelArea := (twoPi / float64(width)) * (math.Pi / float64(height))

	spans := splitSpans(height, workers)
	partials := make([][]Color, len(spans))

	runSpans(spans, func(part int, s span) {
		acc := make([]Color, n)
		var row []float64

		for y := s.lo; y < s.hi; y++ {
			theta := basis.PixelToTheta(y, height)
			weight := pixelArea * math.Sin(theta)

			for x := range width {
				phi := basis.PixelToPhi(x, width)
				c := img.Pixel(x, y)

				row = basis.EvalAll(order, phi, theta, row)
				for k, sh := range row {
					sw := sh * weight
					acc[k][channelR] += c[channelR] * sw
					acc[k][channelG] += c[channelG] * sw
					acc[k][channelB] += c[channelB] * sw
				}
			}
		}
		partials[part] = acc
	})

	coeffs := make([]Color, n)
	for _, acc := range partials {
		for k := range coeffs {
			coeffs[k] = coeffs[k].Add(acc[k])
		}
	}
	return coeffs
}
