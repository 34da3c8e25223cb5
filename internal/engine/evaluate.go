package engine

import (
	"github.com/tphakala/go-sh/internal/basis"
	"github.com/tphakala/go-sh/internal/simdops"
)

// Evaluate reconstructs Σ c_k·Y_k(phi, theta) for an expansion of the given
// order. len(coeffs) must be basis.CoefficientCount(order).
func Evaluate(order int, coeffs []float64, phi, theta float64) float64 {
	row := basis.EvalAll(order, phi, theta, nil)
	return simdops.Default().DotProduct(row, coeffs)
}

// EvaluateColor is Evaluate for color coefficients.
func EvaluateColor(order int, coeffs []Color, phi, theta float64) Color {
	row := basis.EvalAll(order, phi, theta, nil)

	var c Color
	for k, sh := range row {
		c = c.Add(coeffs[k].Scale(sh))
	}
	return c
}
