package main

import (
	"fmt"
	"math"

	sh "github.com/tphakala/go-sh"
	"github.com/tphakala/go-sh/internal/config"
)

// sunDirection is the center of the "sun" integrand's lobe.
var sunDirection = sh.FromSpherical(sunPhi, sunTheta)

// integrand returns the built-in Monte-Carlo function with the given name.
// Every integrand is pure and safe for concurrent calls.
func integrand(name string) (sh.Func, error) {
	switch name {
	case config.FunctionConstant:
		return func(_, _ float64) float64 { return 1 }, nil

	case config.FunctionCosine:
		// clamped cosine lobe around +Z
		return func(_, theta float64) float64 {
			return math.Max(0, math.Cos(theta))
		}, nil

	case config.FunctionSky:
		return func(_, theta float64) float64 {
			return skyAmbient + skyZenith*math.Max(0, math.Cos(theta))
		}, nil

	case config.FunctionSun:
		return func(phi, theta float64) float64 {
			c := sh.FromSpherical(phi, theta).Dot(sunDirection)
			return math.Pow(math.Max(0, c), sunExponent)
		}, nil

	default:
		return nil, fmt.Errorf("unknown function %q", name)
	}
}
