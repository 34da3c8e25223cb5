package sh

import (
	"fmt"

	"github.com/golang/geo/r3"
	"github.com/tphakala/go-sh/internal/basis"
	"github.com/tphakala/go-sh/internal/engine"
)

// Color is a linear RGB triplet.
type Color = engine.Color

// Image is an equirectangular environment map. Row y covers polar angles
// [π·y/H, π·(y+1)/H); column x covers azimuths [2π·x/W, 2π·(x+1)/W).
type Image = engine.Image

// RandomSource supplies uniform values in [0, 1). *math/rand/v2.Rand
// satisfies it.
type RandomSource = engine.RandomSource

// Func is a scalar function on the sphere.
type Func = engine.Func

// Direction is a unit vector on the sphere.
type Direction = r3.Vector

// Fit is the result of a sparse least-squares projection.
type Fit = engine.Fit

// Domain selects how sample directions are folded onto spherical angles.
type Domain = basis.Domain

const (
	// FullSphere maps directions onto theta in [0, π].
	FullSphere = basis.FullSphere

	// UpperHemisphere clamps directions below the horizon onto theta = π/2.
	UpperHemisphere = basis.UpperHemisphere
)

// ParseDomain converts "full" or "upper" to a Domain.
func ParseDomain(s string) (Domain, error) {
	d, ok := basis.ParseDomain(s)
	if !ok {
		return FullSphere, fmt.Errorf("%w: unknown domain %q", ErrInvalidConfig, s)
	}
	return d, nil
}

// CoefficientCount returns (order+1)², the number of coefficients of an
// expansion up to degree order.
func CoefficientCount(order int) int {
	return basis.CoefficientCount(order)
}

// Index returns the slot of the basis function (l, m), l(l+1)+m.
// The pair must satisfy -l <= m <= l.
func Index(l, m int) int {
	return basis.Index(l, m)
}

// DegreeOrder returns the (l, m) pair stored at slot idx.
func DegreeOrder(idx int) (l, m int) {
	return basis.DegreeOrder(idx)
}

// OrderFor returns the order of an expansion with count coefficients.
func OrderFor(count int) (int, error) {
	order, ok := basis.OrderFor(count)
	if !ok {
		return 0, fmt.Errorf("%w: %d is not a square", ErrInvalidCoefficients, count)
	}
	return order, nil
}

// Eval returns the real spherical harmonic Y_l^m at azimuth phi and polar
// angle theta.
func Eval(l, m int, phi, theta float64) float64 {
	return basis.Eval(l, m, phi, theta)
}

// ToSpherical converts a unit direction to azimuth phi in [0, 2π) and
// polar angle theta in [0, π].
func ToSpherical(d Direction) (phi, theta float64) {
	return basis.ToSpherical(d)
}

// FromSpherical returns the unit direction at azimuth phi and polar angle theta.
func FromSpherical(phi, theta float64) Direction {
	return basis.FromSpherical(phi, theta)
}

// EffectiveSamples returns the number of Monte-Carlo samples drawn when
// sampleCount are requested: the largest perfect square not above it.
func EffectiveSamples(sampleCount int) int {
	return engine.EffectiveSamples(sampleCount)
}

// Evaluate reconstructs the function described by coeffs at (phi, theta).
func Evaluate(coeffs []float64, phi, theta float64) (float64, error) {
	order, err := OrderFor(len(coeffs))
	if err != nil {
		return 0, err
	}
	return engine.Evaluate(order, coeffs, phi, theta), nil
}

// EvaluateColor reconstructs the color described by coeffs at (phi, theta).
func EvaluateColor(coeffs []Color, phi, theta float64) (Color, error) {
	order, err := OrderFor(len(coeffs))
	if err != nil {
		return Color{}, err
	}
	return engine.EvaluateColor(order, coeffs, phi, theta), nil
}
