package basis

import (
	"math"

	"github.com/tphakala/go-sh/internal/mathutil"
)

// Normalization returns K(l, m) = sqrt((2l+1)(l-|m|)! / (4π (l+|m|)!)).
func Normalization(l, m int) float64 {
	am := abs(m)
	return math.Sqrt(float64(2*l+1) * mathutil.Factorial(l-am) /
		(fourPi * mathutil.Factorial(l+am)))
}

// Eval returns the real spherical harmonic Y_l^m at azimuth phi and polar
// angle theta (radians):
//
//	m > 0:  √2 K(l,m) cos(m φ)   P_l^m(cos θ)
//	m < 0:  √2 K(l,m) sin(|m| φ) P_l^|m|(cos θ)
//	m = 0:     K(l,0)            P_l^0(cos θ)
//
// Nothing is cached between calls.
func Eval(l, m int, phi, theta float64) float64 {
	klm := Normalization(l, m)
	x := math.Cos(theta)

	switch {
	case m > 0:
		return math.Sqrt2 * klm * math.Cos(float64(m)*phi) * mathutil.Legendre(l, m, x)
	case m < 0:
		return math.Sqrt2 * klm * math.Sin(float64(-m)*phi) * mathutil.Legendre(l, -m, x)
	default:
		return klm * mathutil.Legendre(l, 0, x)
	}
}

// EvalAll writes Y_l^m(phi, theta) for every l <= order into dst at
// Index(l, m) and returns the filled slice. dst is reused when it has
// enough capacity.
func EvalAll(order int, phi, theta float64, dst []float64) []float64 {
	n := CoefficientCount(order)
	if cap(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]

	for l := 0; l <= order; l++ {
		for m := -l; m <= l; m++ {
			dst[Index(l, m)] = Eval(l, m, phi, theta)
		}
	}
	return dst
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
