package mathutil

import "math"

// Legendre evaluates the associated Legendre polynomial P_l^m(x), including
// the Condon-Shortley phase (-1)^m.
//
// The value is unnormalized; the spherical harmonics evaluator applies the
// normalization constant. Preconditions, which are not checked:
//
//	0 <= m <= l
//	-1 <= x <= 1
//
// The evaluation starts from the closed form
//
//	P_m^m(x) = (-1)^m (2m-1)!! (1-x²)^(m/2)
//
// then steps up in degree with
//
//	P_{m+1}^m(x) = x (2m+1) P_m^m(x)
//	P_n^m(x)     = (x (2n-1) P_{n-1}^m(x) - (n+m-1) P_{n-2}^m(x)) / (n-m)
//
// Reference: Press et al., "Numerical Recipes", §6.7.
func Legendre(l, m int, x float64) float64 {
	pmm := 1.0
	if m > 0 {
		// (1-x)(1+x) keeps precision near |x| = 1
		somx2 := math.Sqrt((1 - x) * (1 + x))
		pmm = DoubleFactorial(2*m-1) * math.Pow(somx2, float64(m))
		if m%2 == oddParity {
			pmm = -pmm
		}
	}

	if l == m {
		return pmm
	}

	pmm1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmm1
	}

	for n := m + 2; n <= l; n++ {
		pmn := (x*float64(2*n-1)*pmm1 - float64(n+m-1)*pmm) / float64(n-m)
		pmm = pmm1
		pmm1 = pmn
	}

	return pmm1
}
