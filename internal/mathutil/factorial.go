// Package mathutil provides the special functions behind the spherical
// harmonics basis: factorials and associated Legendre polynomials.
package mathutil

// factorialTable holds 0! through 15!, all exact in float64.
var factorialTable = [factorialTableSize]float64{
	1,
	1,
	2,
	6,
	24,
	120,
	720,
	5040,
	40320,
	362880,
	3628800,
	39916800,
	479001600,
	6227020800,
	87178291200,
	1307674368000,
}

// Factorial returns n! as a float64.
//
// Values for n in [0, 15] come from a constant table. Larger n are computed
// as the product 2·3·…·n, which overflows to +Inf for n >= 171. Overflow is
// not reported; callers that need finite results must bound n themselves.
//
// n must be non-negative.
func Factorial(n int) float64 {
	if n < factorialTableSize {
		return factorialTable[n]
	}

	s := 1.0
	for k := firstProductFactor; k <= n; k++ {
		s *= float64(k)
	}
	return s
}

// DoubleFactorial returns n!! = n·(n-2)·(n-4)·… as a float64.
// By convention (-1)!! = 0!! = 1.
func DoubleFactorial(n int) float64 {
	s := 1.0
	for k := n; k > 1; k -= doubleFactorialStep {
		s *= float64(k)
	}
	return s
}
