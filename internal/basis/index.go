// Package basis evaluates the real spherical harmonics basis and maps
// degree/order pairs, directions and image pixels onto it.
//
// Coefficients are stored densely: the pair (l, m) with -l <= m <= l lives at
// slot l*(l+1)+m, so an expansion up to degree order occupies exactly
// (order+1)² slots.
package basis

import "math"

// CoefficientCount returns the number of coefficients, (order+1)², of an
// expansion whose maximum degree is order.
func CoefficientCount(order int) int {
	return (order + 1) * (order + 1)
}

// Index returns the dense slot of the basis function (l, m).
// The pair must satisfy -l <= m <= l; other pairs map outside or onto
// foreign slots and are not detected.
func Index(l, m int) int {
	return l*(l+1) + m
}

// DegreeOrder is the inverse of Index.
func DegreeOrder(idx int) (l, m int) {
	l = isqrt(idx)
	return l, idx - l*(l+1)
}

// OrderFor returns the maximum degree of an expansion with count
// coefficients. ok is false when count is not a positive perfect square.
func OrderFor(count int) (order int, ok bool) {
	if count <= 0 {
		return 0, false
	}
	side := isqrt(count)
	if side*side != count {
		return 0, false
	}
	return side - 1, true
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	// correct float rounding at perfect-square boundaries
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
