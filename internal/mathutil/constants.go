package mathutil

// Factorial table bounds.
// Factorials up to 15! are exactly representable and looked up; larger
// arguments fall back to an iterative product.
const (
	factorialTableSize = 16
	firstProductFactor = 2 // 0! and 1! contribute nothing to the product
)

// Associated Legendre recurrence constants.
const (
	doubleFactorialStep = 2 // n!! steps down by two
	oddParity           = 1 // (-1)^m is negative for odd m
)
