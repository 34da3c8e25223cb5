package engine

import "errors"

// Errors returned by the sparse least-squares projector.
var (
	// ErrNoSamples indicates an empty sample set.
	ErrNoSamples = errors.New("no samples to fit")

	// ErrDimensionMismatch indicates direction and value slices of different lengths.
	ErrDimensionMismatch = errors.New("direction and value counts differ")

	// ErrNonFinite indicates a NaN or Inf sample value or direction.
	ErrNonFinite = errors.New("non-finite sample")

	// ErrSolveFailed indicates the singular value decomposition did not converge.
	ErrSolveFailed = errors.New("least-squares factorization did not converge")

	// ErrSingular indicates that no singular value of the design matrix
	// exceeds the rank tolerance.
	ErrSingular = errors.New("design matrix is singular")
)
