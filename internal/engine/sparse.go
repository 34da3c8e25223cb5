package engine

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/tphakala/go-sh/internal/basis"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Fit is the result of a sparse least-squares projection.
type Fit struct {
	// Coefficients minimize ‖A·c - v‖₂ and, among all minimizers, ‖c‖₂.
	Coefficients []float64

	// Rank is the effective rank of the design matrix. A rank below
	// len(Coefficients) means the samples do not determine every
	// coefficient and the minimum-norm solution was returned.
	Rank int

	// SingularValues of the design matrix in descending order.
	SingularValues []float64

	// Residual is ‖A·c - v‖₂ for the returned coefficients.
	Residual float64
}

// Determined reports whether the samples pin down every coefficient.
func (f *Fit) Determined() bool {
	return f.Rank == len(f.Coefficients)
}

// FitSparse fits coefficients up to order to values observed at dirs.
//
// Row i of the N×(order+1)² design matrix holds every basis function at
// dirs[i], converted to angles under domain. The system is solved through a
// thin SVD; singular values below ε·max(N, M)·σ_max are treated as zero, so
// underdetermined and rank-deficient systems yield the minimum-norm
// solution instead of failing.
//
// Errors wrap ErrDimensionMismatch, ErrNoSamples, ErrNonFinite,
// ErrSolveFailed or ErrSingular; no partial result is returned.
func FitSparse(order int, dirs []r3.Vector, values []float64, domain basis.Domain) (*Fit, error) {
	if len(dirs) != len(values) {
		return nil, fmt.Errorf("%w: %d directions, %d values", ErrDimensionMismatch, len(dirs), len(values))
	}
	if len(dirs) == 0 {
		return nil, ErrNoSamples
	}
	if hasNonFinite(values) {
		return nil, fmt.Errorf("%w: value", ErrNonFinite)
	}

	rows, cols := len(dirs), basis.CoefficientCount(order)
	a := DesignMatrix(order, dirs, domain)
	if floats.HasNaN(a.RawMatrix().Data) {
		return nil, fmt.Errorf("%w: direction", ErrNonFinite)
	}
	b := mat.NewVecDense(rows, append([]float64(nil), values...))

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, fmt.Errorf("%w: %d×%d system", ErrSolveFailed, rows, cols)
	}

	rank := svd.Rank(machineEpsilon * float64(max(rows, cols)))
	if rank == 0 {
		return nil, fmt.Errorf("%w: %d×%d system", ErrSingular, rows, cols)
	}

	var x mat.VecDense
	svd.SolveVecTo(&x, b, rank)

	var r mat.VecDense
	r.MulVec(a, &x)
	r.SubVec(&r, b)

	coeffs := make([]float64, cols)
	for i := range coeffs {
		coeffs[i] = x.AtVec(i)
	}

	return &Fit{
		Coefficients:   coeffs,
		Rank:           rank,
		SingularValues: svd.Values(nil),
		Residual:       mat.Norm(&r, 2),
	}, nil
}

// DesignMatrix returns the len(dirs)×(order+1)² matrix of basis values,
// entry (i, Index(l, m)) = Y_l^m(dirs[i]). dirs must not be empty.
func DesignMatrix(order int, dirs []r3.Vector, domain basis.Domain) *mat.Dense {
	a := mat.NewDense(len(dirs), basis.CoefficientCount(order), nil)
	for i, d := range dirs {
		phi, theta := domain.ToSpherical(d)
		basis.EvalAll(order, phi, theta, a.RawRowView(i))
	}
	return a
}

func hasNonFinite(s []float64) bool {
	return floats.HasNaN(s) || math.IsInf(floats.Max(s), 1) || math.IsInf(floats.Min(s), -1)
}
