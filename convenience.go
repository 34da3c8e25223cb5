package sh

// Common expansion orders.
const (
	// OrderAmbient is the usual order for diffuse irradiance (9 coefficients).
	OrderAmbient = 2

	// OrderGlossy keeps enough detail for broad glossy lighting (16 coefficients).
	OrderGlossy = 3
)

// NewParallel creates a projector of the given order that spreads dense and
// Monte-Carlo work over runtime.GOMAXPROCS(0) goroutines.
func NewParallel(order, sampleCount int) (*Projector, error) {
	return New(&Config{
		Order:          order,
		SampleCount:    sampleCount,
		EnableParallel: true,
	})
}

// ProjectDense is a convenience function for one-shot projection of an
// equirectangular image.
func ProjectDense(order int, img Image) ([]Color, error) {
	p, err := New(&Config{Order: order})
	if err != nil {
		return nil, err
	}
	return p.Dense(img)
}

// ProjectMonteCarlo is a convenience function for one-shot stratified
// Monte-Carlo projection of f. The caller owns rng; seeding it identically
// reproduces the result.
func ProjectMonteCarlo(order, sampleCount int, rng RandomSource, f Func) ([]float64, error) {
	p, err := New(&Config{Order: order, SampleCount: sampleCount})
	if err != nil {
		return nil, err
	}
	return p.MonteCarlo(rng, f)
}

// ProjectSparse is a convenience function for one-shot least-squares
// projection of values observed at dirs over the full sphere.
func ProjectSparse(order int, dirs []Direction, values []float64) ([]float64, error) {
	p, err := New(&Config{Order: order})
	if err != nil {
		return nil, err
	}
	return p.Sparse(dirs, values)
}
