package sh

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/tphakala/go-sh/internal/engine"
	"github.com/tphakala/go-sh/internal/simdops"
)

// Config holds projection configuration.
type Config struct {
	// Order is the maximum degree of the expansion, 0 to MaxOrder.
	// The projector produces (Order+1)² coefficients.
	Order int

	// SampleCount is the number of Monte-Carlo samples requested.
	// Only side² samples are drawn, side = floor(√SampleCount).
	// Must be at least 1 before MonteCarlo is called; other projectors
	// ignore it.
	SampleCount int

	// Domain controls how sparse sample directions are converted to
	// angles. The zero value is FullSphere.
	Domain Domain

	// EnableParallel splits dense and Monte-Carlo projections across
	// goroutines. Results are deterministic for a fixed worker count but
	// may differ from sequential results in the last bits.
	EnableParallel bool

	// Workers is the number of goroutines used when EnableParallel is set.
	// Set to 0 to use runtime.GOMAXPROCS(0).
	Workers int
}

// Common errors returned by the projectors.
var (
	// ErrInvalidConfig indicates invalid configuration parameters.
	ErrInvalidConfig = errors.New("invalid projection configuration")

	// ErrInvalidInput indicates a nil or empty image, random source or function.
	ErrInvalidInput = errors.New("invalid projection input")

	// ErrInvalidCoefficients indicates a coefficient slice whose length is
	// not (order+1)² for any order.
	ErrInvalidCoefficients = errors.New("invalid coefficient count")

	// ErrNoSamples indicates an empty sparse sample set.
	ErrNoSamples = engine.ErrNoSamples

	// ErrDimensionMismatch indicates direction and value slices of different lengths.
	ErrDimensionMismatch = engine.ErrDimensionMismatch

	// ErrNonFinite indicates a NaN or Inf sample value or direction.
	ErrNonFinite = engine.ErrNonFinite

	// ErrSolveFailed indicates the least-squares factorization did not converge.
	ErrSolveFailed = engine.ErrSolveFailed

	// ErrSingular indicates a design matrix with no usable singular value.
	ErrSingular = engine.ErrSingular
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Order < minOrder || c.Order > MaxOrder {
		return fmt.Errorf("%w: order must be %d-%d, got %d", ErrInvalidConfig, minOrder, MaxOrder, c.Order)
	}

	if c.SampleCount < 0 {
		return fmt.Errorf("%w: sample count must not be negative", ErrInvalidConfig)
	}

	if c.Domain != FullSphere && c.Domain != UpperHemisphere {
		return fmt.Errorf("%w: unknown domain %d", ErrInvalidConfig, c.Domain)
	}

	if c.Workers < autoWorkers {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Projector turns images, functions and scattered samples into spherical
// harmonics coefficients of a fixed order.
type Projector struct {
	config  Config
	workers int
}

// New creates a projector with the specified configuration.
func New(config *Config) (*Projector, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	workers := 1
	if config.EnableParallel {
		workers = config.Workers
		if workers == autoWorkers {
			workers = runtime.GOMAXPROCS(0)
		}
	}

	return &Projector{config: *config, workers: workers}, nil
}

// Order returns the maximum degree of the projector's expansions.
func (p *Projector) Order() int {
	return p.config.Order
}

// CoefficientCount returns the number of coefficients each projection yields.
func (p *Projector) CoefficientCount() int {
	return CoefficientCount(p.config.Order)
}

// Config returns a copy of the configuration the projector was built with.
func (p *Projector) Config() Config {
	return p.config
}

// Dense projects an equirectangular image by quadrature over every pixel
// and returns one color coefficient per basis function.
func (p *Projector) Dense(img Image) ([]Color, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: image is nil", ErrInvalidInput)
	}
	if img.Width() < minImageSize || img.Height() < minImageSize {
		return nil, fmt.Errorf("%w: image is %dx%d", ErrInvalidInput, img.Width(), img.Height())
	}

	return engine.ProjectDense(p.config.Order, img, p.workers), nil
}

// MonteCarlo projects f by stratified sampling with Config.SampleCount
// samples drawn from rng.
func (p *Projector) MonteCarlo(rng RandomSource, f Func) ([]float64, error) {
	if p.config.SampleCount < minSampleCount {
		return nil, fmt.Errorf("%w: sample count must be at least %d", ErrInvalidConfig, minSampleCount)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: random source is nil", ErrInvalidInput)
	}
	if f == nil {
		return nil, fmt.Errorf("%w: function is nil", ErrInvalidInput)
	}

	return engine.ProjectMonteCarlo(p.config.Order, p.config.SampleCount, rng, f, p.workers), nil
}

// Sparse fits coefficients to values observed at dirs by least squares and
// returns only the coefficients. Use FitSparse to inspect the rank.
func (p *Projector) Sparse(dirs []Direction, values []float64) ([]float64, error) {
	fit, err := p.FitSparse(dirs, values)
	if err != nil {
		return nil, err
	}
	return fit.Coefficients, nil
}

// FitSparse fits coefficients to values observed at dirs by least squares.
//
// When the samples do not determine every coefficient (fewer samples than
// coefficients, or clustered directions) the minimum-norm solution is
// returned and Fit.Rank is below the coefficient count.
func (p *Projector) FitSparse(dirs []Direction, values []float64) (*Fit, error) {
	fit, err := engine.FitSparse(p.config.Order, dirs, values, p.config.Domain)
	if err != nil {
		return nil, fmt.Errorf("sparse projection: %w", err)
	}
	return fit, nil
}

// Info describes a projector's effective settings.
type Info struct {
	// Order is the maximum degree of the expansion.
	Order int

	// Coefficients is the number of coefficients per projection.
	Coefficients int

	// EffectiveSamples is the Monte-Carlo sample count actually drawn.
	EffectiveSamples int

	// Workers is the number of goroutines a projection uses.
	Workers int

	// SIMD describes the vector instruction set in use.
	SIMD string
}

// GetInfo returns the effective settings of the projector.
func (p *Projector) GetInfo() Info {
	return Info{
		Order:            p.config.Order,
		Coefficients:     p.CoefficientCount(),
		EffectiveSamples: EffectiveSamples(p.config.SampleCount),
		Workers:          p.workers,
		SIMD:             simdops.Info(),
	}
}
