package sh

import (
	"math"
	"math/rand/v2"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-sh/internal/envmap"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"Zero value", Config{}, false},
		{"Max order", Config{Order: MaxOrder}, false},
		{"Typical Monte-Carlo", Config{Order: 3, SampleCount: 10000, EnableParallel: true, Workers: 4}, false},
		{"Upper hemisphere", Config{Order: 2, Domain: UpperHemisphere}, false},
		{"Negative order", Config{Order: -1}, true},
		{"Order too high", Config{Order: MaxOrder + 1}, true},
		{"Negative sample count", Config{SampleCount: -4}, true},
		{"Unknown domain", Config{Domain: Domain(7)}, true},
		{"Negative workers", Config{EnableParallel: true, Workers: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("Nil config", func(t *testing.T) {
		p, err := New(nil)
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, p)
	})

	t.Run("Invalid config", func(t *testing.T) {
		_, err := New(&Config{Order: 99})
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("Accessors", func(t *testing.T) {
		cfg := &Config{Order: 3, SampleCount: 50}
		p, err := New(cfg)
		require.NoError(t, err)

		assert.Equal(t, 3, p.Order())
		assert.Equal(t, 16, p.CoefficientCount())
		assert.Equal(t, *cfg, p.Config())
	})

	t.Run("Config is copied", func(t *testing.T) {
		cfg := &Config{Order: 1}
		p, err := New(cfg)
		require.NoError(t, err)

		cfg.Order = 5
		assert.Equal(t, 1, p.Order())
	})
}

func TestProjector_Workers(t *testing.T) {
	tests := []struct {
		name   string
		config Config
		want   int
	}{
		{"Sequential ignores workers", Config{Workers: 8}, 1},
		{"Explicit workers", Config{EnableParallel: true, Workers: 3}, 3},
		{"Auto workers", Config{EnableParallel: true}, runtime.GOMAXPROCS(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(&tt.config)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.GetInfo().Workers)
		})
	}
}

func TestProjector_GetInfo(t *testing.T) {
	p, err := New(&Config{Order: 2, SampleCount: 20})
	require.NoError(t, err)

	info := p.GetInfo()
	assert.Equal(t, 2, info.Order)
	assert.Equal(t, 9, info.Coefficients)
	assert.Equal(t, 16, info.EffectiveSamples)
	assert.NotEmpty(t, info.SIMD)
}

func TestProjector_Dense(t *testing.T) {
	p, err := New(&Config{Order: 2})
	require.NoError(t, err)

	t.Run("Nil image", func(t *testing.T) {
		_, err := p.Dense(nil)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Empty image", func(t *testing.T) {
		_, err := p.Dense(envmap.New(0, 8))
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Single pixel", func(t *testing.T) {
		coeffs, err := p.Dense(envmap.Constant(1, 1, Color{1, 1, 1}))
		require.NoError(t, err)
		assert.Len(t, coeffs, 9)
	})
}

func TestProjector_MonteCarlo(t *testing.T) {
	f := func(_, theta float64) float64 { return math.Cos(theta) }

	t.Run("Missing sample count", func(t *testing.T) {
		p, err := New(&Config{Order: 1})
		require.NoError(t, err)

		_, err = p.MonteCarlo(rand.New(rand.NewPCG(1, 1)), f)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	p, err := New(&Config{Order: 1, SampleCount: 100})
	require.NoError(t, err)

	t.Run("Nil random source", func(t *testing.T) {
		_, err := p.MonteCarlo(nil, f)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Nil function", func(t *testing.T) {
		_, err := p.MonteCarlo(rand.New(rand.NewPCG(1, 1)), nil)
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Single sample", func(t *testing.T) {
		p, err := New(&Config{Order: 0, SampleCount: 1})
		require.NoError(t, err)

		coeffs, err := p.MonteCarlo(rand.New(rand.NewPCG(1, 1)), func(_, _ float64) float64 { return 1 })
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(4*math.Pi), coeffs[0], 1e-12)
	})
}

func TestProjector_FitSparse(t *testing.T) {
	p, err := New(&Config{Order: 1})
	require.NoError(t, err)

	dirs := []Direction{{X: 1}, {Y: 1}, {Z: 1}, {X: -1}}

	tests := []struct {
		name   string
		dirs   []Direction
		values []float64
		err    error
	}{
		{"No samples", nil, nil, ErrNoSamples},
		{"Dimension mismatch", dirs, []float64{1, 2}, ErrDimensionMismatch},
		{"NaN value", dirs, []float64{1, math.NaN(), 0, 0}, ErrNonFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit, err := p.FitSparse(tt.dirs, tt.values)
			require.ErrorIs(t, err, tt.err)
			assert.Nil(t, fit)

			coeffs, err := p.Sparse(tt.dirs, tt.values)
			require.ErrorIs(t, err, tt.err)
			assert.Nil(t, coeffs)
		})
	}

	t.Run("Exactly determined", func(t *testing.T) {
		fit, err := p.FitSparse(dirs, []float64{1, 1, 1, 1})
		require.NoError(t, err)
		assert.Equal(t, 4, fit.Rank)
		assert.True(t, fit.Determined())
	})
}
