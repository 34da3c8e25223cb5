package sh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoefficientCountAndIndex(t *testing.T) {
	assert.Equal(t, 1, CoefficientCount(0))
	assert.Equal(t, 9, CoefficientCount(2))
	assert.Equal(t, 0, Index(0, 0))
	assert.Equal(t, 8, Index(2, 2))

	for idx := range CoefficientCount(4) {
		l, m := DegreeOrder(idx)
		assert.Equal(t, idx, Index(l, m))
	}
}

func TestOrderFor(t *testing.T) {
	order, err := OrderFor(16)
	require.NoError(t, err)
	assert.Equal(t, 3, order)

	for _, n := range []int{0, 2, 10, -4} {
		_, err := OrderFor(n)
		require.ErrorIs(t, err, ErrInvalidCoefficients, "count %d", n)
	}
}

func TestParseDomain(t *testing.T) {
	d, err := ParseDomain("upper")
	require.NoError(t, err)
	assert.Equal(t, UpperHemisphere, d)

	d, err = ParseDomain("full")
	require.NoError(t, err)
	assert.Equal(t, FullSphere, d)

	_, err = ParseDomain("torus")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestToSpherical(t *testing.T) {
	tests := []struct {
		name      string
		dir       Direction
		phi, thet float64
	}{
		{"North pole", Direction{Z: 1}, 0, 0},
		{"South pole", Direction{Z: -1}, 0, math.Pi},
		{"+X", Direction{X: 1}, 0, math.Pi / 2},
		{"+Y", Direction{Y: 1}, math.Pi / 2, math.Pi / 2},
		{"-Y wraps", Direction{Y: -1}, 3 * math.Pi / 2, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phi, theta := ToSpherical(tt.dir)
			assert.InDelta(t, tt.phi, phi, 1e-12)
			assert.InDelta(t, tt.thet, theta, 1e-12)
		})
	}
}

func TestFromSpherical_RoundTrip(t *testing.T) {
	d := FromSpherical(1.2, 0.7)
	assert.InDelta(t, 1, d.Norm(), 1e-12)

	phi, theta := ToSpherical(d)
	assert.InDelta(t, 1.2, phi, 1e-12)
	assert.InDelta(t, 0.7, theta, 1e-12)
}

func TestEval_LowOrder(t *testing.T) {
	y00 := 0.5 / math.Sqrt(math.Pi)
	assert.InDelta(t, y00, Eval(0, 0, 1, 2), 1e-15)

	// Y_1^0 = sqrt(3/4π) cos θ
	assert.InDelta(t, math.Sqrt(3/(4*math.Pi))*math.Cos(0.3), Eval(1, 0, 0, 0.3), 1e-15)
}

func TestEvaluate(t *testing.T) {
	t.Run("Invalid length", func(t *testing.T) {
		_, err := Evaluate(make([]float64, 5), 0, 0)
		require.ErrorIs(t, err, ErrInvalidCoefficients)

		_, err = EvaluateColor(nil, 0, 0)
		require.ErrorIs(t, err, ErrInvalidCoefficients)
	})

	t.Run("Constant", func(t *testing.T) {
		coeffs := make([]float64, 9)
		coeffs[0] = 2 * math.Sqrt(4*math.Pi)

		v, err := Evaluate(coeffs, 4, 1)
		require.NoError(t, err)
		assert.InDelta(t, 2, v, 1e-12)
	})

	t.Run("Color", func(t *testing.T) {
		coeffs := make([]Color, 4)
		coeffs[0] = Color{1, 2, 3}.Scale(math.Sqrt(4 * math.Pi))

		c, err := EvaluateColor(coeffs, 0.5, 0.5)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 2, 3}, c[:], 1e-12)
	})
}

func TestEffectiveSamples(t *testing.T) {
	assert.Equal(t, 0, EffectiveSamples(0))
	assert.Equal(t, 1, EffectiveSamples(3))
	assert.Equal(t, 9, EffectiveSamples(10))
	assert.Equal(t, 100, EffectiveSamples(100))
}
