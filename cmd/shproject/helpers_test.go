package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sh "github.com/tphakala/go-sh"
)

func TestIntegrand(t *testing.T) {
	tests := []struct {
		name       string
		phi, theta float64
		want       float64
	}{
		{"constant", 1, 2, 1},
		{"cosine", 0, 0, 1},
		{"cosine", 0, math.Pi, 0},
		{"sky", 0, 0, skyAmbient + skyZenith},
		{"sky", 0, 2, skyAmbient},
		{"sun", sunPhi, sunTheta, 1},
		{"sun", sunPhi + math.Pi, math.Pi - sunTheta, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := integrand(tt.name)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, f(tt.phi, tt.theta), 1e-12)
		})
	}

	_, err := integrand("moon")
	require.Error(t, err)
}

func TestSampleEntryDirection(t *testing.T) {
	phi, theta := 0.5, 1.2

	tests := []struct {
		name    string
		entry   sampleEntry
		want    sh.Direction
		wantErr bool
	}{
		{"Normalized vector", sampleEntry{Direction: []float64{0, 0, 3}}, sh.Direction{Z: 1}, false},
		{"Angles", sampleEntry{Phi: &phi, Theta: &theta}, sh.FromSpherical(phi, theta), false},
		{"Zero vector", sampleEntry{Direction: []float64{0, 0, 0}}, sh.Direction{}, true},
		{"Two components", sampleEntry{Direction: []float64{1, 0}}, sh.Direction{}, true},
		{"Both forms", sampleEntry{Direction: []float64{1, 0, 0}, Phi: &phi, Theta: &theta}, sh.Direction{}, true},
		{"Theta only", sampleEntry{Theta: &theta}, sh.Direction{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.entry.direction()
			if tt.wantErr {
				require.ErrorIs(t, err, errBadSample)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.X, got.X, 1e-15)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-15)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-15)
		})
	}
}

func TestLoadSamples_Errors(t *testing.T) {
	bad := writeFile(t, "bad.yaml", "samples: {not: a list}")
	_, _, err := loadSamples(bad)
	require.Error(t, err)

	missing := writeFile(t, "missing.yaml", "samples:\n  - value: 1\n")
	_, _, err = loadSamples(missing)
	require.ErrorIs(t, err, errBadSample)
}

func TestNewScalarReport(t *testing.T) {
	rep := newScalarReport("montecarlo", 1, []float64{1, 2, 3, 4})
	require.Len(t, rep.Coefficients, 4)

	// each entry points at its own value
	assert.InDelta(t, 1.0, *rep.Coefficients[0].Value, 0)
	assert.InDelta(t, 4.0, *rep.Coefficients[3].Value, 0)
	assert.Equal(t, 1, rep.Coefficients[3].L)
	assert.Equal(t, 1, rep.Coefficients[3].M)
}
