package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/golang/geo/r3"
	sh "github.com/tphakala/go-sh"
	"gopkg.in/yaml.v3"
)

// sampleFile is the YAML layout of a sparse sample set. Each sample gives
// either a direction vector or a (phi, theta) pair.
//
//	samples:
//	  - direction: [0, 0, 1]
//	    value: 1.5
//	  - phi: 0.5
//	    theta: 1.2
//	    value: 0.25
type sampleFile struct {
	Samples []sampleEntry `yaml:"samples"`
}

type sampleEntry struct {
	Direction []float64 `yaml:"direction,flow"`
	Phi       *float64  `yaml:"phi"`
	Theta     *float64  `yaml:"theta"`
	Value     float64   `yaml:"value"`
}

var errBadSample = errors.New("invalid sample")

// loadSamples reads a sample file and returns unit directions and values.
func loadSamples(path string) ([]sh.Direction, []float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read samples: %w", err)
	}

	var file sampleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse samples %s: %w", path, err)
	}

	dirs := make([]sh.Direction, 0, len(file.Samples))
	values := make([]float64, 0, len(file.Samples))
	for i, s := range file.Samples {
		d, err := s.direction()
		if err != nil {
			return nil, nil, fmt.Errorf("sample %d: %w", i, err)
		}
		dirs = append(dirs, d)
		values = append(values, s.Value)
	}
	return dirs, values, nil
}

// direction returns the sample's unit direction.
func (s sampleEntry) direction() (sh.Direction, error) {
	switch {
	case s.Direction != nil && (s.Phi != nil || s.Theta != nil):
		return sh.Direction{}, fmt.Errorf("%w: both direction and angles given", errBadSample)

	case s.Direction != nil:
		if len(s.Direction) != 3 {
			return sh.Direction{}, fmt.Errorf("%w: direction needs 3 components, got %d", errBadSample, len(s.Direction))
		}
		v := r3.Vector{X: s.Direction[0], Y: s.Direction[1], Z: s.Direction[2]}
		if n := v.Norm(); n == 0 || math.IsNaN(n) {
			return sh.Direction{}, fmt.Errorf("%w: direction has no length", errBadSample)
		}
		return v.Normalize(), nil

	case s.Phi != nil && s.Theta != nil:
		return sh.FromSpherical(*s.Phi, *s.Theta), nil

	default:
		return sh.Direction{}, fmt.Errorf("%w: missing direction", errBadSample)
	}
}
