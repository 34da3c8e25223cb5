package main

import (
	"fmt"
	"io"
	"os"

	sh "github.com/tphakala/go-sh"
	"gopkg.in/yaml.v3"
)

// report is the YAML document written by shproject.
type report struct {
	Mode         string        `yaml:"mode"`
	Order        int           `yaml:"order"`
	Function     string        `yaml:"function,omitempty"`
	Samples      int           `yaml:"samples,omitempty"`
	Image        *imageInfo    `yaml:"image,omitempty"`
	Fit          *fitInfo      `yaml:"fit,omitempty"`
	Coefficients []coefficient `yaml:"coefficients"`
}

type imageInfo struct {
	Path   string `yaml:"path,omitempty"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type fitInfo struct {
	Rank     int     `yaml:"rank"`
	Residual float64 `yaml:"residual"`
}

// coefficient is one (l, m) entry; scalar projections fill Value, color
// projections fill RGB.
type coefficient struct {
	L     int       `yaml:"l"`
	M     int       `yaml:"m"`
	Value *float64  `yaml:"value,omitempty"`
	RGB   []float64 `yaml:"rgb,omitempty,flow"`
}

func newScalarReport(mode string, order int, coeffs []float64) *report {
	rep := &report{Mode: mode, Order: order, Coefficients: make([]coefficient, len(coeffs))}
	for idx, v := range coeffs {
		l, m := sh.DegreeOrder(idx)
		rep.Coefficients[idx] = coefficient{L: l, M: m, Value: &v}
	}
	return rep
}

func newColorReport(mode string, order int, coeffs []sh.Color) *report {
	rep := &report{Mode: mode, Order: order, Coefficients: make([]coefficient, len(coeffs))}
	for idx, c := range coeffs {
		l, m := sh.DegreeOrder(idx)
		rep.Coefficients[idx] = coefficient{L: l, M: m, RGB: []float64{c[0], c[1], c[2]}}
	}
	return rep
}

// writeReport encodes rep to path, or to stdout when path is empty.
func writeReport(rep *report, path string, stdout io.Writer) (err error) {
	w := stdout
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, reportFileMode)
		if err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return enc.Close()
}
