// Package config handles shproject configuration loading.
package config

import (
	"errors"
	"fmt"
	"slices"

	sh "github.com/tphakala/go-sh"
)

// Projection modes.
const (
	ModeDense      = "dense"
	ModeMonteCarlo = "montecarlo"
	ModeSparse     = "sparse"
)

// Built-in Monte-Carlo integrands.
const (
	FunctionConstant = "constant"
	FunctionCosine   = "cosine"
	FunctionSky      = "sky"
	FunctionSun      = "sun"
)

var (
	modes     = []string{ModeDense, ModeMonteCarlo, ModeSparse}
	functions = []string{FunctionConstant, FunctionCosine, FunctionSky, FunctionSun}
	domains   = []string{"full", "upper"}
	levels    = []string{"debug", "info", "warn", "error"}
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("invalid configuration")

// Config holds all shproject settings.
type Config struct {
	Projection ProjectionConfig `yaml:"projection"`
	Dense      DenseConfig      `yaml:"dense"`
	MonteCarlo MonteCarloConfig `yaml:"montecarlo"`
	Sparse     SparseConfig     `yaml:"sparse"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ProjectionConfig holds settings shared by every projector.
type ProjectionConfig struct {
	Mode     string `yaml:"mode"`
	Order    int    `yaml:"order"`
	Domain   string `yaml:"domain"`
	Parallel bool   `yaml:"parallel"`
	Workers  int    `yaml:"workers"` // 0 = GOMAXPROCS
}

// DenseConfig holds image projection settings.
type DenseConfig struct {
	Image string `yaml:"image"` // Empty projects a synthetic constant image

	// Synthetic image size used when Image is empty.
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Value  float64 `yaml:"value"`
}

// MonteCarloConfig holds stratified sampling settings.
type MonteCarloConfig struct {
	Samples  int    `yaml:"samples"`
	Seed     uint64 `yaml:"seed"`
	Function string `yaml:"function"`
}

// SparseConfig holds least-squares fit settings.
type SparseConfig struct {
	SamplesFile string `yaml:"samples_file"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	Path string `yaml:"path"` // Empty writes to stdout
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Projection: ProjectionConfig{
			Mode:   ModeDense,
			Order:  2,
			Domain: "full",
		},
		Dense: DenseConfig{
			Width:  64,
			Height: 32,
			Value:  1,
		},
		MonteCarlo: MonteCarloConfig{
			Samples:  10000,
			Seed:     1,
			Function: FunctionCosine,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
		},
	}
}

// Validate checks the settings the selected mode depends on.
func (c *Config) Validate() error {
	p := c.Projection
	if !slices.Contains(modes, p.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalid, p.Mode)
	}
	if p.Order < 0 || p.Order > sh.MaxOrder {
		return fmt.Errorf("%w: order must be 0-%d", ErrInvalid, sh.MaxOrder)
	}
	if !slices.Contains(domains, p.Domain) {
		return fmt.Errorf("%w: unknown domain %q", ErrInvalid, p.Domain)
	}
	if p.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative", ErrInvalid)
	}
	if !slices.Contains(levels, c.Logging.Level) {
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.Logging.Level)
	}

	switch p.Mode {
	case ModeDense:
		if c.Dense.Image == "" && (c.Dense.Width < 1 || c.Dense.Height < 1) {
			return fmt.Errorf("%w: synthetic image must be at least 1x1", ErrInvalid)
		}
	case ModeMonteCarlo:
		if c.MonteCarlo.Samples < 1 {
			return fmt.Errorf("%w: samples must be at least 1", ErrInvalid)
		}
		if !slices.Contains(functions, c.MonteCarlo.Function) {
			return fmt.Errorf("%w: unknown function %q", ErrInvalid, c.MonteCarlo.Function)
		}
	case ModeSparse:
		if c.Sparse.SamplesFile == "" {
			return fmt.Errorf("%w: sparse mode needs a samples file", ErrInvalid)
		}
	}

	return nil
}
