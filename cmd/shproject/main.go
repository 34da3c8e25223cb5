// Command shproject projects environment images, analytic functions or
// scattered samples onto the real spherical harmonics basis and writes the
// coefficients as YAML.
//
// Usage:
//
//	shproject -mode dense -order 2 -image env.png
//	shproject -mode montecarlo -function sky -samples 40000 -seed 7
//	shproject -mode sparse -sparse probes.yaml -order 3 -o coeffs.yaml
//	shproject -config shproject.yaml -parallel -workers 8
//
// Settings are taken from the defaults, then the -config file, then any
// flag given explicitly on the command line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"time"

	sh "github.com/tphakala/go-sh"
	"github.com/tphakala/go-sh/internal/config"
	"github.com/tphakala/go-sh/internal/envmap"
	"github.com/tphakala/go-sh/internal/logger"
	"go.uber.org/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

// options holds the raw flag values; only flags set explicitly override
// the loaded configuration.
type options struct {
	configPath  string
	mode        string
	order       int
	image       string
	samples     int
	seed        uint64
	function    string
	sparse      string
	domain      string
	parallel    bool
	workers     int
	output      string
	verbose     bool
	printConfig bool
	cpuprofile  string
}

func parseFlags(args []string, stderr io.Writer) (*options, map[string]bool, error) {
	fs := flag.NewFlagSet("shproject", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "Path to YAML config file")
	fs.StringVar(&opts.mode, "mode", config.ModeDense, "Projection mode: dense, montecarlo, sparse")
	fs.IntVar(&opts.order, "order", defaultOrder, "Maximum SH degree")
	fs.StringVar(&opts.image, "image", "", "Equirectangular image for dense mode (png, jpeg, gif, bmp, tiff)")
	fs.IntVar(&opts.samples, "samples", defaultSamples, "Monte-Carlo sample count (rounded down to a square)")
	fs.Uint64Var(&opts.seed, "seed", defaultSeed, "Monte-Carlo random seed")
	fs.StringVar(&opts.function, "function", config.FunctionCosine, "Monte-Carlo integrand: constant, cosine, sky, sun")
	fs.StringVar(&opts.sparse, "sparse", "", "YAML sample file for sparse mode")
	fs.StringVar(&opts.domain, "domain", "full", "Direction domain for sparse mode: full, upper")
	fs.BoolVar(&opts.parallel, "parallel", false, "Spread projection across goroutines")
	fs.IntVar(&opts.workers, "workers", 0, "Goroutines for -parallel (0 = GOMAXPROCS)")
	fs.StringVar(&opts.output, "o", "", "Write the coefficient report to file instead of stdout")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose (debug) logging")
	fs.BoolVar(&opts.printConfig, "print-config", false, "Print the effective configuration and exit")
	fs.StringVar(&opts.cpuprofile, "cpuprofile", "", "Write CPU profile to file")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return opts, set, nil
}

// applyFlags applies explicitly set flags over the loaded configuration.
func applyFlags(cfg *config.Config, opts *options, set map[string]bool) {
	if set["mode"] {
		cfg.Projection.Mode = opts.mode
	}
	if set["order"] {
		cfg.Projection.Order = opts.order
	}
	if set["domain"] {
		cfg.Projection.Domain = opts.domain
	}
	if set["parallel"] {
		cfg.Projection.Parallel = opts.parallel
	}
	if set["workers"] {
		cfg.Projection.Workers = opts.workers
	}
	if set["image"] {
		cfg.Dense.Image = opts.image
	}
	if set["samples"] {
		cfg.MonteCarlo.Samples = opts.samples
	}
	if set["seed"] {
		cfg.MonteCarlo.Seed = opts.seed
	}
	if set["function"] {
		cfg.MonteCarlo.Function = opts.function
	}
	if set["sparse"] {
		cfg.Sparse.SamplesFile = opts.sparse
	}
	if set["o"] {
		cfg.Output.Path = opts.output
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, set, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg, opts, set)

	if opts.printConfig {
		return cfg.Write(stdout)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if opts.cpuprofile != "" {
		f, err := os.Create(opts.cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	lg := logger.New(cfg.Logging.Level, logger.FileConfig{
		Path:       cfg.Logging.LogFile,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	}, stderr)
	defer func() { _ = lg.Sync() }()

	domain, err := sh.ParseDomain(cfg.Projection.Domain)
	if err != nil {
		return err
	}

	p, err := sh.New(&sh.Config{
		Order:          cfg.Projection.Order,
		SampleCount:    cfg.MonteCarlo.Samples,
		Domain:         domain,
		EnableParallel: cfg.Projection.Parallel,
		Workers:        cfg.Projection.Workers,
	})
	if err != nil {
		return err
	}

	info := p.GetInfo()
	lg.Debug("projector ready",
		zap.String("mode", cfg.Projection.Mode),
		zap.Int("order", info.Order),
		zap.Int("coefficients", info.Coefficients),
		zap.Int("workers", info.Workers),
		zap.String("simd", info.SIMD))

	start := time.Now()
	rep, err := project(p, cfg, lg)
	if err != nil {
		return err
	}
	lg.Info("projection complete",
		zap.String("mode", cfg.Projection.Mode),
		zap.Int("coefficients", len(rep.Coefficients)),
		zap.Duration("elapsed", time.Since(start)))

	return writeReport(rep, cfg.Output.Path, stdout)
}

// project runs the projector selected by cfg and builds the report.
func project(p *sh.Projector, cfg *config.Config, lg *zap.Logger) (*report, error) {
	switch cfg.Projection.Mode {
	case config.ModeDense:
		img, err := denseImage(cfg.Dense, lg)
		if err != nil {
			return nil, err
		}
		coeffs, err := p.Dense(img)
		if err != nil {
			return nil, err
		}
		rep := newColorReport(config.ModeDense, p.Order(), coeffs)
		rep.Image = &imageInfo{Path: cfg.Dense.Image, Width: img.Width(), Height: img.Height()}
		return rep, nil

	case config.ModeMonteCarlo:
		f, err := integrand(cfg.MonteCarlo.Function)
		if err != nil {
			return nil, err
		}
		mc := cfg.MonteCarlo
		if effective := sh.EffectiveSamples(mc.Samples); effective != mc.Samples {
			lg.Warn("sample count is not a perfect square",
				zap.Int("requested", mc.Samples),
				zap.Int("effective", effective))
		}

		rng := rand.New(rand.NewPCG(mc.Seed, mc.Seed^seedStream))
		coeffs, err := p.MonteCarlo(rng, f)
		if err != nil {
			return nil, err
		}
		rep := newScalarReport(config.ModeMonteCarlo, p.Order(), coeffs)
		rep.Function = mc.Function
		rep.Samples = sh.EffectiveSamples(mc.Samples)
		return rep, nil

	case config.ModeSparse:
		dirs, values, err := loadSamples(cfg.Sparse.SamplesFile)
		if err != nil {
			return nil, err
		}
		fit, err := p.FitSparse(dirs, values)
		if err != nil {
			return nil, err
		}
		if !fit.Determined() {
			lg.Warn("samples do not determine every coefficient, returning minimum-norm fit",
				zap.Int("rank", fit.Rank),
				zap.Int("coefficients", len(fit.Coefficients)))
		}
		rep := newScalarReport(config.ModeSparse, p.Order(), fit.Coefficients)
		rep.Samples = len(dirs)
		rep.Fit = &fitInfo{Rank: fit.Rank, Residual: fit.Residual}
		return rep, nil

	default:
		return nil, errors.New("unknown mode " + cfg.Projection.Mode)
	}
}

// denseImage loads the configured image or builds the synthetic constant one.
func denseImage(cfg config.DenseConfig, lg *zap.Logger) (*envmap.Image, error) {
	if cfg.Image == "" {
		lg.Debug("no image given, projecting constant environment",
			zap.Int("width", cfg.Width),
			zap.Int("height", cfg.Height),
			zap.Float64("value", cfg.Value))
		return envmap.Constant(cfg.Width, cfg.Height, sh.Color{cfg.Value, cfg.Value, cfg.Value}), nil
	}

	img, err := envmap.Load(cfg.Image)
	if err != nil {
		return nil, err
	}
	lg.Debug("loaded image",
		zap.String("path", cfg.Image),
		zap.Int("width", img.Width()),
		zap.Int("height", img.Height()))
	return img, nil
}
