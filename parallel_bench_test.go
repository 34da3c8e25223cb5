package sh

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tphakala/go-sh/internal/envmap"
)

// BenchmarkDenseSequential benchmarks single-goroutine dense projection.
func BenchmarkDenseSequential(b *testing.B) {
	benchmarkDense(b, false)
}

// BenchmarkDenseParallel benchmarks dense projection across GOMAXPROCS goroutines.
func BenchmarkDenseParallel(b *testing.B) {
	benchmarkDense(b, true)
}

func benchmarkDense(b *testing.B, parallel bool) {
	b.Helper()

	const (
		width  = 256
		height = 128
	)

	p, err := New(&Config{Order: OrderGlossy, EnableParallel: parallel})
	if err != nil {
		b.Fatalf("Failed to create projector: %v", err)
	}
	img := envmap.FromFunc(width, height, skyColor)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := p.Dense(img); err != nil {
			b.Fatalf("Dense failed: %v", err)
		}
	}
}

// BenchmarkMonteCarloSequential benchmarks single-goroutine Monte-Carlo projection.
func BenchmarkMonteCarloSequential(b *testing.B) {
	benchmarkMonteCarlo(b, false)
}

// BenchmarkMonteCarloParallel benchmarks Monte-Carlo projection across GOMAXPROCS goroutines.
func BenchmarkMonteCarloParallel(b *testing.B) {
	benchmarkMonteCarlo(b, true)
}

func benchmarkMonteCarlo(b *testing.B, parallel bool) {
	b.Helper()

	p, err := New(&Config{Order: OrderGlossy, SampleCount: 65536, EnableParallel: parallel})
	if err != nil {
		b.Fatalf("Failed to create projector: %v", err)
	}
	rng := rand.New(rand.NewPCG(1, 2))
	f := func(_, theta float64) float64 { return math.Max(0, math.Cos(theta)) }

	b.ReportAllocs()
	for b.Loop() {
		if _, err := p.MonteCarlo(rng, f); err != nil {
			b.Fatalf("MonteCarlo failed: %v", err)
		}
	}
}
