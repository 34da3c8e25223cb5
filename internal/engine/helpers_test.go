package engine

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/tphakala/go-sh/internal/basis"
)

// funcImage samples fn at pixel centers on demand.
type funcImage struct {
	w, h int
	fn   func(phi, theta float64) Color
}

func (f funcImage) Width() int  { return f.w }
func (f funcImage) Height() int { return f.h }

func (f funcImage) Pixel(x, y int) Color {
	return f.fn(basis.PixelToPhi(x, f.w), basis.PixelToTheta(y, f.h))
}

func constantImage(w, h int, c Color) funcImage {
	return funcImage{w: w, h: h, fn: func(_, _ float64) Color { return c }}
}

// basisImage is an image whose every channel equals Y_l^m.
func basisImage(w, h, l, m int) funcImage {
	return funcImage{w: w, h: h, fn: func(phi, theta float64) Color {
		v := basis.Eval(l, m, phi, theta)
		return Color{v, v, v}
	}}
}

// fibonacciDirections returns n well-spread unit vectors over the sphere.
func fibonacciDirections(n int) []r3.Vector {
	golden := math.Pi * (3 - math.Sqrt(5))
	dirs := make([]r3.Vector, n)
	for i := range n {
		z := 1 - (2*float64(i)+1)/float64(n)
		r := math.Sqrt(1 - z*z)
		phi := golden * float64(i)
		dirs[i] = r3.Vector{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
	}
	return dirs
}

// countingSource wraps a RandomSource and counts draws.
type countingSource struct {
	src   RandomSource
	draws int
}

func (c *countingSource) Float64() float64 {
	c.draws++
	return c.src.Float64()
}

// fixedSource always returns the same value.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }
