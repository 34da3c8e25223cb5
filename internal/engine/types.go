// Package engine implements the spherical harmonics projectors: dense
// quadrature over an equirectangular image, stratified Monte-Carlo
// integration of an analytic function, and a least-squares fit to scattered
// samples.
//
// Functions here trust their inputs the way a numeric kernel does: invalid
// degree/order pairs or out-of-range pixels are programmer errors and are
// not checked. The public package validates before calling in.
package engine

// Color is a linear RGB triplet.
type Color [colorChannels]float64

// Add returns the channel-wise sum c + o.
func (c Color) Add(o Color) Color {
	return Color{c[channelR] + o[channelR], c[channelG] + o[channelG], c[channelB] + o[channelB]}
}

// Scale returns c with every channel multiplied by s.
func (c Color) Scale(s float64) Color {
	return Color{c[channelR] * s, c[channelG] * s, c[channelB] * s}
}

// Image is an equirectangular environment map. Row y covers polar angles
// [π·y/H, π·(y+1)/H); column x covers azimuths [2π·x/W, 2π·(x+1)/W).
type Image interface {
	Width() int
	Height() int
	// Pixel returns the color at integer coordinates 0 <= x < Width(),
	// 0 <= y < Height().
	Pixel(x, y int) Color
}

// RandomSource supplies uniform values in [0, 1).
// *math/rand.Rand and *math/rand/v2.Rand both satisfy it.
type RandomSource interface {
	Float64() float64
}

// Func is a scalar function on the sphere, phi in [0, 2π), theta in [0, π].
type Func func(phi, theta float64) float64
