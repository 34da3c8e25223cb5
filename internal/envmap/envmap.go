// Package envmap holds equirectangular environment images in memory and
// loads them from image files.
package envmap

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/tphakala/go-sh/internal/basis"
	"github.com/tphakala/go-sh/internal/engine"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
)

// maxChannelValue is the full-scale value returned by color.Color.RGBA.
const maxChannelValue = 0xffff

// Image is a row-major equirectangular image of linear colors.
type Image struct {
	width, height int
	pixels        []engine.Color
}

// New returns a black image of the given size.
func New(width, height int) *Image {
	width, height = max(0, width), max(0, height)
	return &Image{
		width:  width,
		height: height,
		pixels: make([]engine.Color, width*height),
	}
}

// Constant returns an image filled with c.
func Constant(width, height int, c engine.Color) *Image {
	img := New(width, height)
	for i := range img.pixels {
		img.pixels[i] = c
	}
	return img
}

// FromFunc returns an image whose pixels sample fn at the pixel centers.
func FromFunc(width, height int, fn func(phi, theta float64) engine.Color) *Image {
	img := New(width, height)
	for y := range img.height {
		theta := basis.PixelToTheta(y, img.height)
		for x := range img.width {
			img.pixels[y*img.width+x] = fn(basis.PixelToPhi(x, img.width), theta)
		}
	}
	return img
}

// FromImage converts a decoded image, scaling every channel into [0, 1].
// Alpha is ignored.
func FromImage(src image.Image) *Image {
	bounds := src.Bounds()
	img := New(bounds.Dx(), bounds.Dy())

	for y := range img.height {
		for x := range img.width {
			r, g, b, _ := src.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			img.pixels[y*img.width+x] = engine.Color{
				float64(r) / maxChannelValue,
				float64(g) / maxChannelValue,
				float64(b) / maxChannelValue,
			}
		}
	}
	return img
}

// Load decodes a PNG, JPEG, GIF, BMP or TIFF file into an Image.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return FromImage(src), nil
}

// Width returns the number of columns.
func (m *Image) Width() int { return m.width }

// Height returns the number of rows.
func (m *Image) Height() int { return m.height }

// Pixel returns the color at column x, row y. Coordinates outside the image
// panic.
func (m *Image) Pixel(x, y int) engine.Color {
	return m.pixels[m.offset(x, y)]
}

// Set stores c at column x, row y.
func (m *Image) Set(x, y int, c engine.Color) {
	m.pixels[m.offset(x, y)] = c
}

func (m *Image) offset(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("envmap: pixel (%d, %d) outside %dx%d image", x, y, m.width, m.height))
	}
	return y*m.width + x
}
