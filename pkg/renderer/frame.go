package renderer

import (
	"image"
	"image/color"

	"spheretrace/pkg/core"
)

// MaxChannelValue is the output quantization range: [0,1] channels map
// to integers in [0, MaxChannelValue].
const MaxChannelValue = 255

// Frame is a width x height grid of colors, row-major with the origin
// at the top-left. The renderer is its only writer, one writer per cell.
type Frame struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewFrame allocates a frame filled with black
func NewFrame(width, height int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color stored at pixel (x, y)
func (f *Frame) At(x, y int) core.Color {
	return f.Pixels[y*f.Width+x]
}

// Set stores a color at pixel (x, y)
func (f *Frame) Set(x, y int, c core.Color) {
	f.Pixels[y*f.Width+x] = c
}

// Quantize maps a stored color to integer channel values by scaling to
// the max channel value and rounding to nearest.
func Quantize(c core.Color) (r, g, b int) {
	q := c.Scale(MaxChannelValue).Round()
	return int(q.R), int(q.G), int(q.B)
}

// ToImage converts the frame to an RGBA image for the PNG sink
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			r, g, b := Quantize(f.At(x, y))
			img.SetRGBA(x, y, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}
