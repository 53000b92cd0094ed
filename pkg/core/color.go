package core

import "math"

// Color holds an RGB triple. Channels are unbounded while light
// contributions accumulate and are only clamped to [0,1] at the points
// the shading model calls for, then scaled to bytes at quantization.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// White returns the color (1,1,1), the default light color.
func White() Color { return Color{1, 1, 1} }

// Black returns the color (0,0,0).
func Black() Color { return Color{0, 0, 0} }

// Red returns the color (1,0,0), the default surface tint.
func Red() Color { return Color{1, 0, 0} }

// Add returns the componentwise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Mul returns the componentwise product of two colors,
// used to combine a light tint with a surface tint.
func (c Color) Mul(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color with each channel multiplied by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Clamp returns a color with each channel saturated to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// Round returns the color with each channel rounded to the nearest
// integer. Only meaningful at quantization time, after scaling to the
// output channel range.
func (c Color) Round() Color {
	return Color{
		R: math.Round(c.R),
		G: math.Round(c.G),
		B: math.Round(c.B),
	}
}
