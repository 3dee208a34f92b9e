package invert

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Colorful returns the color as a go-colorful color with channels scaled
// to [0, 1].
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful converts a go-colorful color to a Color. Channels outside
// [0, 1] are clamped first.
func FromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{r, g, b}
}

// FromStdColor converts a standard library color to a Color, discarding
// alpha.
func FromStdColor(sc color.Color) Color {
	r, g, b, _ := sc.RGBA()
	return Color{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// RGBA implements color.Color. The color is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = 0xffff

	return r, g, b, a
}
