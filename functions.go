package invert

// Inverted returns a new Color with every channel flipped to 255-c.
// In bw mode it instead snaps to pure black when the color is bright
// and pure white when it is dark.
func (c Color) Inverted(bw bool) Color {
	if bw {
		if c.IsBright() {
			return Color{}
		}
		return Color{R: 255, G: 255, B: 255}
	}
	return Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Invert returns the inverted color as a hex string, rendered the same
// way as Hex. In bw mode the result is always "#000000" or "#ffffff".
func (c Color) Invert(bw bool) string {
	return c.Inverted(bw).Hex()
}

// InvertRGB returns the inverted color as an integer triple. In bw mode
// the result is always 0,0,0 or 255,255,255.
func (c Color) InvertRGB(bw bool) (r, g, b int) {
	return c.Inverted(bw).RGB()
}

// Lighten returns a new Color moved toward white by the given amount.
// The amount is a fraction of the remaining headroom per channel and is
// clamped to [0, 1], so Lighten(1) is white and Lighten(0) is a no-op.
func (c Color) Lighten(amount float64) Color {
	amount = clamp01(amount)
	return Color{
		R: c.R + uint8(float64(255-c.R)*amount),
		G: c.G + uint8(float64(255-c.G)*amount),
		B: c.B + uint8(float64(255-c.B)*amount),
	}
}

// Darken returns a new Color moved toward black by the given amount,
// clamped to [0, 1], so Darken(1) is black and Darken(0) is a no-op.
func (c Color) Darken(amount float64) Color {
	factor := 1 - clamp01(amount)
	return Color{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// clamp01 clamps a value to the [0, 1] range.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
