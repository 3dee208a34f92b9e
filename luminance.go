package invert

import "github.com/jsvensson/invert/internal/wcag"

// LuminanceThreshold is the relative luminance separating bright colors
// from dark ones. It is the luminance at which the WCAG contrast ratio
// against both pure black and pure white is equal: sqrt(1.05 * 0.05) - 0.05.
const LuminanceThreshold = 0.179128784747792

// Luminance returns the WCAG 2.0 relative luminance of the color,
// in [0, 1]. Pure black is 0 and pure white is 1.
func (c Color) Luminance() float64 {
	return wcag.RelativeLuminance(c.Colorful())
}

// IsBright reports whether the color's luminance exceeds LuminanceThreshold.
func (c Color) IsBright() bool {
	return c.Luminance() > LuminanceThreshold
}

// IsDark reports whether the color is not bright.
func (c Color) IsDark() bool {
	return !c.IsBright()
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// in [1, 21]. Order does not matter.
func ContrastRatio(a, b Color) float64 {
	return wcag.ContrastRatio(a.Colorful(), b.Colorful())
}
