// Package wcag implements the relative luminance and contrast ratio
// formulas from the WCAG 2.0 accessibility guidelines.
//
// https://www.w3.org/TR/WCAG20/#relativeluminancedef
package wcag

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Channel weights for relative luminance.
const (
	redWeight   = 0.2126
	greenWeight = 0.7152
	blueWeight  = 0.0722
)

// linearize converts a gamma-compressed sRGB channel in [0, 1] to its
// linear-light value.
func linearize(coef float64) float64 {
	if coef <= 0.03928 {
		return coef / 12.92
	}
	return math.Pow((coef+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the relative luminance of c in [0, 1],
// where 0 is pure black and 1 is pure white.
func RelativeLuminance(c colorful.Color) float64 {
	r := linearize(c.R)
	g := linearize(c.G)
	b := linearize(c.B)

	return redWeight*r + greenWeight*g + blueWeight*b
}

// ContrastRatio returns the contrast ratio between a and b in [1, 21].
// The ratio is symmetric in its arguments.
func ContrastRatio(a, b colorful.Color) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}

	return (la + 0.05) / (lb + 0.05)
}
