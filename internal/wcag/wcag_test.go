package wcag

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestRelativeLuminance(t *testing.T) {
	tests := []struct {
		name  string
		color colorful.Color
		want  float64
	}{
		{"white", colorful.Color{R: 1, G: 1, B: 1}, 1.0},
		{"black", colorful.Color{R: 0, G: 0, B: 0}, 0.0},
		{"pure red", colorful.Color{R: 1, G: 0, B: 0}, 0.2126},
		{"pure green", colorful.Color{R: 0, G: 1, B: 0}, 0.7152},
		{"pure blue", colorful.Color{R: 0, G: 0, B: 1}, 0.0722},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeLuminance(tt.color)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("RelativeLuminance(%v) = %v, want %v", tt.color, got, tt.want)
			}
		})
	}
}

func TestRelativeLuminanceMonotonic(t *testing.T) {
	prev := -1.0
	for v := 0.0; v <= 1.0; v += 0.05 {
		gray := colorful.Color{R: v, G: v, B: v}
		lum := RelativeLuminance(gray)
		if lum <= prev {
			t.Fatalf("RelativeLuminance(%v) = %v, not above %v", gray, lum, prev)
		}
		prev = lum
	}
}

func TestContrastRatio(t *testing.T) {
	black := colorful.Color{R: 0, G: 0, B: 0}
	white := colorful.Color{R: 1, G: 1, B: 1}

	if got := ContrastRatio(black, white); math.Abs(got-21.0) > 1e-9 {
		t.Errorf("ContrastRatio(black, white) = %v, want 21", got)
	}
	if got := ContrastRatio(white, black); math.Abs(got-21.0) > 1e-9 {
		t.Errorf("ContrastRatio(white, black) = %v, want 21", got)
	}
	if got := ContrastRatio(white, white); got != 1.0 {
		t.Errorf("ContrastRatio(white, white) = %v, want 1", got)
	}
}
