// Package invert converts colors between hexadecimal and RGB forms and
// computes WCAG 2.0 relative luminance. Colors can be inverted channel
// by channel, or snapped to black or white for maximum contrast.
package invert

import (
	"fmt"
	"regexp"
)

// hexColor matches the accepted hex forms: 3 or 6 hex digits with an
// optional # prefix. Anything else, including surrounding whitespace,
// is rejected.
var hexColor = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// channelNames index the RGB triple for error reporting.
var channelNames = [3]string{"red", "green", "blue"}

// Color is an RGB color with 8-bit channels. Every representable value
// is a valid color.
type Color struct {
	R, G, B uint8
}

// ParseHex parses a hex color string like "#eb6f92" into a Color.
// It accepts 3- and 6-digit forms, with or without the leading #, in
// either case. Shorthand digits expand to their doubled pair, so "#abc"
// equals "#aabbcc". Malformed input fails with *InvalidColorFormatError.
func ParseHex(s string) (Color, error) {
	if !hexColor.MatchString(s) {
		return Color{}, &InvalidColorFormatError{Input: s}
	}

	digits := s
	if digits[0] == '#' {
		digits = digits[1:]
	}

	var r, g, b uint8
	switch len(digits) {
	case 3:
		if _, err := fmt.Sscanf(digits, "%1x%1x%1x", &r, &g, &b); err != nil {
			return Color{}, &InvalidColorFormatError{Input: s}
		}
		r, g, b = r*16+r, g*16+g, b*16+b
	case 6:
		if _, err := fmt.Sscanf(digits, "%02x%02x%02x", &r, &g, &b); err != nil {
			return Color{}, &InvalidColorFormatError{Input: s}
		}
	}

	return Color{R: r, G: g, B: b}, nil
}

// FromRGB builds a Color from a sequence of exactly 3 integers in
// red, green, blue order, each in [0, 255]. Anything else fails with
// *InvalidRGBError naming the first violated constraint.
func FromRGB(rgb []int) (Color, error) {
	if len(rgb) != 3 {
		return Color{}, &InvalidRGBError{
			RGB:    rgb,
			Reason: fmt.Sprintf("expected 3 channels, got %d", len(rgb)),
		}
	}
	for i, v := range rgb {
		if v < 0 {
			return Color{}, &InvalidRGBError{
				RGB:    rgb,
				Reason: fmt.Sprintf("%s channel is negative", channelNames[i]),
			}
		}
	}
	for i, v := range rgb {
		if v > 255 {
			return Color{}, &InvalidRGBError{
				RGB:    rgb,
				Reason: fmt.Sprintf("%s channel exceeds 255", channelNames[i]),
			}
		}
	}
	return Color{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2])}, nil
}

// RGB returns the channel values as integers, in red, green, blue order.
func (c Color) RGB() (r, g, b int) {
	return int(c.R), int(c.G), int(c.B)
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
// Channels render as exactly two lowercase digits, zero-padded.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HexBare returns the color as a hex string without leading #, e.g. "eb6f92".
func (c Color) HexBare() string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// RGBString returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// String implements fmt.Stringer, rendering the same form as Hex.
func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler, rendering the same form
// as Hex.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same
// forms as ParseHex.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
