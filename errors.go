package invert

import "fmt"

// InvalidColorFormatError reports a string that is not a valid hex color.
// Input carries the offending string for diagnostics.
type InvalidColorFormatError struct {
	Input string
}

func (e *InvalidColorFormatError) Error() string {
	return fmt.Sprintf("invalid hex color %q: must be 3 or 6 hex digits with an optional # prefix", e.Input)
}

// InvalidRGBError reports a sequence that is not a valid RGB triple.
// RGB carries the offending input and Reason names the first violated
// constraint.
type InvalidRGBError struct {
	RGB    []int
	Reason string
}

func (e *InvalidRGBError) Error() string {
	return fmt.Sprintf("invalid rgb triple %v: %s", e.RGB, e.Reason)
}
