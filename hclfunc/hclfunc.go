// Package hclfunc exposes the color operations as HCL functions, for
// embedding in configuration languages built on hashicorp/hcl.
package hclfunc

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/jsvensson/invert"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// InvertFunc returns an HCL function that inverts a color.
// Usage: invert("#282b35", false) or invert(palette.base, true)
func InvertFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Inverts a color channel-wise, or snaps it to black/white when bw is true",
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
			{
				Name: "bw",
				Type: cty.Bool,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := invert.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}

			return cty.StringVal(c.Invert(args[1].True())), nil
		},
	})
}

// LuminanceFunc returns an HCL function that computes relative luminance.
// Usage: luminance("#ffffff")
func LuminanceFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the WCAG relative luminance of a color (0.0 to 1.0)",
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := invert.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}

			return cty.NumberFloatVal(c.Luminance()), nil
		},
	})
}

// IsBrightFunc returns an HCL function that reports whether a color is bright.
// Usage: is_bright("#fafafa")
func IsBrightFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Reports whether a color's luminance is above the brightness threshold",
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
		},
		Type: function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := invert.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}

			return cty.BoolVal(c.IsBright()), nil
		},
	})
}

// IsDarkFunc returns an HCL function that reports whether a color is dark.
// Usage: is_dark("#282b35")
func IsDarkFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Reports whether a color's luminance is at or below the brightness threshold",
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
		},
		Type: function.StaticReturnType(cty.Bool),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := invert.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}

			return cty.BoolVal(c.IsDark()), nil
		},
	})
}

// ContrastFunc returns an HCL function that computes the contrast ratio
// between two colors.
// Usage: contrast("#000000", "#ffffff")
func ContrastFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Returns the WCAG contrast ratio between two colors (1.0 to 21.0)",
		Params: []function.Parameter{
			{
				Name: "a",
				Type: cty.String,
			},
			{
				Name: "b",
				Type: cty.String,
			},
		},
		Type: function.StaticReturnType(cty.Number),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			a, err := invert.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}

			b, err := invert.ParseHex(args[1].AsString())
			if err != nil {
				return cty.NilVal, err
			}

			return cty.NumberFloatVal(invert.ContrastRatio(a, b)), nil
		},
	})
}

// LightenFunc returns an HCL function that lightens a color.
// Usage: lighten("#282b35", 0.1)
func LightenFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Lightens a color toward white by the given amount (0.0 to 1.0)",
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
			{
				Name: "amount",
				Type: cty.Number,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			amount, _ := args[1].AsBigFloat().Float64()

			c, err := invert.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}

			return cty.StringVal(c.Lighten(amount).Hex()), nil
		},
	})
}

// DarkenFunc returns an HCL function that darkens a color.
// Usage: darken("#d7d4ca", 0.1)
func DarkenFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Darkens a color toward black by the given amount (0.0 to 1.0)",
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
			{
				Name: "amount",
				Type: cty.Number,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			amount, _ := args[1].AsBigFloat().Float64()

			c, err := invert.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}

			return cty.StringVal(c.Darken(amount).Hex()), nil
		},
	})
}

// HexFunc returns an HCL function that normalizes a color to canonical
// six-digit lowercase hex.
// Usage: hex("ABC")
func HexFunc() function.Function {
	return function.New(&function.Spec{
		Description: "Normalizes a color to #rrggbb form",
		Params: []function.Parameter{
			{
				Name: "color",
				Type: cty.String,
			},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
			c, err := invert.ParseHex(args[0].AsString())
			if err != nil {
				return cty.NilVal, err
			}

			return cty.StringVal(c.Hex()), nil
		},
	})
}

// Functions returns all color functions keyed by their HCL names.
func Functions() map[string]function.Function {
	return map[string]function.Function{
		"invert":    InvertFunc(),
		"luminance": LuminanceFunc(),
		"is_bright": IsBrightFunc(),
		"is_dark":   IsDarkFunc(),
		"contrast":  ContrastFunc(),
		"lighten":   LightenFunc(),
		"darken":    DarkenFunc(),
		"hex":       HexFunc(),
	}
}

// EvalContext returns an evaluation context with all color functions
// registered, ready for decoding HCL bodies.
func EvalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: Functions(),
	}
}
