package mindweaver

import (
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// FallbackColor is used for bubbles whose color string cannot be parsed.
var FallbackColor = Color{R: 0.6, G: 0.6, B: 0.6, A: 1}

// Colors the renderer uses for edges and outlines.
var (
	EdgeColor    = MustParseColor("#888888")
	OutlineColor = MustParseColor("#333333")
)

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#808080",
	"grey":    "#808080",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"orange":  "#ffa500",
	"purple":  "#800080",
	"pink":    "#ffc0cb",
	"teal":    "#008080",
	"navy":    "#000080",
	"maroon":  "#800000",
	"olive":   "#808000",
	"silver":  "#c0c0c0",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
}

// ParseColor converts a CSS color string (#rgb, #rrggbb or a basic color
// keyword) into a Color. It reports false when the string is not understood.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if s == "transparent" {
		return Color{}, true
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, true
}

// MustParseColor is like ParseColor but panics on invalid input. Use it only
// for constants.
func MustParseColor(s string) Color {
	c, ok := ParseColor(s)
	if !ok {
		panic("mindweaver: invalid color " + s)
	}
	return c
}

// fillColor resolves a bubble's color string, falling back to gray.
func fillColor(s string) Color {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return FallbackColor
}
