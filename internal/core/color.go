package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Material Design colours used by the built-in icon styles.
var (
	Transparent = color.RGBA{}
	Green500    = color.RGBA{R: 76, G: 175, B: 80, A: 255} // #4CAF50
	Red500      = color.RGBA{R: 244, G: 67, B: 54, A: 255} // #F44336
)

// ParseHex parses "#RRGGBB" or "#RRGGBBAA" (leading '#' optional).
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("core: invalid hex colour %q", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("core: invalid hex colour %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// MustHex is like ParseHex but panics on malformed input.
// Intended for package-level style definitions.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#RRGGBB", or "#RRGGBBAA" when not fully opaque.
func Hex(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
