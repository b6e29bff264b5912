package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit pixel color.
type RGB struct {
	R, G, B uint8
}

// Hex builds an RGB from a 0xRRGGBB integer.
func Hex(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// ParseHex parses a "#rrggbb" string.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// String returns the color as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Uint32 returns the color as 0xRRGGBB.
func (c RGB) Uint32() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Near reports whether every channel of c is within tol of o.
func (c RGB) Near(o RGB, tol int) bool {
	return absDiff(c.R, o.R) <= tol && absDiff(c.G, o.G) <= tol && absDiff(c.B, o.B) <= tol
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Blend linearly interpolates from c1 toward c2 by factor, clamped to [0, 1].
// A factor of 0 returns c1 and 1 returns c2.
func Blend(c1, c2 RGB, factor float64) RGB {
	factor = ClampF(factor, 0, 1)
	r, g, b := c1.colorful().BlendRgb(c2.colorful(), factor).RGB255()
	return RGB{R: r, G: g, B: b}
}

// Palette entries shared by games and hosts.
var (
	ColorBlack    = Hex(0x000000)
	ColorWhite    = Hex(0xFFFFFF)
	ColorRed      = Hex(0xFF0000)
	ColorGreen    = Hex(0x00FF00)
	ColorCyan     = Hex(0x00FFFF)
	ColorOrange   = Hex(0xFF8000)
	ColorGray     = Hex(0x808080)
	ColorGrayDark = Hex(0x404040)
)
