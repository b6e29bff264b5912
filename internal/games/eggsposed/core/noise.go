package core

import (
	"math"

	platformcore "github.com/vovakirdan/eggsposed/internal/core"
)

// Noise is a cheap seedable hash in [0, 1): frac(sin(seed) * 10000).
// It is a pure function of seed and shares no state with Random.
func Noise(seed float64) float64 {
	x := math.Sin(seed) * 10000
	return x - math.Floor(x)
}

// Palette selects the background coloring.
type Palette int

const (
	PaletteMeadow  Palette = iota // pale grass
	PaletteClassic                // saturated green
)

// String returns the palette name.
func (p Palette) String() string {
	switch p {
	case PaletteMeadow:
		return "meadow"
	case PaletteClassic:
		return "classic"
	default:
		return "unknown"
	}
}

// BackgroundTile returns the background color of the world tile at p.
func BackgroundTile(p Vec, pal Palette) RGB {
	v := Noise(math.Sin(p.X)+p.Y) * 12
	switch pal {
	case PaletteClassic:
		return RGB{G: channel(v + 127)}
	default:
		return RGB{R: channel(v/2 + 160), G: channel(v + 220), B: 140}
	}
}

func channel(v float64) uint8 {
	return uint8(platformcore.ClampF(v, 0, 255))
}

// Tile is the semantic tag of a sampled pixel.
type Tile int

const (
	TilePlain Tile = iota
	TileChick
	TileBunny
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TilePlain:
		return "plain"
	case TileChick:
		return "chick"
	case TileBunny:
		return "bunny"
	default:
		return "unknown"
	}
}

// Colors the click handler recognises, and the per-channel tolerance.
var (
	ChickColor = RGB{R: 206, G: 248, B: 234}
	BunnyColor = RGB{R: 205, G: 243, B: 243}
)

const sniffTolerance = 2

// Classify tags a rendered color. Chick is checked before bunny.
func Classify(c RGB) Tile {
	switch {
	case c.Near(ChickColor, sniffTolerance):
		return TileChick
	case c.Near(BunnyColor, sniffTolerance):
		return TileBunny
	default:
		return TilePlain
	}
}

// TileTag returns the tag of the bare background at world point p.
// No palette produces chick or bunny colors, so this is always TilePlain;
// tests use it to guard palette changes.
func TileTag(p Vec, pal Palette) Tile {
	return Classify(BackgroundTile(p, pal))
}
