package assets

import (
	"fmt"

	"gopkg.in/yaml.v3"

	platformcore "github.com/vovakirdan/eggsposed/internal/core"
)

// YAMLSprite represents the YAML structure of a sprite file.
// Each character of a pixel row is a palette key; '.' is transparent.
type YAMLSprite struct {
	Name    string                      `yaml:"name"`
	Palette map[string]YAMLPaletteEntry `yaml:"palette"`
	Pixels  []string                    `yaml:"pixels"`
}

// YAMLPaletteEntry is one palette color. Alpha defaults to opaque.
type YAMLPaletteEntry struct {
	Color string `yaml:"color"`
	Alpha *int   `yaml:"alpha,omitempty"`
}

// Sprite is a parsed sprite.
type Sprite struct {
	Name  string
	Image *platformcore.Image
}

type swatch struct {
	c platformcore.RGB
	a uint8
}

// ParseSprite parses a YAML sprite file.
func ParseSprite(data []byte) (Sprite, error) {
	var ys YAMLSprite
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Sprite{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if len(ys.Pixels) == 0 {
		return Sprite{}, fmt.Errorf("sprite %q: no pixel rows", ys.Name)
	}

	palette := make(map[rune]swatch, len(ys.Palette))
	for key, entry := range ys.Palette {
		r := []rune(key)
		if len(r) != 1 || r[0] == '.' {
			return Sprite{}, fmt.Errorf("sprite %q: palette key %q must be one character other than '.'", ys.Name, key)
		}
		c, err := platformcore.ParseHex(entry.Color)
		if err != nil {
			return Sprite{}, fmt.Errorf("sprite %q: palette %q: %w", ys.Name, key, err)
		}
		a := 255
		if entry.Alpha != nil {
			a = *entry.Alpha
		}
		if a < 0 || a > 255 {
			return Sprite{}, fmt.Errorf("sprite %q: palette %q: alpha %d out of range", ys.Name, key, a)
		}
		palette[r[0]] = swatch{c: c, a: uint8(a)}
	}

	width := len([]rune(ys.Pixels[0]))
	img := platformcore.NewImage(width, len(ys.Pixels))
	for y, row := range ys.Pixels {
		runes := []rune(row)
		if len(runes) != width {
			return Sprite{}, fmt.Errorf("sprite %q: row %d is %d wide, expected %d", ys.Name, y, len(runes), width)
		}
		for x, ch := range runes {
			if ch == '.' {
				continue
			}
			sw, ok := palette[ch]
			if !ok {
				return Sprite{}, fmt.Errorf("sprite %q: row %d: unknown palette key %q", ys.Name, y, ch)
			}
			img.Set(x, y, sw.c, sw.a)
		}
	}

	return Sprite{Name: ys.Name, Image: img}, nil
}
