package assets

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/eggsposed/internal/games/eggsposed/core"
)

func TestLoadEmbedded(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if a.Lens == nil {
		t.Fatal("lens missing")
	}
	if a.Lens.Width != 7 || a.Lens.Height != 7 {
		t.Errorf("lens is %dx%d, expected 7x7", a.Lens.Width, a.Lens.Height)
	}
	if a.Lens.Alpha(3, 3) == 0 {
		t.Error("lens center must be opaque for the reveal mask")
	}
	if a.Lens.Alpha(0, 0) != 0 {
		t.Error("lens corner should be transparent")
	}

	for i, img := range a.Sprites {
		if img == nil {
			t.Errorf("sprite %d (%s) missing", i, spriteFiles[i])
		}
	}
}

func TestSpritesCarrySniffColors(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		decor core.Decor
		tile  core.Tile
	}{
		{core.DecorChick, core.TileChick},
		{core.DecorBunny, core.TileBunny},
	}

	for _, tt := range tests {
		t.Run(tt.decor.String(), func(t *testing.T) {
			img := a.Sprite(tt.decor)
			if img == nil {
				t.Fatal("sprite missing")
			}
			found := false
			for y := 0; y < img.Height; y++ {
				for x := 0; x < img.Width; x++ {
					c, alpha := img.At(x, y)
					if alpha == 255 && core.Classify(c) == tt.tile {
						found = true
					}
				}
			}
			if !found {
				t.Errorf("%s sprite has no opaque %s pixel", tt.decor, tt.tile)
			}
		})
	}
}

func TestParseSprite(t *testing.T) {
	data := []byte(`
name: test
palette:
  a: {color: "#ff0000"}
  b: {color: "#00ff00", alpha: 128}
pixels:
  - "a.b"
  - "..a"
`)
	s, err := ParseSprite(data)
	if err != nil {
		t.Fatalf("ParseSprite failed: %v", err)
	}
	if s.Name != "test" || s.Image.Width != 3 || s.Image.Height != 2 {
		t.Fatalf("sprite = %q %dx%d", s.Name, s.Image.Width, s.Image.Height)
	}

	c, a := s.Image.At(0, 0)
	if c != (core.RGB{R: 255}) || a != 255 {
		t.Errorf("pixel (0,0) = %v @%d", c, a)
	}
	if _, a := s.Image.At(1, 0); a != 0 {
		t.Errorf("'.' should be transparent, alpha %d", a)
	}
	if _, a := s.Image.At(2, 0); a != 128 {
		t.Errorf("pixel (2,0) alpha = %d, expected 128", a)
	}
}

func TestParseSpriteErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no rows", "name: x\npalette: {}\npixels: []\n"},
		{"ragged rows", "name: x\npalette:\n  a: {color: \"#000000\"}\npixels: [\"aa\", \"a\"]\n"},
		{"unknown key", "name: x\npalette:\n  a: {color: \"#000000\"}\npixels: [\"ab\"]\n"},
		{"bad color", "name: x\npalette:\n  a: {color: \"green\"}\npixels: [\"a\"]\n"},
		{"bad alpha", "name: x\npalette:\n  a: {color: \"#000000\", alpha: 300}\npixels: [\"a\"]\n"},
		{"long key", "name: x\npalette:\n  ab: {color: \"#000000\"}\npixels: [\"a\"]\n"},
		{"invalid yaml", "pixels: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSprite([]byte(tt.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestOverlay(t *testing.T) {
	base, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	f, err := os.Create(filepath.Join(dir, "obj2.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	if err := os.WriteFile(filepath.Join(dir, "lens.png"), []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Overlay(base, dir)
	if err == nil {
		t.Error("expected an error for the broken lens file")
	}
	if got.Lens != base.Lens {
		t.Error("broken lens file should keep the built-in lens")
	}
	chick := got.Sprite(core.DecorChick)
	if chick == nil || chick.Width != 2 {
		t.Fatal("obj2.png should replace the chick sprite")
	}
	if c, a := chick.At(0, 0); c != (core.RGB{R: 10, G: 20, B: 30}) || a != 255 {
		t.Errorf("overlaid pixel = %v @%d", c, a)
	}
	if got.Sprite(core.DecorFlower) != base.Sprite(core.DecorFlower) {
		t.Error("missing files should keep built-in sprites")
	}
}

func TestOverlayEmptyDir(t *testing.T) {
	base, _ := Load()
	got, err := Overlay(base, "")
	if err != nil || got.Lens != base.Lens {
		t.Errorf("empty dir should be a no-op, err %v", err)
	}
}
