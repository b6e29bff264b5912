// Package assets provides the built-in Egg-sposed images: the spyglass lens
// and the decor sprites. Images can be replaced with PNG files from disk.
// This package depends on core but core does not depend on assets.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	platformcore "github.com/vovakirdan/eggsposed/internal/core"
	"github.com/vovakirdan/eggsposed/internal/games/eggsposed/core"
)

//go:embed sprites/*.yaml
var spriteFS embed.FS

// spriteFiles lists decor sprite files in sprite index order.
var spriteFiles = [core.DecorVariants]string{
	"flower", "chick", "bunny", "bush", "rock", "mushroom", "basket",
}

// Load parses the embedded images.
func Load() (core.Assets, error) {
	var a core.Assets

	lens, err := loadEmbedded("lens")
	if err != nil {
		return a, err
	}
	a.Lens = lens

	for i, name := range spriteFiles {
		img, err := loadEmbedded(name)
		if err != nil {
			return a, err
		}
		a.Sprites[i] = img
	}
	return a, nil
}

func loadEmbedded(name string) (*platformcore.Image, error) {
	data, err := spriteFS.ReadFile("sprites/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}
	s, err := ParseSprite(data)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}
	return s.Image, nil
}

// Overlay replaces images with PNG files found in dir: lens.png and
// obj1.png through obj7.png in sprite index order. Missing files keep the
// current image; unreadable ones are reported and skipped.
func Overlay(a core.Assets, dir string) (core.Assets, error) {
	if dir == "" {
		return a, nil
	}

	var errs []error
	if img, err := loadPNG(filepath.Join(dir, "lens.png")); err != nil {
		errs = append(errs, err)
	} else if img != nil {
		a.Lens = img
	}

	for i := range a.Sprites {
		img, err := loadPNG(filepath.Join(dir, fmt.Sprintf("obj%d.png", i+1)))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if img != nil {
			a.Sprites[i] = img
		}
	}
	return a, errors.Join(errs...)
}

// loadPNG returns nil without error when the file does not exist.
func loadPNG(path string) (*platformcore.Image, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return platformcore.ImageFrom(src), nil
}
