package eggsposed

import (
	"fmt"

	"github.com/vovakirdan/eggsposed/internal/config"
	platformcore "github.com/vovakirdan/eggsposed/internal/core"
	"github.com/vovakirdan/eggsposed/internal/games/eggsposed/core"
)

// Options converts a loaded configuration into round options.
func Options(cfg config.EggsposedConfig) (core.Options, error) {
	if err := cfg.Validate(); err != nil {
		return core.Options{}, err
	}

	colors := make([]core.RGB, 0, len(cfg.World.EggColors))
	for _, s := range cfg.World.EggColors {
		c, err := platformcore.ParseHex(s)
		if err != nil {
			return core.Options{}, fmt.Errorf("world.egg_colors: %w", err)
		}
		colors = append(colors, c)
	}

	cues, err := cueSet(cfg.Capture.Cues)
	if err != nil {
		return core.Options{}, err
	}

	lep, err := platformcore.ParseHex(cfg.Leprechaun.Color)
	if err != nil {
		return core.Options{}, fmt.Errorf("leprechaun.color: %w", err)
	}

	opts := core.Options{
		Viewport: core.Viewport{W: cfg.Grid.Width, H: cfg.Grid.Height},
		Populate: core.PopulateParams{
			Candidates:    cfg.World.Candidates,
			Extent:        cfg.World.Extent,
			MinSeparation: cfg.World.MinSeparation,
			Sprites:       cfg.World.Sprites,
			HiddenOutOf:   cfg.World.HiddenOutOf,
			EggWeight:     cfg.World.EggWeight,
			EggOutOf:      cfg.World.EggOutOf,
			MinEggs:       cfg.World.MinEggs,
			EggColors:     colors,
		},
		Camera: core.CameraOptions{
			Mode:      core.CameraPursuit,
			Speed:     cfg.Camera.Speed,
			SlowSpeed: cfg.Camera.SlowSpeed,
			Ease:      cfg.Camera.Ease,
			SlowEase:  cfg.Camera.SlowEase,
		},
		Reveal: core.RevealOptions{
			Mode:       core.RevealMask,
			Radius:     cfg.Spyglass.Radius,
			TintAmount: cfg.Spyglass.TintAmount,
			Falloff:    cfg.Spyglass.Falloff,
		},
		TimerTicks: cfg.Timer.Ticks,
		Rules: core.Rules{
			CaptureRadius: cfg.Capture.Radius,
			WinEggs:       cfg.Capture.WinEggs,
			Steals:        cfg.Leprechaun.Steals,
			SniffOnMiss:   cfg.Capture.SniffOnMiss,
			HUD:           cfg.Look.HUD,
			FlashTicks:    cfg.Capture.FlashTicks,
			Cues:          cues,
		},
		Look: core.Look{
			Palette:         core.PaletteMeadow,
			EggTall:         cfg.Look.EggTall,
			LeprechaunColor: lep,
			BlockColor:      platformcore.Blend(platformcore.ColorGreen, platformcore.ColorBlack, 0.6),
		},
	}

	if cfg.Camera.Mode == "patrol" {
		opts.Camera.Mode = core.CameraPatrol
		for _, p := range cfg.Camera.Path {
			opts.Camera.Path = append(opts.Camera.Path, core.Vec{X: p.X, Y: p.Y})
		}
	}
	if cfg.Spyglass.Mode == "square" {
		opts.Reveal.Mode = core.RevealSquare
		if cfg.Spyglass.Tint != "" {
			tint, err := platformcore.ParseHex(cfg.Spyglass.Tint)
			if err != nil {
				return core.Options{}, fmt.Errorf("spyglass.tint: %w", err)
			}
			opts.Reveal.Tint = tint
		}
	}
	if cfg.Look.Palette == "classic" {
		opts.Look.Palette = core.PaletteClassic
	}
	return opts, nil
}

func cueSet(c config.CuesConfig) (core.CueSet, error) {
	var set core.CueSet
	for _, f := range []struct {
		key  string
		name string
		dst  *core.Cue
	}{
		{"egg", c.Egg, &set.Egg},
		{"win", c.Win, &set.Win},
		{"leprechaun", c.Leprechaun, &set.Leprechaun},
	} {
		cue, ok := platformcore.ParseCue(f.name)
		if !ok {
			return set, fmt.Errorf("capture.cues.%s: unknown cue %q", f.key, f.name)
		}
		*f.dst = cue
	}
	return set, nil
}
