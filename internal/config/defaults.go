package config

import (
	_ "embed"
)

//go:embed defaults/eggsposed.yaml
var defaultEggsposedYAML []byte

//go:embed defaults/eggsposed_classic.yaml
var defaultClassicYAML []byte

// Variant IDs with a configuration.
const (
	VariantMeadow  = "eggsposed"
	VariantClassic = "eggsposed_classic"
)

// DefaultEggsposedConfig returns the hardcoded meadow configuration.
func DefaultEggsposedConfig() EggsposedConfig {
	return EggsposedConfig{
		Grid: GridConfig{Width: 32, Height: 32},
		World: WorldConfig{
			Extent:        150,
			Candidates:    100,
			MinSeparation: 12,
			Sprites:       true,
			HiddenOutOf:   2,
			EggWeight:     1,
			EggOutOf:      3,
			MinEggs:       16,
			EggColors:     []string{"#c767ea", "#56e2e2", "#ef8c45", "#e26379", "#0094ff"},
		},
		Camera: CameraConfig{
			Mode:      "pursuit",
			Speed:     0.2,
			SlowSpeed: 0.001,
			Ease:      0.025,
			SlowEase:  0.01,
		},
		Spyglass: SpyglassConfig{Mode: "mask", Falloff: 1.5},
		Capture: CaptureConfig{
			Radius:      4,
			WinEggs:     16,
			SniffOnMiss: true,
			FlashTicks:  40,
			Cues:        CuesConfig{Egg: "egg", Win: "win", Leprechaun: "lepLaugh"},
		},
		Timer:      TimerConfig{Ticks: 7500},
		Leprechaun: LeprechaunConfig{Steals: true, Color: "#00cc00"},
		Look:       LookConfig{Palette: "meadow", EggTall: true, HUD: true},
		Audio:      AudioConfig{Enabled: true, Music: true, Volume: 1.0},
	}
}

// DefaultClassicConfig returns the hardcoded classic configuration.
func DefaultClassicConfig() EggsposedConfig {
	return EggsposedConfig{
		Grid: GridConfig{Width: 32, Height: 32},
		World: WorldConfig{
			Extent:        110,
			Candidates:    100,
			MinSeparation: 8,
			HiddenOutOf:   2,
			EggWeight:     2,
			EggOutOf:      3,
			EggColors:     []string{"#00ffff"},
		},
		Camera: CameraConfig{
			Mode:  "patrol",
			Speed: 0.2,
			Path: []PointXY{
				{0, 0}, {110, 10}, {120, 50}, {70, 32}, {30, 30}, {120, 80},
				{105, 110}, {40, 60}, {65, 110}, {10, 100}, {20, 70},
			},
		},
		Spyglass: SpyglassConfig{Mode: "square", Radius: 2, Tint: "#00ffff", TintAmount: 0.5},
		Capture: CaptureConfig{
			Radius:     2.5,
			FlashTicks: 40,
			Cues:       CuesConfig{Egg: "fx_pop", Win: "fx_tada", Leprechaun: "fx_hoot"},
		},
		Leprechaun: LeprechaunConfig{Color: "#00ff00"},
		Look:       LookConfig{Palette: "classic"},
		Audio:      AudioConfig{Enabled: true, Volume: 1.0},
	}
}

// DefaultFor returns the hardcoded configuration of a variant.
func DefaultFor(variant string) (EggsposedConfig, bool) {
	switch variant {
	case VariantMeadow:
		return DefaultEggsposedConfig(), true
	case VariantClassic:
		return DefaultClassicConfig(), true
	default:
		return EggsposedConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantMeadow:
		return defaultEggsposedYAML
	case VariantClassic:
		return defaultClassicYAML
	default:
		return nil
	}
}
