package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadEggsposed loads the configuration of a variant.
// Search order: customPath -> ~/.arcade/configs/<variant>.yaml ->
// ./configs/<variant>.yaml -> embedded default -> hardcoded default.
// Only an unreadable or invalid customPath is an error.
func LoadEggsposed(variant, customPath string) (EggsposedConfig, error) {
	fallback, ok := DefaultFor(variant)
	if !ok {
		return EggsposedConfig{}, fmt.Errorf("config: unknown variant %q", variant)
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data, fallback)
		if err != nil {
			return fallback, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := variant + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data, fallback); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := parse(data, fallback); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(GetDefaultYAML(variant), fallback)
	if err != nil {
		return fallback, nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults, so a file may set only
// the keys it changes, then validates the result.
func parse(data []byte, base EggsposedConfig) (EggsposedConfig, error) {
	if len(data) == 0 {
		return base, fmt.Errorf("empty config")
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	if err := cfg.Validate(); err != nil {
		return base, err
	}
	return cfg, nil
}

// Validate reports values the game cannot run with.
func (c EggsposedConfig) Validate() error {
	switch {
	case c.Grid.Width < 8 || c.Grid.Height < 8:
		return fmt.Errorf("grid %dx%d is smaller than 8x8", c.Grid.Width, c.Grid.Height)
	case c.World.Extent <= 0:
		return fmt.Errorf("world.extent must be positive")
	case c.World.Candidates < 0:
		return fmt.Errorf("world.candidates must not be negative")
	case c.World.HiddenOutOf < 1 || c.World.EggOutOf < 1:
		return fmt.Errorf("world.hidden_out_of and world.egg_out_of must be at least 1")
	case len(c.World.EggColors) == 0:
		return fmt.Errorf("world.egg_colors is empty")
	case c.Camera.Mode != "pursuit" && c.Camera.Mode != "patrol":
		return fmt.Errorf("camera.mode %q (pursuit, patrol)", c.Camera.Mode)
	case c.Camera.Mode == "patrol" && len(c.Camera.Path) == 0:
		return fmt.Errorf("camera.path is required in patrol mode")
	case c.Spyglass.Mode != "mask" && c.Spyglass.Mode != "square":
		return fmt.Errorf("spyglass.mode %q (mask, square)", c.Spyglass.Mode)
	case c.Capture.Radius <= 0:
		return fmt.Errorf("capture.radius must be positive")
	case c.Timer.Ticks < 0:
		return fmt.Errorf("timer.ticks must not be negative")
	case c.Look.Palette != "meadow" && c.Look.Palette != "classic":
		return fmt.Errorf("look.palette %q (meadow, classic)", c.Look.Palette)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio.volume %v out of range 0..1", c.Audio.Volume)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
