package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted presets.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. Empty means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyFixed, nil
	}
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (easy, normal, hard, fixed)", s)
}

// presetScale holds the timer and capture radius multipliers of a preset.
type presetScale struct {
	timer  float64
	radius float64
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {timer: 1.5, radius: 1.25},
	DifficultyNormal: {timer: 1.0, radius: 1.0},
	DifficultyHard:   {timer: 0.6, radius: 0.75},
}

// ApplyEggsposedPreset scales the timer and capture radius. The fixed
// preset leaves the file values untouched; untimed variants stay untimed.
func ApplyEggsposedPreset(cfg *EggsposedConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}
	if cfg.Timer.Ticks > 0 {
		cfg.Timer.Ticks = int(math.Round(float64(cfg.Timer.Ticks) * scale.timer))
	}
	cfg.Capture.Radius = clampF(cfg.Capture.Radius*scale.radius, 1, 10)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
