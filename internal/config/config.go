// Package config provides YAML-based game configuration loading and
// difficulty presets for Egg-sposed.
package config

// EggsposedConfig contains all configuration for one Egg-sposed variant.
type EggsposedConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	World      WorldConfig      `yaml:"world"`
	Camera     CameraConfig     `yaml:"camera"`
	Spyglass   SpyglassConfig   `yaml:"spyglass"`
	Capture    CaptureConfig    `yaml:"capture"`
	Timer      TimerConfig      `yaml:"timer"`
	Leprechaun LeprechaunConfig `yaml:"leprechaun"`
	Look       LookConfig       `yaml:"look"`
	Audio      AudioConfig      `yaml:"audio"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// GridConfig is the pixel grid size.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WorldConfig defines how a round is populated.
type WorldConfig struct {
	Extent        float64  `yaml:"extent"`
	Candidates    int      `yaml:"candidates"`
	MinSeparation float64  `yaml:"min_separation"`
	Sprites       bool     `yaml:"sprites"`
	HiddenOutOf   int      `yaml:"hidden_out_of"` // 1 in N objects hides something
	EggWeight     int      `yaml:"egg_weight"`
	EggOutOf      int      `yaml:"egg_out_of"`
	MinEggs       int      `yaml:"min_eggs"`
	EggColors     []string `yaml:"egg_colors"` // "#rrggbb"
}

// CameraConfig selects and tunes the camera.
type CameraConfig struct {
	Mode      string    `yaml:"mode"` // "pursuit" or "patrol"
	Speed     float64   `yaml:"speed"`
	SlowSpeed float64   `yaml:"slow_speed"`
	Ease      float64   `yaml:"ease"`
	SlowEase  float64   `yaml:"slow_ease"`
	Path      []PointXY `yaml:"path"`
}

// PointXY is a world point.
type PointXY struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SpyglassConfig selects the reveal strategy.
type SpyglassConfig struct {
	Mode       string  `yaml:"mode"` // "mask" or "square"
	Radius     int     `yaml:"radius"`
	Tint       string  `yaml:"tint"`
	TintAmount float64 `yaml:"tint_amount"`
	Falloff    float64 `yaml:"falloff"`
}

// CaptureConfig defines click resolution.
type CaptureConfig struct {
	Radius      float64    `yaml:"radius"`
	WinEggs     int        `yaml:"win_eggs"` // 0 = every egg placed
	SniffOnMiss bool       `yaml:"sniff_on_miss"`
	FlashTicks  int        `yaml:"flash_ticks"`
	Cues        CuesConfig `yaml:"cues"`
}

// CuesConfig names the cues played on captures.
type CuesConfig struct {
	Egg        string `yaml:"egg"`
	Win        string `yaml:"win"`
	Leprechaun string `yaml:"leprechaun"`
}

// TimerConfig defines the round clock.
type TimerConfig struct {
	Ticks int `yaml:"ticks"` // 0 = untimed
}

// LeprechaunConfig defines leprechaun behavior.
type LeprechaunConfig struct {
	Steals bool   `yaml:"steals"`
	Color  string `yaml:"color"`
}

// LookConfig holds drawing choices.
type LookConfig struct {
	Palette string `yaml:"palette"` // "meadow" or "classic"
	EggTall bool   `yaml:"egg_tall"`
	HUD     bool   `yaml:"hud"`
}

// AudioConfig controls the sound output.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Music   bool    `yaml:"music"`
	Volume  float64 `yaml:"volume"` // master volume, 0..1
}

// AssetsConfig points at replacement images.
type AssetsConfig struct {
	Dir string `yaml:"dir"` // lens.png, obj1.png..obj7.png; empty uses built-ins
}
