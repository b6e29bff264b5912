// Package eggsposed provides the Egg-sposed hidden-object game for the
// arcade: spot eggs through a spyglass while the camera drifts over a
// procedurally generated meadow.
package eggsposed

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eggsposed/internal/config"
	platformcore "github.com/vovakirdan/eggsposed/internal/core"
	"github.com/vovakirdan/eggsposed/internal/games/eggsposed/assets"
	"github.com/vovakirdan/eggsposed/internal/games/eggsposed/core"
	"github.com/vovakirdan/eggsposed/internal/registry"
)

// Score weights.
const (
	PointsPerEgg = 100
)

// Package-level variables for configuration
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger routes game events to l. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(config.VariantMeadow, func() registry.Game {
		return New(config.VariantMeadow)
	})
	registry.Register(config.VariantClassic, func() registry.Game {
		return New(config.VariantClassic)
	})
}

// Game adapts a core round to the arcade platform.
type Game struct {
	variant string
	cfg     config.EggsposedConfig
	assets  core.Assets
	state   *core.State
	seed    int64
	paused  bool
	runtime platformcore.RuntimeConfig

	// frame is the last rendered screen; misses sample it
	frame *platformcore.Screen
	ended bool
}

// New creates a game for a registered variant.
func New(variant string) *Game {
	return &Game{variant: variant}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == config.VariantClassic {
		return "Egg-sposed Classic"
	}
	return "Egg-sposed"
}

// Size returns the pixel grid size.
func (g *Game) Size() (w, h int) {
	if g.state == nil {
		return 32, 32
	}
	return g.state.Viewport.W, g.state.Viewport.H
}

// Reset loads the configuration and builds a new round.
func (g *Game) Reset(runtime platformcore.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadEggsposed(g.variant, configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "variant", g.variant, "err", err)
	}
	if difficultyPreset != "" {
		config.ApplyEggsposedPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	opts, err := Options(cfg)
	if err != nil {
		logger.Warn("invalid config, using defaults", "variant", g.variant, "err", err)
		opts = defaultOptions(g.variant)
	}

	if g.assets.Lens == nil {
		g.assets = loadAssets(cfg.Assets.Dir)
	}

	g.seed = runtime.Seed
	if g.seed == 0 {
		g.seed = time.Now().UnixNano()
	}

	audio := runtime.Audio
	if audio == nil {
		audio = platformcore.NopAudio{}
	}

	g.state = core.New(opts, g.assets, core.Capabilities{
		Audio: audio,
		Rand:  rand.New(rand.NewSource(g.seed)),
	})
	g.paused = false
	g.ended = false
	g.frame = nil

	if cfg.Audio.Music {
		audio.Play(platformcore.CueMusic, core.CueVolume(platformcore.CueMusic))
	}

	logger.Info("round started",
		"variant", g.variant,
		"seed", g.seed,
		"eggs", g.state.World.EggCount(),
		"hidden", g.state.World.HiddenCount(),
		"win", g.state.Rules.WinEggs,
	)
}

func defaultOptions(variant string) core.Options {
	if variant == config.VariantClassic {
		return core.ClassicOptions()
	}
	return core.MeadowOptions()
}

func loadAssets(dir string) core.Assets {
	a, err := assets.Load()
	if err != nil {
		logger.Error("built-in assets failed to load", "err", err)
		return core.Assets{}
	}
	a, err = assets.Overlay(a, dir)
	if err != nil {
		logger.Warn("asset overlay incomplete", "dir", dir, "err", err)
	}
	return a
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	if g.state == nil {
		return platformcore.StepResult{State: g.State()}
	}

	if g.ended {
		if in.Has(platformcore.ActionRestart) {
			g.Reset(g.runtime)
		}
		return platformcore.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(platformcore.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return platformcore.StepResult{State: g.State()}
	}

	g.state.Tick()
	g.checkEnd()

	return platformcore.StepResult{State: g.State()}
}

// Pointer delivers a pointer event. Clicks are ignored while paused or
// after the round ends; the spyglass always follows the pointer.
func (g *Game) Pointer(ev platformcore.PointerEvent) {
	if g.state == nil {
		return
	}

	switch ev.Kind {
	case platformcore.PointerEnter:
		g.state.PointerEnter(ev.Pos)
	case platformcore.PointerClick:
		if g.paused || g.ended {
			return
		}
		var frame core.Sampler
		if g.frame != nil {
			frame = g.frame
		}
		e := g.state.Click(ev.Pos, frame)
		if e != core.EventNone {
			logger.Debug("click", "x", ev.Pos.X, "y", ev.Pos.Y, "event", e, "eggs", len(g.state.Eggs))
		}
		g.checkEnd()
	}
}

// checkEnd freezes the round once it is won or lost.
func (g *Game) checkEnd() {
	if g.ended || g.state.Outcome == core.OutcomePlaying {
		return
	}
	g.ended = true
	logger.Info("round over",
		"variant", g.variant,
		"outcome", g.state.Outcome,
		"eggs", len(g.state.Eggs),
		"seconds_left", g.secondsLeft(),
		"score", g.score(),
	)
}

// Render draws the round into dst and remembers dst for color sniffing.
func (g *Game) Render(dst *platformcore.Screen) {
	if g.state == nil {
		return
	}
	w, h := g.Size()
	if dst.Width() != w || dst.Height() != h {
		dst.Resize(w, h)
	}
	g.state.Render(dst, g.assets)
	g.frame = dst
}

// State returns the platform view of the round.
func (g *Game) State() platformcore.GameState {
	if g.state == nil {
		return platformcore.GameState{Status: g.Title()}
	}
	return platformcore.GameState{
		Score:       g.score(),
		GameOver:    g.ended,
		Won:         g.state.Outcome == core.OutcomeWon,
		Paused:      g.paused,
		Eggs:        len(g.state.Eggs),
		SecondsLeft: g.secondsLeft(),
		Seed:        g.seed,
		Status:      g.status(),
	}
}

func (g *Game) secondsLeft() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return g.state.Clock.Remaining / rate
}

func (g *Game) score() int {
	s := len(g.state.Eggs) * PointsPerEgg
	if g.state.Outcome == core.OutcomeWon {
		s += g.secondsLeft()
	}
	return s
}

func (g *Game) status() string {
	switch {
	case g.state.Outcome == core.OutcomeWon:
		return fmt.Sprintf("%s - found %d eggs!", g.Title(), len(g.state.Eggs))
	case g.state.Outcome == core.OutcomeLost:
		return fmt.Sprintf("%s - time's up with %d/%d eggs", g.Title(), len(g.state.Eggs), g.state.Rules.WinEggs)
	case g.paused:
		return fmt.Sprintf("%s - paused", g.Title())
	case g.state.Clock.Timed():
		return fmt.Sprintf("%s - eggs %d/%d - %ds", g.Title(), len(g.state.Eggs), g.state.Rules.WinEggs, g.secondsLeft())
	default:
		return fmt.Sprintf("%s - eggs %d/%d", g.Title(), len(g.state.Eggs), g.state.Rules.WinEggs)
	}
}
