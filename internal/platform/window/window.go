// Package window hosts a game in a native window using Ebitengine.
// The game grid is the logical screen; Ebitengine scales it to fit the
// window, so cursor positions arrive in grid pixels.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/eggsposed/internal/core"
	"github.com/vovakirdan/eggsposed/internal/registry"
	"github.com/vovakirdan/eggsposed/internal/storage"
)

// DefaultScale is the window size in screen pixels per grid pixel.
const DefaultScale = 16

// Input is one tick's worth of window input.
type Input struct {
	CursorX int
	CursorY int
	Click   bool
	Pause   bool
	Restart bool
	Quit    bool
}

// Host adapts a registry.Game to ebiten.Game.
type Host struct {
	game       registry.Game
	store      *storage.Store
	config     core.RuntimeConfig
	screen     *core.Screen
	state      core.GameState
	cursor     core.Pixel
	hasCursor  bool
	roundSaved bool
	logger     *log.Logger
}

// NewHost resets the game and wraps it. store and logger may be nil.
func NewHost(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Host {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Audio == nil {
		cfg.Audio = core.NopAudio{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	w, h := game.Size()

	return &Host{
		game:   game,
		store:  store,
		config: cfg,
		screen: core.NewScreen(w, h),
		state:  game.State(),
		logger: logger,
	}
}

// Apply feeds one tick of input to the game. It returns false when the
// window should close.
func (h *Host) Apply(in Input) bool {
	if in.Quit {
		return false
	}

	if p, ok := h.pixel(in.CursorX, in.CursorY); ok {
		if !h.hasCursor || p != h.cursor {
			h.game.Pointer(core.PointerEvent{Kind: core.PointerEnter, Pos: p})
			h.cursor, h.hasCursor = p, true
		}
		if in.Click {
			h.game.Pointer(core.PointerEvent{Kind: core.PointerClick, Pos: p})
			h.state = h.game.State()
			h.recordRound()
		}
	}

	if in.Restart && h.state.GameOver {
		h.config.Seed = 0
		h.game.Reset(h.config)
		h.state = h.game.State()
		h.roundSaved = false
		h.hasCursor = false
		return true
	}

	frame := core.NewInputFrame()
	if in.Pause {
		frame.Set(core.ActionPause)
	}
	h.state = h.game.Step(frame).State
	h.recordRound()
	return true
}

func (h *Host) pixel(x, y int) (core.Pixel, bool) {
	if x < 0 || y < 0 || x >= h.screen.Width() || y >= h.screen.Height() {
		return core.Pixel{}, false
	}
	return core.Pixel{X: x, Y: y}, true
}

// recordRound saves the finished round once.
func (h *Host) recordRound() {
	if !h.state.GameOver || h.roundSaved {
		return
	}
	h.roundSaved = true
	if h.store == nil {
		return
	}
	if _, err := h.store.SaveRound(storage.RoundFromState(h.game.ID(), h.state)); err != nil {
		h.logger.Warn("could not save round", "err", err)
	}
}

// State returns the game state after the last tick.
func (h *Host) State() core.GameState {
	return h.state
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	if !h.Apply(readInput()) {
		return ebiten.Termination
	}
	return nil
}

func readInput() Input {
	x, y := ebiten.CursorPosition()
	return Input{
		CursorX: x,
		CursorY: y,
		Click:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// Draw implements ebiten.Game.
func (h *Host) Draw(dst *ebiten.Image) {
	h.game.Render(h.screen)
	dst.WritePixels(h.screen.RGBA())
}

// Layout implements ebiten.Game. The logical screen is the game grid.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.screen.Size()
}

// Run opens a window and plays the game until it is closed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, scale int, logger *log.Logger) error {
	if scale <= 0 {
		scale = DefaultScale
	}
	host := NewHost(game, store, cfg, logger)
	w, h := host.screen.Size()

	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(host.config.TickRate)
	// The spyglass is the cursor.
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	return ebiten.RunGame(host)
}
