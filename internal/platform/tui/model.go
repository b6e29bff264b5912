package tui

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eggsposed/internal/core"
	"github.com/vovakirdan/eggsposed/internal/registry"
	"github.com/vovakirdan/eggsposed/internal/storage"
)

// GameKeyMap lists the in-game bindings shown in the footer.
type GameKeyMap struct {
	Pause   key.Binding
	Restart key.Binding
	Capture key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Restart, k.Capture, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultGameKeyMap returns the in-game bindings. They mirror MapKey.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Pause:   key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Capture: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^s", "screenshot")),
		Back:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	shotDir    string
	lastShot   string
	best       int // stored high score for this variant
	roundSaved bool // Whether the finished round has been recorded
	backToMenu bool
	quitting   bool
}

// NewModel resets the game and creates a model for it.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.Audio == nil {
		cfg.Audio = core.NopAudio{}
	}

	game.Reset(cfg)
	w, h := game.Size()

	m := Model{
		game:       game,
		screen:     core.NewScreen(w, h),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		shotDir:    defaultScreenshotDir(),
	}
	m.loadBest()
	return m
}

func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	if best, err := m.store.HighScore(m.game.ID()); err == nil {
		m.best = best
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		// Pointer events reach the game immediately, between ticks.
		if ev, ok := m.keyMapper.MapMouse(msg, m.layout()); ok {
			m.game.Pointer(ev)
			m.gameState = m.game.State()
			m = m.recordRound()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionCapture:
		if path, err := m.saveScreenshot(); err == nil {
			m.lastShot = path
		}
		return m, nil
	case core.ActionBack:
		// Back ends the program; a session model swallows the quit.
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = 0
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.roundSaved = false
		m.lastShot = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m = m.recordRound()

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRound saves the finished round once.
func (m Model) recordRound() Model {
	if !m.gameState.GameOver || m.roundSaved {
		return m
	}
	m.roundSaved = true
	if m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveRound(storage.RoundFromState(m.game.ID(), m.gameState))
		m.loadBest()
	}
	return m
}

// saveScreenshot writes the current frame as a PNG.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s.png", m.game.ID(), timestamp))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, m.screen.Image()); err != nil {
		return "", err
	}
	return path, nil
}

func (m Model) layout() Layout {
	return NewLayout(m.width, m.screen.Width(), m.screen.Height())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	lay := m.layout()

	var b strings.Builder
	status := m.gameState.Status
	switch {
	case m.gameState.GameOver:
		if m.best > 0 {
			status += fmt.Sprintf("  best %d", m.best)
		}
		status += "  [r] again  [b] menu"
	case m.gameState.Paused:
		status += "  (paused)"
	}
	b.WriteString(centerText(statusStyle.Render(status), m.width))
	b.WriteString("\n")

	if m.width > 0 && !lay.Fits(m.width, m.height) {
		b.WriteString(centerText(fmt.Sprintf("terminal too small: need %dx%d", lay.GridW*pixelCols, lay.GridH+headerLines+1), m.width))
		return b.String()
	}

	b.WriteString(RenderScreen(m.screen, lay.OffsetX))
	b.WriteString("\n")
	if m.lastShot != "" {
		b.WriteString(helpStyle.Render("saved " + m.lastShot))
	} else {
		b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	}
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Spyglass follows the pointer without a button held
	)

	_, err := p.Run()
	return err
}
