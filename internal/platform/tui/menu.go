package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eggsposed/internal/registry"
	"github.com/vovakirdan/eggsposed/internal/storage"
)

// MenuItem is one playable variant with its stored record.
type MenuItem struct {
	GameID string
	Title  string
	Played int
	Wins   int
	Best   int
}

// Summary is the one-line record shown next to the title.
func (it MenuItem) Summary() string {
	if it.Played == 0 {
		return "not played yet"
	}
	return fmt.Sprintf("best %d, won %d of %d", it.Best, it.Wins, it.Played)
}

var (
	menuTitle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f0c020"))
	menuCursor   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSubtitle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#7ec850"))
)

// MenuModel picks a variant, or opens the scoreboard.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the registered variants. store may be nil.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	var stats map[string]*storage.GameStats
	if store != nil {
		stats, _ = store.GetAllGamesStats()
	}

	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title}
		if st, ok := stats[g.ID]; ok {
			item.Played, item.Wins, item.Best = st.GamesCount, st.Wins, st.HighScore
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

// handleKey moves the cursor. Choices end the program; the caller reads them.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		m.cursor = max(m.cursor-1, 0)
	case MenuActionDown:
		m.cursor = min(m.cursor+1, len(m.items)-1)
	case MenuActionSelect:
		if len(m.items) > 0 {
			it := m.items[m.cursor]
			m.selected = &it
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		menuTitle.Render("E G G - S P O S E D"),
		menuSubtitle.Render("sweep the spyglass, click the eggs, mind the leprechauns"),
		"",
	}

	for i, it := range m.items {
		title := "  " + it.Title
		if i == m.cursor {
			title = menuCursor.Render("> " + it.Title)
		}
		lines = append(lines, title, helpStyle.Render("    "+it.Summary()))
	}

	lines = append(lines, "", helpStyle.Render("up/down: choose   enter: play   tab: scores   q: quit"))

	var b strings.Builder
	for _, l := range lines {
		b.WriteString(centerText(l, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (int, int) {
	return m.width, m.height
}

// centerText centers text within width, measuring styled text without its
// escape sequences.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Width           int
	Height          int
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, width, height int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Width: width, Height: height, Quit: true}, nil
	}

	res := MenuResult{WantsScoreboard: m.WantsScoreboard()}
	res.Width, res.Height = m.Size()
	switch {
	case res.WantsScoreboard:
	case m.Selected() != nil:
		res.GameID = m.Selected().GameID
	default:
		res.Quit = true
	}
	return res, nil
}
