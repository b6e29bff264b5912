package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggsposed/internal/storage"
)

func TestScoreboardBestAndRecent(t *testing.T) {
	store := openTestStore(t)
	store.SaveRound(storage.RoundResult{GameID: "stub", Eggs: 16, Outcome: storage.OutcomeWon, Score: 1650})
	store.SaveRound(storage.RoundResult{GameID: "stub", Eggs: 4, Outcome: storage.OutcomeLost, Score: 400})

	m := NewScoreboardModel(store, 100, 30)
	for m.games[m.current].ID != "stub" {
		m.current++
	}
	m.reload()

	if len(m.Rounds()) != 2 || m.Rounds()[0].Score != 1650 {
		t.Fatalf("best rounds = %+v, expected 1650 first", m.Rounds())
	}
	view := m.View()
	if !strings.Contains(view, "Stub") || !strings.Contains(view, "1650") {
		t.Errorf("view should show the variant tab and the best round:\n%s", view)
	}

	next, _ := m.Update(runes("v"))
	m = next.(ScoreboardModel)
	if m.view != ViewRecent || m.Rounds()[0].Score != 400 {
		t.Errorf("recent view = %s with %+v, expected the newest round first", m.view, m.Rounds())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() || cmd == nil {
		t.Error("esc should go back without quitting")
	}
}
