package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/eggsposed/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"q quits", runes("q"), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"p pauses", runes("p"), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", runes("r"), core.ActionRestart, false},
		{"b goes back", runes("b"), core.ActionBack, false},
		{"ctrl+s captures", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionCapture, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"unbound", runes("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %s, %v; expected %s, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runes("p"), &frame) {
		t.Error("p should not quit")
	}
	if !frame.Has(core.ActionPause) {
		t.Error("frame should hold pause")
	}
	if !km.MapKeyToFrame(runes("q"), &frame) {
		t.Error("q should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runes("q"), MenuActionQuit},
		{runes("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %d, expected %d", tt.msg.String(), got, tt.want)
		}
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	layout := NewLayout(80, 32, 32) // grid starts at column 8, row 1

	tests := []struct {
		name string
		msg  tea.MouseMsg
		ok   bool
		want core.PointerEvent
	}{
		{
			name: "motion on first pixel",
			msg:  tea.MouseMsg{X: 8, Y: 1, Action: tea.MouseActionMotion},
			ok:   true,
			want: core.PointerEvent{Kind: core.PointerEnter, Pos: core.Pixel{X: 0, Y: 0}},
		},
		{
			name: "second column of a pixel",
			msg:  tea.MouseMsg{X: 9, Y: 1, Action: tea.MouseActionMotion},
			ok:   true,
			want: core.PointerEvent{Kind: core.PointerEnter, Pos: core.Pixel{X: 0, Y: 0}},
		},
		{
			name: "left press clicks",
			msg:  tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft},
			ok:   true,
			want: core.PointerEvent{Kind: core.PointerClick, Pos: core.Pixel{X: 11, Y: 11}},
		},
		{
			name: "right press ignored",
			msg:  tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		},
		{
			name: "release ignored",
			msg:  tea.MouseMsg{X: 30, Y: 12, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		},
		{
			name: "status row is off grid",
			msg:  tea.MouseMsg{X: 30, Y: 0, Action: tea.MouseActionMotion},
		},
		{
			name: "left margin is off grid",
			msg:  tea.MouseMsg{X: 7, Y: 5, Action: tea.MouseActionMotion},
		},
		{
			name: "right margin is off grid",
			msg:  tea.MouseMsg{X: 72, Y: 5, Action: tea.MouseActionMotion},
		},
		{
			name: "below the grid",
			msg:  tea.MouseMsg{X: 30, Y: 33, Action: tea.MouseActionMotion},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := km.MapMouse(tt.msg, layout)
			if ok != tt.ok {
				t.Fatalf("MapMouse ok = %v, expected %v", ok, tt.ok)
			}
			if ok && ev != tt.want {
				t.Errorf("MapMouse = %+v, expected %+v", ev, tt.want)
			}
		})
	}
}
