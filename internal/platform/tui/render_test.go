package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/eggsposed/internal/core"
)

func TestNewLayout(t *testing.T) {
	tests := []struct {
		termW int
		wantX int
	}{
		{80, 8},
		{64, 0},
		{40, 0}, // narrower than the grid
	}

	for _, tt := range tests {
		l := NewLayout(tt.termW, 32, 32)
		if l.OffsetX != tt.wantX || l.OffsetY != headerLines {
			t.Errorf("NewLayout(%d) offset = (%d, %d), expected (%d, %d)", tt.termW, l.OffsetX, l.OffsetY, tt.wantX, headerLines)
		}
	}
}

func TestLayoutFits(t *testing.T) {
	l := NewLayout(80, 32, 32)
	if !l.Fits(64, 34) {
		t.Error("64x34 should fit a 32x32 grid")
	}
	if l.Fits(63, 34) || l.Fits(64, 33) {
		t.Error("smaller terminals should not fit")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(3, 2)
	s.SetPixel(0, 0, core.ColorRed)
	s.SetPixel(1, 0, core.ColorRed)
	s.SetPixel(2, 0, core.ColorWhite)
	s.Refresh()

	out := RenderScreen(s, 4)
	lines := strings.Split(ansi.Strip(out), "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for i, line := range lines {
		if line != "    "+strings.Repeat(pixelGlyph, 3) {
			t.Errorf("line %d = %q", i, line)
		}
	}
}
