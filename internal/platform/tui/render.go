package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/eggsposed/internal/core"
)

// Each grid pixel is drawn as two terminal columns so pixels look square.
const (
	pixelCols   = 2
	pixelGlyph  = "██"
	headerLines = 1
)

// Layout places the pixel grid in the terminal and maps mouse cells back
// to grid pixels.
type Layout struct {
	OffsetX int // terminal column of pixel (0, 0)
	OffsetY int // terminal row of pixel (0, 0)
	GridW   int
	GridH   int
}

// NewLayout centers a gridW x gridH grid horizontally below the status line.
func NewLayout(termW, gridW, gridH int) Layout {
	offX := (termW - gridW*pixelCols) / 2
	if offX < 0 {
		offX = 0
	}
	return Layout{OffsetX: offX, OffsetY: headerLines, GridW: gridW, GridH: gridH}
}

// Pixel maps a terminal cell to a grid pixel.
func (l Layout) Pixel(col, row int) (core.Pixel, bool) {
	x := col - l.OffsetX
	y := row - l.OffsetY
	if x < 0 || y < 0 {
		return core.Pixel{}, false
	}
	p := core.Pixel{X: x / pixelCols, Y: y}
	if p.X >= l.GridW || p.Y >= l.GridH {
		return core.Pixel{}, false
	}
	return p, true
}

// Fits reports whether the grid fits in a terminal of the given size.
func (l Layout) Fits(termW, termH int) bool {
	return l.GridW*pixelCols <= termW && l.GridH+headerLines+1 <= termH
}

// RenderScreen converts the composited front buffer to truecolor text.
// Groups adjacent pixels with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, offsetX int) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*8 + s.Height()*(offsetX+1))
	pad := strings.Repeat(" ", max(offsetX, 0))

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(pad)

		// Group consecutive pixels with the same color for efficiency
		x := 0
		for x < s.Width() {
			start := s.At(x, y)
			n := 0
			for x < s.Width() && s.At(x, y) == start {
				n++
				x++
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(start.String()))
			sb.WriteString(style.Render(strings.Repeat(pixelGlyph, n)))
		}
	}
	return sb.String()
}
