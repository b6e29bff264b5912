package core

import (
	"math"

	platformcore "github.com/vovakirdan/eggsposed/internal/core"
)

// Reveal decides which pixels the spyglass exposes and draws the cursor.
type Reveal interface {
	// Strength returns how strongly p is revealed, in (0, 1].
	Strength(sg *Spyglass, p Pixel) (float64, bool)
	// DrawCursor paints the spyglass onto the current plane.
	DrawCursor(dst Surface, sg *Spyglass)
}

// SquareReveal exposes a square around the spyglass at full strength and
// tints it.
type SquareReveal struct {
	Radius     int
	Tint       RGB
	TintAmount float64
}

// Strength implements Reveal using Chebyshev distance.
func (r SquareReveal) Strength(sg *Spyglass, p Pixel) (float64, bool) {
	dx, dy := sg.Pos.X-p.X, sg.Pos.Y-p.Y
	if abs(dx) <= r.Radius && abs(dy) <= r.Radius {
		return 1, true
	}
	return 0, false
}

// DrawCursor implements Reveal.
func (r SquareReveal) DrawCursor(dst Surface, sg *Spyglass) {
	w, h := dst.Size()
	vp := Viewport{W: w, H: h}
	for dy := -r.Radius; dy <= r.Radius; dy++ {
		for dx := -r.Radius; dx <= r.Radius; dx++ {
			p := sg.Pos.Add(dx, dy)
			if !vp.InBounds(p) {
				continue
			}
			dst.SetPixel(p.X, p.Y, platformcore.Blend(dst.Pixel(p.X, p.Y), r.Tint, r.TintAmount))
		}
	}
}

// MaskReveal exposes the opaque pixels of a lens image centered on the
// spyglass, and fainter copies centered on each afterimage entry. Entry k
// steps back (k = 1 for the newest) reveals at 1/Falloff^k.
type MaskReveal struct {
	Lens    *Image
	Falloff float64
}

// covers reports whether the lens centered at c has an opaque pixel over p.
func (r MaskReveal) covers(c, p Pixel) bool {
	x := r.Lens.Width/2 - (c.X - p.X)
	y := r.Lens.Height/2 - (c.Y - p.Y)
	return r.Lens.Alpha(x, y) > 0
}

// Strength implements Reveal. Without a lens nothing is revealed.
func (r MaskReveal) Strength(sg *Spyglass, p Pixel) (float64, bool) {
	if r.Lens == nil {
		return 0, false
	}
	if r.covers(sg.Pos, p) {
		return 1, true
	}
	n := len(sg.Afterimage)
	for i := n - 1; i >= 0; i-- {
		if r.covers(sg.Afterimage[i].Round(), p) {
			return 1 / math.Pow(r.Falloff, float64(n-i)), true
		}
	}
	return 0, false
}

// DrawCursor implements Reveal. The lens is blended at its own alpha; each
// afterimage ghost is blended at a decayed alpha and skips pixels a newer
// copy already painted.
func (r MaskReveal) DrawCursor(dst Surface, sg *Spyglass) {
	if r.Lens == nil {
		return
	}
	w, h := dst.Size()
	vp := Viewport{W: w, H: h}
	drawn := make(map[Pixel]bool)

	blit := func(c Pixel, fade float64) {
		for y := 0; y < r.Lens.Height; y++ {
			for x := 0; x < r.Lens.Width; x++ {
				col, a := r.Lens.At(x, y)
				p := c.Add(x-r.Lens.Width/2, y-r.Lens.Height/2)
				if a == 0 || !vp.InBounds(p) || drawn[p] {
					continue
				}
				dst.SetPixel(p.X, p.Y, platformcore.Blend(dst.Pixel(p.X, p.Y), col, float64(a)/255/fade))
				drawn[p] = true
			}
		}
	}

	blit(sg.Pos, 1)
	n := len(sg.Afterimage)
	for i := n - 1; i >= 0; i-- {
		blit(sg.Afterimage[i].Round(), math.Pow(r.Falloff, float64(n-i)))
	}
}

// DrawHidden blends c into the pixel at p at the reveal strength. It does
// nothing off-grid or where p is not revealed.
func DrawHidden(dst Surface, r Reveal, sg *Spyglass, p Pixel, c RGB) {
	w, h := dst.Size()
	if !(Viewport{W: w, H: h}).InBounds(p) {
		return
	}
	s, ok := r.Strength(sg, p)
	if !ok || s <= 0 {
		return
	}
	dst.SetPixel(p.X, p.Y, platformcore.Blend(dst.Pixel(p.X, p.Y), c, s))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
