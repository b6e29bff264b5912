package core

import (
	"math"

	platformcore "github.com/vovakirdan/eggsposed/internal/core"
)

// HUD colors.
var (
	TimerBaseColor     = platformcore.ColorGrayDark
	TimerConsumedColor = platformcore.Blend(platformcore.ColorRed, platformcore.ColorGray, 0.5)
	TrayColor          = platformcore.ColorWhite
	TrayEmptyColor     = platformcore.Hex(0xB3B3B3)
)

// Render paints the frame: background, decoys, spyglass, revealed hidden
// objects, then the HUD on its own plane. Missing assets are skipped.
func (s *State) Render(dst Surface, assets Assets) {
	w, h := dst.Size()
	vp := Viewport{W: w, H: h}

	dst.SetPlane(platformcore.PlaneWorld)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetPixel(x, y, BackgroundTile(vp.ScreenToWorld(Pixel{X: x, Y: y}, s.Camera.Pos), s.Look.Palette))
		}
	}

	for _, obj := range s.World.Visible() {
		s.drawDecor(dst, vp, assets, obj)
	}

	if s.Reveal != nil {
		s.Reveal.DrawCursor(dst, &s.Spyglass)
		for _, obj := range s.World.HiddenObjects() {
			s.drawHidden(dst, vp, obj)
		}
	}

	dst.SetPlane(platformcore.PlaneHUD)
	dst.ClearPlane()
	if s.Rules.HUD {
		s.renderHUD(dst, w, h)
	}

	dst.SetPlane(platformcore.PlaneWorld)
	dst.Refresh()
}

func (s *State) drawDecor(dst Surface, vp Viewport, assets Assets, obj VisibleObject) {
	at := vp.WorldToScreen(obj.Pos, s.Camera.Pos).Floor()

	if obj.Decor == DecorBlock {
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				if p := at.Add(dx, dy); vp.InBounds(p) {
					dst.SetPixel(p.X, p.Y, s.Look.BlockColor)
				}
			}
		}
		return
	}

	img := assets.Sprite(obj.Decor)
	if img == nil {
		return
	}
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c, a := img.At(x, y)
			p := at.Add(x-img.Width/2, y-img.Height/2)
			if a == 0 || !vp.InBounds(p) {
				continue
			}
			if a == platformcore.AlphaOpaque {
				dst.SetPixel(p.X, p.Y, c)
			} else {
				dst.SetPixel(p.X, p.Y, platformcore.Blend(dst.Pixel(p.X, p.Y), c, float64(a)/255))
			}
		}
	}
}

func (s *State) drawHidden(dst Surface, vp Viewport, obj HiddenObject) {
	at := vp.WorldToScreen(obj.Pos, s.Camera.Pos).Floor()
	sg := &s.Spyglass

	switch obj.Kind {
	case KindEgg:
		DrawHidden(dst, s.Reveal, sg, at, obj.Color)
		if s.Look.EggTall {
			DrawHidden(dst, s.Reveal, sg, at.Add(0, -1), obj.Color)
		}
	case KindLeprechaun:
		for _, px := range leprechaunShape(at) {
			c := s.Look.LeprechaunColor
			if px.foot {
				c = platformcore.ColorOrange
			}
			DrawHidden(dst, s.Reveal, sg, px.p, c)
		}
	}
}

type shapePixel struct {
	p    Pixel
	foot bool
}

// leprechaunShape is a plus sign with an orange foot.
func leprechaunShape(at Pixel) []shapePixel {
	return []shapePixel{
		{p: at},
		{p: at.Add(1, 0)},
		{p: at.Add(-1, 0)},
		{p: at.Add(0, -1)},
		{p: at.Add(0, 1), foot: true},
	}
}

func (s *State) renderHUD(dst Surface, w, h int) {
	left := s.Clock.Fraction()
	last, tray := h-1, h-2

	for x := 0; x < w; x++ {
		thru := 1 - float64(x+1)/float64(w)
		factor := platformcore.ClampF((left-thru)/(1/float64(w)), 0, 1)
		if math.Mod(factor, 0.1) > 0.05 {
			factor = 1
		}
		dst.SetAlpha(x, last, platformcore.AlphaOpaque)
		dst.SetPixel(x, last, platformcore.Blend(TimerConsumedColor, TimerBaseColor, factor))

		dst.SetAlpha(x, tray, platformcore.AlphaOpaque)
		dst.SetPixel(x, tray, TrayColor)
	}

	n := len(s.Eggs)
	for x := 0; x < w; x += 2 {
		i := x / 2
		c := TrayEmptyColor
		if n > i && !(n-1 == i && s.Flash%8 >= 5) {
			c = s.Eggs[i]
		}
		dst.SetPixel(x, tray, c)
	}

	if s.Leprechaun != nil {
		at := s.Leprechaun.Pos.Floor()
		for _, px := range leprechaunShape(at) {
			c := s.Look.LeprechaunColor
			if px.foot {
				c = platformcore.ColorOrange
			}
			dst.SetAlpha(px.p.X, px.p.Y, platformcore.AlphaOpaque)
			dst.SetPixel(px.p.X, px.p.Y, c)
		}
	}
}
