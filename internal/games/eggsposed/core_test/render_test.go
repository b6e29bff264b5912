package core_test

import (
	"testing"

	platformcore "github.com/vovakirdan/eggsposed/internal/core"
	"github.com/vovakirdan/eggsposed/internal/games/eggsposed/core"
)

func TestRenderBackground(t *testing.T) {
	s := emptyMeadow(&recorder{})
	s.Rules.HUD = false
	scr := platformcore.NewScreen(32, 32)

	s.Render(scr, core.Assets{})

	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			want := core.BackgroundTile(s.Unproject(core.Pixel{X: x, Y: y}), core.PaletteMeadow)
			if got := scr.At(x, y); got != want {
				t.Fatalf("pixel (%d, %d) = %v, expected background %v", x, y, got, want)
			}
		}
	}
	if scr.Frames() != 1 {
		t.Errorf("Render should refresh once, got %d frames", scr.Frames())
	}
	if scr.Plane() != platformcore.PlaneWorld {
		t.Errorf("Render should leave plane %d selected, got %d", platformcore.PlaneWorld, scr.Plane())
	}
}

func TestRenderHUDFullTimer(t *testing.T) {
	s := emptyMeadow(&recorder{})
	s.Eggs = []core.RGB{platformcore.ColorRed, platformcore.ColorCyan}
	scr := platformcore.NewScreen(32, 32)

	s.Render(scr, core.Assets{})

	for x := 0; x < 32; x++ {
		if got := scr.At(x, 31); got != core.TimerBaseColor {
			t.Fatalf("timer pixel %d = %v, expected base color", x, got)
		}
	}
	if got := scr.At(0, 30); got != platformcore.ColorRed {
		t.Errorf("tray slot 0 = %v, expected red", got)
	}
	if got := scr.At(2, 30); got != platformcore.ColorCyan {
		t.Errorf("tray slot 1 = %v, expected cyan", got)
	}
	if got := scr.At(4, 30); got != core.TrayEmptyColor {
		t.Errorf("tray slot 2 = %v, expected empty slot color", got)
	}
	if got := scr.At(1, 30); got != core.TrayColor {
		t.Errorf("tray gap = %v, expected white", got)
	}
}

func TestRenderHUDTimerDrains(t *testing.T) {
	s := emptyMeadow(&recorder{})
	s.Clock.Remaining = 0
	scr := platformcore.NewScreen(32, 32)

	s.Render(scr, core.Assets{})

	for x := 0; x < 32; x++ {
		if got := scr.At(x, 31); got != core.TimerConsumedColor {
			t.Fatalf("timer pixel %d = %v, expected consumed color", x, got)
		}
	}
}

func TestRenderNewestEggFlashes(t *testing.T) {
	s := emptyMeadow(&recorder{})
	s.Eggs = []core.RGB{platformcore.ColorRed, platformcore.ColorCyan}
	scr := platformcore.NewScreen(32, 32)

	s.Flash = 5
	s.Render(scr, core.Assets{})
	if got := scr.At(2, 30); got != core.TrayEmptyColor {
		t.Errorf("flashing slot = %v, expected empty color", got)
	}
	if got := scr.At(0, 30); got != platformcore.ColorRed {
		t.Errorf("older slot = %v, expected steady red", got)
	}

	s.Flash = 4
	s.Render(scr, core.Assets{})
	if got := scr.At(2, 30); got != platformcore.ColorCyan {
		t.Errorf("slot between flashes = %v, expected cyan", got)
	}
}

func TestRenderLeprechaunOnHUD(t *testing.T) {
	s := emptyMeadow(&recorder{})
	s.Leprechaun = &core.Leprechaun{Pos: core.Vec{X: 10.4, Y: 10.9}, Target: core.Vec{X: 0, Y: -2}, Phase: core.PhaseFlee}
	scr := platformcore.NewScreen(32, 32)

	s.Render(scr, core.Assets{})

	if got := scr.At(10, 10); got != s.Look.LeprechaunColor {
		t.Errorf("leprechaun body = %v, expected %v", got, s.Look.LeprechaunColor)
	}
	if got := scr.At(10, 11); got != platformcore.ColorOrange {
		t.Errorf("leprechaun foot = %v, expected orange", got)
	}
	if c, _ := scr.Sample(10, 10); c == s.Look.LeprechaunColor {
		t.Error("leprechaun animation should not be drawn on the world plane")
	}
}

func TestRenderClassicHiddenOnlyUnderSpyglass(t *testing.T) {
	s := emptyClassic(&recorder{})
	s.World.AddHidden(s.Unproject(core.Pixel{X: 10, Y: 10}), core.KindEgg, platformcore.ColorCyan)
	scr := platformcore.NewScreen(32, 32)

	s.PointerEnter(core.Pixel{X: 25, Y: 25})
	s.Render(scr, core.Assets{})
	want := core.BackgroundTile(s.Unproject(core.Pixel{X: 10, Y: 10}), core.PaletteClassic)
	if got := scr.At(10, 10); got != want {
		t.Errorf("egg visible without spyglass: %v", got)
	}

	s.PointerEnter(core.Pixel{X: 11, Y: 11})
	s.Render(scr, core.Assets{})
	if got := scr.At(10, 10); got != platformcore.ColorCyan {
		t.Errorf("egg under spyglass = %v, expected cyan", got)
	}
}

func TestRenderSpritesAndMissingAssets(t *testing.T) {
	s := emptyMeadow(&recorder{})
	s.Rules.HUD = false
	s.World.AddVisible(s.Unproject(core.Pixel{X: 10, Y: 10}), core.DecorChick)
	s.World.AddVisible(s.Unproject(core.Pixel{X: 20, Y: 20}), core.DecorBunny)

	sprite := platformcore.NewImage(3, 3)
	sprite.Set(1, 1, core.ChickColor, 255)
	var assets core.Assets
	assets.Sprites[1] = sprite // chick only; bunny missing

	scr := platformcore.NewScreen(32, 32)
	s.Render(scr, assets)

	if got, _ := scr.Sample(10, 10); got != core.ChickColor {
		t.Errorf("sprite center = %v, expected chick color", got)
	}
	want := core.BackgroundTile(s.Unproject(core.Pixel{X: 20, Y: 20}), core.PaletteMeadow)
	if got, _ := scr.Sample(20, 20); got != want {
		t.Errorf("missing sprite drew %v", got)
	}

	if ev := s.Click(core.Pixel{X: 10, Y: 10}, scr); ev != core.EventChick {
		t.Errorf("click on rendered chick = %s, expected chick", ev)
	}
}

func TestRenderLensCursor(t *testing.T) {
	s := emptyMeadow(&recorder{})
	s.Rules.HUD = false
	s.Reveal = core.MaskReveal{Lens: opaqueLens(3, 3), Falloff: 1.5}
	s.World.AddHidden(s.Unproject(core.Pixel{X: 15, Y: 15}), core.KindEgg, platformcore.ColorRed)
	s.PointerEnter(core.Pixel{X: 15, Y: 15})

	scr := platformcore.NewScreen(32, 32)
	s.Render(scr, core.Assets{})

	if got := scr.At(15, 15); got != platformcore.ColorRed {
		t.Errorf("egg under lens = %v, expected red", got)
	}
	if got := scr.At(16, 16); got != platformcore.ColorWhite {
		t.Errorf("lens pixel = %v, expected white", got)
	}
	if got := scr.At(15, 14); got != platformcore.ColorRed {
		t.Errorf("egg top = %v, expected red", got)
	}
}
