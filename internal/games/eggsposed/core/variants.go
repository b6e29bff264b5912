package core

import platformcore "github.com/vovakirdan/eggsposed/internal/core"

// EggPalette is the set of colors meadow eggs are painted in.
func EggPalette() []RGB {
	return []RGB{
		platformcore.Hex(0xC767EA),
		platformcore.Hex(0x56E2E2),
		platformcore.Hex(0xEF8C45),
		platformcore.Hex(0xE26379),
		platformcore.Hex(0x0094FF),
	}
}

// PatrolPath is the classic camera route.
func PatrolPath() []Vec {
	return []Vec{
		{X: 0, Y: 0},
		{X: 110, Y: 10},
		{X: 120, Y: 50},
		{X: 70, Y: 32},
		{X: 30, Y: 30},
		{X: 120, Y: 80},
		{X: 105, Y: 110},
		{X: 40, Y: 60},
		{X: 65, Y: 110},
		{X: 10, Y: 100},
		{X: 20, Y: 70},
	}
}

// MeadowOptions is the timed variant: pursuit camera, lens reveal with
// afterimage, HUD and stealing leprechauns.
func MeadowOptions() Options {
	return Options{
		Viewport: Viewport{W: 32, H: 32},
		Populate: PopulateParams{
			Candidates:    100,
			Extent:        150,
			MinSeparation: 12,
			Sprites:       true,
			HiddenOutOf:   2,
			EggWeight:     1,
			EggOutOf:      3,
			MinEggs:       16,
			EggColors:     EggPalette(),
		},
		Camera: CameraOptions{
			Mode:      CameraPursuit,
			Speed:     0.2,
			SlowSpeed: 0.001,
			Ease:      0.025,
			SlowEase:  0.01,
		},
		Reveal:     RevealOptions{Mode: RevealMask, Falloff: 1.5},
		TimerTicks: 7500,
		Rules: Rules{
			CaptureRadius: 4,
			WinEggs:       16,
			Steals:        true,
			SniffOnMiss:   true,
			HUD:           true,
			FlashTicks:    40,
			Cues: CueSet{
				Egg:        platformcore.CueEgg,
				Win:        platformcore.CueWin,
				Leprechaun: platformcore.CueLaugh,
			},
		},
		Look: Look{
			Palette:         PaletteMeadow,
			EggTall:         true,
			LeprechaunColor: platformcore.Hex(0x00CC00),
			BlockColor:      platformcore.Blend(platformcore.ColorGreen, platformcore.ColorBlack, 0.6),
		},
	}
}

// ClassicOptions is the untimed variant: patrol camera, square reveal,
// and every egg must be found.
func ClassicOptions() Options {
	return Options{
		Viewport: Viewport{W: 32, H: 32},
		Populate: PopulateParams{
			Candidates:    100,
			Extent:        110,
			MinSeparation: 8,
			HiddenOutOf:   2,
			EggWeight:     2,
			EggOutOf:      3,
			EggColors:     []RGB{platformcore.ColorCyan},
		},
		Camera: CameraOptions{
			Mode:  CameraPatrol,
			Speed: 0.2,
			Path:  PatrolPath(),
		},
		Reveal: RevealOptions{
			Mode:       RevealSquare,
			Radius:     2,
			Tint:       platformcore.ColorCyan,
			TintAmount: 0.5,
		},
		Rules: Rules{
			CaptureRadius: 2.5,
			FlashTicks:    40,
			Cues: CueSet{
				Egg:        platformcore.CuePop,
				Win:        platformcore.CueTada,
				Leprechaun: platformcore.CueHoot,
			},
		},
		Look: Look{
			Palette:         PaletteClassic,
			LeprechaunColor: platformcore.ColorGreen,
			BlockColor:      platformcore.Blend(platformcore.ColorGreen, platformcore.ColorBlack, 0.6),
		},
	}
}
