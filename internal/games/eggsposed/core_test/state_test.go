package core_test

import (
	"math/rand"
	"testing"

	platformcore "github.com/vovakirdan/eggsposed/internal/core"
	"github.com/vovakirdan/eggsposed/internal/games/eggsposed/core"
)

func TestNewMeadowRound(t *testing.T) {
	s := core.New(core.MeadowOptions(), core.Assets{}, core.Capabilities{Rand: rand.New(rand.NewSource(11))})

	if s.Clock.Remaining != 7500 || s.Clock.Total != 7500 {
		t.Errorf("clock = %+v, expected 7500/7500", s.Clock)
	}
	if s.Rules.WinEggs != 16 {
		t.Errorf("WinEggs = %d, expected 16", s.Rules.WinEggs)
	}
	if s.World.HiddenCount() == 0 {
		t.Error("expected hidden objects")
	}
	if s.Outcome != core.OutcomePlaying {
		t.Errorf("Outcome = %s", s.Outcome)
	}
	if _, ok := s.Reveal.(core.MaskReveal); !ok {
		t.Errorf("meadow reveal is %T, expected MaskReveal", s.Reveal)
	}
}

func TestNewClassicRound(t *testing.T) {
	s := core.New(core.ClassicOptions(), core.Assets{}, core.Capabilities{Rand: rand.New(rand.NewSource(11))})

	if s.Clock.Timed() {
		t.Error("classic round should be untimed")
	}
	if s.Rules.WinEggs != s.World.EggCount() {
		t.Errorf("WinEggs = %d, expected every egg (%d)", s.Rules.WinEggs, s.World.EggCount())
	}
	if _, ok := s.Camera.Motion.(*core.Patrol); !ok {
		t.Errorf("classic camera is %T, expected Patrol", s.Camera.Motion)
	}
}

func TestNewEggLessRounds(t *testing.T) {
	classic := emptyClassic(&recorder{})
	if classic.Rules.WinEggs != 0 || classic.Outcome != core.OutcomeWon {
		t.Errorf("egg-less classic round: WinEggs %d, Outcome %s, expected an immediate win",
			classic.Rules.WinEggs, classic.Outcome)
	}

	meadow := emptyMeadow(&recorder{})
	if meadow.Outcome != core.OutcomePlaying {
		t.Errorf("meadow round with a fixed egg target should be playing, got %s", meadow.Outcome)
	}
}

func TestNewDefaultsCapabilities(t *testing.T) {
	opts := core.MeadowOptions()
	opts.Populate.Candidates = 5
	s := core.New(opts, core.Assets{}, core.Capabilities{})

	s.Tick()
	s.Click(core.Pixel{X: 1, Y: 1}, nil)
	if s.Audio() == nil {
		t.Error("state should fall back to silent audio")
	}
}

func TestTickAfterimageCompensation(t *testing.T) {
	s := emptyMeadow(&recorder{})
	s.World.AddHidden(core.Vec{X: 50, Y: 0}, core.KindEgg, platformcore.ColorRed)
	s.PointerEnter(core.Pixel{X: 10, Y: 12})

	before := s.Camera.Pos
	s.Tick()
	delta := s.Camera.Pos.Sub(before)

	if delta == (core.Vec{}) {
		t.Fatal("camera should move toward the hidden egg")
	}
	want := core.Vec{X: 10, Y: 12}.Sub(delta)
	got := s.Spyglass.Afterimage[len(s.Spyglass.Afterimage)-1]
	if !approx(got.X, want.X) || !approx(got.Y, want.Y) {
		t.Errorf("afterimage entry = %v, expected %v", got, want)
	}
}

func TestTickCameraStopsWhenTimeRunsOut(t *testing.T) {
	s := emptyMeadow(&recorder{})
	s.World.AddHidden(core.Vec{X: 50, Y: 0}, core.KindEgg, platformcore.ColorRed)
	s.Clock.Remaining = 1

	s.Tick() // last running tick
	pos := s.Camera.Pos
	s.Tick()
	s.Tick()

	if s.Camera.Pos != pos {
		t.Errorf("camera moved after time ran out: %v -> %v", pos, s.Camera.Pos)
	}
	if s.Outcome != core.OutcomeLost {
		t.Errorf("Outcome = %s, expected lost", s.Outcome)
	}
}

func TestTickFlashDecrements(t *testing.T) {
	s := emptyMeadow(&recorder{})
	s.Flash = 2

	s.Tick()
	s.Tick()
	s.Tick()

	if s.Flash != 0 {
		t.Errorf("Flash = %d, expected 0", s.Flash)
	}
	if s.Ticks != 3 {
		t.Errorf("Ticks = %d, expected 3", s.Ticks)
	}
}

func TestLeprechaunStealThenFlee(t *testing.T) {
	audio := &recorder{}
	s := emptyMeadow(audio)
	s.Eggs = []core.RGB{platformcore.ColorRed, platformcore.ColorCyan}
	s.Flash = 30
	s.Leprechaun = core.NewLeprechaun(core.Vec{X: 16, Y: 10}, len(s.Eggs), s.TrayRow(), fixedRand{})

	for i := 0; i < 500 && s.Leprechaun != nil && s.Leprechaun.Phase == core.PhaseSteal; i++ {
		s.Tick()
	}

	if s.Leprechaun == nil || s.Leprechaun.Phase != core.PhaseFlee {
		t.Fatal("leprechaun should be fleeing after the steal")
	}
	if len(s.Eggs) != 1 || s.Eggs[0] != platformcore.ColorRed {
		t.Errorf("eggs after steal = %v, expected [red]", s.Eggs)
	}
	if s.Flash != 0 {
		t.Errorf("Flash = %d after steal, expected 0", s.Flash)
	}
	cue, vol, _ := audio.last()
	if cue != platformcore.CueSteal || vol != 0.4 {
		t.Errorf("last cue = %s at %v, expected lepSteal at 0.4", cue, vol)
	}
	if s.Leprechaun.Target.Y != -2 {
		t.Errorf("flee target = %v, expected y = -2", s.Leprechaun.Target)
	}
	if !s.Slowed() {
		t.Error("camera should be slowed while the leprechaun flees")
	}

	for i := 0; i < 500 && s.Leprechaun != nil; i++ {
		s.Tick()
	}
	if s.Leprechaun != nil {
		t.Error("flee leg should end the animation")
	}
	if s.Slowed() {
		t.Error("slowdown should end with the animation")
	}
}

func TestStateDeterministicWithSeed(t *testing.T) {
	run := func() *core.State {
		s := core.New(core.MeadowOptions(), core.Assets{}, core.Capabilities{Rand: rand.New(rand.NewSource(42))})
		for i := 0; i < 600; i++ {
			if i%50 == 0 {
				s.PointerEnter(core.Pixel{X: i % 32, Y: (i / 3) % 32})
			}
			s.Tick()
		}
		return s
	}

	a, b := run(), run()
	if a.Camera.Pos != b.Camera.Pos {
		t.Errorf("camera diverged: %v vs %v", a.Camera.Pos, b.Camera.Pos)
	}
	ha, hb := a.World.HiddenObjects(), b.World.HiddenObjects()
	if len(ha) != len(hb) {
		t.Fatalf("hidden counts diverged: %d vs %d", len(ha), len(hb))
	}
	for i := range ha {
		if ha[i] != hb[i] {
			t.Errorf("hidden %d diverged: %+v vs %+v", i, ha[i], hb[i])
		}
	}
}
