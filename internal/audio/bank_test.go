package audio

import (
	"testing"

	"github.com/vovakirdan/eggsposed/internal/core"
)

func TestBankGracefulWithoutInit(t *testing.T) {
	b := New(Config{Enabled: true, Music: true, Volume: 1})

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("bank panicked without initialization: %v", r)
		}
	}()

	for _, cue := range core.Cues() {
		b.Play(cue, 0.25)
	}
	b.StopMusic()
	b.Close()

	if b.Played() != 0 {
		t.Errorf("Played = %d, expected nothing without a speaker", b.Played())
	}
}

func TestBankDisabledStaysSilent(t *testing.T) {
	b := New(Config{Enabled: false, Volume: 1})
	if err := b.Init(); err != nil {
		t.Fatalf("disabled Init should not fail: %v", err)
	}
	b.Play(core.CueEgg, 0.25)
	if b.Played() != 0 {
		t.Errorf("Played = %d, expected 0 when disabled", b.Played())
	}
}

func TestBankInitWithDevice(t *testing.T) {
	b := New(Config{Enabled: true, Volume: 0.5})

	// No sound device in CI is expected; the game runs silent then.
	if err := b.Init(); err != nil {
		t.Logf("speaker unavailable: %v", err)
		return
	}
	defer b.Close()

	b.Play(core.CueEgg, 0.25)
	b.Play(core.CueMusic, 0.125)
	if b.Played() != 1 {
		t.Errorf("Played = %d, expected 1 (music is not counted)", b.Played())
	}
	b.StopMusic()
}

func TestNewClampsVolume(t *testing.T) {
	if b := New(Config{Volume: 3}); b.cfg.Volume != 1 {
		t.Errorf("volume = %v, expected 1", b.cfg.Volume)
	}
	if b := New(Config{Volume: -1}); b.cfg.Volume != 0 {
		t.Errorf("volume = %v, expected 0", b.cfg.Volume)
	}
}
