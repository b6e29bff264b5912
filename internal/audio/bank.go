// Package audio synthesizes the game's sound cues with beep and plays them
// through the system speaker. Without a sound device every call is a no-op.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/eggsposed/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Config controls the bank.
type Config struct {
	Enabled bool
	Music   bool    // honor CueMusic
	Volume  float64 // master volume, 0..1
}

// Bank implements core.Audio on top of a beep mixer.
type Bank struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
	played      int
}

var _ core.Audio = (*Bank)(nil)

// New creates a bank. Call Init to open the speaker.
func New(cfg Config) *Bank {
	cfg.Volume = core.ClampF(cfg.Volume, 0, 1)
	return &Bank{cfg: cfg, mixer: &beep.Mixer{}}
}

// Init opens the speaker. A failure leaves the bank silent.
func (b *Bank) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.initialized || !b.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(b.mixer)
	b.initialized = true
	return nil
}

// Play triggers a cue. CueMusic starts the background loop once.
func (b *Bank) Play(cue core.Cue, volume float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	if cue == core.CueMusic {
		b.startMusic(volume)
		return
	}

	s := Effect(cue, sampleRate)
	if s == nil {
		return
	}
	b.add(newVolume(s, volume*b.cfg.Volume))
	b.played++
}

func (b *Bank) startMusic(volume float64) {
	if !b.cfg.Music || (b.music != nil && !b.music.Paused) {
		return
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(Effect(core.CueMusic, sampleRate), volume*b.cfg.Volume)}
	b.music = ctrl
	b.add(ctrl)
}

func (b *Bank) add(s beep.Streamer) {
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

// StopMusic ends the background loop. The next CueMusic starts it again.
func (b *Bank) StopMusic() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.music == nil {
		return
	}
	if b.initialized {
		// A Ctrl without a streamer drains, so the mixer drops it.
		speaker.Lock()
		b.music.Streamer = nil
		speaker.Unlock()
	}
	b.music = nil
}

// Close silences everything. The bank can be re-initialized.
func (b *Bank) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.initialized {
		return
	}

	speaker.Lock()
	if b.music != nil {
		b.music.Paused = true
	}
	b.mixer.Clear()
	speaker.Unlock()
	b.music = nil
	b.initialized = false
}

// Played reports how many effects were mixed since creation.
func (b *Bank) Played() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.played
}
