package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/eggsposed/internal/core"
)

// drain streams s until it ends or limit samples pass, returning the
// sample count, whether it ended, and the peak amplitude.
func drain(s beep.Streamer, limit int) (total int, ended bool, peak float64) {
	buf := make([][2]float64, 512)
	for total < limit {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, true, peak
		}
	}
	return total, false, peak
}

func TestEffectsEnd(t *testing.T) {
	limit := sampleRate.N(3e9) // 3s

	for _, cue := range core.Cues() {
		if cue == core.CueMusic {
			continue
		}
		t.Run(cue.String(), func(t *testing.T) {
			s := Effect(cue, sampleRate)
			if s == nil {
				t.Fatal("no effect")
			}
			total, ended, peak := drain(s, limit)
			if !ended {
				t.Fatalf("effect still playing after %d samples", total)
			}
			if total == 0 || peak == 0 {
				t.Errorf("effect is silent: %d samples, peak %v", total, peak)
			}
			if peak > 1.0001 {
				t.Errorf("effect clips: peak %v", peak)
			}
		})
	}
}

func TestMusicLoops(t *testing.T) {
	s := Effect(core.CueMusic, sampleRate)
	total, ended, peak := drain(s, sampleRate.N(10e9))
	if ended {
		t.Errorf("music ended after %d samples", total)
	}
	if peak == 0 {
		t.Error("music is silent")
	}
}

func TestEffectUnknownCue(t *testing.T) {
	if s := Effect(core.Cue(99), sampleRate); s != nil {
		t.Error("unknown cue should have no effect")
	}
}

func TestNewVolume(t *testing.T) {
	tests := []struct {
		vol  float64
		want float64
	}{
		{1, 1},
		{0.25, 0.25},
		{0, 0},
	}

	for _, tt := range tests {
		s := newVolume(NewOscillator(0, 10e6, WaveSquare, sampleRate), tt.vol)
		_, _, peak := drain(s, 1000)
		if math.Abs(peak-tt.want) > 1e-9 {
			t.Errorf("volume %v: peak %v, expected %v", tt.vol, peak, tt.want)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	s := NewEnvelope(NewOscillator(0, 100e6, WaveSquare, sampleRate), 100e6, 10e6, 10e6, sampleRate)

	buf := make([][2]float64, sampleRate.N(100e6))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d of %d samples", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %v", buf[0][0])
	}
	mid := len(buf) / 2
	if buf[mid][0] != 1 {
		t.Errorf("sustain = %v, expected 1", buf[mid][0])
	}
	if last := buf[len(buf)-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("release tail = %v, expected close to 0", last)
	}
}
