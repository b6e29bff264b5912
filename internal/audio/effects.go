package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/eggsposed/internal/core"
)

const ms = time.Millisecond

// Effect builds the synthesized sound for a cue at unit volume. Every cue
// except CueMusic ends; CueMusic loops forever. Unknown cues return nil.
func Effect(cue core.Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case core.CueClock:
		// tick-tock
		return beep.Seq(
			note(1200, 40*ms, WaveSquare, rate),
			rest(120*ms, rate),
			note(900, 40*ms, WaveSquare, rate),
		)
	case core.CueLose:
		return beep.Seq(
			note(392, 200*ms, WaveSaw, rate),
			note(349.23, 200*ms, WaveSaw, rate),
			note(311.13, 200*ms, WaveSaw, rate),
			note(261.63, 500*ms, WaveSaw, rate),
		)
	case core.CueWin:
		return beep.Seq(
			note(523.25, 120*ms, WaveSquare, rate),
			note(659.25, 120*ms, WaveSquare, rate),
			note(783.99, 120*ms, WaveSquare, rate),
			note(1046.5, 400*ms, WaveSquare, rate),
		)
	case core.CueEgg:
		// bell: fundamental plus octave
		return beep.Mix(
			newVolume(note(880, 300*ms, WaveSine, rate), 0.7),
			newVolume(note(1760, 200*ms, WaveSine, rate), 0.3),
		)
	case core.CueSteal:
		return beep.Mix(
			newVolume(glide(1200, 200, 400*ms, WaveSine, rate), 0.6),
			newVolume(note(0, 400*ms, WaveNoise, rate), 0.2),
		)
	case core.CueLaugh:
		// he-he-he
		return beep.Seq(
			glide(700, 500, 90*ms, WaveSaw, rate),
			rest(40*ms, rate),
			glide(680, 480, 90*ms, WaveSaw, rate),
			rest(40*ms, rate),
			glide(660, 420, 120*ms, WaveSaw, rate),
		)
	case core.CueChick:
		return beep.Seq(
			glide(2000, 2600, 60*ms, WaveSine, rate),
			rest(50*ms, rate),
			glide(2000, 2600, 60*ms, WaveSine, rate),
		)
	case core.CueBunny:
		return glide(300, 180, 150*ms, WaveSine, rate)
	case core.CueThud:
		return beep.Mix(
			newVolume(glide(120, 60, 120*ms, WaveSine, rate), 0.8),
			newVolume(note(0, 60*ms, WaveNoise, rate), 0.2),
		)
	case core.CuePop:
		return glide(400, 1200, 60*ms, WaveSine, rate)
	case core.CueTada:
		return beep.Seq(
			note(783.99, 120*ms, WaveSquare, rate),
			rest(30*ms, rate),
			note(1046.5, 450*ms, WaveSquare, rate),
		)
	case core.CueHoot:
		return beep.Seq(
			glide(420, 380, 180*ms, WaveSine, rate),
			rest(80*ms, rate),
			glide(420, 360, 260*ms, WaveSine, rate),
		)
	case core.CueMusic:
		return newMusicGenerator(rate)
	default:
		return nil
	}
}
