package core_test

import (
	"math"

	platformcore "github.com/vovakirdan/eggsposed/internal/core"
	"github.com/vovakirdan/eggsposed/internal/games/eggsposed/core"
)

// recorder is an Audio that remembers every cue.
type recorder struct {
	cues    []platformcore.Cue
	volumes []float64
}

func (r *recorder) Play(c platformcore.Cue, volume float64) {
	r.cues = append(r.cues, c)
	r.volumes = append(r.volumes, volume)
}

func (r *recorder) count(c platformcore.Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

func (r *recorder) last() (platformcore.Cue, float64, bool) {
	if len(r.cues) == 0 {
		return 0, 0, false
	}
	i := len(r.cues) - 1
	return r.cues[i], r.volumes[i], true
}

// fixedRand always answers v modulo n.
type fixedRand struct {
	v int
}

func (f fixedRand) Intn(n int) int {
	return f.v % n
}

// emptyMeadow is a meadow round with no objects placed.
func emptyMeadow(audio *recorder) *core.State {
	opts := core.MeadowOptions()
	opts.Populate.Candidates = 0
	return core.New(opts, core.Assets{}, core.Capabilities{Audio: audio, Rand: fixedRand{}})
}

// emptyClassic is a classic round with no objects placed.
func emptyClassic(audio *recorder) *core.State {
	opts := core.ClassicOptions()
	opts.Populate.Candidates = 0
	return core.New(opts, core.Assets{}, core.Capabilities{Audio: audio, Rand: fixedRand{}})
}

// opaqueLens is a lens whose every pixel is opaque.
func opaqueLens(w, h int) *platformcore.Image {
	img := platformcore.NewImage(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, platformcore.ColorWhite, 255)
		}
	}
	return img
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
