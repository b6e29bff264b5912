package core

// Cue names a sound a game can ask the host to play.
type Cue int

const (
	CueClock Cue = iota
	CueLose
	CueWin
	CueEgg
	CueSteal
	CueLaugh
	CueChick
	CueBunny
	CueThud
	CuePop
	CueTada
	CueHoot
	CueMusic
)

var cueNames = [...]string{
	CueClock: "clock",
	CueLose:  "lose",
	CueWin:   "win",
	CueEgg:   "egg",
	CueSteal: "lepSteal",
	CueLaugh: "lepLaugh",
	CueChick: "chick",
	CueBunny: "bunny",
	CueThud:  "thud",
	CuePop:   "fx_pop",
	CueTada:  "fx_tada",
	CueHoot:  "fx_hoot",
	CueMusic: "music",
}

// String returns the cue name.
func (c Cue) String() string {
	if c < 0 || int(c) >= len(cueNames) {
		return "unknown"
	}
	return cueNames[c]
}

// ParseCue looks a cue up by name.
func ParseCue(name string) (Cue, bool) {
	for i, n := range cueNames {
		if n == name {
			return Cue(i), true
		}
	}
	return 0, false
}

// Cues returns every defined cue in order.
func Cues() []Cue {
	out := make([]Cue, len(cueNames))
	for i := range out {
		out[i] = Cue(i)
	}
	return out
}

// Audio plays cues. Play is fire-and-forget and must not block.
type Audio interface {
	Play(cue Cue, volume float64)
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play implements Audio.
func (NopAudio) Play(Cue, float64) {}

// Random is a uniform integer source, independent of any noise function.
// *math/rand.Rand satisfies it.
type Random interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}
