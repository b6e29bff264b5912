package core

import "math"

// LeprechaunPhase is the leg of the leprechaun animation.
type LeprechaunPhase int

const (
	PhaseSteal LeprechaunPhase = iota // heading for the egg tray
	PhaseFlee                         // heading off-screen
)

// String returns the phase name.
func (p LeprechaunPhase) String() string {
	switch p {
	case PhaseSteal:
		return "steal"
	case PhaseFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// Leprechaun is the transient screen-space animation started by capturing
// a leprechaun.
type Leprechaun struct {
	Pos    Vec
	Target Vec
	Phase  LeprechaunPhase
}

// NewLeprechaun starts an animation at screen position at. Holding eggs
// sends it to the tray slot of the newest egg on row trayY; otherwise it
// flees straight away.
func NewLeprechaun(at Vec, eggs, trayY int, rnd Random) *Leprechaun {
	if eggs > 0 {
		return &Leprechaun{
			Pos:    at,
			Target: Vec{X: float64(2*eggs - 1), Y: float64(trayY)},
			Phase:  PhaseSteal,
		}
	}
	return &Leprechaun{Pos: at, Target: FleeTarget(rnd), Phase: PhaseFlee}
}

// FleeTarget picks an off-screen point above the grid.
func FleeTarget(rnd Random) Vec {
	return Vec{X: float64(rnd.Intn(40) - 3), Y: -2}
}

// Step eases toward the target and reports arrival. The step divides the
// offset by max(|d|^0.8 / 0.6, 1), so the leprechaun darts when far and
// crawls when near, then snaps once within half a pixel on both axes.
func (l *Leprechaun) Step() (arrived bool) {
	d := l.Target.Sub(l.Pos)
	k := math.Max(math.Pow(d.LenSq(), 0.4)/0.6, 1)
	l.Pos = l.Pos.Add(d.Scale(1 / k))

	if math.Abs(d.X) < 0.5 && math.Abs(d.Y) < 0.5 {
		l.Pos = l.Target
		return true
	}
	return false
}
