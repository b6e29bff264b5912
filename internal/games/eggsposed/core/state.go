package core

import platformcore "github.com/vovakirdan/eggsposed/internal/core"

// Outcome is the round result.
type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeWon
	OutcomeLost
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomePlaying:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// CameraMode selects the camera strategy.
type CameraMode int

const (
	CameraPursuit CameraMode = iota
	CameraPatrol
)

// RevealMode selects the spyglass reveal strategy.
type RevealMode int

const (
	RevealMask RevealMode = iota
	RevealSquare
)

// CameraOptions configures the camera.
type CameraOptions struct {
	Mode      CameraMode
	Start     Vec
	Speed     float64
	SlowSpeed float64
	Ease      float64
	SlowEase  float64
	Path      []Vec
}

// RevealOptions configures the spyglass reveal.
type RevealOptions struct {
	Mode       RevealMode
	Radius     int
	Tint       RGB
	TintAmount float64
	Falloff    float64
}

// CueSet maps capture events to cues.
type CueSet struct {
	Egg        Cue
	Win        Cue
	Leprechaun Cue
}

// Rules are the per-variant gameplay switches.
type Rules struct {
	CaptureRadius float64
	WinEggs       int  // eggs needed to win; 0 means every egg placed
	Steals        bool // leprechauns animate and steal
	SniffOnMiss   bool // a miss plays a cue picked from the pixel color
	HUD           bool
	FlashTicks    int
	Cues          CueSet
}

// Look holds drawing choices that differ between variants.
type Look struct {
	Palette         Palette
	EggTall         bool // eggs are two pixels high
	LeprechaunColor RGB
	BlockColor      RGB
}

// Options fully describe a round.
type Options struct {
	Viewport   Viewport
	Populate   PopulateParams
	Camera     CameraOptions
	Reveal     RevealOptions
	TimerTicks int // 0 for untimed
	Rules      Rules
	Look       Look
}

// State is the whole game aggregate. One scheduler owns it; Tick, the
// pointer calls and Render must not run concurrently.
type State struct {
	Viewport   Viewport
	Camera     Camera
	World      *World
	Spyglass   Spyglass
	Reveal     Reveal
	Clock      Clock
	Eggs       []RGB
	Leprechaun *Leprechaun
	Flash      int
	Ticks      int
	Outcome    Outcome
	Rules      Rules
	Look       Look

	caps Capabilities
}

// New builds and populates a round.
func New(opts Options, assets Assets, caps Capabilities) *State {
	caps = caps.withDefaults()
	s := &State{
		Viewport: opts.Viewport,
		World:    NewWorld(),
		Clock:    NewClock(opts.TimerTicks),
		Rules:    opts.Rules,
		Look:     opts.Look,
		caps:     caps,
	}
	s.Camera = Camera{Pos: opts.Camera.Start, Motion: newMotion(opts.Camera)}
	s.Reveal = newReveal(opts.Reveal, assets)

	s.World.Populate(opts.Populate, caps.Rand)
	if s.Rules.WinEggs <= 0 {
		s.Rules.WinEggs = s.World.EggCount()
		// Nothing to find: the round is already complete.
		if s.Rules.WinEggs == 0 {
			s.Outcome = OutcomeWon
		}
	}
	return s
}

func newMotion(o CameraOptions) Motion {
	switch o.Mode {
	case CameraPatrol:
		return NewPatrol(o.Path, o.Speed)
	default:
		p := NewPursuit(o.Start)
		if o.Speed > 0 {
			p.Speed = o.Speed
		}
		if o.SlowSpeed > 0 {
			p.SlowSpeed = o.SlowSpeed
		}
		if o.Ease > 0 {
			p.Ease = o.Ease
		}
		if o.SlowEase > 0 {
			p.SlowEase = o.SlowEase
		}
		return p
	}
}

func newReveal(o RevealOptions, assets Assets) Reveal {
	switch o.Mode {
	case RevealSquare:
		return SquareReveal{Radius: o.Radius, Tint: o.Tint, TintAmount: o.TintAmount}
	default:
		falloff := o.Falloff
		if falloff <= 1 {
			falloff = 1.5
		}
		return MaskReveal{Lens: assets.Lens, Falloff: falloff}
	}
}

// Audio returns the audio capability.
func (s *State) Audio() Audio {
	return s.caps.Audio
}

// Project maps a world point to grid coordinates for the current camera.
func (s *State) Project(w Vec) Vec {
	return s.Viewport.WorldToScreen(w, s.Camera.Pos)
}

// Unproject maps a grid pixel to the world point under it.
func (s *State) Unproject(p Pixel) Vec {
	return s.Viewport.ScreenToWorld(p, s.Camera.Pos)
}

// PointerEnter moves the spyglass.
func (s *State) PointerEnter(p Pixel) {
	s.Spyglass.SetPosition(p)
}

// Slowed reports whether the camera runs in slow motion.
func (s *State) Slowed() bool {
	return s.Leprechaun != nil && s.Leprechaun.Phase == PhaseFlee
}

// Tick advances the simulation one step: spyglass history, clock, camera,
// leprechaun animation, flash counter.
func (s *State) Tick() {
	s.Spyglass.Tick()

	running := s.Clock.Running()
	if s.Clock.Step(len(s.Eggs), s.Rules.WinEggs, s.caps.Audio) && s.Outcome == OutcomePlaying {
		s.Outcome = OutcomeLost
	}

	if running {
		before := s.Camera.Pos
		after := s.Camera.Advance(CameraEnv{World: s.World, Rand: s.caps.Rand, Slowed: s.Slowed()})
		s.Spyglass.Compensate(after.Sub(before))
	}

	s.stepLeprechaun()

	if s.Flash > 0 {
		s.Flash--
	}
	s.Ticks++
}

func (s *State) stepLeprechaun() {
	l := s.Leprechaun
	if l == nil || !l.Step() {
		return
	}
	if l.Phase == PhaseFlee {
		s.Leprechaun = nil
		return
	}
	if n := len(s.Eggs); n > 0 {
		s.Eggs = s.Eggs[:n-1]
	}
	s.Flash = 0
	play(s.caps.Audio, platformcore.CueSteal)
	l.Target = FleeTarget(s.caps.Rand)
	l.Phase = PhaseFlee
}

// TrayRow is the HUD row holding collected eggs.
func (s *State) TrayRow() int {
	return s.Viewport.H - 2
}
