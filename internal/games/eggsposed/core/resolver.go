package core

import platformcore "github.com/vovakirdan/eggsposed/internal/core"

// Event is what a click resolved to.
type Event int

const (
	EventNone Event = iota
	EventEgg
	EventWin
	EventLeprechaun
	EventChick
	EventBunny
	EventThud
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventEgg:
		return "egg"
	case EventWin:
		return "win"
	case EventLeprechaun:
		return "leprechaun"
	case EventChick:
		return "chick"
	case EventBunny:
		return "bunny"
	case EventThud:
		return "thud"
	default:
		return "unknown"
	}
}

// Click resolves a click at grid pixel p. The nearest hidden object within
// the capture radius is removed and handled. A miss reacts to the color of
// the last rendered world plane in frame, which may be nil.
func (s *State) Click(p Pixel, frame Sampler) Event {
	h, distSq, ok := s.World.NearestHidden(p, s.Project)
	r := s.Rules.CaptureRadius
	if ok && distSq <= r*r {
		obj, _ := s.World.Hidden(h)
		s.World.Remove(h)
		switch obj.Kind {
		case KindEgg:
			return s.captureEgg(obj)
		case KindLeprechaun:
			return s.captureLeprechaun(obj)
		}
	}
	return s.miss(p, frame)
}

func (s *State) captureEgg(obj HiddenObject) Event {
	s.Eggs = append(s.Eggs, obj.Color)
	s.Flash = s.Rules.FlashTicks
	if len(s.Eggs) == s.Rules.WinEggs {
		play(s.caps.Audio, s.Rules.Cues.Win)
		if s.Outcome == OutcomePlaying {
			s.Outcome = OutcomeWon
		}
		return EventWin
	}
	play(s.caps.Audio, s.Rules.Cues.Egg)
	return EventEgg
}

func (s *State) captureLeprechaun(obj HiddenObject) Event {
	if s.Rules.Steals {
		s.Leprechaun = NewLeprechaun(s.Project(obj.Pos), len(s.Eggs), s.TrayRow(), s.caps.Rand)
	}
	play(s.caps.Audio, s.Rules.Cues.Leprechaun)
	return EventLeprechaun
}

func (s *State) miss(p Pixel, frame Sampler) Event {
	if !s.Rules.SniffOnMiss {
		return EventNone
	}
	tile := TilePlain
	if frame != nil {
		if c, ok := frame.Sample(p.X, p.Y); ok {
			tile = Classify(c)
		}
	}
	switch tile {
	case TileChick:
		play(s.caps.Audio, platformcore.CueChick)
		return EventChick
	case TileBunny:
		play(s.caps.Audio, platformcore.CueBunny)
		return EventBunny
	default:
		play(s.caps.Audio, platformcore.CueThud)
		return EventThud
	}
}
