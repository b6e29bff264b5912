package eggsposed

import "github.com/vovakirdan/eggsposed/internal/games/eggsposed/core"

// Snapshot captures the round state for determinism testing.
type Snapshot struct {
	Tick       int
	Eggs       int
	Hidden     int
	CameraX    float64
	CameraY    float64
	Remaining  int
	Outcome    string
	Leprechaun bool
	Score      int
	Paused     bool
}

// Snapshot returns the current round snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.state == nil {
		return Snapshot{Outcome: core.OutcomePlaying.String()}
	}
	return Snapshot{
		Tick:       g.state.Ticks,
		Eggs:       len(g.state.Eggs),
		Hidden:     g.state.World.HiddenCount(),
		CameraX:    g.state.Camera.Pos.X,
		CameraY:    g.state.Camera.Pos.Y,
		Remaining:  g.state.Clock.Remaining,
		Outcome:    g.state.Outcome.String(),
		Leprechaun: g.state.Leprechaun != nil,
		Score:      g.score(),
		Paused:     g.paused,
	}
}
