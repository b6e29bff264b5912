package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation and host-provided services.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	Audio    Audio // Cue player; nil means silent
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Audio:    NopAudio{},
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score       int    // Current score
	GameOver    bool   // Whether the round has ended
	Won         bool   // Whether the round ended in a win
	Paused      bool   // Whether the game is paused
	Eggs        int    // Eggs currently held
	SecondsLeft int    // Whole seconds left on the timer, 0 when untimed
	Seed        int64  // Seed the round was built from
	Status      string // Short status line for the host
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
}
