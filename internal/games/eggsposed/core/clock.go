package core

import platformcore "github.com/vovakirdan/eggsposed/internal/core"

// Clock is the round countdown. A zero Total means the round is untimed.
type Clock struct {
	Remaining int
	Total     int
}

// NewClock creates a full clock of total ticks.
func NewClock(total int) Clock {
	if total < 0 {
		total = 0
	}
	return Clock{Remaining: total, Total: total}
}

// Timed reports whether the clock counts down at all.
func (c Clock) Timed() bool {
	return c.Total > 0
}

// Running reports whether time is left, always true when untimed.
func (c Clock) Running() bool {
	return !c.Timed() || c.Remaining > 0
}

// Fraction returns the remaining share of the clock in [0, 1].
func (c Clock) Fraction() float64 {
	if !c.Timed() {
		return 1
	}
	return float64(c.Remaining) / float64(c.Total)
}

// Step counts down one tick. A clock cue plays the first time the clock
// leaves full and the first time it drops to or below each remaining
// quarter. When the clock reaches zero with fewer than winAt eggs held the
// lose cue plays and Step reports expired.
func (c *Clock) Step(eggs, winAt int, audio Audio) (expired bool) {
	if !c.Timed() || c.Remaining <= 0 {
		return false
	}
	before := c.Fraction()
	c.Remaining--
	after := c.Fraction()

	if c.Remaining == 0 && eggs < winAt {
		play(audio, platformcore.CueLose)
		expired = true
	}

	switch {
	case before >= 1 && after < 1,
		before > 0.75 && after <= 0.75,
		before > 0.5 && after <= 0.5,
		before > 0.25 && after <= 0.25:
		play(audio, platformcore.CueClock)
	}
	return expired
}
