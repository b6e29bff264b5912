package core

// AfterimageCap is the maximum number of remembered spyglass positions.
const AfterimageCap = 6

// Spyglass is the reveal cursor. Afterimage holds past positions in screen
// space, oldest first.
type Spyglass struct {
	Pos        Pixel
	Afterimage []Vec
}

// SetPosition moves the spyglass. Called on pointer-enter.
func (s *Spyglass) SetPosition(p Pixel) {
	s.Pos = p
}

// Tick records the current position, dropping the oldest entries beyond
// AfterimageCap.
func (s *Spyglass) Tick() {
	s.Afterimage = append(s.Afterimage, s.Pos.Vec())
	if n := len(s.Afterimage); n > AfterimageCap {
		s.Afterimage = append(s.Afterimage[:0], s.Afterimage[n-AfterimageCap:]...)
	}
}

// Compensate shifts the afterimage against a camera displacement so the
// trail stays put on screen.
func (s *Spyglass) Compensate(d Vec) {
	for i := range s.Afterimage {
		s.Afterimage[i] = s.Afterimage[i].Sub(d)
	}
}
