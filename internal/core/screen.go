package core

import (
	"image"
	"image/color"
)

// Plane indices. Higher planes composite over lower ones.
const (
	PlaneWorld = 0 // background, objects, spyglass and reveal
	PlaneHUD   = 1 // timer bar, egg tray, leprechaun animation
	NumPlanes  = 2
)

// Alpha levels used with SetAlpha.
const (
	AlphaTransparent uint8 = 0
	AlphaOpaque      uint8 = 255
)

// Screen is a layered pixel buffer for rendering game graphics.
// It decouples game rendering from the display, allowing games to draw
// pixels on a small fixed grid while the platform handles presentation.
//
// Drawing calls act on the current plane. Plane 0 is always opaque; every
// other plane starts transparent and only shows pixels given a non-zero
// alpha. Refresh composites all planes into the front buffer that hosts
// read with At.
type Screen struct {
	width  int
	height int
	plane  int
	layers [NumPlanes]layer
	front  []RGB
	frames int
}

type layer struct {
	color []RGB
	alpha []uint8
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	return s
}

// allocate creates the underlying pixel storage.
func (s *Screen) allocate() {
	n := s.width * s.height
	for i := range s.layers {
		s.layers[i] = layer{
			color: make([]RGB, n),
			alpha: make([]uint8, n),
		}
	}
	for i := range s.layers[PlaneWorld].alpha {
		s.layers[PlaneWorld].alpha[i] = AlphaOpaque
	}
	s.front = make([]RGB, n)
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Size returns the screen dimensions in pixels.
func (s *Screen) Size() (int, int) {
	return s.width, s.height
}

// Resize changes the screen dimensions. Content is discarded.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
}

// SetPlane selects the plane subsequent drawing calls act on.
// Out-of-range planes are ignored.
func (s *Screen) SetPlane(n int) {
	if n < 0 || n >= NumPlanes {
		return
	}
	s.plane = n
}

// Plane returns the current drawing plane.
func (s *Screen) Plane() int {
	return s.plane
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// SetPixel sets the color of a pixel on the current plane.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetPixel(x, y int, c RGB) {
	if i, ok := s.index(x, y); ok {
		s.layers[s.plane].color[i] = c
	}
}

// Pixel returns the color of a pixel on the current plane.
// Returns black for out-of-bounds coordinates.
func (s *Screen) Pixel(x, y int) RGB {
	if i, ok := s.index(x, y); ok {
		return s.layers[s.plane].color[i]
	}
	return ColorBlack
}

// SetAlpha sets the alpha of a pixel on the current plane.
// Plane 0 ignores alpha and stays opaque.
func (s *Screen) SetAlpha(x, y int, a uint8) {
	if s.plane == PlaneWorld {
		return
	}
	if i, ok := s.index(x, y); ok {
		s.layers[s.plane].alpha[i] = a
	}
}

// ClearPlane resets the current plane: black on plane 0, fully
// transparent elsewhere.
func (s *Screen) ClearPlane() {
	l := s.layers[s.plane]
	for i := range l.color {
		l.color[i] = ColorBlack
		if s.plane != PlaneWorld {
			l.alpha[i] = AlphaTransparent
		}
	}
}

// Sample returns the plane 0 color at (x, y), or false when off-grid.
// Click handling reads the world plane through this.
func (s *Screen) Sample(x, y int) (RGB, bool) {
	i, ok := s.index(x, y)
	if !ok {
		return RGB{}, false
	}
	return s.layers[PlaneWorld].color[i], true
}

// Refresh composites every plane into the front buffer.
func (s *Screen) Refresh() {
	for i := range s.front {
		c := s.layers[PlaneWorld].color[i]
		for p := PlaneWorld + 1; p < NumPlanes; p++ {
			a := s.layers[p].alpha[i]
			if a == AlphaTransparent {
				continue
			}
			c = Blend(c, s.layers[p].color[i], float64(a)/255)
		}
		s.front[i] = c
	}
	s.frames++
}

// At returns the composited color from the last Refresh.
// Returns black for out-of-bounds coordinates.
func (s *Screen) At(x, y int) RGB {
	if i, ok := s.index(x, y); ok {
		return s.front[i]
	}
	return ColorBlack
}

// Frames returns how many times Refresh has been called.
func (s *Screen) Frames() int {
	return s.frames
}

// Image converts the composited frame to an RGBA image, one image pixel per
// screen pixel.
func (s *Screen) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			c := s.front[y*s.width+x]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}
	return img
}

// RGBA returns the composited frame as packed RGBA bytes, row-major.
func (s *Screen) RGBA() []byte {
	buf := make([]byte, 0, len(s.front)*4)
	for _, c := range s.front {
		buf = append(buf, c.R, c.G, c.B, 0xFF)
	}
	return buf
}
