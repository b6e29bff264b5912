package core

import "image"

// Image is a fixed-size RGBA pixel buffer used for sprites and masks.
type Image struct {
	Width  int
	Height int
	Pix    []uint8 // 4 bytes per pixel, row-major
}

// NewImage creates a fully transparent image.
func NewImage(width, height int) *Image {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// ImageFrom copies any image.Image into an Image.
func ImageFrom(src image.Image) *Image {
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy())
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, bl, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*img.Width + x) * 4
			img.Pix[i] = uint8(r >> 8)
			img.Pix[i+1] = uint8(g >> 8)
			img.Pix[i+2] = uint8(bl >> 8)
			img.Pix[i+3] = uint8(a >> 8)
		}
	}
	return img
}

// Contains reports whether (x, y) addresses a pixel of the image.
func (m *Image) Contains(x, y int) bool {
	return m != nil && x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

// At returns the color and alpha at (x, y).
// Out-of-bounds reads are fully transparent.
func (m *Image) At(x, y int) (RGB, uint8) {
	if !m.Contains(x, y) {
		return RGB{}, 0
	}
	i := (y*m.Width + x) * 4
	return RGB{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2]}, m.Pix[i+3]
}

// Alpha returns the alpha at (x, y), 0 when out of bounds.
func (m *Image) Alpha(x, y int) uint8 {
	_, a := m.At(x, y)
	return a
}

// Set writes a pixel. Out-of-bounds writes are ignored.
func (m *Image) Set(x, y int, c RGB, a uint8) {
	if !m.Contains(x, y) {
		return
	}
	i := (y*m.Width + x) * 4
	m.Pix[i] = c.R
	m.Pix[i+1] = c.G
	m.Pix[i+2] = c.B
	m.Pix[i+3] = a
}
