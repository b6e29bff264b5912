// Package core provides fundamental types and utilities for the arcade platform.
// It contains no UI dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a point or displacement in continuous 2D space.
// World positions, camera positions and sub-pixel screen positions all use it.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared Euclidean length of v.
func (v Vec) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// Floor truncates v toward negative infinity on both axes.
func (v Vec) Floor() Pixel {
	return Pixel{X: int(math.Floor(v.X)), Y: int(math.Floor(v.Y))}
}

// Round returns the nearest integer pixel to v.
func (v Vec) Round() Pixel {
	return Pixel{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// IsFinite reports whether both components are finite numbers.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Pixel is an integer position on a pixel grid.
// X increases to the right, Y increases downward.
type Pixel struct {
	X, Y int
}

// Add returns the pixel offset by (dx, dy).
func (p Pixel) Add(dx, dy int) Pixel {
	return Pixel{X: p.X + dx, Y: p.Y + dy}
}

// Vec converts the pixel to a continuous point.
func (p Pixel) Vec() Vec {
	return Vec{X: float64(p.X), Y: float64(p.Y)}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
