package core

import "math"

// Viewport is the visible grid size in pixels.
type Viewport struct {
	W, H int
}

// InBounds reports whether p is on the grid.
func (v Viewport) InBounds(p Pixel) bool {
	return p.X >= 0 && p.X < v.W && p.Y >= 0 && p.Y < v.H
}

// ScreenToWorld maps a grid pixel to the world point under it.
func (v Viewport) ScreenToWorld(p Pixel, cam Vec) Vec {
	return Vec{
		X: float64(p.X) + math.Floor(cam.X) - float64(v.W/2),
		Y: float64(p.Y) + math.Floor(cam.Y) - float64(v.H/2),
	}
}

// WorldToScreen maps a world point to (possibly fractional) grid coordinates.
func (v Viewport) WorldToScreen(w Vec, cam Vec) Vec {
	return Vec{
		X: w.X - math.Floor(cam.X) + float64(v.W/2),
		Y: w.Y - math.Floor(cam.Y) + float64(v.H/2),
	}
}

// CameraEnv is what a motion strategy may consult during one step.
type CameraEnv struct {
	World  *World
	Rand   Random
	Slowed bool // a leprechaun is fleeing
}

// Motion is a camera motion strategy.
type Motion interface {
	// Step returns the next camera position.
	Step(pos Vec, env CameraEnv) Vec
}

// Camera owns the world-space camera position.
type Camera struct {
	Pos    Vec
	Motion Motion
}

// Advance moves the camera one tick and returns the new position.
// A non-finite result from the strategy is discarded.
func (c *Camera) Advance(env CameraEnv) Vec {
	if c.Motion == nil {
		return c.Pos
	}
	next := c.Motion.Step(c.Pos, env)
	if next.IsFinite() {
		c.Pos = next
	}
	return c.Pos
}

// Patrol follows a cyclic path of waypoints at constant speed.
type Patrol struct {
	Path  []Vec
	Index int
	Speed float64
}

// NewPatrol creates a patrol over path. The path is copied.
func NewPatrol(path []Vec, speed float64) *Patrol {
	return &Patrol{Path: append([]Vec(nil), path...), Speed: speed}
}

// Target returns the waypoint currently headed for.
func (p *Patrol) Target() Vec {
	if len(p.Path) == 0 {
		return Vec{}
	}
	return p.Path[p.Index%len(p.Path)]
}

// Step implements Motion. Reaching a waypoint costs one tick without movement.
func (p *Patrol) Step(pos Vec, _ CameraEnv) Vec {
	if len(p.Path) == 0 {
		return pos
	}
	d := p.Target().Sub(pos)
	dist := d.Len()
	if dist < p.Speed || dist == 0 {
		p.Index = (p.Index + 1) % len(p.Path)
		return pos
	}
	return pos.Add(d.Scale(p.Speed / dist))
}

// Pursuit chases random hidden objects with two-stage smoothing: a desired
// position moves toward the target at constant speed and the camera eases
// toward the desired position.
type Pursuit struct {
	Desired   Vec
	Target    Handle
	HasTarget bool

	Speed     float64
	SlowSpeed float64
	Ease      float64
	SlowEase  float64
}

// NewPursuit creates a pursuit starting at start with the usual tuning.
func NewPursuit(start Vec) *Pursuit {
	return &Pursuit{
		Desired:   start,
		Speed:     0.2,
		SlowSpeed: 0.001,
		Ease:      0.025,
		SlowEase:  0.01,
	}
}

// Step implements Motion.
func (p *Pursuit) Step(pos Vec, env CameraEnv) Vec {
	speed, ease := p.Speed, p.Ease
	if env.Slowed {
		speed, ease = p.SlowSpeed, p.SlowEase
	}

	if target, ok := p.target(env); ok {
		d := target.Sub(pos)
		dist := d.Len()
		if dist < speed || dist == 0 {
			p.retarget(env)
		} else {
			p.Desired = p.Desired.Add(d.Scale(speed / dist))
		}
	}

	return pos.Add(p.Desired.Sub(pos).Scale(ease))
}

// target resolves the current target, picking a new one if it was captured.
func (p *Pursuit) target(env CameraEnv) (Vec, bool) {
	if env.World == nil {
		return Vec{}, false
	}
	if p.HasTarget {
		if obj, ok := env.World.Hidden(p.Target); ok {
			return obj.Pos, true
		}
	}
	if !p.retarget(env) {
		return Vec{}, false
	}
	obj, _ := env.World.Hidden(p.Target)
	return obj.Pos, true
}

func (p *Pursuit) retarget(env CameraEnv) bool {
	if env.World == nil || env.Rand == nil {
		return false
	}
	h, ok := env.World.RandomHidden(env.Rand)
	p.Target, p.HasTarget = h, ok
	return ok
}
