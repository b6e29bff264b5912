// Package core implements the Egg-sposed world simulation: noise-textured
// background, object placement, camera motion, the spyglass reveal, the
// timer and leprechaun state machine, click resolution and frame rendering.
//
// The package never blocks and never returns errors. Everything it needs
// from the host arrives as a capability: a pixel surface, image assets that
// may be missing, an audio trigger and a random source.
package core

import (
	"math/rand"

	platformcore "github.com/vovakirdan/eggsposed/internal/core"
)

// Shared platform types.
type (
	Vec    = platformcore.Vec
	Pixel  = platformcore.Pixel
	RGB    = platformcore.RGB
	Image  = platformcore.Image
	Cue    = platformcore.Cue
	Audio  = platformcore.Audio
	Random = platformcore.Random
)

// Surface is the layered pixel target the renderer draws into.
// Writes outside the viewport must be ignored by the implementation.
type Surface interface {
	Size() (w, h int)
	SetPlane(n int)
	SetPixel(x, y int, c RGB)
	Pixel(x, y int) RGB
	SetAlpha(x, y int, a uint8)
	ClearPlane()
	Refresh()
}

// Sampler reads back the world plane of the last rendered frame.
type Sampler interface {
	Sample(x, y int) (RGB, bool)
}

// SamplerFunc adapts a function to Sampler.
type SamplerFunc func(x, y int) (RGB, bool)

// Sample implements Sampler.
func (f SamplerFunc) Sample(x, y int) (RGB, bool) {
	return f(x, y)
}

// Assets holds optional images. Any of them may be nil while loading or
// when missing; rendering and reveal degrade instead of failing.
type Assets struct {
	Lens    *Image
	Sprites [DecorVariants]*Image
}

// Sprite returns the sprite for a decor variant, or nil.
func (a Assets) Sprite(d Decor) *Image {
	i := d.spriteIndex()
	if i < 0 {
		return nil
	}
	return a.Sprites[i]
}

// Capabilities are the host services a State consumes.
type Capabilities struct {
	Audio Audio
	Rand  Random
}

func (c Capabilities) withDefaults() Capabilities {
	if c.Audio == nil {
		c.Audio = platformcore.NopAudio{}
	}
	if c.Rand == nil {
		c.Rand = rand.New(rand.NewSource(1))
	}
	return c
}

// Volumes every cue plays at.
var cueVolume = map[Cue]float64{
	platformcore.CueClock: 0.25,
	platformcore.CueLose:  0.25,
	platformcore.CueWin:   0.25,
	platformcore.CueEgg:   0.25,
	platformcore.CueSteal: 0.4,
	platformcore.CueLaugh: 0.25,
	platformcore.CueChick: 0.25,
	platformcore.CueBunny: 0.15,
	platformcore.CueThud:  0.05,
	platformcore.CuePop:   0.25,
	platformcore.CueTada:  0.25,
	platformcore.CueHoot:  0.25,
	platformcore.CueMusic: 0.125,
}

// CueVolume returns the volume a cue is played at.
func CueVolume(c Cue) float64 {
	if v, ok := cueVolume[c]; ok {
		return v
	}
	return 0.25
}

func play(a Audio, c Cue) {
	a.Play(c, CueVolume(c))
}
