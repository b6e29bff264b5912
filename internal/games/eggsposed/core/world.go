package core

import "slices"

// Kind discriminates hidden objects.
type Kind int

const (
	KindEgg Kind = iota
	KindLeprechaun
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindEgg:
		return "egg"
	case KindLeprechaun:
		return "leprechaun"
	default:
		return "unknown"
	}
}

// Decor is the cosmetic variant of a visible object.
type Decor int

const (
	DecorBlock Decor = iota // 5x5 dark square, no sprite
	DecorFlower
	DecorChick
	DecorBunny
	DecorBush
	DecorRock
	DecorMushroom
	DecorBasket
)

// DecorVariants is the number of sprite-backed decor variants.
const DecorVariants = 7

// DecorFromIndex maps a sprite index in [0, DecorVariants) to its decor.
func DecorFromIndex(i int) Decor {
	if i < 0 || i >= DecorVariants {
		return DecorBlock
	}
	return DecorFlower + Decor(i)
}

func (d Decor) spriteIndex() int {
	if d < DecorFlower || d > DecorBasket {
		return -1
	}
	return int(d - DecorFlower)
}

// String returns the decor name.
func (d Decor) String() string {
	switch d {
	case DecorBlock:
		return "block"
	case DecorFlower:
		return "flower"
	case DecorChick:
		return "chick"
	case DecorBunny:
		return "bunny"
	case DecorBush:
		return "bush"
	case DecorRock:
		return "rock"
	case DecorMushroom:
		return "mushroom"
	case DecorBasket:
		return "basket"
	default:
		return "unknown"
	}
}

// Handle identifies a hidden object. Handles are never reused, so removing
// one object never invalidates the handle of another.
type Handle uint32

// VisibleObject is a decoy. It is never removed during play.
type VisibleObject struct {
	Pos   Vec
	Decor Decor
}

// HiddenObject is an egg or a leprechaun. Color is only meaningful for eggs.
type HiddenObject struct {
	ID    Handle
	Pos   Vec
	Kind  Kind
	Color RGB
}

// PopulateParams controls world population.
type PopulateParams struct {
	Candidates    int     // sampled positions, including rejected ones
	Extent        float64 // positions fall in [0, Extent) on both axes
	MinSeparation float64 // minimum distance between visible objects
	Sprites       bool    // pick a sprite decor per object; otherwise DecorBlock
	HiddenOutOf   int     // an accepted candidate hides something with chance 1/HiddenOutOf
	EggWeight     int     // a hidden object is an egg with chance EggWeight/EggOutOf
	EggOutOf      int
	MinEggs       int   // both gates pass while fewer eggs than this are placed
	EggColors     []RGB // palette eggs draw their color from
}

// World is the spatial object registry.
type World struct {
	visible []VisibleObject
	hidden  []HiddenObject
	next    Handle
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{next: 1}
}

// AddVisible places a decoy.
func (w *World) AddVisible(pos Vec, d Decor) {
	w.visible = append(w.visible, VisibleObject{Pos: pos, Decor: d})
}

// AddHidden places a hidden object and returns its handle.
func (w *World) AddHidden(pos Vec, k Kind, c RGB) Handle {
	if w.next == 0 {
		w.next = 1
	}
	h := w.next
	w.next++
	w.hidden = append(w.hidden, HiddenObject{ID: h, Pos: pos, Kind: k, Color: c})
	return h
}

// Populate scatters objects. Candidate positions come from Noise indexed
// by the loop counter, so visible placement is identical for every run.
// Decor and hidden-object gating draw from rnd.
func (w *World) Populate(p PopulateParams, rnd Random) {
	eggs := 0
outer:
	for i := 0; i < p.Candidates; i++ {
		pos := Vec{
			X: Noise(float64(i)) * p.Extent,
			Y: Noise(float64(i+100)) * p.Extent,
		}

		for _, obj := range w.visible {
			if Dist(obj.Pos, pos) < p.MinSeparation {
				continue outer
			}
		}

		decor := DecorBlock
		if p.Sprites {
			decor = DecorFromIndex(rnd.Intn(DecorVariants))
		}
		w.AddVisible(pos, decor)

		if !gate(rnd, 1, p.HiddenOutOf) && eggs >= p.MinEggs {
			continue
		}
		if gate(rnd, p.EggWeight, p.EggOutOf) || eggs < p.MinEggs {
			w.AddHidden(pos, KindEgg, pickColor(p.EggColors, rnd))
			eggs++
		} else {
			w.AddHidden(pos, KindLeprechaun, RGB{})
		}
	}
}

// gate passes with chance weight/outOf. outOf below 1 always passes.
func gate(rnd Random, weight, outOf int) bool {
	if outOf < 1 {
		return true
	}
	return rnd.Intn(outOf) < weight
}

func pickColor(colors []RGB, rnd Random) RGB {
	if len(colors) == 0 {
		return RGB{R: 0, G: 255, B: 255}
	}
	return colors[rnd.Intn(len(colors))]
}

// Dist is the Euclidean distance between two points.
func Dist(a, b Vec) float64 {
	return a.Sub(b).Len()
}

// NearestHidden returns the hidden object whose projected position is
// closest to click, with the squared distance. The first of several equally
// close objects wins. ok is false when no hidden objects remain.
func (w *World) NearestHidden(click Pixel, project func(Vec) Vec) (h Handle, distSq float64, ok bool) {
	c := click.Vec()
	for _, obj := range w.hidden {
		d := c.Sub(project(obj.Pos)).LenSq()
		if !ok || d < distSq {
			h, distSq, ok = obj.ID, d, true
		}
	}
	return h, distSq, ok
}

// Remove deletes a hidden object. It reports false if h is not present.
func (w *World) Remove(h Handle) bool {
	i := w.indexOf(h)
	if i < 0 {
		return false
	}
	w.hidden = slices.Delete(w.hidden, i, i+1)
	return true
}

func (w *World) indexOf(h Handle) int {
	return slices.IndexFunc(w.hidden, func(o HiddenObject) bool { return o.ID == h })
}

// Hidden looks up a live hidden object.
func (w *World) Hidden(h Handle) (HiddenObject, bool) {
	i := w.indexOf(h)
	if i < 0 {
		return HiddenObject{}, false
	}
	return w.hidden[i], true
}

// RandomHidden picks a live hidden object uniformly.
func (w *World) RandomHidden(rnd Random) (Handle, bool) {
	if len(w.hidden) == 0 {
		return 0, false
	}
	return w.hidden[rnd.Intn(len(w.hidden))].ID, true
}

// HiddenCount returns the number of live hidden objects.
func (w *World) HiddenCount() int {
	return len(w.hidden)
}

// EggCount returns the number of live eggs.
func (w *World) EggCount() int {
	n := 0
	for _, obj := range w.hidden {
		if obj.Kind == KindEgg {
			n++
		}
	}
	return n
}

// Visible returns the decoys. The slice must not be modified.
func (w *World) Visible() []VisibleObject {
	return w.visible
}

// HiddenObjects returns the live hidden objects in placement order.
// The slice must not be modified.
func (w *World) HiddenObjects() []HiddenObject {
	return w.hidden
}
