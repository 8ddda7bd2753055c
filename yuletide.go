package yuletide

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the color of firework trails and panel text.
var ColorWhite = Color{1, 1, 1, 1}

// RGB8 builds an opaque Color from 8-bit channel values.
func RGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// WithAlpha8 returns c with its alpha replaced by a/255. Values outside
// [0, 255] are clamped.
func (c Color) WithAlpha8(a float64) Color {
	c.A = clamp(a, 0, 255) / 255
	return c
}

// toRGBA converts to the premultiplied color.RGBA Ebitengine expects.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R*c.A, 0, 1) * 255),
		G: uint8(clamp(c.G*c.A, 0, 1) * 255),
		B: uint8(clamp(c.B*c.A, 0, 1) * 255),
		A: uint8(clamp(c.A, 0, 1) * 255),
	}
}

// Vec2 is a 2D vector used for positions and velocities.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Range is a general-purpose min/max range used for randomized spawn values.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max) drawn from rng.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// NewRand returns a deterministic PCG-backed source for the given seed.
// Every entity draws from an injected source so runs can be replayed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// intBetween returns a uniform integer in [lo, hi], both inclusive.
func intBetween(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// whitePixel is a 1x1 white image used as the source for untextured shapes.
var whitePixel *ebiten.Image

func init() {
	whitePixel = ebiten.NewImage(1, 1)
	whitePixel.Fill(color.White)
}

// World carries the state every entity shares: the current viewport, the
// random source and the loaded artwork. Layout updates Width and Height on
// resize; entities read them on their next Update.
type World struct {
	Width, Height float64
	Rand          *rand.Rand
	Art           *Art
}

// NewWorld creates a World for a width x height viewport.
func NewWorld(width, height float64, rng *rand.Rand, art *Art) *World {
	if rng == nil {
		rng = NewRand(1)
	}
	if art == nil {
		art = placeholderArt()
	}
	return &World{Width: width, Height: height, Rand: rng, Art: art}
}

// Entity is anything the overlay advances once per tick and draws once per
// frame.
type Entity interface {
	Update()
	Draw(dst *ebiten.Image)
}

var (
	_ Entity = (*ChristmasTree)(nil)
	_ Entity = (*Snowflake)(nil)
	_ Entity = (*Firework)(nil)
	_ Entity = (*Scene)(nil)
)
