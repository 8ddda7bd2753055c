package yuletide

import "github.com/hajimehoshi/ebiten/v2"

// Snowflake spawn parameters.
const (
	snowSpawnTop    = -100 // inclusive
	snowSpawnBottom = -10  // exclusive
	snowMinSize     = 15
	snowMaxSize     = 35
)

var snowSpeed = Range{0.7, 2.0}

// Snowflake is a single falling flake. Flakes are recycled in place by Reset
// when they leave the bottom of the viewport.
type Snowflake struct {
	X, Y  float64
	Speed float64
	Size  int

	world *World
}

// NewSnowflake creates a flake scattered somewhere over the visible area so
// the first frames are not empty.
func NewSnowflake(world *World) *Snowflake {
	s := &Snowflake{}
	s.init(world)
	return s
}

func (s *Snowflake) init(world *World) {
	s.world = world
	s.Reset()
	s.Y = float64(intBetween(world.Rand, 0, int(world.Height)))
}

// Reset respawns the flake in the band just above the viewport with a fresh
// column, size and speed.
func (s *Snowflake) Reset() {
	rng := s.world.Rand
	w := int(s.world.Width)
	if w > 0 {
		s.X = float64(rng.IntN(w))
	} else {
		s.X = 0
	}
	s.Y = float64(snowSpawnTop + rng.IntN(snowSpawnBottom-snowSpawnTop))
	s.Size = intBetween(rng, snowMinSize, snowMaxSize)
	s.Speed = snowSpeed.Random(rng)
}

// Update moves the flake down by its speed, respawning it once it falls past
// the bottom edge.
func (s *Snowflake) Update() {
	s.Y += s.Speed
	if s.Y > s.world.Height {
		s.Reset()
	}
}

// Draw renders the snowflake sprite scaled to Size x Size.
func (s *Snowflake) Draw(dst *ebiten.Image) {
	img := s.world.Art.Snowflake
	if img == nil || s.Size <= 0 {
		return
	}
	b := img.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(s.Size)/float64(b.Dx()), float64(s.Size)/float64(b.Dy()))
	op.GeoM.Translate(s.X, s.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, &op)
}
