package yuletide

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Willow particle constants.
const (
	particleMaxPath    = 25
	particleGravity    = 0.038
	particleDrag       = 0.99
	particleFade       = 1.3
	particleStartAlpha = 255
	particleLineWidth  = 2
)

var (
	particleVX = Range{-6.0, 6.0}
	particleVY = Range{-4.5, 1.5}
)

// FireworkParticle is one drooping "willow branch" of an exploded firework.
// It remembers its most recent positions in a fixed ring buffer so the trail
// can be drawn without per-frame allocation.
type FireworkParticle struct {
	VX, VY  float64
	Alpha   float64
	Color   Color
	Gravity float64
	Drag    float64

	path  [particleMaxPath]Vec2
	head  int // index of the oldest point
	count int
}

// Reset reinitializes the particle at (x, y) with a random velocity drawn
// from world's random source.
func (p *FireworkParticle) Reset(world *World, x, y float64, c Color) {
	p.head = 0
	p.count = 1
	p.path[0] = Vec2{x, y}
	p.Color = c
	p.VX = particleVX.Random(world.Rand)
	p.VY = particleVY.Random(world.Rand)
	p.Alpha = particleStartAlpha
	p.Gravity = particleGravity
	p.Drag = particleDrag
}

// PathLen returns the number of stored positions, at most 25.
func (p *FireworkParticle) PathLen() int {
	return p.count
}

// PathAt returns the i-th stored position, oldest first.
func (p *FireworkParticle) PathAt(i int) Vec2 {
	return p.path[(p.head+i)%particleMaxPath]
}

// Last returns the newest position.
func (p *FireworkParticle) Last() Vec2 {
	return p.PathAt(p.count - 1)
}

func (p *FireworkParticle) push(v Vec2) {
	if p.count < particleMaxPath {
		p.path[(p.head+p.count)%particleMaxPath] = v
		p.count++
		return
	}
	p.path[p.head] = v
	p.head = (p.head + 1) % particleMaxPath
}

// Update extends the path by the current velocity, then applies gravity and
// drag and fades the particle. Alpha never drops below zero.
func (p *FireworkParticle) Update() {
	last := p.Last()
	next := Vec2{last.X + p.VX, last.Y + p.VY}
	p.VY += p.Gravity
	p.VX *= p.Drag
	p.push(next)
	p.Alpha -= particleFade
	if p.Alpha < 0 {
		p.Alpha = 0
	}
}

// segmentAlpha is the alpha of the segment starting at path index i. Older
// segments are fainter.
func (p *FireworkParticle) segmentAlpha(i int) float64 {
	return float64(int(p.Alpha * float64(i) / float64(p.count)))
}

// Draw renders the path as a polyline of 2-pixel segments.
func (p *FireworkParticle) Draw(dst *ebiten.Image) {
	if p.Alpha <= 0 || p.count < 2 {
		return
	}
	for i := 0; i < p.count-1; i++ {
		a := p.segmentAlpha(i)
		if a <= 0 {
			continue
		}
		p1, p2 := p.PathAt(i), p.PathAt(i+1)
		vector.StrokeLine(dst,
			float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y),
			particleLineWidth, p.Color.WithAlpha8(a).toRGBA(), true)
	}
}
