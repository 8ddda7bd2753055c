package yuletide

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// ParticlesPerBurst is the number of willow particles one explosion spawns.
	ParticlesPerBurst = 130
	// DefaultFireworkCount is the number of fireworks cycling at once.
	DefaultFireworkCount = 4

	explodeHeightRatio = 0.35
	trailStartAlpha    = 255
	trailFade          = 12
	trailDotRadius     = 2
	headDotRadius      = 3
	maxBurstColors     = 3
)

var fireworkSpeed = Range{6, 11}

// FireworkPalette holds the warm white, pale yellow, mint, coral and ash
// colors bursts are painted with.
var FireworkPalette = []Color{
	RGB8(230, 230, 230),
	RGB8(252, 236, 131),
	RGB8(190, 230, 222),
	RGB8(252, 93, 93),
	RGB8(140, 128, 128),
}

// TrailMark is one fading dot of an ascending firework's comet tail.
type TrailMark struct {
	X, Y  float64
	Alpha float64
}

// Firework rises from the bottom edge, bursts into willow particles at 35%
// of the viewport height, and starts over once every particle has faded.
// All state is reused across lives.
type Firework struct {
	X, Y     float64
	Speed    float64
	Colors   []Color
	Exploded bool

	trail     []TrailMark
	particles []FireworkParticle
	palette   []Color
	world     *World
}

// NewFirework creates a firework in the ascending state.
func NewFirework(world *World) *Firework {
	f := &Firework{
		world:     world,
		palette:   FireworkPalette,
		Colors:    make([]Color, 0, maxBurstColors),
		trail:     make([]TrailMark, 0, 32),
		particles: make([]FireworkParticle, 0, ParticlesPerBurst),
	}
	f.Reset()
	return f
}

// Reset starts a new life: a random launch column, speed and color subset.
func (f *Firework) Reset() {
	rng := f.world.Rand
	w := int(f.world.Width)
	f.X = float64(intBetween(rng, w/6, w*5/6))
	f.Y = f.world.Height
	f.Speed = fireworkSpeed.Random(rng)

	n := intBetween(rng, 1, min(maxBurstColors, len(f.palette)))
	f.Colors = f.Colors[:0]
	for _, idx := range rng.Perm(len(f.palette))[:n] {
		f.Colors = append(f.Colors, f.palette[idx])
	}

	f.Exploded = false
	f.trail = f.trail[:0]
	f.particles = f.particles[:0]
}

// Trail returns the current comet tail, oldest first.
func (f *Firework) Trail() []TrailMark {
	return f.trail
}

// Particles returns the burst particles. Empty while ascending.
func (f *Firework) Particles() []FireworkParticle {
	return f.particles
}

// Update advances the firework by one tick.
func (f *Firework) Update() {
	if f.Exploded {
		f.updateBurst()
		return
	}
	f.updateAscent()
}

func (f *Firework) updateAscent() {
	f.Y -= f.Speed
	f.trail = append(f.trail, TrailMark{f.X, f.Y, trailStartAlpha})

	kept := f.trail[:0]
	for _, m := range f.trail {
		m.Alpha -= trailFade
		if m.Alpha > 0 {
			kept = append(kept, m)
		}
	}
	f.trail = kept

	if f.Y <= f.world.Height*explodeHeightRatio {
		f.explode()
	}
}

func (f *Firework) explode() {
	f.Exploded = true
	rng := f.world.Rand
	f.particles = f.particles[:ParticlesPerBurst]
	for i := range f.particles {
		c := f.Colors[rng.IntN(len(f.Colors))]
		f.particles[i].Reset(f.world, f.X, f.Y, c)
	}
}

func (f *Firework) updateBurst() {
	alive := false
	for i := range f.particles {
		p := &f.particles[i]
		p.Update()
		if p.Alpha > 0 {
			alive = true
		}
	}
	if !alive {
		f.Reset()
	}
}

// Draw renders the comet trail and head while ascending, or every willow
// particle once exploded.
func (f *Firework) Draw(dst *ebiten.Image) {
	if f.Exploded {
		for i := range f.particles {
			f.particles[i].Draw(dst)
		}
		return
	}
	for _, m := range f.trail {
		vector.FillCircle(dst, float32(m.X), float32(m.Y), trailDotRadius,
			ColorWhite.WithAlpha8(m.Alpha).toRGBA(), true)
	}
	vector.FillCircle(dst, float32(f.X), float32(f.Y), headDotRadius,
		ColorWhite.toRGBA(), true)
}
