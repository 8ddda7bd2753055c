package yuletide

import "testing"

func assertFreshFirework(t *testing.T, f *Firework, w *World) {
	t.Helper()
	if f.Exploded {
		t.Error("Exploded = true, want ascending")
	}
	lo, hi := float64(int(w.Width)/6), float64(int(w.Width)*5/6)
	if f.X < lo || f.X > hi {
		t.Errorf("X = %v, want in [%v, %v]", f.X, lo, hi)
	}
	assertNear(t, "Y", f.Y, w.Height)
	if f.Speed < 6 || f.Speed > 11 {
		t.Errorf("Speed = %v, want in [6, 11]", f.Speed)
	}
	if n := len(f.Colors); n < 1 || n > 3 {
		t.Errorf("len(Colors) = %d, want 1..3", n)
	}
	seen := map[Color]bool{}
	for _, c := range f.Colors {
		if seen[c] {
			t.Errorf("color %v sampled twice", c)
		}
		seen[c] = true
		if !inPalette(c) {
			t.Errorf("color %v not in palette", c)
		}
	}
	if len(f.Particles()) != 0 || len(f.Trail()) != 0 {
		t.Errorf("particles=%d trail=%d, want both empty", len(f.Particles()), len(f.Trail()))
	}
}

func inPalette(c Color) bool {
	for _, p := range FireworkPalette {
		if p == c {
			return true
		}
	}
	return false
}

func TestFireworkResetRanges(t *testing.T) {
	w := testWorld(21)
	f := NewFirework(w)
	for i := 0; i < 300; i++ {
		f.Reset()
		assertFreshFirework(t, f, w)
	}
}

func TestFireworkAscendsBySpeed(t *testing.T) {
	w := testWorld(22)
	f := NewFirework(w)
	f.Speed = 8
	f.Update()
	assertNear(t, "Y", f.Y, w.Height-8)
	if len(f.Trail()) != 1 {
		t.Fatalf("len(Trail) = %d, want 1", len(f.Trail()))
	}
	assertNear(t, "trail alpha", f.Trail()[0].Alpha, trailStartAlpha-trailFade)
}

func TestFireworkTrailFadesAndDrops(t *testing.T) {
	w := testWorld(23)
	w.Height = 100000 // long enough to never explode here
	f := NewFirework(w)
	f.Speed = 1
	for i := 0; i < 60; i++ {
		f.Update()
		for j, m := range f.Trail() {
			if m.Alpha <= 0 {
				t.Fatalf("tick %d: mark %d kept at alpha %v", i, j, m.Alpha)
			}
		}
	}
	// A mark survives while 255 - 12k > 0, i.e. 21 ticks.
	if n := len(f.Trail()); n != 21 {
		t.Errorf("len(Trail) = %d, want 21", n)
	}
	trail := f.Trail()
	assertNear(t, "newest alpha", trail[len(trail)-1].Alpha, 243)
	assertNear(t, "oldest alpha", trail[0].Alpha, 3)
}

func TestFireworkExplodesOnceAtThreshold(t *testing.T) {
	w := testWorld(24)
	f := NewFirework(w)
	threshold := w.Height * explodeHeightRatio

	transitions := 0
	for tick := 0; tick < 200 && transitions == 0; tick++ {
		prevY := f.Y
		f.Update()
		if !f.Exploded {
			if f.Y <= threshold {
				t.Fatalf("tick %d: Y = %v below threshold but not exploded", tick, f.Y)
			}
			continue
		}
		transitions++
		if f.Y > threshold {
			t.Errorf("exploded at Y = %v, want <= %v", f.Y, threshold)
		}
		if prevY <= threshold {
			t.Errorf("previous Y = %v already past threshold", prevY)
		}
		if n := len(f.Particles()); n != ParticlesPerBurst {
			t.Errorf("len(Particles) = %d, want %d", n, ParticlesPerBurst)
		}
		for i := range f.Particles() {
			p := &f.Particles()[i]
			if !containsColor(f.Colors, p.Color) {
				t.Fatalf("particle %d color %v not in burst colors %v", i, p.Color, f.Colors)
			}
			if p.Last() != (Vec2{f.X, f.Y}) {
				t.Fatalf("particle %d starts at %v, want (%v, %v)", i, p.Last(), f.X, f.Y)
			}
		}
	}
	if transitions != 1 {
		t.Fatalf("transitions = %d, want 1", transitions)
	}

	y := f.Y
	f.Update()
	if !f.Exploded || f.Y != y || len(f.Particles()) != ParticlesPerBurst {
		t.Error("a burst must not move or respawn particles")
	}
}

func containsColor(cs []Color, c Color) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

func TestFireworkResetsAfterBurstFades(t *testing.T) {
	w := testWorld(25)
	f := NewFirework(w)

	exploded := false
	for tick := 0; tick < 1000; tick++ {
		f.Update()
		if f.Exploded {
			exploded = true
			continue
		}
		if exploded {
			assertFreshFirework(t, f, w)
			return
		}
	}
	t.Fatal("firework never recycled")
}

func TestFireworkResetsOnlyWhenAllParticlesFaded(t *testing.T) {
	w := testWorld(26)
	f := NewFirework(w)
	for !f.Exploded {
		f.Update()
	}
	for i := range f.particles {
		f.particles[i].Alpha = 0
	}
	f.particles[7].Alpha = 2.0

	f.Update() // 2.0 -> 0.7
	if !f.Exploded {
		t.Fatal("reset while a particle was still visible")
	}
	f.Update() // 0.7 -> 0
	if f.Exploded {
		t.Fatal("reset expected once the last particle reached zero")
	}
}

func TestFireworkReusesParticlePool(t *testing.T) {
	w := testWorld(27)
	f := NewFirework(w)
	for !f.Exploded {
		f.Update()
	}
	first := &f.particles[0]
	for f.Exploded {
		f.Update()
	}
	for !f.Exploded {
		f.Update()
	}
	if &f.particles[0] != first {
		t.Error("second burst reallocated the particle pool")
	}
}
