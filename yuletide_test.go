package yuletide

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// captureLog redirects diagnostics into a buffer for the rest of the test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogOutput(&buf)
	t.Cleanup(func() { SetLogOutput(nil) })
	return &buf
}

// testArt builds artwork with known part sizes.
func testArt(crownW, crownH, trunkW, trunkH, snowW, snowH int) *Art {
	return &Art{
		Crown:     ebiten.NewImage(crownW, crownH),
		Trunk:     ebiten.NewImage(trunkW, trunkH),
		Snow:      ebiten.NewImage(snowW, snowH),
		Snowflake: ebiten.NewImage(20, 20),
	}
}

func testWorld(seed uint64) *World {
	return NewWorld(1920, 1080, NewRand(seed), testArt(120, 160, 20, 80, 180, 40))
}

// --- Rect.Contains ---

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 100, 50}
	tests := []struct {
		name   string
		x, y   float64
		expect bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 9, 40, false},
		{"outside right", 111, 40, false},
		{"outside above", 50, 19, false},
		{"outside below", 50, 71, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.expect {
				t.Errorf("Rect%v.Contains(%v, %v) = %v, want %v", r, tt.x, tt.y, got, tt.expect)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	c := Rect{10, 20, 100, 50}.Center()
	assertNear(t, "X", c.X, 60)
	assertNear(t, "Y", c.Y, 45)
}

// --- Range / random helpers ---

func TestRangeRandomWithinBounds(t *testing.T) {
	rng := NewRand(3)
	r := Range{0.7, 2.0}
	for i := 0; i < 1000; i++ {
		v := r.Random(rng)
		if v < r.Min || v >= r.Max {
			t.Fatalf("Random() = %v, want in [%v, %v)", v, r.Min, r.Max)
		}
	}
}

func TestRangeRandomDegenerate(t *testing.T) {
	assertNear(t, "Random", Range{4, 4}.Random(NewRand(1)), 4)
}

func TestIntBetweenInclusive(t *testing.T) {
	rng := NewRand(9)
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		v := intBetween(rng, 1, 3)
		if v < 1 || v > 3 {
			t.Fatalf("intBetween(1, 3) = %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("saw %v, want all of 1..3", seen)
	}
	if got := intBetween(rng, 5, 2); got != 5 {
		t.Errorf("intBetween(5, 2) = %d, want 5", got)
	}
}

func TestNewRandDeterministic(t *testing.T) {
	a, b := NewRand(42), NewRand(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

// --- Color ---

func TestColorWithAlpha8Clamps(t *testing.T) {
	c := ColorWhite
	assertNear(t, "mid", c.WithAlpha8(51).A, 0.2)
	assertNear(t, "below", c.WithAlpha8(-10).A, 0)
	assertNear(t, "above", c.WithAlpha8(300).A, 1)
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	got := Color{1, 0.5, 0, 0.5}.toRGBA()
	want := color.RGBA{127, 63, 0, 127}
	if got != want {
		t.Errorf("toRGBA() = %v, want %v", got, want)
	}
}

func TestRGB8(t *testing.T) {
	c := RGB8(255, 0, 51)
	assertNear(t, "R", c.R, 1)
	assertNear(t, "G", c.G, 0)
	assertNear(t, "B", c.B, 0.2)
	assertNear(t, "A", c.A, 1)
}

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(800, 600, nil, nil)
	if w.Rand == nil {
		t.Error("Rand should default to a seeded source")
	}
	if w.Art == nil || w.Art.Snow == nil || w.Art.Snowflake == nil {
		t.Fatal("Art should default to placeholders")
	}
	if b := w.Art.Snow.Bounds(); b.Dx() != placeholderSize || b.Dy() != placeholderSize {
		t.Errorf("placeholder = %v, want %dx%d", b, placeholderSize, placeholderSize)
	}
}
