package yuletide

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestLayoutPanel(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		panel, button Rect
	}{
		{"full hd", 1920, 1080, Rect{1700, 960, 200, 100}, Rect{1745, 1002, 110, 32}},
		{"small", 800, 600, Rect{580, 480, 200, 100}, Rect{625, 522, 110, 32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := LayoutPanel(tt.width, tt.height)
			if l.Panel != tt.panel {
				t.Errorf("Panel = %v, want %v", l.Panel, tt.panel)
			}
			if l.Button != tt.button {
				t.Errorf("Button = %v, want %v", l.Button, tt.button)
			}
		})
	}
}

func TestPanelFadesIn(t *testing.T) {
	p := NewPanel(nil, "text", "Exit")
	if p.Alpha() != 0 {
		t.Fatalf("initial Alpha = %v, want 0", p.Alpha())
	}
	l := LayoutPanel(800, 600)
	for i := 0; i < 60; i++ {
		p.Update(1.0/60, l, -1, -1)
	}
	if math.Abs(p.Alpha()-1) > 1e-3 {
		t.Errorf("Alpha = %v after 1s, want ~1", p.Alpha())
	}
}

func TestPanelHoverFollowsCursor(t *testing.T) {
	p := NewPanel(nil, "text", "Exit")
	l := LayoutPanel(800, 600)
	c := l.Button.Center()

	for i := 0; i < 30; i++ {
		p.Update(1.0/60, l, c.X, c.Y)
	}
	if math.Abs(p.hover-1) > 1e-3 {
		t.Errorf("hover = %v over the button, want ~1", p.hover)
	}
	for i := 0; i < 30; i++ {
		p.Update(1.0/60, l, 0, 0)
	}
	if math.Abs(p.hover) > 1e-3 {
		t.Errorf("hover = %v away from the button, want ~0", p.hover)
	}
}

func TestLerpColor(t *testing.T) {
	c := lerpColor(Color{0, 0, 0, 1}, Color{1, 0.5, 0, 1}, 0.5)
	assertNear(t, "R", c.R, 0.5)
	assertNear(t, "G", c.G, 0.25)
	assertNear(t, "clamped", lerpColor(Color{}, ColorWhite, 2).R, 1)
}

func TestTweenReachesTarget(t *testing.T) {
	v := 10.0
	tw := NewTween(&v, 100, 1.0, ease.Linear)
	tw.Update(0.5)
	tw.Update(0.5)
	if !tw.Done {
		t.Fatal("expected Done after full duration")
	}
	if math.Abs(v-100) > 0.5 {
		t.Errorf("v = %v, want ~100", v)
	}
	assertNear(t, "To", tw.To(), 100)
}

func TestTweenNilSafe(t *testing.T) {
	var tw *Tween
	tw.Update(1) // should not panic
}
