package yuletide

import "testing"

func TestRoundedRectPoints(t *testing.T) {
	var b shapeBuffer
	r := Rect{10, 20, 200, 100}
	pts := b.roundedRect(r, 12)
	if n := len(pts); n != 4*(cornerSegments+1) {
		t.Fatalf("points = %d, want %d", n, 4*(cornerSegments+1))
	}
	const tol = 1e-9
	for i, p := range pts {
		if p.X < r.X-tol || p.X > r.X+r.Width+tol || p.Y < r.Y-tol || p.Y > r.Y+r.Height+tol {
			t.Errorf("point %d = %v outside %v", i, p, r)
		}
	}
}

func TestRoundedRectZeroRadius(t *testing.T) {
	var b shapeBuffer
	pts := b.roundedRect(Rect{0, 0, 10, 10}, 0)
	want := []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	if len(pts) != len(want) {
		t.Fatalf("points = %v, want %v", pts, want)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestRoundedRectRadiusClamped(t *testing.T) {
	var b shapeBuffer
	pts := b.roundedRect(Rect{0, 0, 20, 10}, 50)
	for i, p := range pts {
		if p.Y < -1e-9 || p.Y > 10+1e-9 {
			t.Errorf("point %d = %v escapes a 10px tall rect", i, p)
		}
	}
}

func TestFanTriangulation(t *testing.T) {
	var b shapeBuffer
	pts := []Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {-5, 5}}
	verts, inds := b.fan(pts, Color{1, 0, 0, 0.5})
	if len(verts) != 5 {
		t.Fatalf("verts = %d, want 5", len(verts))
	}
	want := []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}
	if len(inds) != len(want) {
		t.Fatalf("inds = %v, want %v", inds, want)
	}
	for i := range want {
		if inds[i] != want[i] {
			t.Errorf("inds[%d] = %d, want %d", i, inds[i], want[i])
		}
	}
	if verts[0].ColorR != 0.5 || verts[0].ColorA != 0.5 {
		t.Errorf("vertex color = (%v, %v), want premultiplied (0.5, 0.5)", verts[0].ColorR, verts[0].ColorA)
	}
}

func TestFanDegenerate(t *testing.T) {
	var b shapeBuffer
	verts, inds := b.fan([]Vec2{{0, 0}, {1, 1}}, ColorWhite)
	if verts != nil || inds != nil {
		t.Error("fewer than 3 points should produce no geometry")
	}
}

func TestFanReusesBuffers(t *testing.T) {
	var b shapeBuffer
	pts := b.roundedRect(Rect{0, 0, 50, 50}, 5)
	v1, _ := b.fan(pts, ColorWhite)
	v2, _ := b.fan(pts, ColorWhite)
	if &v1[0] != &v2[0] {
		t.Error("fan reallocated its vertex buffer")
	}
}
