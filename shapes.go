package yuletide

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cornerSegments is the number of arc steps per rounded corner.
const cornerSegments = 6

// shapeBuffer holds reusable vertex and index storage for untextured
// polygons so panel drawing does not allocate every frame.
type shapeBuffer struct {
	points []Vec2
	verts  []ebiten.Vertex
	inds   []uint16
}

// roundedRect writes the outline of r with corner radius into the buffer's
// point list, clockwise starting at the top-left arc.
func (b *shapeBuffer) roundedRect(r Rect, radius float64) []Vec2 {
	radius = math.Min(radius, math.Min(r.Width, r.Height)/2)
	b.points = b.points[:0]
	if radius <= 0 {
		b.points = append(b.points,
			Vec2{r.X, r.Y},
			Vec2{r.X + r.Width, r.Y},
			Vec2{r.X + r.Width, r.Y + r.Height},
			Vec2{r.X, r.Y + r.Height},
		)
		return b.points
	}
	corners := [4]struct {
		cx, cy, start float64
	}{
		{r.X + radius, r.Y + radius, math.Pi},
		{r.X + r.Width - radius, r.Y + radius, 1.5 * math.Pi},
		{r.X + r.Width - radius, r.Y + r.Height - radius, 0},
		{r.X + radius, r.Y + r.Height - radius, 0.5 * math.Pi},
	}
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := c.start + float64(i)/cornerSegments*(math.Pi/2)
			b.points = append(b.points, Vec2{c.cx + math.Cos(a)*radius, c.cy + math.Sin(a)*radius})
		}
	}
	return b.points
}

// fan fills the buffer with a fan triangulation of a convex polygon tinted
// with c. Vertex 0 is the hub: N vertices, 3*(N-2) indices.
func (b *shapeBuffer) fan(points []Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}
	if cap(b.verts) < n {
		b.verts = make([]ebiten.Vertex, n)
	}
	b.verts = b.verts[:n]
	if cap(b.inds) < (n-2)*3 {
		b.inds = make([]uint16, (n-2)*3)
	}
	b.inds = b.inds[:(n-2)*3]

	pr := float32(c.R * c.A)
	pg := float32(c.G * c.A)
	pb := float32(c.B * c.A)
	pa := float32(c.A)
	for i, p := range points {
		b.verts[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: pr,
			ColorG: pg,
			ColorB: pb,
			ColorA: pa,
		}
	}
	for i := 0; i < n-2; i++ {
		b.inds[i*3+0] = 0
		b.inds[i*3+1] = uint16(i + 1)
		b.inds[i*3+2] = uint16(i + 2)
	}
	return b.verts, b.inds
}

// fillRoundedRect draws r filled with c.
func (b *shapeBuffer) fillRoundedRect(dst *ebiten.Image, r Rect, radius float64, c Color) {
	verts, inds := b.fan(b.roundedRect(r, radius), c)
	if len(inds) == 0 {
		return
	}
	dst.DrawTriangles(verts, inds, whitePixel, &ebiten.DrawTrianglesOptions{})
}

// strokeRoundedRect traces the outline of r with segments of the given width.
func (b *shapeBuffer) strokeRoundedRect(dst *ebiten.Image, r Rect, radius, width float64, c Color) {
	pts := b.roundedRect(r, radius)
	for i := range pts {
		j := (i + 1) % len(pts)
		strokeSegment(dst, pts[i], pts[j], width, c)
	}
}

func strokeSegment(dst *ebiten.Image, a, b Vec2, width float64, c Color) {
	vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
		float32(width), c.toRGBA(), true)
}
