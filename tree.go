package yuletide

import "github.com/hajimehoshi/ebiten/v2"

// crownOverlap is how far the crown is pushed down over the trunk.
const crownOverlap = 100

// ChristmasTree is a static tree assembled from a snow base, a trunk and a
// crown, all anchored on one bottom-center X. It never changes after
// construction.
type ChristmasTree struct {
	BaseX int
	Snow  Rect
	Trunk Rect
	Crown Rect

	art *Art
}

// NewChristmasTree places a tree whose snow base sits on the bottom edge of
// the viewport, centered on baseX.
func NewChristmasTree(world *World, baseX int) *ChristmasTree {
	art := world.Art
	sw, sh := imageSize(art.Snow)
	tw, th := imageSize(art.Trunk)
	cw, ch := imageSize(art.Crown)
	height := int(world.Height)

	snowY := height - sh
	trunkY := height - th - sh/4
	crownY := trunkY - ch + crownOverlap

	return &ChristmasTree{
		BaseX: baseX,
		Snow:  Rect{float64(baseX - sw/2), float64(snowY), float64(sw), float64(sh)},
		Trunk: Rect{float64(baseX - tw/2), float64(trunkY), float64(tw), float64(th)},
		Crown: Rect{float64(baseX - cw/2), float64(crownY), float64(cw), float64(ch)},
		art:   art,
	}
}

// AnchorY is the layering key: the top of the snow base. Trees with a higher
// base (smaller AnchorY) are drawn first.
func (t *ChristmasTree) AnchorY() float64 {
	return t.Snow.Y
}

// Update is a no-op; trees are static.
func (t *ChristmasTree) Update() {}

// Draw blits snow, trunk and crown in that order.
func (t *ChristmasTree) Draw(dst *ebiten.Image) {
	blit(dst, t.art.Snow, t.Snow.X, t.Snow.Y)
	blit(dst, t.art.Trunk, t.Trunk.X, t.Trunk.Y)
	blit(dst, t.art.Crown, t.Crown.X, t.Crown.Y)
}

func imageSize(img *ebiten.Image) (int, int) {
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func blit(dst, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(x, y)
	dst.DrawImage(img, &op)
}
