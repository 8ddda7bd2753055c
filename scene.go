package yuletide

import (
	"cmp"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// DefaultTreeCount is the number of trees planted when none is requested.
	DefaultTreeCount = 18
	// DefaultSnowflakeCount is the size of the snowflake pool.
	DefaultSnowflakeCount = 80

	treeEdgeMargin = 100
)

// Scene owns the trees and the snowflake pool and advances them as one
// batch. Trees are sorted once at construction; the order never changes.
type Scene struct {
	trees      []*ChristmasTree
	snowflakes []Snowflake
	world      *World
}

// NewScene plants treeCount trees at random columns and fills the snowflake
// pool with snowCount flakes. Non-positive counts fall back to the defaults.
func NewScene(world *World, treeCount, snowCount int) *Scene {
	if treeCount <= 0 {
		treeCount = DefaultTreeCount
	}
	if snowCount <= 0 {
		snowCount = DefaultSnowflakeCount
	}

	s := &Scene{
		trees:      make([]*ChristmasTree, treeCount),
		snowflakes: make([]Snowflake, snowCount),
		world:      world,
	}

	w := int(world.Width)
	lo, hi := treeEdgeMargin, w-treeEdgeMargin
	if hi < lo {
		lo, hi = w/2, w/2
	}
	for i := range s.trees {
		s.trees[i] = NewChristmasTree(world, intBetween(world.Rand, lo, hi))
	}
	slices.SortStableFunc(s.trees, func(a, b *ChristmasTree) int {
		return cmp.Compare(a.AnchorY(), b.AnchorY())
	})

	for i := range s.snowflakes {
		s.snowflakes[i].init(world)
	}
	return s
}

// Trees returns the trees in draw order. The returned slice MUST NOT be mutated.
func (s *Scene) Trees() []*ChristmasTree {
	return s.trees
}

// Snowflakes returns the snowflake pool. The returned slice MUST NOT be
// resized; elements may be inspected.
func (s *Scene) Snowflakes() []Snowflake {
	return s.snowflakes
}

// Update advances every snowflake by one tick.
func (s *Scene) Update() {
	for i := range s.snowflakes {
		s.snowflakes[i].Update()
	}
}

// Draw renders trees back to front, then the snow over them.
func (s *Scene) Draw(dst *ebiten.Image) {
	for _, t := range s.trees {
		t.Draw(dst)
	}
	for i := range s.snowflakes {
		s.snowflakes[i].Draw(dst)
	}
}
