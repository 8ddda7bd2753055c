// Package yuletide is a transparent desktop holiday overlay for [Ebitengine].
//
// It draws a row of Christmas trees along the bottom of the screen, snow
// falling in front of them and willow fireworks bursting behind them, plus a
// small panel with an exit button. The window is borderless, floats above
// other windows and clears to full transparency so only the artwork covers
// the desktop.
//
// # Quick start
//
//	err := yuletide.Run(yuletide.RunConfig{}, os.DirFS("assets"))
//
// For full control, build an [Overlay] yourself; it implements [ebiten.Game]:
//
//	o := yuletide.NewOverlay(yuletide.RunConfig{Width: 1920, Height: 1080}, store)
//	ebiten.RunGame(o)
//
// # Simulation
//
// Everything advances on a fixed 60 Hz tick and is recycled in place:
// [Snowflake] and [Firework] values are reset rather than reallocated, and a
// [FireworkParticle] keeps its willow trail in a fixed ring buffer. Trees are
// placed once and sorted by [ChristmasTree.AnchorY] so overlapping trees
// always layer the same way.
//
// All randomness comes from the *rand.Rand carried by the [World], seeded by
// [RunConfig.Seed], so runs replay exactly in tests.
//
// # Failure handling
//
// Missing or corrupt assets ([ErrAssetLoad]) and window host problems
// ([ErrPlatform]) are logged and replaced: a grey placeholder for images, the
// Go Regular font for text, silence for music. Nothing is fatal except the
// game loop itself failing.
//
// [Ebitengine]: https://ebitengine.org
package yuletide
