package yuletide

import (
	"io/fs"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ ebiten.Game = (*Overlay)(nil)

// Overlay is the ebiten.Game driving the animation. Each tick it drains
// input, advances the fireworks and the scene, then the panel; each frame it
// clears to the transparent sentinel and draws fireworks, scene and panel in
// that order.
type Overlay struct {
	cfg       RunConfig
	world     *World
	scene     *Scene
	fireworks []*Firework
	layers    []Entity
	panel     *Panel
	input     PointerSource
	window    WindowHost
	dt        float32

	// passthrough is the click-through state last sent to the window;
	// passthroughSent is false until the first send.
	passthrough     bool
	passthroughSent bool

	injectQueue []syntheticClick
	runner      *ScriptRunner

	fps   *fpsWidget
	stats frameStats
	ticks int
}

// NewOverlay loads artwork and the panel font from store and builds the
// scene for cfg. Missing assets are replaced by placeholders.
func NewOverlay(cfg RunConfig, store fs.FS) *Overlay {
	cfg = cfg.withDefaults()
	world := NewWorld(float64(cfg.Width), float64(cfg.Height), NewRand(cfg.Seed), LoadArt(store))

	o := &Overlay{
		cfg:    cfg,
		world:  world,
		scene:  NewScene(world, cfg.TreeCount, cfg.SnowflakeCount),
		panel:  NewPanel(LoadFont(store, AssetFont, cfg.FontSize), cfg.InstructionText, cfg.ExitLabel),
		input:  cfg.Input,
		window: cfg.Window,
		dt:     1 / float32(cfg.TPS),
	}
	o.fireworks = make([]*Firework, cfg.FireworkCount)
	o.layers = make([]Entity, 0, cfg.FireworkCount+1)
	for i := range o.fireworks {
		o.fireworks[i] = NewFirework(world)
		o.layers = append(o.layers, o.fireworks[i])
	}
	// Fireworks sit behind the trees.
	o.layers = append(o.layers, o.scene)
	if cfg.ShowFPS {
		o.fps = newFPSWidget()
	}
	return o
}

// World returns the shared simulation state.
func (o *Overlay) World() *World {
	return o.world
}

// Scene returns the trees and snow.
func (o *Overlay) Scene() *Scene {
	return o.scene
}

// Fireworks returns the firework pool. The returned slice MUST NOT be mutated.
func (o *Overlay) Fireworks() []*Firework {
	return o.fireworks
}

// Panel returns the exit panel.
func (o *Overlay) Panel() *Panel {
	return o.panel
}

// Ticks returns the number of completed Update calls.
func (o *Overlay) Ticks() int {
	return o.ticks
}

// PanelPlacement returns the panel placement for the current viewport. The
// exit button follows the window on every resize.
func (o *Overlay) PanelPlacement() PanelLayout {
	return LayoutPanel(o.world.Width, o.world.Height)
}

// Update implements ebiten.Game. It returns ebiten.Termination when the
// window is closed or the exit button is clicked.
func (o *Overlay) Update() error {
	var t0 time.Time
	if o.cfg.Debug {
		t0 = time.Now()
	}

	if o.runner != nil {
		o.runner.step(o)
	}

	layout := o.PanelPlacement()
	if o.processInput(layout) {
		return ebiten.Termination
	}

	for _, e := range o.layers {
		e.Update()
	}

	cx, cy := o.input.Cursor()
	o.panel.Update(o.dt, layout, cx, cy)
	o.updatePassthrough(layout, cx, cy)
	if o.fps != nil {
		o.fps.update(float64(o.dt))
	}

	o.ticks++
	if o.cfg.Debug {
		o.stats.updateTime += time.Since(t0)
		o.stats.ticks++
		if o.stats.ticks >= o.cfg.TPS {
			o.debugLog()
		}
	}
	return nil
}

// Draw implements ebiten.Game.
func (o *Overlay) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if o.cfg.Debug {
		t0 = time.Now()
	}

	screen.Fill(o.cfg.ClearColor.toRGBA())
	for _, e := range o.layers {
		e.Draw(screen)
	}
	o.panel.Draw(screen, o.PanelPlacement())
	if o.fps != nil {
		o.fps.draw(screen)
	}

	if o.cfg.Debug {
		o.stats.drawTime += time.Since(t0)
		o.stats.frames++
	}
}

// ClickThrough reports whether pointer input currently passes through the
// window to the desktop below.
func (o *Overlay) ClickThrough() bool {
	return o.passthrough
}

// updatePassthrough lets clicks fall through the see-through parts of the
// window and captures them only while the cursor is over the panel. An
// opaque ClearColor keeps every click.
func (o *Overlay) updatePassthrough(layout PanelLayout, cx, cy float64) {
	want := o.cfg.ClearColor.A == 0 && !layout.Panel.Contains(cx, cy)
	if o.passthroughSent && o.passthrough == want {
		return
	}
	o.passthrough, o.passthroughSent = want, true
	o.window.SetMousePassthrough(want)
}

// Layout implements ebiten.Game. The logical screen always matches the
// window, and the new size is published to the World.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	o.world.Width = float64(outsideWidth)
	o.world.Height = float64(outsideHeight)
	return outsideWidth, outsideHeight
}
