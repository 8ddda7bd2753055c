package yuletide

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// PointerSource is the overlay's view of user input: the window-close signal,
// the cursor, and left-button presses.
type PointerSource interface {
	// CloseRequested reports whether the host asked the window to close.
	CloseRequested() bool
	// Cursor returns the pointer position in window coordinates.
	Cursor() (x, y float64)
	// Clicked reports a left-button press that started this tick.
	Clicked() (x, y float64, ok bool)
}

// ebitenPointer polls Ebitengine's input state.
type ebitenPointer struct{}

func (ebitenPointer) CloseRequested() bool {
	return ebiten.IsWindowBeingClosed()
}

func (ebitenPointer) Cursor() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

func (p ebitenPointer) Clicked() (float64, float64, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0, 0, false
	}
	x, y := p.Cursor()
	return x, y, true
}

// idlePointer never reports input. Used when only injected clicks matter.
type idlePointer struct{}

func (idlePointer) CloseRequested() bool              { return false }
func (idlePointer) Cursor() (float64, float64)        { return -1, -1 }
func (idlePointer) Clicked() (float64, float64, bool) { return 0, 0, false }

// syntheticClick is a queued click in window coordinates.
type syntheticClick struct {
	x, y float64
}

// InjectClick queues a left click at (x, y). One queued click is consumed
// per tick, ahead of real input.
func (o *Overlay) InjectClick(x, y float64) {
	o.injectQueue = append(o.injectQueue, syntheticClick{x, y})
}

// nextClick pops an injected click, falling back to the real pointer.
func (o *Overlay) nextClick() (float64, float64, bool) {
	if len(o.injectQueue) > 0 {
		c := o.injectQueue[0]
		copy(o.injectQueue, o.injectQueue[1:])
		o.injectQueue = o.injectQueue[:len(o.injectQueue)-1]
		return c.x, c.y, true
	}
	return o.input.Clicked()
}

// processInput drains this tick's input and reports whether the overlay
// should stop: a close request or a click on the exit button.
func (o *Overlay) processInput(layout PanelLayout) bool {
	if o.input.CloseRequested() {
		logf("window close requested")
		return true
	}
	x, y, ok := o.nextClick()
	if ok && layout.Button.Contains(x, y) {
		logf("exit button clicked")
		return true
	}
	return false
}
