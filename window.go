package yuletide

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowHost is the part of the host window the overlay changes while
// running.
type WindowHost interface {
	// SetMousePassthrough makes the window ignore pointer input so it
	// reaches whatever lies below.
	SetMousePassthrough(enabled bool)
}

type ebitenWindow struct{}

func (ebitenWindow) SetMousePassthrough(enabled bool) {
	ebiten.SetWindowMousePassthrough(enabled)
}

// ConfigureWindow turns the host window into a borderless, always-on-top,
// resizable overlay covering the monitor. It returns the viewport size the
// overlay should start with. Failures are logged as ErrPlatform and the
// requested (or default) size is used; the overlay still runs, just without
// the failed window property.
func ConfigureWindow(cfg RunConfig) (width, height int) {
	width, height = cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		if mw, mh, err := monitorSize(); err != nil {
			logErr(err)
			width, height = DefaultWidth, DefaultHeight
		} else {
			width, height = mw, mh
		}
	}

	if err := applyWindowProperties(cfg, width, height); err != nil {
		logErr(err)
	}
	return width, height
}

func monitorSize() (w, h int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: query monitor: %v", ErrPlatform, r)
		}
	}()
	m := ebiten.Monitor()
	if m == nil {
		return 0, 0, fmt.Errorf("%w: no monitor reported", ErrPlatform)
	}
	w, h = m.Size()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: monitor reported %dx%d", ErrPlatform, w, h)
	}
	return w, h, nil
}

func applyWindowProperties(cfg RunConfig, width, height int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: window setup: %v", ErrPlatform, r)
		}
	}()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowPosition(0, 0)
	ebiten.SetTPS(cfg.TPS)
	return nil
}

// runOptions asks the host for a per-pixel transparent framebuffer, so the
// fully transparent ClearColor shows the desktop through.
func runOptions() *ebiten.RunGameOptions {
	return &ebiten.RunGameOptions{ScreenTransparent: true}
}
