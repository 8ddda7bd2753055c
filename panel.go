package yuletide

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// Panel geometry, anchored to the bottom-right corner of the window.
const (
	panelWidth   = 200
	panelHeight  = 100
	panelMargin  = 20
	panelRadius  = 12
	panelBorder  = 2
	buttonX      = 45
	buttonY      = 42
	buttonWidth  = 110
	buttonHeight = 32
	buttonRadius = 6
	textOffsetY  = 22

	panelFadeIn   = 0.6
	buttonHoverIn = 0.15
)

var (
	panelFill    = RGB8(20, 50, 20)
	panelEdge    = RGB8(212, 175, 55)
	buttonFill   = RGB8(180, 40, 40)
	buttonActive = RGB8(215, 70, 60)
)

// PanelLayout is the on-screen placement of the panel and its exit button.
type PanelLayout struct {
	Panel  Rect
	Button Rect
}

// LayoutPanel places the panel for a width x height window.
func LayoutPanel(width, height float64) PanelLayout {
	x := width - panelWidth - panelMargin
	y := height - panelHeight - panelMargin
	return PanelLayout{
		Panel:  Rect{x, y, panelWidth, panelHeight},
		Button: Rect{x + buttonX, y + buttonY, buttonWidth, buttonHeight},
	}
}

// Panel is the instruction box with the exit button. It fades in on start
// and warms the button color while the cursor hovers over it.
type Panel struct {
	Text  string
	Label string

	font   *Font
	shapes shapeBuffer

	alpha      float64
	fade       *Tween
	hover      float64
	hoverTween *Tween
}

// NewPanel creates a panel drawing its strings with font.
func NewPanel(font *Font, text, label string) *Panel {
	p := &Panel{Text: text, Label: label, font: font}
	p.fade = NewTween(&p.alpha, 1, panelFadeIn, ease.OutQuad)
	return p
}

// Alpha returns the current fade-in opacity in [0, 1].
func (p *Panel) Alpha() float64 {
	return p.alpha
}

// Update advances the fade and hover animations. cursorX/cursorY are in
// window coordinates.
func (p *Panel) Update(dt float32, layout PanelLayout, cursorX, cursorY float64) {
	p.fade.Update(dt)

	target := 0.0
	if layout.Button.Contains(cursorX, cursorY) {
		target = 1
	}
	if p.hoverTween == nil || p.hoverTween.To() != target {
		p.hoverTween = NewTween(&p.hover, target, buttonHoverIn, ease.OutQuad)
	}
	p.hoverTween.Update(dt)
}

// Draw renders the panel at layout.
func (p *Panel) Draw(dst *ebiten.Image, layout PanelLayout) {
	if p.alpha <= 0 {
		return
	}
	fade := func(c Color) Color {
		c.A *= p.alpha
		return c
	}

	p.shapes.fillRoundedRect(dst, layout.Panel, panelRadius, fade(panelFill))
	p.shapes.strokeRoundedRect(dst, layout.Panel, panelRadius, panelBorder, fade(panelEdge))

	btn := lerpColor(buttonFill, buttonActive, p.hover)
	p.shapes.fillRoundedRect(dst, layout.Button, buttonRadius, fade(btn))

	if p.font == nil {
		return
	}
	p.font.drawCentered(dst, p.Text,
		layout.Panel.X+layout.Panel.Width/2, layout.Panel.Y+textOffsetY, fade(ColorWhite))
	c := layout.Button.Center()
	p.font.drawCentered(dst, p.Label, c.X, c.Y, fade(ColorWhite))
}

func lerpColor(a, b Color, t float64) Color {
	t = clamp(t, 0, 1)
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
