package yuletide

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates a single float64 field. Call Update(dt) each tick; the
// current value is written through to the target.
type Tween struct {
	tween  *gween.Tween
	target *float64
	to     float64
	Done   bool
}

// NewTween creates a tween that moves *target from its current value to
// `to` over duration seconds.
func NewTween(target *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	return &Tween{
		tween:  gween.New(float32(*target), float32(to), duration, fn),
		target: target,
		to:     to,
	}
}

// To returns the value the tween is heading to.
func (t *Tween) To() float64 {
	return t.to
}

// Update advances the tween by dt seconds and writes the new value.
func (t *Tween) Update(dt float32) {
	if t == nil || t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	*t.target = float64(val)
	t.Done = finished
}
