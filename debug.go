package yuletide

import "time"

// frameStats accumulates timing and population figures between debug logs.
// Only populated when RunConfig.Debug is set.
type frameStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	ticks      int
	frames     int
}

// population counts what is currently alive on screen.
type population struct {
	ascending  int
	exploded   int
	particles  int
	trailMarks int
	snowflakes int
}

func (o *Overlay) population() population {
	var p population
	for _, fw := range o.fireworks {
		if fw.Exploded {
			p.exploded++
			for i := range fw.particles {
				if fw.particles[i].Alpha > 0 {
					p.particles++
				}
			}
		} else {
			p.ascending++
			p.trailMarks += len(fw.trail)
		}
	}
	p.snowflakes = len(o.scene.snowflakes)
	return p
}

// debugLog prints averaged timings and the live population, then resets the
// accumulator.
func (o *Overlay) debugLog() {
	s := o.stats
	o.stats = frameStats{}
	if s.ticks == 0 {
		return
	}
	var avgDraw time.Duration
	if s.frames > 0 {
		avgDraw = s.drawTime / time.Duration(s.frames)
	}
	logf("update: %v | draw: %v | ticks: %d | frames: %d",
		s.updateTime/time.Duration(s.ticks), avgDraw, s.ticks, s.frames)
	p := o.population()
	logf("fireworks: %d rising, %d burst | particles: %d | trail: %d | snow: %d",
		p.ascending, p.exploded, p.particles, p.trailMarks, p.snowflakes)
}
