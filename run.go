package yuletide

import (
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run configures the window, starts the music and blocks running the
// overlay until the window is closed or the exit button is clicked.
// Only a failure of the game loop itself is returned.
func Run(cfg RunConfig, store fs.FS) error {
	if cfg.TPS <= 0 {
		cfg.TPS = DefaultTPS
	}
	if cfg.Title == "" {
		cfg.Title = "Yuletide"
	}
	cfg.Width, cfg.Height = ConfigureWindow(cfg)

	o := NewOverlay(cfg, store)

	var music *Music
	if !o.cfg.NoMusic {
		music = PlayMusic(store, o.cfg.Music, o.cfg.MusicVolume)
	}
	defer music.Stop()

	return ebiten.RunGameWithOptions(o, runOptions())
}
