package yuletide

import "time"

// Fallback viewport used when the monitor size cannot be queried.
const (
	DefaultWidth  = 1920
	DefaultHeight = 1080
	DefaultTPS    = 60
)

// DefaultMusicVolume is the fixed background music volume in [0, 1].
const DefaultMusicVolume = 0.5

// RunConfig holds the overlay's tunables. Zero values select the built-in
// constants; nothing is read from files or the environment.
type RunConfig struct {
	// Title is the window title shown by task switchers.
	Title string
	// Width and Height are the initial viewport. Zero means the monitor size.
	Width, Height int
	// TPS is the fixed simulation rate.
	TPS int

	TreeCount      int
	SnowflakeCount int
	FireworkCount  int

	// Seed feeds the random source. Zero seeds from the clock.
	Seed uint64

	// ClearColor fills the frame before drawing. The zero value is fully
	// transparent, which the window host composites as see-through.
	ClearColor Color

	// Music is the asset name of the looping track; MusicVolume is in [0, 1].
	// NoMusic disables playback entirely.
	Music       string
	MusicVolume float64
	NoMusic     bool

	// InstructionText and ExitLabel are the panel strings.
	InstructionText string
	ExitLabel       string
	FontSize        float64

	// ShowFPS draws the FPS/TPS widget in the top-left corner.
	ShowFPS bool
	// Debug logs per-frame timing and population stats once a second.
	Debug bool

	// Input overrides the pointer source. Nil polls Ebitengine.
	Input PointerSource
	// Window overrides the window host. Nil drives the Ebitengine window.
	Window WindowHost
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Title == "" {
		c.Title = "Yuletide"
	}
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.TPS <= 0 {
		c.TPS = DefaultTPS
	}
	if c.TreeCount <= 0 {
		c.TreeCount = DefaultTreeCount
	}
	if c.SnowflakeCount <= 0 {
		c.SnowflakeCount = DefaultSnowflakeCount
	}
	if c.FireworkCount <= 0 {
		c.FireworkCount = DefaultFireworkCount
	}
	if c.Seed == 0 {
		c.Seed = uint64(time.Now().UnixNano())
	}
	if c.Music == "" {
		c.Music = AssetMusic
	}
	if c.MusicVolume <= 0 || c.MusicVolume > 1 {
		c.MusicVolume = DefaultMusicVolume
	}
	if c.InstructionText == "" {
		c.InstructionText = "Click below to exit"
	}
	if c.ExitLabel == "" {
		c.ExitLabel = "Exit"
	}
	if c.FontSize <= 0 {
		c.FontSize = 16
	}
	if c.Input == nil {
		c.Input = ebitenPointer{}
	}
	if c.Window == nil {
		c.Window = ebitenWindow{}
	}
	return c
}
