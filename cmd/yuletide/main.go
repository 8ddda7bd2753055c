// Yuletide puts a transparent, always-on-top holiday overlay over the
// desktop: a row of snowy Christmas trees, falling snow and willow fireworks,
// with looping music. Click the Exit button in the bottom-right panel to quit.
//
// Assets are read from an "assets" directory beside the executable, or in the
// working directory when running from source:
//
//	assets/static/crown.png
//	assets/static/trunk.png
//	assets/static/snow.png
//	assets/static/snowflake.png
//	assets/static/last_christmas.mp3
//	assets/static/font.ttf (optional)
//
// Anything missing is replaced by a placeholder and logged.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/yuletide"
)

func main() {
	assets := flag.String("assets", "", "asset directory (default: ./assets next to the binary or working directory)")
	debug := flag.Bool("debug", false, "log per-second timing stats and show the FPS widget")
	mute := flag.Bool("mute", false, "do not play background music")
	flag.Parse()

	dir := *assets
	if dir == "" {
		dir = yuletide.ResolveAssetDir("assets")
	}

	cfg := yuletide.RunConfig{
		Title:   "Yuletide",
		Debug:   *debug,
		ShowFPS: *debug,
		NoMusic: *mute,
	}
	if err := yuletide.Run(cfg, os.DirFS(dir)); err != nil {
		log.Fatal(err)
	}
}
