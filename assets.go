package yuletide

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // register the PNG decoder for image.Decode
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
)

// Logical asset names resolved against the asset store.
const (
	AssetCrown     = "static/crown.png"
	AssetTrunk     = "static/trunk.png"
	AssetSnow      = "static/snow.png"
	AssetSnowflake = "static/snowflake.png"
	AssetFont      = "static/font.ttf"
	AssetMusic     = "static/last_christmas.mp3"
)

// Tree part scaling. Every part is shrunk by scaleBasic vertically; the trunk
// is additionally narrowed and the snow base widened.
const (
	scaleBasic   = 6
	trunkSlimX   = 3
	snowStretchX = 3.5
)

const (
	placeholderSize      = 50
	snowflakeFallbackDia = 20
)

var placeholderColor = color.NRGBA{200, 200, 200, 255}

// Art holds every bitmap the scene draws.
type Art struct {
	Crown     *ebiten.Image
	Trunk     *ebiten.Image
	Snow      *ebiten.Image
	Snowflake *ebiten.Image
}

// LoadArt loads the tree parts and the snowflake from store. Missing or
// corrupt files are logged and replaced by placeholders.
func LoadArt(store fs.FS) *Art {
	return &Art{
		Crown:     LoadPart(store, AssetCrown, scaleBasic, 1),
		Trunk:     LoadPart(store, AssetTrunk, scaleBasic, 1.0/trunkSlimX),
		Snow:      LoadPart(store, AssetSnow, scaleBasic, snowStretchX),
		Snowflake: LoadSnowflake(store, AssetSnowflake),
	}
}

func placeholderArt() *Art {
	return &Art{
		Crown:     placeholderImage(),
		Trunk:     placeholderImage(),
		Snow:      placeholderImage(),
		Snowflake: ebiten.NewImageFromImage(discImage(snowflakeFallbackDia)),
	}
}

// LoadPart loads the image called name from store and resamples it. Height
// is divided by scaleY; width by scaleY/extraScaleX, so extraScaleX > 1
// stretches the width and < 1 compresses it. On failure the error is logged
// and a 50x50 grey placeholder is returned.
func LoadPart(store fs.FS, name string, scaleY, extraScaleX float64) *ebiten.Image {
	src, err := decodeImage(store, name)
	if err != nil {
		logErr(err)
		return placeholderImage()
	}
	b := src.Bounds()
	w, h := scaledSize(b.Dx(), b.Dy(), scaleY, extraScaleX)
	return ebiten.NewImageFromImage(resample(src, w, h))
}

// LoadSnowflake loads the snowflake sprite at its native size. Draw rescales
// it per flake. On failure a 20x20 white disc is substituted.
func LoadSnowflake(store fs.FS, name string) *ebiten.Image {
	src, err := decodeImage(store, name)
	if err != nil {
		logErr(err)
		return ebiten.NewImageFromImage(discImage(snowflakeFallbackDia))
	}
	return ebiten.NewImageFromImage(src)
}

func decodeImage(store fs.FS, name string) (image.Image, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: %s: no asset store", ErrAssetLoad, name)
	}
	f, err := store.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetLoad, name, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrAssetLoad, name, err)
	}
	return img, nil
}

// scaledSize applies the part scaling rule. Results are truncated like an
// integer cast and never drop below one pixel.
func scaledSize(w, h int, scaleY, extraScaleX float64) (int, int) {
	if scaleY <= 0 {
		scaleY = 1
	}
	if extraScaleX <= 0 {
		extraScaleX = 1
	}
	nw := int(float64(w) / (scaleY / extraScaleX))
	nh := int(float64(h) / scaleY)
	return max(nw, 1), max(nh, 1)
}

// resample scales src to w x h with a Catmull-Rom kernel.
func resample(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

func placeholderImage() *ebiten.Image {
	img := image.NewNRGBA(image.Rect(0, 0, placeholderSize, placeholderSize))
	xdraw.Draw(img, img.Bounds(), image.NewUniform(placeholderColor), image.Point{}, xdraw.Src)
	return ebiten.NewImageFromImage(img)
}

// discImage rasterizes a filled white circle of the given diameter.
func discImage(dia int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, dia, dia))
	r := float64(dia) / 2
	for y := 0; y < dia; y++ {
		for x := 0; x < dia; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
			}
		}
	}
	return img
}

// ResolveAssetDir picks the directory holding the static/ folder. A directory
// next to the executable wins over the working directory, so packaged and
// source runs both find their files.
func ResolveAssetDir(name string) string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), name)
		if st, err := os.Stat(dir); err == nil && st.IsDir() {
			return dir
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return filepath.Join(wd, name)
	}
	return name
}
