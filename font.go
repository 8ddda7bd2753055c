package yuletide

import (
	"bytes"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Font wraps an Ebitengine text/v2 face at a fixed size.
type Font struct {
	face *text.GoTextFace
	lh   float64
}

// LoadTTFFont parses TrueType or OpenType data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("yuletide: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: size}
	m := face.Metrics()
	return &Font{face: face, lh: m.HAscent + m.HDescent + m.HLineGap}, nil
}

// LoadFont reads name from store. When the file is missing or unreadable the
// failure is logged and Go Regular is used instead.
func LoadFont(store fs.FS, name string, size float64) *Font {
	if store != nil {
		data, err := fs.ReadFile(store, name)
		if err == nil {
			f, perr := LoadTTFFont(data, size)
			if perr == nil {
				return f
			}
			err = perr
		}
		logErr(fmt.Errorf("%w: font %s: %w", ErrAssetLoad, name, err))
	}
	f, err := LoadTTFFont(goregular.TTF, size)
	if err != nil {
		// goregular is compiled in; failing to parse it is a build defect.
		panic(err)
	}
	return f
}

// drawCentered renders s centered on (cx, cy).
func (f *Font) drawCentered(dst *ebiten.Image, s string, cx, cy float64, c Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c.toRGBA())
	op.LineSpacing = f.lh
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, f.face, op)
}
