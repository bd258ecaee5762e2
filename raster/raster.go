package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/hexboard/charmap"
)

// CellSize returns the pixel size of one grid cell for the configured face.
func CellSize(opts ...Option) (w, h int) {
	cfg := newConfig(opts)
	return cellSize(cfg.face)
}

func cellSize(f font.Face) (w, h int) {
	adv, _ := f.GlyphAdvance('M')
	return adv.Ceil(), f.Metrics().Height.Ceil()
}

// Draw renders cm as dark glyphs on a white background. The image covers
// the same rectangle charmap.Render would, (0,0)..Bounds(cm), plus padding;
// an empty cm gives an image of padding only.
func Draw(cm charmap.CharMap, opts ...Option) *image.Gray {
	cfg := newConfig(opts)
	cellW, cellH := cellSize(cfg.face)
	pad := cfg.padding

	w, h := 2*pad, 2*pad
	if len(cm) > 0 {
		maxX, maxY := charmap.Bounds(cm)
		w += (maxX + 1) * cellW
		h += (maxY + 1) * cellH
	}
	img := image.NewGray(image.Rect(0, 0, w, h))
	xdraw.Draw(img, img.Bounds(), image.White, image.Point{}, xdraw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: cfg.face,
	}
	ascent := cfg.face.Metrics().Ascent.Ceil()
	for p, r := range cm {
		if p.X < 0 || p.Y < 0 || r == charmap.Blank {
			continue
		}
		if sub, ok := cfg.fallback[r]; ok {
			r = sub
		}
		d.Dot = fixed.P(pad+p.X*cellW, pad+p.Y*cellH+ascent)
		d.DrawString(string(r))
	}
	return img
}

// WritePNG encodes img as PNG to w.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encode png: %w", err)
	}
	return nil
}
