package sysfont

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/glwin"
)

// face draws glyph cells of one font at one pixel size.
type face struct {
	src     *opentype.Font
	face    font.Face
	buf     sfnt.Buffer
	metrics glwin.FaceMetrics
}

func newFace(f *opentype.Font, pixelSize int) (*face, error) {
	ff, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", glwin.ErrFontNotFound, err)
	}
	m := ff.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	cell := ascent + descent
	leading := cell - pixelSize
	if leading < 0 {
		leading = 0
	}
	return &face{
		src:  f,
		face: ff,
		metrics: glwin.FaceMetrics{
			CellHeight:      cell,
			Ascent:          ascent,
			Descent:         descent,
			InternalLeading: leading,
		},
	}, nil
}

func (f *face) Metrics() glwin.FaceMetrics {
	return f.metrics
}

// RasterizeRange draws each covered code point of r into its own
// Advance x CellHeight alpha cell, baseline Ascent pixels from the top.
func (f *face) RasterizeRange(r glwin.UnicodeRange) ([]glwin.RasterGlyph, error) {
	var glyphs []glwin.RasterGlyph
	for c := r.From; c <= r.To; c++ {
		idx, err := f.src.GlyphIndex(&f.buf, c)
		if err != nil {
			return nil, fmt.Errorf("glyph index U+%04X: %w", c, err)
		}
		if idx == 0 {
			continue
		}
		adv, ok := f.face.GlyphAdvance(c)
		if !ok {
			continue
		}
		g := glwin.RasterGlyph{Rune: c, Advance: adv.Round()}
		if g.Advance > 0 {
			g.Mask = f.drawCell(c, g.Advance)
		}
		glyphs = append(glyphs, g)
	}
	return glyphs, nil
}

// drawCell renders c into a fresh cell. Returns nil when the glyph has no ink.
func (f *face) drawCell(c rune, advance int) *image.Alpha {
	bounds, _, ok := f.face.GlyphBounds(c)
	if !ok || bounds.Empty() {
		return nil
	}
	mask := image.NewAlpha(image.Rect(0, 0, advance, f.metrics.CellHeight))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.White,
		Face: f.face,
		Dot:  fixed.P(0, f.metrics.Ascent),
	}
	d.DrawString(string(c))
	return mask
}

func (f *face) Close() error {
	return f.face.Close()
}
