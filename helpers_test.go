package glwin

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"unicode/utf16"
)

// fakeFace rasterizes every code point at a fixed width unless widths or
// missing say otherwise.
type fakeFace struct {
	metrics  FaceMetrics
	width    int
	widths   map[rune]int
	missing  map[rune]bool
	inked    bool // fill masks with opaque pixels
	failures int  // number of RasterizeRange calls that fail before success

	calls  []UnicodeRange
	closed bool
}

func newFakeFace(cell, width int) *fakeFace {
	return &fakeFace{
		metrics: FaceMetrics{CellHeight: cell, Ascent: cell * 3 / 4, Descent: cell - cell*3/4},
		width:   width,
	}
}

func (f *fakeFace) Metrics() FaceMetrics { return f.metrics }

func (f *fakeFace) RasterizeRange(r UnicodeRange) ([]RasterGlyph, error) {
	f.calls = append(f.calls, r)
	if f.failures > 0 {
		f.failures--
		return nil, errors.New("device lost")
	}
	var out []RasterGlyph
	for c := r.From; c <= r.To; c++ {
		if f.missing[c] {
			continue
		}
		w := f.width
		if v, ok := f.widths[c]; ok {
			w = v
		}
		g := RasterGlyph{Rune: c, Advance: w}
		if f.inked && w > 0 {
			g.Mask = image.NewAlpha(image.Rect(0, 0, w, f.metrics.CellHeight))
			draw.Draw(g.Mask, g.Mask.Bounds(), image.Opaque, image.Point{}, draw.Src)
		}
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeFace) Close() error {
	f.closed = true
	return nil
}

type fakeRasterizer struct {
	face   *fakeFace
	err    error
	opened []string
}

func (r *fakeRasterizer) OpenFace(name string, pixelSize int, style FontStyle) (Face, error) {
	r.opened = append(r.opened, fmt.Sprintf("%s %d %s", name, pixelSize, style))
	if r.err != nil {
		return nil, r.err
	}
	return r.face, nil
}

// recordingDevice keeps uploaded pages and logs every call as a line of
// text, so tests can compare call sequences with cmp.Diff.
type recordingDevice struct {
	maxTexture  int
	maxViewport Size
	failCreate  int // fail the n-th CreateTexture, 1-based; 0 never fails

	created  int
	textures map[Texture]*image.RGBA
	deleted  []Texture
	calls    []string
}

func newRecordingDevice() *recordingDevice {
	return &recordingDevice{
		maxTexture:  4096,
		maxViewport: Size{W: 8192, H: 8192},
		textures:    make(map[Texture]*image.RGBA),
	}
}

func (d *recordingDevice) log(format string, args ...any) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

// draws returns the logged calls minus texture management.
func (d *recordingDevice) draws() []string {
	var out []string
	for _, c := range d.calls {
		var tex int
		if _, err := fmt.Sscanf(c, "create %d", &tex); err == nil {
			continue
		}
		if _, err := fmt.Sscanf(c, "delete %d", &tex); err == nil {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (d *recordingDevice) MaxTextureSize() int { return d.maxTexture }

func (d *recordingDevice) MaxViewportSize() (int, int) {
	return d.maxViewport.W, d.maxViewport.H
}

func (d *recordingDevice) CreateTexture(img *image.RGBA) (Texture, error) {
	d.created++
	if d.created == d.failCreate {
		return 0, errors.New("out of video memory")
	}
	tex := Texture(d.created)
	d.textures[tex] = img
	d.log("create %d", tex)
	return tex, nil
}

func (d *recordingDevice) DeleteTexture(tex Texture) {
	delete(d.textures, tex)
	d.deleted = append(d.deleted, tex)
	d.log("delete %d", tex)
}

func (d *recordingDevice) EnableBlend() { d.log("blend on") }
func (d *recordingDevice) DisableBlend() { d.log("blend off") }

func (d *recordingDevice) PushTranslate(x, y float32) { d.log("translate %g,%g", x, y) }
func (d *recordingDevice) PopTransform() { d.log("pop") }

func (d *recordingDevice) PushColor(c Color) { d.log("color %v", c) }
func (d *recordingDevice) PopColor() { d.log("pop color") }

func (d *recordingDevice) DrawTexturedQuad(tex Texture, w, h float32, _ UVRect) {
	d.log("tex %d %gx%g", tex, w, h)
}

func (d *recordingDevice) DrawQuad(w, h float32) { d.log("quad %gx%g", w, h) }

// fakeMetrics gives every code unit the same width unless overridden.
type fakeMetrics struct {
	width  int
	widths map[uint16]int
	cell   int
}

func (m fakeMetrics) GlyphWidth(c uint16) int {
	if w, ok := m.widths[c]; ok {
		return w
	}
	return m.width
}

func (m fakeMetrics) GlyphHeight() int { return m.cell }

// fakeTextFont draws through a recordingDevice so glyphs interleave with
// transforms in the call log.
type fakeTextFont struct {
	fakeMetrics
	dev    *recordingDevice
	loaded bool
}

func (f *fakeTextFont) IsOk() bool { return f.loaded }
func (f *fakeTextFont) BeginBatch() { f.dev.log("begin") }
func (f *fakeTextFont) EndBatch() { f.dev.log("end") }
func (f *fakeTextFont) RenderGlyph(c uint16) { f.dev.log("glyph %c", rune(c)) }

func utf16Of(s string) []uint16 {
	return utf16.Encode([]rune(s))
}
