package glwin

import (
	"unicode/utf16"

	"go.uber.org/zap"
)

// noCopy makes go vet flag copies of types that own GPU resources.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Font owns one generated atlas and draws glyphs from it. A Font must not be
// copied: its pages are released exactly once, by Unload or the next Load.
//
// Rendering an unloaded Font is a silent no-op, so callers may draw every
// frame and check IsOk only when they care.
type Font struct {
	_ noCopy

	builder *AtlasBuilder
	dev     Device
	logger  *zap.Logger

	data *FontData
	err  error
}

// FontOption configures a Font.
type FontOption func(*fontConfig)

type fontConfig struct {
	logger   *zap.Logger
	atlasOps []AtlasOption
}

// WithLogger sets the logger for the Font and its atlas builder.
func WithLogger(l *zap.Logger) FontOption {
	return func(c *fontConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithAtlasOptions forwards options to the atlas builder.
func WithAtlasOptions(opts ...AtlasOption) FontOption {
	return func(c *fontConfig) {
		c.atlasOps = append(c.atlasOps, opts...)
	}
}

// NewFont creates an unloaded Font rasterizing with r and drawing on dev.
func NewFont(r Rasterizer, dev Device, opts ...FontOption) *Font {
	cfg := fontConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	atlasOps := append([]AtlasOption{WithAtlasLogger(cfg.logger)}, cfg.atlasOps...)
	return &Font{
		builder: NewAtlasBuilder(r, dev, atlasOps...),
		dev:     dev,
		logger:  cfg.logger,
		err:     ErrNotLoaded,
	}
}

// Load releases any previous atlas, then generates a new one for info.
// On failure the Font stays unloaded and keeps the error.
func (f *Font) Load(info FontInfo) {
	f.Unload()

	data, err := f.builder.Generate(info)
	if err != nil {
		f.err = err
		f.logger.Info("font load failed", zap.Stringer("font", info), zap.Error(err))
		return
	}
	f.data = data
	f.err = nil
	f.logger.Info("font loaded",
		zap.Stringer("font", info),
		zap.Int("glyphs", len(data.Glyphs)),
		zap.Int("pages", len(data.Pages)))
}

// Unload releases every page. Calling it on an unloaded Font does nothing.
func (f *Font) Unload() {
	if f.data == nil {
		return
	}
	f.data.release(f.dev)
	f.data = nil
	f.err = ErrNotLoaded
}

// IsOk reports whether the last Load succeeded.
func (f *Font) IsOk() bool {
	return f.data != nil
}

// Err returns the error of the last Load, or ErrNotLoaded.
func (f *Font) Err() error {
	return f.err
}

// ErrMsg returns the last Load's error with one problem per line, or "".
func (f *Font) ErrMsg() string {
	if f.data != nil {
		return ""
	}
	return ErrorLines(f.err)
}

// Data returns the loaded atlas, or nil.
func (f *Font) Data() *FontData {
	return f.data
}

// Info returns the description of the loaded font.
func (f *Font) Info() FontInfo {
	if f.data == nil {
		return FontInfo{}
	}
	return f.data.Info
}

// lookup resolves c through the fallback chain.
func (f *Font) lookup(c rune) (GlyphData, bool) {
	if g, ok := f.data.Glyphs[c]; ok {
		return g, true
	}
	if g, ok := f.data.Glyphs[MissingGlyphRune]; ok {
		return g, true
	}
	g, ok := f.data.Glyphs[ReplacementRune]
	return g, ok
}

// GlyphHeight returns the cell height shared by every glyph, or 0.
func (f *Font) GlyphHeight() int {
	if f.data == nil {
		return 0
	}
	return f.data.Metrics.CellHeight
}

// GlyphWidth returns the advance of c. Glyphs missing from the atlas are as
// wide as the cell is high. Fallbacks are not consulted.
func (f *Font) GlyphWidth(c uint16) int {
	if f.data == nil {
		return 0
	}
	if g, ok := f.data.Glyphs[rune(c)]; ok {
		return g.Advance
	}
	return f.data.Metrics.CellHeight
}

// GlyphSize returns the advance and cell height of c.
func (f *Font) GlyphSize(c uint16) Size {
	return Size{W: f.GlyphWidth(c), H: f.GlyphHeight()}
}

// TextWidth returns the summed advance of text.
func (f *Font) TextWidth(text []uint16) int {
	return textWidth(f, text)
}

// GlyphCountInWidth returns how many leading code units of text fit in
// width pixels.
func (f *Font) GlyphCountInWidth(text []uint16, width int) int {
	return glyphCountInWidth(f, text, width)
}

// BeginBatch enables blending for a run of RenderGlyph calls.
func (f *Font) BeginBatch() {
	if f.data == nil {
		return
	}
	f.dev.EnableBlend()
}

// EndBatch undoes BeginBatch.
func (f *Font) EndBatch() {
	if f.data == nil {
		return
	}
	f.dev.DisableBlend()
}

// RenderGlyph draws c at the current origin. It must be called between
// BeginBatch and EndBatch.
func (f *Font) RenderGlyph(c uint16) {
	if f.data == nil {
		return
	}
	cell := float32(f.data.Metrics.CellHeight)
	g, ok := f.lookup(rune(c))
	if ok && g.Advance == 0 {
		return
	}
	if !ok || g.Page >= len(f.data.Pages) {
		f.dev.DrawQuad(cell, cell)
		return
	}
	f.dev.DrawTexturedQuad(f.data.Pages[g.Page], float32(g.Advance), cell, g.UV)
}

// RenderGlyphs draws s on one line starting at the current origin. Control
// characters are drawn as glyphs like any other code unit.
func (f *Font) RenderGlyphs(s string) {
	if f.data == nil {
		return
	}
	f.BeginBatch()
	defer f.EndBatch()

	x := 0
	for _, c := range utf16.Encode([]rune(s)) {
		f.dev.PushTranslate(float32(x), 0)
		f.RenderGlyph(c)
		f.dev.PopTransform()
		x += f.GlyphWidth(c)
	}
}
