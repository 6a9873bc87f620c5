package glwin

import (
	"fmt"
	"image"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
)

// Default atlas page edge in pixels.
const DefaultPageSize = 1024

// GlyphData records where one glyph lives in the atlas.
type GlyphData struct {
	Advance int    // Horizontal advance in pixels
	Page    int    // Index into FontData.Pages
	UV      UVRect // Cell rectangle in normalized page coordinates
}

// FontData is a generated atlas: metrics, glyph table and texture pages.
// Pages are in allocation order.
type FontData struct {
	Info    FontInfo
	Metrics FaceMetrics
	Glyphs  map[rune]GlyphData
	Pages   []Texture

	PageWidth  int
	PageHeight int
}

// Glyph looks up a code point.
func (fd *FontData) Glyph(c rune) (GlyphData, bool) {
	g, ok := fd.Glyphs[c]
	return g, ok
}

// release deletes every page on the device.
func (fd *FontData) release(dev Device) {
	for _, tex := range fd.Pages {
		dev.DeleteTexture(tex)
	}
	fd.Pages = nil
}

// AtlasBuilder rasterizes fonts into fixed-size RGBA texture pages.
type AtlasBuilder struct {
	raster     Rasterizer
	dev        Device
	pageWidth  int
	pageHeight int
	logger     *zap.Logger
}

// AtlasOption configures an AtlasBuilder.
type AtlasOption func(*AtlasBuilder)

// WithPageSize sets the atlas page dimensions.
func WithPageSize(w, h int) AtlasOption {
	return func(b *AtlasBuilder) {
		b.pageWidth = w
		b.pageHeight = h
	}
}

// WithAtlasLogger sets the logger used during generation.
func WithAtlasLogger(l *zap.Logger) AtlasOption {
	return func(b *AtlasBuilder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewAtlasBuilder creates a builder drawing with r and uploading to dev.
func NewAtlasBuilder(r Rasterizer, dev Device, opts ...AtlasOption) *AtlasBuilder {
	b := &AtlasBuilder{
		raster:     r,
		dev:        dev,
		pageWidth:  DefaultPageSize,
		pageHeight: DefaultPageSize,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// PageSize returns the configured page dimensions.
func (b *AtlasBuilder) PageSize() (w, h int) {
	return b.pageWidth, b.pageHeight
}

// Generate builds the atlas for info. Problems are accumulated into one
// error (see ErrorLines); on any error every texture created so far is
// released and the result is nil.
func (b *AtlasBuilder) Generate(info FontInfo) (*FontData, error) {
	log := b.logger.With(zap.Stringer("font", info))

	var err error
	err = multierr.Append(err, b.checkLimits())
	for _, rerr := range info.Ranges.Validate() {
		err = multierr.Append(err, rerr)
	}
	if err != nil {
		return nil, err
	}

	face, ferr := b.raster.OpenFace(info.Name, info.PixelSize(), info.Style)
	if ferr != nil {
		return nil, fmt.Errorf("open %q: %w", info.Name, ferr)
	}
	defer face.Close()

	metrics := face.Metrics()
	if metrics.CellHeight <= 0 {
		return nil, fmt.Errorf("%w: %q reports cell height %d", ErrFontNotFound, info.Name, metrics.CellHeight)
	}
	if metrics.CellHeight > b.pageHeight {
		return nil, fmt.Errorf("%w: cell height %d exceeds page height %d",
			ErrResourceLimit, metrics.CellHeight, b.pageHeight)
	}

	p := &pagePacker{
		dev:        b.dev,
		width:      b.pageWidth,
		height:     b.pageHeight,
		cellHeight: metrics.CellHeight,
		data: &FontData{
			Info:       info,
			Metrics:    metrics,
			Glyphs:     make(map[rune]GlyphData),
			PageWidth:  b.pageWidth,
			PageHeight: b.pageHeight,
		},
	}

	for _, r := range info.Ranges.splitAroundNonCharacter() {
		glyphs, rerr := b.rasterize(face, r, log)
		if rerr != nil {
			err = multierr.Append(err, rerr)
			continue
		}
		for _, g := range glyphs {
			err = multierr.Append(err, p.pack(g))
		}
		log.Debug("range packed", zap.Stringer("range", r), zap.Int("glyphs", len(glyphs)))
	}
	err = multierr.Append(err, p.flush())

	if err != nil {
		p.data.release(b.dev)
		return nil, err
	}

	log.Debug("atlas generated",
		zap.Int("glyphs", len(p.data.Glyphs)),
		zap.Int("pages", len(p.data.Pages)),
		zap.Int("cellHeight", metrics.CellHeight))
	return p.data, nil
}

// checkLimits validates the page size before anything is allocated.
func (b *AtlasBuilder) checkLimits() error {
	if b.pageWidth <= 0 || b.pageHeight <= 0 {
		return fmt.Errorf("%w: invalid page size %dx%d", ErrResourceLimit, b.pageWidth, b.pageHeight)
	}
	var err error
	if maxTex := b.dev.MaxTextureSize(); b.pageWidth > maxTex || b.pageHeight > maxTex {
		err = multierr.Append(err, fmt.Errorf("%w: page %dx%d exceeds max texture size %d",
			ErrResourceLimit, b.pageWidth, b.pageHeight, maxTex))
	}
	if vw, vh := b.dev.MaxViewportSize(); b.pageWidth > vw || b.pageHeight > vh {
		err = multierr.Append(err, fmt.Errorf("%w: page %dx%d exceeds max viewport %dx%d",
			ErrResourceLimit, b.pageWidth, b.pageHeight, vw, vh))
	}
	return err
}

// rasterize draws one range, retrying once. The first rasterization after
// context creation can fail spuriously on some drivers.
func (b *AtlasBuilder) rasterize(face Face, r UnicodeRange, log *zap.Logger) ([]RasterGlyph, error) {
	glyphs, err := face.RasterizeRange(r)
	if err == nil {
		return glyphs, nil
	}
	log.Warn("rasterization failed, retrying", zap.Stringer("range", r), zap.Error(err))
	glyphs, err = face.RasterizeRange(r)
	if err != nil {
		return nil, fmt.Errorf("%w: range %s: %v", ErrRasterize, r, err)
	}
	return glyphs, nil
}

// pagePacker places glyph cells left to right, top to bottom, one cell
// height per row, and starts a new page when no full row is left.
type pagePacker struct {
	dev        Device
	width      int
	height     int
	cellHeight int

	page *image.RGBA // page being filled, nil before the first glyph
	x, y int

	data *FontData
}

func (p *pagePacker) pack(g RasterGlyph) error {
	if g.Advance < 0 {
		return fmt.Errorf("%w: U+%04X has negative advance %d", ErrRasterize, g.Rune, g.Advance)
	}
	if g.Advance > p.width {
		return fmt.Errorf("%w: U+%04X advance %d exceeds page width %d",
			ErrResourceLimit, g.Rune, g.Advance, p.width)
	}
	if g.Advance == 0 {
		p.data.Glyphs[g.Rune] = GlyphData{Page: p.pageIndex()}
		return nil
	}

	if p.page != nil && p.x+g.Advance > p.width {
		p.x = 0
		p.y += p.cellHeight
	}
	if p.page != nil && p.y+p.cellHeight > p.height {
		if err := p.flush(); err != nil {
			return err
		}
	}
	if p.page == nil {
		p.page = image.NewRGBA(image.Rect(0, 0, p.width, p.height))
		p.x, p.y = 0, 0
	}

	cell := image.Rect(p.x, p.y, p.x+g.Advance, p.y+p.cellHeight)
	if g.Mask != nil {
		draw.DrawMask(p.page, cell, image.White, image.Point{}, g.Mask, g.Mask.Bounds().Min, draw.Over)
	}

	fw, fh := float32(p.width), float32(p.height)
	p.data.Glyphs[g.Rune] = GlyphData{
		Advance: g.Advance,
		Page:    len(p.data.Pages),
		UV: UVRect{
			U1: float32(cell.Min.X) / fw,
			V1: float32(cell.Min.Y) / fh,
			U2: float32(cell.Max.X) / fw,
			V2: float32(cell.Max.Y) / fh,
		},
	}
	p.x += g.Advance
	return nil
}

// pageIndex is the index the page being filled will get.
func (p *pagePacker) pageIndex() int {
	if p.page == nil && len(p.data.Pages) > 0 {
		return len(p.data.Pages) - 1
	}
	return len(p.data.Pages)
}

// flush uploads the page being filled, if any.
func (p *pagePacker) flush() error {
	if p.page == nil {
		return nil
	}
	tex, err := p.dev.CreateTexture(p.page)
	p.page = nil
	if err != nil {
		return fmt.Errorf("%w: page %d: %v", ErrResourceLimit, len(p.data.Pages), err)
	}
	p.data.Pages = append(p.data.Pages, tex)
	return nil
}
