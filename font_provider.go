package glwin

import "image"

// Rasterizer materializes OS fonts so the atlas builder can draw their
// glyphs. The package does not depend on a concrete font implementation;
// backend/sysfont provides one on top of golang.org/x/image.
type Rasterizer interface {
	// OpenFace returns a face for the family name at the given pixel size.
	// The error should wrap ErrFontNotFound when the family is unknown.
	OpenFace(name string, pixelSize int, style FontStyle) (Face, error)
}

// Face is a rasterizable font at one size.
type Face interface {
	// Metrics returns the font-wide metrics in pixels.
	Metrics() FaceMetrics

	// RasterizeRange draws every glyph of r the face has. Code points the
	// face does not cover are left out of the result.
	RasterizeRange(r UnicodeRange) ([]RasterGlyph, error)

	// Close releases the face.
	Close() error
}

// FaceMetrics holds font-wide metrics in pixels.
type FaceMetrics struct {
	CellHeight      int // Ascent + Descent
	Ascent          int
	Descent         int
	InternalLeading int // CellHeight minus the em size
}

// RasterGlyph is one rasterized glyph cell.
type RasterGlyph struct {
	Rune    rune
	Advance int

	// Mask is Advance x CellHeight with the baseline Ascent pixels from the
	// top. Nil for blank glyphs such as space.
	Mask *image.Alpha
}

// Texture is a device texture handle. The zero value means "no texture".
type Texture uint32

// Device is the subset of a GPU context the core draws with. All methods
// must be called on the thread that owns the context.
type Device interface {
	// MaxTextureSize returns the largest texture edge the device accepts.
	MaxTextureSize() int

	// MaxViewportSize returns the largest viewport the device accepts.
	MaxViewportSize() (w, h int)

	// CreateTexture uploads an RGBA image as a new texture.
	CreateTexture(img *image.RGBA) (Texture, error)

	// DeleteTexture releases a texture. Deleting 0 is a no-op.
	DeleteTexture(tex Texture)

	// EnableBlend turns on source-alpha blending and texturing for a batch.
	EnableBlend()

	// DisableBlend restores the state EnableBlend changed.
	DisableBlend()

	// PushTranslate saves the transform and translates by (x, y).
	PushTranslate(x, y float32)

	// PopTransform restores the transform saved by PushTranslate.
	PopTransform()

	// PushColor saves the current color and sets c.
	PushColor(c Color)

	// PopColor restores the color saved by PushColor.
	PopColor()

	// DrawTexturedQuad draws a w x h quad at the origin sampling uv from tex.
	DrawTexturedQuad(tex Texture, w, h float32, uv UVRect)

	// DrawQuad draws an untextured w x h quad at the origin.
	DrawQuad(w, h float32)
}
