// Package opengl provides the legacy (fixed-function) OpenGL 2.1 backend for
// glwin: a glwin.Device drawing immediate-mode quads and a GLFW window with
// a managed message loop.
package opengl

import (
	"image"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/go-theft-auto/glwin"
)

// Device implements glwin.Device with OpenGL 2.1 fixed-function calls. It
// must only be used on the thread that owns the GL context.
type Device struct {
	orientation glwin.Orientation
	logger      *zap.Logger

	// Texture sizes, for read-back.
	sizes map[glwin.Texture]image.Point
}

// NewDevice wraps the current GL context. gl.Init must have been called.
func NewDevice(logger *zap.Logger) *Device {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Device{
		logger: logger,
		sizes:  make(map[glwin.Texture]image.Point),
	}
}

// SetupOrtho sets a pixel projection for a width x height viewport. TopDown
// puts (0,0) at the top-left corner, BottomUp at the bottom-left.
func (d *Device) SetupOrtho(width, height int, o glwin.Orientation) {
	d.orientation = o
	gl.Viewport(0, 0, int32(width), int32(height))

	proj := mgl32.Ortho2D(0, float32(width), float32(height), 0)
	if o == glwin.BottomUp {
		proj = mgl32.Ortho2D(0, float32(width), 0, float32(height))
	}
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixf(&proj[0])
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadIdentity()
}

// Orientation returns the projection set by SetupOrtho.
func (d *Device) Orientation() glwin.Orientation {
	return d.orientation
}

// MaxTextureSize implements glwin.Device.
func (d *Device) MaxTextureSize() int {
	var v int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &v)
	return int(v)
}

// MaxViewportSize implements glwin.Device.
func (d *Device) MaxViewportSize() (w, h int) {
	var dims [2]int32
	gl.GetIntegerv(gl.MAX_VIEWPORT_DIMS, &dims[0])
	return int(dims[0]), int(dims[1])
}

// CreateTexture implements glwin.Device.
func (d *Device) CreateTexture(img *image.RGBA) (glwin.Texture, error) {
	b := img.Bounds()
	if img.Stride != 4*b.Dx() {
		return 0, errors.Errorf("texture image stride %d does not match width %d", img.Stride, b.Dx())
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	if tex == 0 {
		return 0, errors.New("glGenTextures returned no name")
	}
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return 0, errors.Errorf("glTexImage2D %dx%d failed: 0x%04X", b.Dx(), b.Dy(), code)
	}

	t := glwin.Texture(tex)
	d.sizes[t] = b.Size()
	d.logger.Debug("texture created", zap.Uint32("id", tex), zap.Int("w", b.Dx()), zap.Int("h", b.Dy()))
	return t, nil
}

// DeleteTexture implements glwin.Device.
func (d *Device) DeleteTexture(tex glwin.Texture) {
	if tex == 0 {
		return
	}
	id := uint32(tex)
	gl.DeleteTextures(1, &id)
	delete(d.sizes, tex)
	d.logger.Debug("texture deleted", zap.Uint32("id", id))
}

// TextureImage reads a texture back into memory.
func (d *Device) TextureImage(tex glwin.Texture) (*image.RGBA, error) {
	size, ok := d.sizes[tex]
	if !ok {
		return nil, errors.Errorf("unknown texture %d", tex)
	}
	img := image.NewRGBA(image.Rectangle{Max: size})
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	gl.GetTexImage(gl.TEXTURE_2D, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, errors.Errorf("glGetTexImage failed: 0x%04X", code)
	}
	return img, nil
}

// EnableBlend implements glwin.Device. The previous enable and blend state
// is saved on the attribute stack.
func (d *Device) EnableBlend() {
	gl.PushAttrib(gl.ENABLE_BIT | gl.COLOR_BUFFER_BIT | gl.TEXTURE_BIT)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// DisableBlend implements glwin.Device.
func (d *Device) DisableBlend() {
	gl.PopAttrib()
}

// PushTranslate implements glwin.Device.
func (d *Device) PushTranslate(x, y float32) {
	gl.PushMatrix()
	gl.Translatef(x, y, 0)
}

// PopTransform implements glwin.Device.
func (d *Device) PopTransform() {
	gl.PopMatrix()
}

// PushColor implements glwin.Device.
func (d *Device) PushColor(c glwin.Color) {
	gl.PushAttrib(gl.CURRENT_BIT)
	gl.Color4ub(c.R, c.G, c.B, c.A)
}

// PopColor implements glwin.Device.
func (d *Device) PopColor() {
	gl.PopAttrib()
}

// DrawTexturedQuad implements glwin.Device. The quad spans (0,0)-(w,h);
// UV.V1 lands on the visual top edge in either orientation.
func (d *Device) DrawTexturedQuad(tex glwin.Texture, w, h float32, uv glwin.UVRect) {
	top, bottom := uv.V1, uv.V2
	if d.orientation == glwin.BottomUp {
		top, bottom = bottom, top
	}

	gl.Enable(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(uv.U1, top)
	gl.Vertex2f(0, 0)
	gl.TexCoord2f(uv.U2, top)
	gl.Vertex2f(w, 0)
	gl.TexCoord2f(uv.U2, bottom)
	gl.Vertex2f(w, h)
	gl.TexCoord2f(uv.U1, bottom)
	gl.Vertex2f(0, h)
	gl.End()
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.TEXTURE_2D)
}

// DrawQuad implements glwin.Device.
func (d *Device) DrawQuad(w, h float32) {
	gl.Begin(gl.QUADS)
	gl.Vertex2f(0, 0)
	gl.Vertex2f(w, 0)
	gl.Vertex2f(w, h)
	gl.Vertex2f(0, h)
	gl.End()
}

// Clear fills the framebuffer with c.
func (d *Device) Clear(c glwin.Color) {
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// ReadPixels captures the framebuffer, flipped so row 0 is the top.
func (d *Device) ReadPixels(width, height int) *image.RGBA {
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowLen := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowLen
		copy(img.Pix[y*rowLen:(y+1)*rowLen], pixels[src:src+rowLen])
	}
	return img
}

var _ glwin.Device = (*Device)(nil)
