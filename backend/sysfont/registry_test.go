package sysfont

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"

	"github.com/go-theft-auto/glwin"
)

func TestBundledFamilies(t *testing.T) {
	r := New(WithFontDirs())
	if diff := cmp.Diff([]string{"Go", "Go Mono"}, r.Families()); diff != "" {
		t.Errorf("families mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenFaceMetrics(t *testing.T) {
	r := New(WithFontDirs())
	face, err := r.OpenFace("go", 16, glwin.StyleNormal)
	if err != nil {
		t.Fatalf("OpenFace: %v", err)
	}
	defer face.Close()

	m := face.Metrics()
	if m.CellHeight != m.Ascent+m.Descent {
		t.Errorf("cell height %d != ascent %d + descent %d", m.CellHeight, m.Ascent, m.Descent)
	}
	if m.CellHeight < 16 {
		t.Errorf("cell height %d smaller than the em size", m.CellHeight)
	}
	if m.InternalLeading != m.CellHeight-16 {
		t.Errorf("internal leading = %d, want %d", m.InternalLeading, m.CellHeight-16)
	}
}

func TestRasterizeRange(t *testing.T) {
	r := New(WithFontDirs())
	face, err := r.OpenFace("Go Mono", 14, glwin.StyleNormal)
	if err != nil {
		t.Fatalf("OpenFace: %v", err)
	}
	defer face.Close()
	cell := face.Metrics().CellHeight

	glyphs, err := face.RasterizeRange(glwin.UnicodeRange{From: ' ', To: 'C'})
	if err != nil {
		t.Fatalf("RasterizeRange: %v", err)
	}
	if len(glyphs) != 'C'-' '+1 {
		t.Fatalf("expected %d glyphs, got %d", 'C'-' '+1, len(glyphs))
	}

	space := glyphs[0]
	if space.Rune != ' ' || space.Mask != nil {
		t.Errorf("space should have no ink: %+v", space)
	}
	for _, g := range glyphs {
		if g.Advance != space.Advance {
			t.Errorf("%c advance %d, want monospace %d", g.Rune, g.Advance, space.Advance)
		}
		if g.Mask == nil {
			continue
		}
		if b := g.Mask.Bounds(); b.Dx() != g.Advance || b.Dy() != cell {
			t.Errorf("%c mask is %v, want %dx%d", g.Rune, b, g.Advance, cell)
		}
	}

	var ink int
	for _, a := range glyphs[len(glyphs)-1].Mask.Pix {
		if a > 0 {
			ink++
		}
	}
	if ink == 0 {
		t.Error("glyph C has no ink")
	}
}

func TestRasterizeSkipsUncovered(t *testing.T) {
	r := New(WithFontDirs())
	face, err := r.OpenFace("Go", 12, glwin.StyleNormal)
	if err != nil {
		t.Fatalf("OpenFace: %v", err)
	}
	defer face.Close()

	glyphs, err := face.RasterizeRange(glwin.UnicodeRange{From: 0x4E2D, To: 0x4E2E})
	if err != nil {
		t.Fatalf("RasterizeRange: %v", err)
	}
	if len(glyphs) != 0 {
		t.Errorf("expected no CJK glyphs in the Go font, got %d", len(glyphs))
	}
}

func TestOpenFaceNotFound(t *testing.T) {
	r := New(WithFontDirs(t.TempDir()))
	_, err := r.OpenFace("No Such Family", 12, glwin.StyleNormal)
	if !errors.Is(err, glwin.ErrFontNotFound) {
		t.Fatalf("expected ErrFontNotFound, got %v", err)
	}
	if _, err := r.OpenFace("Go", 0, glwin.StyleNormal); !errors.Is(err, glwin.ErrFontNotFound) {
		t.Errorf("zero size: expected ErrFontNotFound, got %v", err)
	}
}

func TestScanFindsInstalledFonts(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "truetype")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "mono.ttf"), gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "broken.otf"), []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := &Rasterizer{
		fonts:  make(map[familyKey]*opentype.Font),
		names:  make(map[string]string),
		dirs:   []string{dir},
		logger: zap.NewNop(),
	}
	face, err := r.OpenFace("Go Mono", 12, glwin.StyleBold)
	if err != nil {
		t.Fatalf("OpenFace after scan: %v", err)
	}
	face.Close()
	if !r.scanned {
		t.Error("directories were not scanned")
	}
}
