// Package sysfont implements glwin.Rasterizer on golang.org/x/image. It
// finds installed TrueType/OpenType fonts by family name and draws glyph
// cells for the atlas builder.
package sysfont

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/go-theft-auto/glwin"
)

// familyKey identifies one registered font file.
type familyKey struct {
	family string // lower case
	bold   bool
}

// Rasterizer resolves family names to parsed fonts. The bundled Go fonts
// ("Go", "Go Mono") are always available; system font directories are
// scanned the first time a family is not found.
type Rasterizer struct {
	fonts   map[familyKey]*opentype.Font
	names   map[string]string // lower case -> display name
	dirs    []string
	scanned bool
	logger  *zap.Logger
}

// Option configures a Rasterizer.
type Option func(*Rasterizer)

// WithFontDirs replaces the directories scanned for installed fonts.
func WithFontDirs(dirs ...string) Option {
	return func(r *Rasterizer) { r.dirs = dirs }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Rasterizer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Rasterizer with the bundled Go fonts registered.
func New(opts ...Option) *Rasterizer {
	r := &Rasterizer{
		fonts:  make(map[familyKey]*opentype.Font),
		names:  make(map[string]string),
		dirs:   DefaultFontDirs(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	for _, ttf := range [][]byte{goregular.TTF, gobold.TTF, gomono.TTF, gomonobold.TTF} {
		if err := r.Register(ttf); err != nil {
			r.logger.Warn("bundled font rejected", zap.Error(err))
		}
	}
	return r
}

// DefaultFontDirs returns the usual font directories for the running OS.
func DefaultFontDirs() []string {
	home, _ := os.UserHomeDir()
	switch runtime.GOOS {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		dirs := []string{filepath.Join(windir, "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	case "darwin":
		return []string{"/System/Library/Fonts", "/Library/Fonts", filepath.Join(home, "Library", "Fonts")}
	default:
		return []string{
			"/usr/share/fonts",
			"/usr/local/share/fonts",
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
		}
	}
}

// Register parses a font file or collection and makes every upright face
// in it available by family name.
func (r *Rasterizer) Register(data []byte) error {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return fmt.Errorf("sysfont: parse font: %w", err)
	}
	for i := 0; i < coll.NumFonts(); i++ {
		f, err := coll.Font(i)
		if err != nil {
			return fmt.Errorf("sysfont: font %d of collection: %w", i, err)
		}
		r.add(f)
	}
	return nil
}

// RegisterFile reads and registers one font file.
func (r *Rasterizer) RegisterFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("sysfont: %w", err)
	}
	if err := r.Register(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (r *Rasterizer) add(f *opentype.Font) {
	var buf sfnt.Buffer
	family, err := f.Name(&buf, sfnt.NameIDFamily)
	if err != nil || family == "" {
		return
	}
	sub, _ := f.Name(&buf, sfnt.NameIDSubfamily)
	sub = strings.ToLower(sub)
	if strings.Contains(sub, "italic") || strings.Contains(sub, "oblique") {
		return
	}
	key := familyKey{family: strings.ToLower(family), bold: strings.Contains(sub, "bold")}
	if _, ok := r.fonts[key]; ok {
		return
	}
	r.fonts[key] = f
	r.names[key.family] = family
}

// Families returns the registered family names, sorted.
func (r *Rasterizer) Families() []string {
	out := make([]string, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// scan registers every font found under the configured directories.
func (r *Rasterizer) scan() {
	r.scanned = true
	for _, dir := range r.dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			switch strings.ToLower(filepath.Ext(path)) {
			case ".ttf", ".otf", ".ttc", ".otc":
			default:
				return nil
			}
			if err := r.RegisterFile(path); err != nil {
				r.logger.Debug("skipping font file", zap.String("path", path), zap.Error(err))
			}
			return nil
		})
		if err != nil {
			r.logger.Debug("font directory not scanned", zap.String("dir", dir), zap.Error(err))
		}
	}
	r.logger.Debug("font directories scanned", zap.Int("families", len(r.names)))
}

// lookup finds the font for a family, falling back from bold to regular.
func (r *Rasterizer) lookup(name string, style glwin.FontStyle) (*opentype.Font, bool) {
	family := strings.ToLower(strings.TrimSpace(name))
	bold := style == glwin.StyleBold
	if f, ok := r.fonts[familyKey{family, bold}]; ok {
		return f, true
	}
	if bold {
		if f, ok := r.fonts[familyKey{family, false}]; ok {
			r.logger.Debug("no bold face, using regular", zap.String("family", name))
			return f, true
		}
	}
	return nil, false
}

// OpenFace implements glwin.Rasterizer.
func (r *Rasterizer) OpenFace(name string, pixelSize int, style glwin.FontStyle) (glwin.Face, error) {
	if pixelSize <= 0 {
		return nil, fmt.Errorf("%w: invalid pixel size %d", glwin.ErrFontNotFound, pixelSize)
	}
	f, ok := r.lookup(name, style)
	if !ok && !r.scanned {
		r.scan()
		f, ok = r.lookup(name, style)
	}
	if !ok {
		return nil, fmt.Errorf("%w: no installed family %q", glwin.ErrFontNotFound, name)
	}
	return newFace(f, pixelSize)
}
