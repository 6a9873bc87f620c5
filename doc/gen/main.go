// Command gen generates the glyph atlas for a font, writes every atlas page
// as BMP and captures a JPEG of sample text rendered with it.
//
// Usage:
//
//	go run ./doc/gen/ -font "Go Mono" -size 14 -out doc/imgs
package main

import (
	"flag"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/go-theft-auto/glwin"
	"github.com/go-theft-auto/glwin/backend/opengl"
	"github.com/go-theft-auto/glwin/backend/sysfont"
)

var (
	fontName = flag.String("font", "Go", "font family")
	fontSize = flag.Int("size", 16, "font size in pixels")
	bold     = flag.Bool("bold", false, "bold style")
	bmp      = flag.Bool("bmp", false, "generate the whole Basic Multilingual Plane")
	pageSize = flag.Int("page", glwin.DefaultPageSize, "atlas page edge in pixels")
	outDir   = flag.String("out", "doc/imgs", "output directory")
)

const (
	sampleWidth  = 640
	sampleHeight = 240
)

const sample = "The quick brown fox jumps over the lazy dog.\n" +
	"col\tcol\tcol\n" +
	"0123456789 !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~\n" +
	"Unmapped: 中文"

func main() {
	flag.Parse()
	opengl.Run(run)
}

func run() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		logger = zap.NewNop()
	}
	defer logger.Sync() //nolint:errcheck

	info := glwin.FontInfo{Name: *fontName, Size: *fontSize, Ranges: glwin.RangeASCII()}
	if *bold {
		info.Style = glwin.StyleBold
	}
	if *bmp {
		info.Ranges = glwin.RangeBMP()
	}

	var (
		font   *glwin.Font
		drawer *glwin.TextDrawer
		shot   *image.RGBA
	)

	win, err := opengl.NewWindow(opengl.Config{
		Title:  "atlas",
		Width:  sampleWidth,
		Height: sampleHeight,
		Hidden: true,
		OnDraw: func(dev *opengl.Device, _ time.Duration) {
			drawer.RenderText(font, glwin.NewFineText(glwin.Str(sample)))
			shot = dev.ReadPixels(sampleWidth, sampleHeight)
		},
	}, opengl.WithLogger(logger))
	if err != nil {
		logger.Fatal("window", zap.Error(err))
	}
	defer win.Destroy()

	drawer = glwin.NewTextDrawer(win.Device(),
		glwin.WithOrigin(glwin.Pt(8, 8)),
		glwin.WithWrapWidth(sampleWidth-16),
	)

	win.Do(func(dev *opengl.Device) {
		font = glwin.NewFont(sysfont.New(sysfont.WithLogger(logger)), dev,
			glwin.WithLogger(logger),
			glwin.WithAtlasOptions(glwin.WithPageSize(*pageSize, *pageSize)),
		)
		font.Load(info)
	})
	if !font.IsOk() {
		logger.Fatal("font load failed", zap.String("errors", font.ErrMsg()))
	}
	defer win.Do(func(*opengl.Device) { font.Unload() })

	var paths []string
	win.Do(func(dev *opengl.Device) {
		paths, err = opengl.SavePagesBMP(dev, font.Data(), *outDir, "atlas")
	})
	if err != nil {
		logger.Fatal("save pages", zap.Error(err))
	}
	for _, p := range paths {
		logger.Info("page written", zap.String("path", p))
	}

	win.RenderFrame()
	if err := saveJPEG(shot, filepath.Join(*outDir, "sample.jpg")); err != nil {
		logger.Fatal("capture", zap.Error(err))
	}
}

func saveJPEG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
