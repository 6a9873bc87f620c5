// Example opens a window and draws wrapped, multi-colored text with a font
// generated from an installed system font.
//
//	go run ./example/ -font "DejaVu Sans" -size 12 -unit pt
package main

import (
	"flag"
	"fmt"
	"image"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/go-theft-auto/glwin"
	"github.com/go-theft-auto/glwin/backend/opengl"
	"github.com/go-theft-auto/glwin/backend/sysfont"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "glwin example"
)

var (
	fontName = flag.String("font", "Go", "font family")
	fontSize = flag.Int("size", 16, "font size")
	fontUnit = flag.String("unit", "px", "size unit: px or pt")
	iconPath = flag.String("icon", "", "optional window icon")
	debug    = flag.Bool("debug", false, "debug logging")
)

func main() {
	flag.Parse()
	opengl.Run(run)
}

func run() {
	logger := newLogger(*debug)
	defer logger.Sync() //nolint:errcheck

	var icons []image.Image
	if *iconPath != "" {
		set, err := opengl.LoadIcon(*iconPath)
		if err != nil {
			logger.Fatal("icon", zap.Error(err))
		}
		icons = set
	}

	info := glwin.FontInfo{
		Name:   *fontName,
		Size:   *fontSize,
		Style:  glwin.StyleNormal,
		Ranges: glwin.RangeASCII(),
	}
	if *fontUnit == "pt" {
		info.Unit = glwin.Points
	}

	var (
		font   *glwin.Font
		drawer *glwin.TextDrawer
		win    *opengl.Window
		frames int
		pasted string
	)

	cfg := opengl.Config{
		Title:      windowTitle,
		Width:      windowWidth,
		Height:     windowHeight,
		Resizable:  true,
		VSync:      true,
		Icons:      icons,
		Background: glwin.RGBA(30, 30, 36, 255),
		OnClose: func() bool {
			font.Unload()
			return true
		},
		OnKey: func(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) {
			if action != glfw.Press || mods&glfw.ModControl == 0 {
				return
			}
			switch key {
			case glfw.KeyC:
				win.SetClipboardText(font.Info().String())
			case glfw.KeyV:
				pasted = win.ClipboardText()
			}
		},
		OnResize: func(width, _ int) {
			drawer.SetWrapWidth(width - 40)
		},
		OnDraw: func(dev *opengl.Device, dt time.Duration) {
			frames++
			text := glwin.NewFineText(
				glwin.ColorYellow, glwin.Str(fmt.Sprintf("%s, %d glyphs\n", info, len(font.Data().Glyphs))),
				glwin.ColorWhite, glwin.Str("Name\tValue\n"),
				glwin.Str("frame\t"), glwin.ColorCyan, glwin.Str(fmt.Sprint(frames)), glwin.ColorWhite,
				glwin.Str("\ndt\t"), glwin.ColorCyan, glwin.Str(dt.String()), glwin.ColorWhite,
				glwin.Str("\n\nThis paragraph is long enough to wrap at the window edge; resize the "+
					"window to watch the layout follow. A very long word gets split: "),
				glwin.ColorRed, glwin.Str("Donaudampfschifffahrtsgesellschaftskapitaenswitwe"),
				glwin.ColorWhite, glwin.Str("\n\nCtrl+C copies the font name, Ctrl+V pastes: "),
				glwin.ColorGreen, glwin.Str(pasted),
			)
			drawer.RenderText(font, text)

			dev.PushTranslate(20, float32(windowHeight-40))
			font.RenderGlyphs("RenderGlyphs: tabs\tand newlines\nare literal")
			dev.PopTransform()
		},
	}

	var err error
	win, err = opengl.NewWindow(cfg, opengl.WithLogger(logger))
	if err != nil {
		logger.Fatal("window", zap.Error(err))
	}

	win.Do(func(dev *opengl.Device) {
		font = glwin.NewFont(sysfont.New(sysfont.WithLogger(logger)), dev, glwin.WithLogger(logger))
		font.Load(info)
	})
	if !font.IsOk() {
		logger.Fatal("font", zap.String("errors", font.ErrMsg()))
	}

	width, _ := win.Size()
	drawer = glwin.NewTextDrawer(win.Device(),
		glwin.WithOrigin(glwin.Pt(20, 20)),
		glwin.WithWrapWidth(width-40),
		glwin.WithTabStops(8),
	)

	win.Run()
}

func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
