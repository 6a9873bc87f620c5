/*
Package glwin is a thin convenience layer over a GLFW window and the legacy
fixed-function OpenGL pipeline. Its core turns installed fonts into bitmap
glyph atlases and lays out styled, word-wrapped text against them.

# Overview

A Font owns one atlas: a set of fixed-size RGBA texture pages plus a table
of per-glyph advances and UV rectangles. A FineText is a sequence of text
runs, color changes and spacers. A TextDrawer lays a FineText out with a
TextPreparer and draws it glyph by glyph with the Font.

The core never talks to OpenGL or to a font file directly. It draws through
a Device and rasterizes through a Rasterizer; backend/opengl and
backend/sysfont provide the usual implementations.

# Quick Start

	opengl.Run(func() {
	    var font *glwin.Font
	    var drawer *glwin.TextDrawer

	    win, _ := opengl.NewWindow(opengl.Config{
	        Title: "demo", Width: 800, Height: 600,
	        OnDraw: func(dev *opengl.Device, dt time.Duration) {
	            drawer.RenderText(font, glwin.NewFineText(
	                glwin.ColorYellow, glwin.Str("status: "),
	                glwin.ColorWhite, glwin.Str("ready\tok"),
	            ))
	        },
	    })

	    win.Do(func(dev *opengl.Device) {
	        font = glwin.NewFont(sysfont.New(), dev)
	        font.Load(glwin.FontInfo{Name: "Go", Size: 12, Unit: glwin.Points, Ranges: glwin.RangeASCII()})
	    })
	    drawer = glwin.NewTextDrawer(win.Device(), glwin.WithWrapWidth(760))
	    win.Run()
	})

# Threading

Every Font, Device and TextDrawer call must happen on the thread that owns
the GL context. Inside backend/opengl that is the main thread: use the
window callbacks or Window.Do.

# Layout Rules

Text is handled in UTF-16 code units. Surrogate pairs are not combined and
there is no shaping, kerning or bidirectional reordering.

	Word fits          lineWidth + wordWidth <= WrapWidth
	Spacer/tab breaks  lineWidth + width > WrapWidth
	Tab width          TabStops * width(' ') minus the distance past the last stop
	Long words         split at glyph boundaries, at least one glyph per line
	Dropped            a space that does not fit at the end of a line

# Errors

Font.Load never panics. Every problem found while generating an atlas is
collected; Font.ErrMsg returns them one per line and Font.Err matches the
sentinel errors with errors.Is.
*/
package glwin
