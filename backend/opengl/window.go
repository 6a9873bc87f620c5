package opengl

import (
	"image"
	"time"

	"github.com/faiface/mainthread"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/go-theft-auto/glwin"
)

// Run starts the GL main thread and calls run on another goroutine. GLFW and
// GL calls must go through mainthread.Call; Window does this itself.
// Call Run from main.
func Run(run func()) {
	mainthread.Run(run)
}

// Config describes a window. Zero callbacks are ignored.
type Config struct {
	Title  string
	Width  int
	Height int

	Resizable   bool
	Undecorated bool
	Floating    bool // Always on top
	Hidden      bool // Start hidden, e.g. for off-screen tools
	VSync       bool

	// Orientation of the pixel projection set up for every frame.
	Orientation glwin.Orientation

	// Icons in several sizes; GLFW picks the closest. See LoadIcon.
	Icons []image.Image

	Background glwin.Color

	OnDraw   func(dev *Device, dt time.Duration)
	OnResize func(width, height int)
	OnKey    func(key glfw.Key, action glfw.Action, mods glfw.ModifierKey)
	OnChar   func(char rune)
	OnMouse  func(button glfw.MouseButton, action glfw.Action, x, y float64)
	OnScroll func(dx, dy float64)

	// OnClose is called when the user asks to close the window. Returning
	// false keeps the window open.
	OnClose func() bool
}

// Window is a GLFW window with a legacy GL 2.1 context.
type Window struct {
	cfg    Config
	win    *glfw.Window
	dev    *Device
	logger *zap.Logger

	width, height int
}

// WindowOption configures a Window.
type WindowOption func(*Window)

// WithLogger sets the window and device logger.
func WithLogger(l *zap.Logger) WindowOption {
	return func(w *Window) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWindow creates the window and its GL context on the main thread.
func NewWindow(cfg Config, opts ...WindowOption) (*Window, error) {
	w := &Window{cfg: cfg, logger: zap.NewNop(), width: cfg.Width, height: cfg.Height}
	for _, opt := range opts {
		opt(w)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}

	err := mainthread.CallErr(func() error {
		if err := glfw.Init(); err != nil {
			return errors.Wrap(err, "glfw init")
		}

		glfw.WindowHint(glfw.ContextVersionMajor, 2)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
		glfw.WindowHint(glfw.Decorated, glfwBool(!cfg.Undecorated))
		glfw.WindowHint(glfw.Floating, glfwBool(cfg.Floating))
		glfw.WindowHint(glfw.Visible, glfwBool(!cfg.Hidden))

		win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
		if err != nil {
			glfw.Terminate()
			return errors.Wrap(err, "create window")
		}
		win.MakeContextCurrent()
		if cfg.VSync {
			glfw.SwapInterval(1)
		} else {
			glfw.SwapInterval(0)
		}

		if err := gl.Init(); err != nil {
			win.Destroy()
			glfw.Terminate()
			return errors.Wrap(err, "gl init")
		}
		if len(cfg.Icons) > 0 {
			win.SetIcon(cfg.Icons)
		}

		w.win = win
		w.dev = NewDevice(w.logger)
		w.width, w.height = win.GetFramebufferSize()
		w.installCallbacks()
		return nil
	})
	if err != nil {
		return nil, err
	}

	w.logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", w.width),
		zap.Int("height", w.height),
		zap.String("gl", w.glVersion()))
	return w, nil
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

func (w *Window) glVersion() string {
	var v string
	mainthread.Call(func() { v = gl.GoStr(gl.GetString(gl.VERSION)) })
	return v
}

func (w *Window) installCallbacks() {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		if w.cfg.OnResize != nil {
			w.cfg.OnResize(width, height)
		}
	})
	w.win.SetCloseCallback(func(win *glfw.Window) {
		if w.cfg.OnClose != nil && !w.cfg.OnClose() {
			win.SetShouldClose(false)
		}
	})
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if w.cfg.OnKey != nil {
			w.cfg.OnKey(key, action, mods)
		}
	})
	w.win.SetCharCallback(func(_ *glfw.Window, char rune) {
		if w.cfg.OnChar != nil {
			w.cfg.OnChar(char)
		}
	})
	w.win.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if w.cfg.OnMouse != nil {
			x, y := win.GetCursorPos()
			w.cfg.OnMouse(button, action, x, y)
		}
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		if w.cfg.OnScroll != nil {
			w.cfg.OnScroll(dx, dy)
		}
	})
}

// Device returns the GL device of this window's context.
func (w *Window) Device() *Device {
	return w.dev
}

// Size returns the framebuffer size.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Do runs f on the main thread with this window's context current.
func (w *Window) Do(f func(dev *Device)) {
	mainthread.Call(func() {
		w.win.MakeContextCurrent()
		f(w.dev)
	})
}

// Run pumps messages and draws frames until the window is closed, then
// destroys it.
func (w *Window) Run() {
	last := time.Now()
	for {
		var done bool
		mainthread.Call(func() {
			if w.win.ShouldClose() {
				done = true
				return
			}
			now := time.Now()
			w.frame(now.Sub(last))
			last = now
			glfw.PollEvents()
		})
		if done {
			break
		}
	}
	w.Destroy()
}

// frame draws one frame. Must run on the main thread.
func (w *Window) frame(dt time.Duration) {
	w.dev.SetupOrtho(w.width, w.height, w.cfg.Orientation)
	w.dev.Clear(w.cfg.Background)
	if w.cfg.OnDraw != nil {
		w.cfg.OnDraw(w.dev, dt)
	}
	w.win.SwapBuffers()
}

// RenderFrame draws a single frame without pumping messages, for tools that
// capture the framebuffer.
func (w *Window) RenderFrame() {
	mainthread.Call(func() { w.frame(0) })
}

// Close asks the loop to stop after the current frame.
func (w *Window) Close() {
	mainthread.CallNonBlock(func() { w.win.SetShouldClose(true) })
}

// Show makes a hidden window visible.
func (w *Window) Show() { mainthread.Call(w.win.Show) }

// Hide hides the window.
func (w *Window) Hide() { mainthread.Call(w.win.Hide) }

// Minimize iconifies the window.
func (w *Window) Minimize() { mainthread.Call(w.win.Iconify) }

// Maximize maximizes the window.
func (w *Window) Maximize() { mainthread.Call(w.win.Maximize) }

// Restore undoes Minimize or Maximize.
func (w *Window) Restore() { mainthread.Call(w.win.Restore) }

// SetTitle changes the window title.
func (w *Window) SetTitle(title string) {
	mainthread.Call(func() { w.win.SetTitle(title) })
}

// ClipboardText returns the system clipboard as text, or "" when it holds
// something else. Main thread only: call it from a Config callback or
// inside Do.
func (w *Window) ClipboardText() string {
	return w.win.GetClipboardString()
}

// SetClipboardText copies s to the system clipboard. Main thread only.
func (w *Window) SetClipboardText(s string) {
	w.win.SetClipboardString(s)
}

// Destroy releases the window and terminates GLFW. Safe to call twice.
func (w *Window) Destroy() {
	if w.win == nil {
		return
	}
	mainthread.Call(func() {
		w.win.Destroy()
		glfw.Terminate()
	})
	w.win = nil
	w.logger.Info("window destroyed", zap.String("title", w.cfg.Title))
}
