package glwin

// TextFont is what a TextDrawer renders with. *Font satisfies it.
type TextFont interface {
	GlyphMetrics
	IsOk() bool
	BeginBatch()
	EndBatch()
	RenderGlyph(c uint16)
}

// Orientation tells which way lines advance.
type Orientation int

const (
	// TopDown is for a y-down projection: each line moves y by +cellHeight.
	TopDown Orientation = iota
	// BottomUp is for a y-up projection: each line moves y by -cellHeight.
	BottomUp
)

func (o Orientation) lineStep() int {
	if o == BottomUp {
		return -1
	}
	return 1
}

// TextDrawer lays out a FineText and draws it glyph by glyph. Every call is
// independent; the only state is the configuration.
type TextDrawer struct {
	dev         Device
	origin      Point
	orientation Orientation
	color       Color
	preparer    TextPreparer
}

// DrawerOption configures a TextDrawer.
type DrawerOption func(*TextDrawer)

// WithOrigin sets where the first line starts.
func WithOrigin(p Point) DrawerOption {
	return func(d *TextDrawer) { d.origin = p }
}

// WithOrientation sets the line direction.
func WithOrientation(o Orientation) DrawerOption {
	return func(d *TextDrawer) { d.orientation = o }
}

// WithColor sets the color used until the text switches it.
func WithColor(c Color) DrawerOption {
	return func(d *TextDrawer) { d.color = c }
}

// WithTabStops sets the tab width in spaces.
func WithTabStops(n int) DrawerOption {
	return func(d *TextDrawer) { d.preparer.TabStops = n }
}

// WithWrapWidth sets the wrap width in pixels; 0 disables wrapping.
func WithWrapWidth(px int) DrawerOption {
	return func(d *TextDrawer) { d.preparer.WrapWidth = px }
}

// NewTextDrawer creates a drawer at (0,0), top-down, in white.
func NewTextDrawer(dev Device, opts ...DrawerOption) *TextDrawer {
	d := &TextDrawer{
		dev:      dev,
		color:    ColorWhite,
		preparer: NewTextPreparer(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *TextDrawer) SetOrigin(p Point) { d.origin = p }
func (d *TextDrawer) SetOrientation(o Orientation) { d.orientation = o }
func (d *TextDrawer) SetColor(c Color) { d.color = c }
func (d *TextDrawer) SetTabStops(n int) { d.preparer.TabStops = n }
func (d *TextDrawer) SetWrapWidth(px int) { d.preparer.WrapWidth = px }
func (d *TextDrawer) Origin() Point { return d.origin }
func (d *TextDrawer) Preparer() TextPreparer { return d.preparer }

// RenderString draws a plain UTF-8 string.
func (d *TextDrawer) RenderString(f TextFont, s string) {
	d.RenderText(f, NewFineText(Str(s)))
}

// RenderText lays out t and draws it. Nothing is drawn for an unloaded font.
func (d *TextDrawer) RenderText(f TextFont, t FineText) {
	if !f.IsOk() {
		return
	}
	prepared := d.preparer.PrepareText(f, t)

	cell := f.GlyphHeight()
	step := d.orientation.lineStep()
	x, y := d.origin.X, d.origin.Y
	color := d.color

	f.BeginBatch()
	defer f.EndBatch()

	for _, e := range prepared.Elements() {
		switch e := e.(type) {
		case Color:
			color = e
		case Spacer:
			x += int(e)
		case Text:
			d.dev.PushColor(color)
			for _, c := range e {
				if c == '\n' {
					x = d.origin.X
					y += step * cell
					continue
				}
				d.dev.PushTranslate(float32(x), float32(y))
				f.RenderGlyph(c)
				d.dev.PopTransform()
				x += f.GlyphWidth(c)
			}
			d.dev.PopColor()
		}
	}
}

// StringSize measures a plain UTF-8 string.
func (d *TextDrawer) StringSize(m GlyphMetrics, s string) Size {
	return d.TextSize(m, NewFineText(Str(s)))
}

// TextSize measures t after layout without drawing. Height counts one cell
// per line, starting at one line; width is the widest line.
func (d *TextDrawer) TextSize(m GlyphMetrics, t FineText) Size {
	prepared := d.preparer.PrepareText(m, t)

	cell := m.GlyphHeight()
	size := Size{H: cell}
	x := 0
	for _, e := range prepared.Elements() {
		switch e := e.(type) {
		case Spacer:
			x += int(e)
		case Text:
			for _, c := range e {
				if c == '\n' {
					x = 0
					size.H += cell
					continue
				}
				x += m.GlyphWidth(c)
				if x > size.W {
					size.W = x
				}
			}
		}
		if x > size.W {
			size.W = x
		}
	}
	return size
}
