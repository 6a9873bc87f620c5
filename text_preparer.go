package glwin

// GlyphMetrics is what layout needs from a font. *Font satisfies it.
type GlyphMetrics interface {
	// GlyphWidth returns the advance of one UTF-16 code unit in pixels.
	GlyphWidth(c uint16) int
	// GlyphHeight returns the cell height in pixels.
	GlyphHeight() int
}

// DefaultTabStops is the number of space widths in one tab stop.
const DefaultTabStops = 4

// TextPreparer resolves wrapping and tabs in a FineText. The output has
// explicit line breaks and tabs turned into Spacer elements, ready for a
// TextDrawer.
type TextPreparer struct {
	// WrapWidth is the maximum line width in pixels. 0 disables wrapping;
	// explicit "\n" still breaks.
	WrapWidth int

	// TabStops is the number of space glyphs in a full tab.
	TabStops int
}

// NewTextPreparer returns a preparer with no wrapping and default tabs.
func NewTextPreparer() TextPreparer {
	return TextPreparer{TabStops: DefaultTabStops}
}

// PrepareText lays out t against m. The result is a new FineText; t is not
// modified. Adjacent text runs are merged.
//
// A word fits when lineWidth+wordWidth <= WrapWidth. A space that does not
// fit is dropped. A word wider than WrapWidth is split at glyph boundaries
// across as many lines as needed; a single glyph wider than WrapWidth sits
// alone on its line. Spacers and tabs break the line when
// lineWidth+width > WrapWidth.
func (p TextPreparer) PrepareText(m GlyphMetrics, t FineText) FineText {
	l := layout{
		metrics: m,
		wrap:    p.WrapWidth,
		tabs:    p.TabStops,
	}
	for _, e := range t.Elements() {
		switch e := e.(type) {
		case Color:
			l.flush()
			l.out.elems = append(l.out.elems, e)
		case Spacer:
			l.spacer(int(e))
		case Text:
			for _, w := range splitWords(e) {
				l.word(w)
			}
		}
	}
	l.flush()
	return l.out
}

// layout carries the running state of one PrepareText call.
type layout struct {
	metrics GlyphMetrics
	wrap    int
	tabs    int

	lineWidth int
	pending   []uint16 // text not yet flushed into out
	out       FineText
}

func (l *layout) flush() {
	if len(l.pending) == 0 {
		return
	}
	l.out.elems = append(l.out.elems, Text(l.pending))
	l.pending = nil
}

func (l *layout) newline() {
	l.pending = append(l.pending, '\n')
	l.lineWidth = 0
}

func (l *layout) overflows(w int) bool {
	return l.wrap != 0 && l.lineWidth+w > l.wrap
}

func (l *layout) spacer(w int) {
	if l.overflows(w) {
		l.newline()
	}
	l.flush()
	l.out.elems = append(l.out.elems, Spacer(w))
	l.lineWidth += w
}

func (l *layout) tab() {
	full := l.tabs * l.metrics.GlyphWidth(' ')
	w := full
	if full > 0 {
		if rem := l.lineWidth % full; rem != 0 {
			w = full - rem
		}
	}
	if l.overflows(w) {
		l.newline()
		w = full
	}
	l.flush()
	l.out.elems = append(l.out.elems, Spacer(w))
	l.lineWidth += w
}

func (l *layout) word(w []uint16) {
	if len(w) == 1 {
		switch w[0] {
		case '\n':
			l.newline()
			return
		case '\t':
			l.tab()
			return
		}
	}

	width := textWidth(l.metrics, w)
	if l.wrap == 0 || l.lineWidth+width <= l.wrap {
		l.pending = append(l.pending, w...)
		l.lineWidth += width
		return
	}
	if len(w) == 1 && w[0] == ' ' {
		return
	}
	if width > l.wrap {
		l.split(w)
		return
	}
	l.newline()
	l.pending = append(l.pending, w...)
	l.lineWidth = width
}

// split spreads a word wider than the wrap width over several lines.
func (l *layout) split(w []uint16) {
	rest := w
	for len(rest) > 0 && l.lineWidth+textWidth(l.metrics, rest) > l.wrap {
		n := glyphCountInWidth(l.metrics, rest, l.wrap-l.lineWidth)
		if n == 0 && l.lineWidth == 0 {
			n = 1
		}
		if n >= len(rest) {
			break
		}
		l.pending = append(l.pending, rest[:n]...)
		l.newline()
		rest = rest[n:]
	}
	l.pending = append(l.pending, rest...)
	l.lineWidth += textWidth(l.metrics, rest)
}

// splitWords tokenizes text into maximal runs of non-whitespace and single
// whitespace code units (space, tab, newline).
func splitWords(text []uint16) [][]uint16 {
	var words [][]uint16
	start := 0
	for i, c := range text {
		if !isLayoutSpace(c) {
			continue
		}
		if i > start {
			words = append(words, text[start:i])
		}
		words = append(words, text[i:i+1])
		start = i + 1
	}
	if start < len(text) {
		words = append(words, text[start:])
	}
	return words
}

func isLayoutSpace(c uint16) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// textWidth returns the summed advance of text.
func textWidth(m GlyphMetrics, text []uint16) int {
	w := 0
	for _, c := range text {
		w += m.GlyphWidth(c)
	}
	return w
}

// glyphCountInWidth returns how many leading code units of text fit in
// width pixels.
func glyphCountInWidth(m GlyphMetrics, text []uint16, width int) int {
	used := 0
	for i, c := range text {
		used += m.GlyphWidth(c)
		if used > width {
			return i
		}
	}
	return len(text)
}
