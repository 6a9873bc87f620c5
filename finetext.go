package glwin

import (
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
)

// Element is one item of a FineText: a Text run, a Color change or a
// Spacer. The set of variants is closed.
type Element interface {
	isElement()
}

// Text is a run of UTF-16 code units. Layout and rendering work per code
// unit; surrogate pairs are not combined.
type Text []uint16

// Color switches the draw color for the text that follows.
func (Color) isElement() {}

// Spacer advances the cursor horizontally without drawing.
type Spacer int

func (Text) isElement()   {}
func (Spacer) isElement() {}

// String decodes the run back to UTF-8.
func (t Text) String() string {
	return string(utf16.Decode(t))
}

// Part is anything FineText.Append accepts.
type Part interface {
	appendTo(ft *FineText)
}

// Str is a UTF-8 string part.
type Str string

// UTF16 is a part given as UTF-16 code units.
type UTF16 []uint16

// ANSI is a part given in the Windows-1252 code page, the narrow string
// encoding of Win32 callers.
type ANSI []byte

func (t Text) appendTo(ft *FineText) {
	if len(t) == 0 {
		return
	}
	ft.elems = append(ft.elems, append(Text(nil), t...))
}

func (s Str) appendTo(ft *FineText) {
	Text(utf16.Encode([]rune(string(s)))).appendTo(ft)
}

func (u UTF16) appendTo(ft *FineText) {
	Text(u).appendTo(ft)
}

func (a ANSI) appendTo(ft *FineText) {
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(a)
	if err != nil {
		// Windows-1252 maps every byte, the decoder never fails.
		decoded = a
	}
	Str(decoded).appendTo(ft)
}

func (c Color) appendTo(ft *FineText) {
	ft.elems = append(ft.elems, c)
}

func (s Spacer) appendTo(ft *FineText) {
	ft.elems = append(ft.elems, s)
}

func (f FineText) appendTo(ft *FineText) {
	for _, e := range f.elems {
		if t, ok := e.(Text); ok {
			t.appendTo(ft)
			continue
		}
		ft.elems = append(ft.elems, e)
	}
}

// FineText is an ordered sequence of text runs, color changes and spacers.
// The zero value is an empty text ready to use.
type FineText struct {
	elems []Element
}

// NewFineText builds a FineText from parts in order.
//
//	ft := glwin.NewFineText(glwin.ColorRed, glwin.Str("error: "), glwin.ColorWhite, glwin.Str(msg))
func NewFineText(parts ...Part) FineText {
	var ft FineText
	ft.Append(parts...)
	return ft
}

// Append normalizes each part into an element and pushes it in order.
// Empty text parts are skipped.
func (ft *FineText) Append(parts ...Part) *FineText {
	for _, p := range parts {
		if p != nil {
			p.appendTo(ft)
		}
	}
	return ft
}

// Concat returns a new FineText holding ft's elements followed by other's.
func (ft FineText) Concat(other FineText) FineText {
	out := FineText{elems: make([]Element, 0, len(ft.elems)+len(other.elems))}
	out.Append(ft, other)
	return out
}

// Elements returns the element list. The slice must not be modified.
func (ft FineText) Elements() []Element {
	return ft.elems
}

// Len returns the number of elements.
func (ft FineText) Len() int {
	return len(ft.elems)
}

// PlainText returns the concatenated text runs, ignoring colors and spacers.
func (ft FineText) PlainText() string {
	var sb strings.Builder
	for _, e := range ft.elems {
		if t, ok := e.(Text); ok {
			sb.WriteString(t.String())
		}
	}
	return sb.String()
}
