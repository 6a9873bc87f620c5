package glwin

import "fmt"

// FontStyle selects the weight of a font.
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleBold
)

func (s FontStyle) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleBold:
		return "bold"
	default:
		return fmt.Sprintf("FontStyle(%d)", int(s))
	}
}

// SizeUnit tells how FontInfo.Size is measured.
type SizeUnit int

const (
	Pixels SizeUnit = iota
	Points
)

// Reserved fallback code points. A Font that misses a glyph draws the
// missing-glyph marker, then the replacement character.
const (
	MissingGlyphRune rune = 0x25A1 // WHITE SQUARE
	ReplacementRune  rune = 0xFFFD
	MaxBMPRune       rune = 0xFFFF
)

// UnicodeRange is the closed interval [From, To] of code points.
type UnicodeRange struct {
	From, To rune
}

func (r UnicodeRange) String() string {
	return fmt.Sprintf("[U+%04X, U+%04X]", r.From, r.To)
}

// Contains reports whether c lies in the range.
func (r UnicodeRange) Contains(c rune) bool {
	return c >= r.From && c <= r.To
}

// Len returns the number of code points in the range.
func (r UnicodeRange) Len() int {
	if r.To < r.From {
		return 0
	}
	return int(r.To-r.From) + 1
}

// UnicodeRangeGroup is an ordered list of ranges. Ranges may overlap and
// need not be sorted.
type UnicodeRangeGroup []UnicodeRange

// RangeBMP covers the whole Basic Multilingual Plane.
func RangeBMP() UnicodeRangeGroup {
	return UnicodeRangeGroup{{From: 0x0000, To: MaxBMPRune}}
}

// RangeASCII covers printable ASCII plus the fallback glyphs.
func RangeASCII() UnicodeRangeGroup {
	return UnicodeRangeGroup{
		{From: 0x20, To: 0x7E},
		{From: MissingGlyphRune, To: MissingGlyphRune},
		{From: ReplacementRune, To: ReplacementRune},
	}
}

// Count returns the total number of code points, counting overlaps twice.
func (g UnicodeRangeGroup) Count() int {
	n := 0
	for _, r := range g {
		n += r.Len()
	}
	return n
}

// Validate returns one *RangeError per range the atlas builder cannot
// handle, or nil.
func (g UnicodeRangeGroup) Validate() []error {
	var errs []error
	for _, r := range g {
		switch {
		case r.From < 0:
			errs = append(errs, &RangeError{Range: r, Reason: "negative code point"})
		case r.From > r.To:
			errs = append(errs, &RangeError{Range: r, Reason: "from is greater than to"})
		case r.To > MaxBMPRune:
			errs = append(errs, &RangeError{Range: r, Reason: "extends beyond the Basic Multilingual Plane"})
		}
	}
	return errs
}

// splitAroundNonCharacter returns the sub-ranges of g with U+FFFF excised.
// The glyph rasterizers this package targets cannot produce that code point.
func (g UnicodeRangeGroup) splitAroundNonCharacter() UnicodeRangeGroup {
	out := make(UnicodeRangeGroup, 0, len(g))
	for _, r := range g {
		if r.To > MaxBMPRune {
			r.To = MaxBMPRune
		}
		if !r.Contains(MaxBMPRune) {
			out = append(out, r)
			continue
		}
		if r.From < MaxBMPRune {
			out = append(out, UnicodeRange{From: r.From, To: MaxBMPRune - 1})
		}
	}
	return out
}

// FontInfo describes the font a Font should load. Equal values are
// interchangeable.
type FontInfo struct {
	Name   string
	Size   int
	Unit   SizeUnit
	Style  FontStyle
	Ranges UnicodeRangeGroup
}

// PixelSize converts Size to pixels. Points use a fixed 4/3 ratio with
// integer truncation, not the display DPI.
func (fi FontInfo) PixelSize() int {
	if fi.Unit == Points {
		return fi.Size * 4 / 3
	}
	return fi.Size
}

// Equal reports whether two descriptions are interchangeable.
func (fi FontInfo) Equal(other FontInfo) bool {
	if fi.Name != other.Name || fi.Size != other.Size || fi.Unit != other.Unit || fi.Style != other.Style {
		return false
	}
	if len(fi.Ranges) != len(other.Ranges) {
		return false
	}
	for i := range fi.Ranges {
		if fi.Ranges[i] != other.Ranges[i] {
			return false
		}
	}
	return true
}

func (fi FontInfo) String() string {
	unit := "px"
	if fi.Unit == Points {
		unit = "pt"
	}
	return fmt.Sprintf("%s %d%s %s", fi.Name, fi.Size, unit, fi.Style)
}
