package glwin

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTextSize(t *testing.T) {
	m := fakeMetrics{width: 10, cell: 16}
	d := NewTextDrawer(nil)

	tests := []struct {
		name string
		text FineText
		want Size
	}{
		{"two lines", NewFineText(Str("AB\nC")), Size{W: 20, H: 32}},
		{"empty", FineText{}, Size{W: 0, H: 16}},
		{"trailing newline", NewFineText(Str("A\n")), Size{W: 10, H: 32}},
		{"spacer counts", NewFineText(Str("A"), Spacer(30)), Size{W: 40, H: 16}},
		{"colors are free", NewFineText(ColorRed, Str("AB"), ColorBlue, Str("C")), Size{W: 30, H: 16}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, d.TextSize(m, tt.text)); diff != "" {
				t.Errorf("TextSize mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStringSizeWraps(t *testing.T) {
	m := fakeMetrics{width: 10, cell: 16}
	d := NewTextDrawer(nil, WithWrapWidth(50))

	got := d.StringSize(m, "aaa bbb ccc")
	if diff := cmp.Diff(Size{W: 40, H: 48}, got); diff != "" {
		t.Errorf("StringSize mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderText(t *testing.T) {
	dev := newRecordingDevice()
	font := &fakeTextFont{fakeMetrics: fakeMetrics{width: 10, cell: 16}, dev: dev, loaded: true}
	d := NewTextDrawer(dev, WithOrigin(Pt(5, 7)))

	d.RenderString(font, "AB\nC")

	want := []string{
		"begin",
		"color {255 255 255 255}",
		"translate 5,7", "glyph A", "pop",
		"translate 15,7", "glyph B", "pop",
		"translate 5,23", "glyph C", "pop",
		"pop color",
		"end",
	}
	if diff := cmp.Diff(want, dev.calls); diff != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTextBottomUp(t *testing.T) {
	dev := newRecordingDevice()
	font := &fakeTextFont{fakeMetrics: fakeMetrics{width: 10, cell: 16}, dev: dev, loaded: true}
	d := NewTextDrawer(dev, WithOrientation(BottomUp))
	d.SetOrigin(Pt(0, 100))

	d.RenderString(font, "A\nB")

	want := []string{
		"begin",
		"color {255 255 255 255}",
		"translate 0,100", "glyph A", "pop",
		"translate 0,84", "glyph B", "pop",
		"pop color",
		"end",
	}
	if diff := cmp.Diff(want, dev.calls); diff != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTextColorsAndSpacers(t *testing.T) {
	dev := newRecordingDevice()
	font := &fakeTextFont{fakeMetrics: fakeMetrics{width: 10, cell: 16}, dev: dev, loaded: true}
	d := NewTextDrawer(dev, WithColor(ColorGray))

	d.RenderText(font, NewFineText(Str("A"), ColorRed, Spacer(7), Str("B")))

	want := []string{
		"begin",
		"color {128 128 128 255}",
		"translate 0,0", "glyph A", "pop",
		"pop color",
		"color {255 0 0 255}",
		"translate 17,0", "glyph B", "pop",
		"pop color",
		"end",
	}
	if diff := cmp.Diff(want, dev.calls); diff != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTextTabs(t *testing.T) {
	dev := newRecordingDevice()
	font := &fakeTextFont{fakeMetrics: fakeMetrics{width: 10, cell: 16}, dev: dev, loaded: true}
	d := NewTextDrawer(dev, WithTabStops(2))

	d.RenderString(font, "A\tB")

	want := []string{
		"begin",
		"color {255 255 255 255}",
		"translate 0,0", "glyph A", "pop",
		"pop color",
		"color {255 255 255 255}",
		"translate 20,0", "glyph B", "pop",
		"pop color",
		"end",
	}
	if diff := cmp.Diff(want, dev.calls); diff != "" {
		t.Errorf("draw calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderTextUnloadedFont(t *testing.T) {
	dev := newRecordingDevice()
	font := &fakeTextFont{fakeMetrics: fakeMetrics{width: 10, cell: 16}, dev: dev}
	NewTextDrawer(dev).RenderString(font, "AB")

	if len(dev.calls) != 0 {
		t.Errorf("unloaded font drew: %v", dev.calls)
	}
}

func TestRenderTextDoesNotModifyInput(t *testing.T) {
	dev := newRecordingDevice()
	font := &fakeTextFont{fakeMetrics: fakeMetrics{width: 10, cell: 16}, dev: dev, loaded: true}
	d := NewTextDrawer(dev, WithWrapWidth(25))

	text := NewFineText(Str("aaa\tbbb ccc"))
	before := NewFineText(text)
	d.RenderText(font, text)

	if diff := cmp.Diff(before.Elements(), text.Elements()); diff != "" {
		t.Errorf("input modified (-before +after):\n%s", diff)
	}
}

func TestTextDrawerSetters(t *testing.T) {
	d := NewTextDrawer(nil)
	d.SetTabStops(8)
	d.SetWrapWidth(120)
	d.SetOrigin(Pt(3, 4))
	d.SetColor(ColorGreen)
	d.SetOrientation(BottomUp)

	if diff := cmp.Diff(TextPreparer{WrapWidth: 120, TabStops: 8}, d.Preparer()); diff != "" {
		t.Errorf("preparer mismatch (-want +got):\n%s", diff)
	}
	if d.Origin() != Pt(3, 4) {
		t.Errorf("Origin() = %v", d.Origin())
	}
}
