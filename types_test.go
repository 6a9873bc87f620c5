package glwin

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4).Add(Pt(10, -2))
	if p != Pt(13, 2) {
		t.Errorf("Add = %v, want (13, 2)", p)
	}
	if d := p.Sub(Pt(3, 2)); d != Pt(10, 0) {
		t.Errorf("Sub = %v, want (10, 0)", d)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 20), true},
		{Pt(25, 35), true},
		{Pt(40, 60), true}, // far corner is inclusive
		{Pt(41, 61), false},
		{Pt(41, 30), false},
		{Pt(9, 30), false},
		{Pt(20, 19), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("%v.Contains(%v) = %v, want %v", r, tt.p, got, tt.want)
		}
	}
}

func TestRectHelpers(t *testing.T) {
	r := RectAt(Pt(1, 2), Size{W: 3, H: 4})
	if r.Pos() != Pt(1, 2) || r.Size() != (Size{W: 3, H: 4}) {
		t.Errorf("RectAt round trip = %+v", r)
	}
	if got := r.Translate(Pt(5, 5)); got != (Rect{X: 6, Y: 7, W: 3, H: 4}) {
		t.Errorf("Translate = %+v", got)
	}
	if !r.Intersects(Rect{X: 3, Y: 5, W: 10, H: 10}) {
		t.Error("expected overlap")
	}
	if r.Intersects(Rect{X: 4, Y: 2, W: 1, H: 1}) {
		t.Error("touching edges should not overlap")
	}
	if !(Size{W: 0, H: 5}).Empty() || (Size{W: 1, H: 1}).Empty() {
		t.Error("Size.Empty mismatch")
	}
}

func TestColor(t *testing.T) {
	if got := RGBA(0x11, 0x22, 0x33, 0x44).Packed(); got != 0x44332211 {
		t.Errorf("Packed() = %#x, want 0x44332211", got)
	}
	if got := RGBAf(1, 0, 2, -1); got != RGBA(255, 0, 255, 0) {
		t.Errorf("RGBAf clamps to %v", got)
	}
}
