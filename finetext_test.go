package glwin

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFineTextAppend(t *testing.T) {
	var ft FineText
	ft.Append(Str("héllo"), ColorRed, Spacer(4)).
		Append(UTF16{'o', 'k'}, Str(""), nil, ANSI{0x80, '!'})

	want := []Element{
		Text(utf16Of("héllo")),
		ColorRed,
		Spacer(4),
		Text{'o', 'k'},
		Text(utf16Of("€!")),
	}
	if diff := cmp.Diff(want, ft.Elements()); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
	if ft.Len() != 5 {
		t.Errorf("Len() = %d, want 5", ft.Len())
	}
	if got := ft.PlainText(); got != "héllook€!" {
		t.Errorf("PlainText() = %q", got)
	}
}

func TestFineTextCopiesText(t *testing.T) {
	src := UTF16{'a', 'b'}
	ft := NewFineText(src)
	src[0] = 'z'
	if got := ft.PlainText(); got != "ab" {
		t.Errorf("text aliases the caller's slice: %q", got)
	}
}

func TestFineTextConcat(t *testing.T) {
	a := NewFineText(Str("a"), ColorBlue)
	b := NewFineText(Spacer(2), Str("b"))

	got := a.Concat(b)

	want := []Element{Text{'a'}, ColorBlue, Spacer(2), Text{'b'}}
	if diff := cmp.Diff(want, got.Elements()); diff != "" {
		t.Errorf("elements mismatch (-want +got):\n%s", diff)
	}
	if a.Len() != 2 || b.Len() != 2 {
		t.Error("Concat modified its operands")
	}
}

func TestFineTextSurrogates(t *testing.T) {
	ft := NewFineText(Str("😀"))
	text := ft.Elements()[0].(Text)
	if len(text) != 2 {
		t.Fatalf("expected a surrogate pair, got %d code units", len(text))
	}
	if text.String() != "😀" {
		t.Errorf("String() = %q", text.String())
	}
}
