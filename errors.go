package glwin

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// Sentinel errors reported by atlas generation and font loading.
var (
	// ErrFontNotFound is returned when the rasterizer cannot materialize the
	// requested font (unknown family, unreadable file).
	ErrFontNotFound = errors.New("glwin: font resource could not be created")

	// ErrRasterize is returned when a glyph range could not be rasterized,
	// even after the retry.
	ErrRasterize = errors.New("glwin: glyph rasterization failed")

	// ErrResourceLimit is returned when a requested atlas page exceeds the
	// device's texture or viewport limits.
	ErrResourceLimit = errors.New("glwin: GPU resource limit exceeded")

	// ErrUnsupportedRange is returned for unicode ranges outside the Basic
	// Multilingual Plane or with From > To.
	ErrUnsupportedRange = errors.New("glwin: unsupported unicode range")

	// ErrNotLoaded is reported by a Font that has never been loaded or was
	// unloaded.
	ErrNotLoaded = errors.New("glwin: font not loaded")
)

// RangeError describes one rejected unicode range.
type RangeError struct {
	Range  UnicodeRange
	Reason string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("glwin: unicode range %s: %s", e.Range, e.Reason)
}

// Unwrap lets errors.Is match ErrUnsupportedRange.
func (e *RangeError) Unwrap() error {
	return ErrUnsupportedRange
}

// ErrorLines flattens an accumulated error into one message per line.
func ErrorLines(err error) string {
	if err == nil {
		return ""
	}
	errs := multierr.Errors(err)
	lines := make([]string, 0, len(errs))
	for _, e := range errs {
		lines = append(lines, e.Error())
	}
	return strings.Join(lines, "\n")
}
