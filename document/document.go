// Package document opens PDF documents and renders their pages to rasters.
// Rendering is backed by MuPDF via go-fitz; lightweight inspection goes
// through pdfcpu.
package document

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by Open for files that are not PDF.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ColorMode selects the pixel format pages are rendered in.
type ColorMode int

const (
	Color ColorMode = iota
	Grayscale
)

func (m ColorMode) String() string {
	if m == Grayscale {
		return "grayscale"
	}
	return "color"
}

// ParseColorMode maps a user-facing label to a mode. Unrecognized text falls
// back to Color.
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "grayscale", "gray", "greyscale", "grey":
		return Grayscale
	}
	return Color
}

// Box is a rectangle in page space (points, 1/72 inch), origin top-left.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// IsEmpty reports whether the box has no area.
func (b Box) IsEmpty() bool { return b.X1 <= b.X0 || b.Y1 <= b.Y0 }

// Width returns the box width in points.
func (b Box) Width() float64 { return b.X1 - b.X0 }

// Height returns the box height in points.
func (b Box) Height() float64 { return b.Y1 - b.Y0 }

// Document is an open, read-only document handle. The page count is fixed
// for the lifetime of the handle. Implementations are not safe for
// concurrent use; the print pipeline is single-threaded by design.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int
	// RenderPage rasterizes the zero-based page at the given resolution and
	// color mode. A non-nil clip restricts the raster to that page-space
	// region. A nil raster without an error never occurs; failures are
	// reported as errors.
	RenderPage(ctx context.Context, index int, dpi int, mode ColorMode, clip *Box) (*Raster, error)
	// ContentBox returns the region of the page carrying visible content.
	// When the backend cannot determine one, the full page box is returned.
	ContentBox(index int) (Box, error)
	// Close releases the underlying handle.
	Close() error
}

// Open opens the document at path. Non-PDF paths fail with
// ErrUnsupportedFormat; unreadable or corrupt files fail with a wrapped
// backend error.
func Open(path string) (Document, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	return openFitz(path)
}
