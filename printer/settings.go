// Package printer carries print job settings and output surfaces: a raster
// spool that renders output pages to image files, and a CUPS client that
// enumerates system printers and submits spooled jobs.
package printer

import (
	"errors"
	"fmt"

	"github.com/wudi/printkit/document"
	"github.com/wudi/printkit/layout"
	"github.com/wudi/printkit/paper"
)

// Settings is the immutable snapshot of job parameters taken at submit time.
type Settings struct {
	Printer     string
	DPI         int
	ColorMode   document.ColorMode
	Orientation layout.Orientation
	Paper       paper.Size
	Copies      int
}

// Validate rejects settings no job can run with.
func (s Settings) Validate() error {
	if s.DPI <= 0 {
		return fmt.Errorf("resolution must be positive, got %d", s.DPI)
	}
	if s.Copies <= 0 {
		return fmt.Errorf("copy count must be positive, got %d", s.Copies)
	}
	if s.Paper.IsZero() {
		return errors.New("paper size not set")
	}
	return nil
}

// PrintablePixels returns the output page area in device pixels, with the
// paper oriented per the settings.
func (s Settings) PrintablePixels() (w, h int) {
	return s.Paper.Oriented(s.Orientation).PixelsAt(s.DPI)
}
