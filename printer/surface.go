package printer

import (
	"fmt"

	"github.com/wudi/printkit/document"
	"github.com/wudi/printkit/layout"
)

// Surface is one open print output. Pages are produced strictly in order:
// draw onto the current page, AdvancePage to start the next, Close when done.
type Surface interface {
	// PrintableArea returns the drawable page area in device pixels.
	PrintableArea() (w, h int)
	// DrawImage places the raster into the given rectangle of the current
	// output page, scaling as needed.
	DrawImage(r layout.Rect, raster *document.Raster) error
	// AdvancePage finishes the current output page and starts a new one.
	AdvancePage() error
	// Close finishes the final page and releases the surface.
	Close() error
}

// SurfaceOpenError reports that the output surface could not be opened at
// all. It is fatal for the job: no page is drawn after it.
type SurfaceOpenError struct {
	Printer string
	Err     error
}

func (e *SurfaceOpenError) Error() string {
	if e.Printer == "" {
		return fmt.Sprintf("open print surface: %v", e.Err)
	}
	return fmt.Sprintf("open print surface for %q: %v", e.Printer, e.Err)
}

func (e *SurfaceOpenError) Unwrap() error { return e.Err }
