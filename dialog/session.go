// Package dialog holds the print dialog session: the current form state, the
// derived page selection, and job submission. One configuration-driven
// session replaces what used to be several near-identical dialog builds;
// optional behaviors are capabilities, not separate code paths.
package dialog

import (
	"context"

	"github.com/wudi/printkit/document"
	"github.com/wudi/printkit/layout"
	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/pagerange"
	"github.com/wudi/printkit/paper"
	"github.com/wudi/printkit/preview"
	"github.com/wudi/printkit/printer"
	"github.com/wudi/printkit/printjob"
)

// Capabilities selects which optional dialog features are active.
type Capabilities struct {
	// Orientation exposes the portrait/landscape choice.
	Orientation bool
	// CustomPaper allows user-entered paper dimensions.
	CustomPaper bool
	// ContentCrop renders pages clipped to their content bounding box.
	ContentCrop bool
}

// AllCapabilities enables every optional feature.
func AllCapabilities() Capabilities {
	return Capabilities{Orientation: true, CustomPaper: true, ContentCrop: true}
}

// Session is the state behind one open print dialog. All mutation happens on
// the caller's goroutine; every input change rebuilds the page selection from
// the current inputs instead of patching it.
type Session struct {
	doc  document.Document
	caps Capabilities
	log  observability.Logger

	Preview *preview.Controller

	printerName string
	dpi         int
	colorMode   document.ColorMode
	orientation layout.Orientation
	paperSize   paper.Size
	copies      int
	spec        pagerange.Spec
}

// NewSession wraps an open document with default settings: every page,
// Letter paper, 300 dpi, color, portrait, one copy.
func NewSession(doc document.Document, caps Capabilities, log observability.Logger) *Session {
	if log == nil {
		log = observability.NopLogger{}
	}
	s := &Session{
		doc:       doc,
		caps:      caps,
		log:       log,
		Preview:   preview.NewController(doc, log),
		dpi:       300,
		paperSize: paper.Letter,
		copies:    1,
		spec:      pagerange.All(),
	}
	s.Preview.SetContentCrop(caps.ContentCrop)
	return s
}

// Capabilities returns the feature set the session was built with.
func (s *Session) Capabilities() Capabilities { return s.caps }

// PageCount returns the document's page count, fixed for the session.
func (s *Session) PageCount() int { return s.doc.PageCount() }

// SetPrinter records the chosen print queue.
func (s *Session) SetPrinter(name string) { s.printerName = name }

// Printer returns the chosen print queue.
func (s *Session) Printer() string { return s.printerName }

// SetDPI records the chosen resolution. Non-positive values are ignored.
func (s *Session) SetDPI(dpi int) {
	if dpi > 0 {
		s.dpi = dpi
	}
}

// DPI returns the chosen resolution.
func (s *Session) DPI() int { return s.dpi }

// SetColorMode records the chosen color mode.
func (s *Session) SetColorMode(m document.ColorMode) { s.colorMode = m }

// ColorMode returns the chosen color mode.
func (s *Session) ColorMode() document.ColorMode { return s.colorMode }

// SetOrientation records the page orientation. Without the Orientation
// capability the call is ignored and the session stays portrait.
func (s *Session) SetOrientation(o layout.Orientation) {
	if !s.caps.Orientation {
		return
	}
	s.orientation = o
	s.Preview.SetOrientation(o)
}

// Orientation returns the page orientation.
func (s *Session) Orientation() layout.Orientation { return s.orientation }

// SetPaper records a preset paper size.
func (s *Session) SetPaper(size paper.Size) {
	if !size.IsZero() {
		s.paperSize = size
	}
}

// SetCustomPaper records user-entered paper dimensions. Without the
// CustomPaper capability the call is ignored.
func (s *Session) SetCustomPaper(width, height float64, unit paper.Unit) {
	if !s.caps.CustomPaper {
		return
	}
	if size := paper.Custom(width, height, unit); !size.IsZero() {
		s.paperSize = size
	}
}

// Paper returns the chosen paper size.
func (s *Session) Paper() paper.Size { return s.paperSize }

// SetCopies records the copy count. Values below one are ignored.
func (s *Session) SetCopies(n int) {
	if n >= 1 {
		s.copies = n
	}
}

// Copies returns the copy count.
func (s *Session) Copies() int { return s.copies }

// SetRangeText switches to an explicit range and rebuilds the selection.
func (s *Session) SetRangeText(text string) {
	s.spec = pagerange.Explicit(text)
	s.Preview.SetSpec(s.spec)
}

// SelectAllPages switches back to the all-pages selection.
func (s *Session) SelectAllPages() {
	s.spec = pagerange.All()
	s.Preview.SetSpec(s.spec)
}

// Selection resolves the current spec against the document. Malformed range
// text yields an empty selection, never an error.
func (s *Session) Selection() []int {
	return pagerange.Resolve(s.spec, s.doc.PageCount())
}

// Snapshot freezes the current inputs into immutable job settings.
func (s *Session) Snapshot() printer.Settings {
	return printer.Settings{
		Printer:     s.printerName,
		DPI:         s.dpi,
		ColorMode:   s.colorMode,
		Orientation: s.orientation,
		Paper:       s.paperSize,
		Copies:      s.copies,
	}
}

// Print runs the job for the current selection and settings. An empty
// selection is refused with printjob.ErrNoPagesSelected before any surface
// is opened.
func (s *Session) Print(ctx context.Context, open func() (printer.Surface, error)) (printjob.Result, error) {
	exec := &printjob.Executor{
		Doc:         s.doc,
		Log:         s.log,
		ContentCrop: s.caps.ContentCrop,
	}
	return exec.Run(ctx, s.Selection(), s.Snapshot(), open)
}

// Close releases the underlying document.
func (s *Session) Close() error { return s.doc.Close() }
