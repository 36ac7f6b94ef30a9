// Package preview drives the page preview: it keeps the current selection
// and position, and renders one viewport-fitted page at a time.
package preview

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/wudi/printkit/document"
	"github.com/wudi/printkit/layout"
	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/pagerange"
)

// ErrNoPages is returned by Render when the current selection is empty.
var ErrNoPages = errors.New("no valid pages selected")

// previewDPI is the render resolution for on-screen pages. The print path
// uses the job DPI instead.
const previewDPI = 72

// Controller owns the preview state. Only the page being shown is ever held;
// changing any input rebuilds the selection from scratch rather than patching
// it.
type Controller struct {
	doc         document.Document
	log         observability.Logger
	spec        pagerange.Spec
	orientation layout.Orientation
	contentCrop bool
	pages       []int
	index       int
	viewW       int
	viewH       int
}

// NewController builds a preview over an open document, initially showing
// all pages.
func NewController(doc document.Document, log observability.Logger) *Controller {
	if log == nil {
		log = observability.NopLogger{}
	}
	c := &Controller{doc: doc, log: log, viewW: 800, viewH: 600}
	c.SetSpec(pagerange.All())
	return c
}

// SetSpec replaces the range spec and rebuilds the selection. The preview
// position resets to the first selected page.
func (c *Controller) SetSpec(spec pagerange.Spec) {
	c.spec = spec
	c.pages = pagerange.Resolve(spec, c.doc.PageCount())
	c.index = 0
}

// SetOrientation changes the preview orientation.
func (c *Controller) SetOrientation(o layout.Orientation) { c.orientation = o }

// SetContentCrop toggles cropping pages to their content box.
func (c *Controller) SetContentCrop(on bool) { c.contentCrop = on }

// SetViewport records the available display area in pixels.
func (c *Controller) SetViewport(w, h int) {
	if w > 0 && h > 0 {
		c.viewW, c.viewH = w, h
	}
}

// Pages returns the resolved selection.
func (c *Controller) Pages() []int { return append([]int(nil), c.pages...) }

// HasPages reports whether anything is selected.
func (c *Controller) HasPages() bool { return len(c.pages) > 0 }

// CurrentPage returns the zero-based document index of the page being
// shown, or -1 when the selection is empty.
func (c *Controller) CurrentPage() int {
	if len(c.pages) == 0 {
		return -1
	}
	return c.pages[c.index]
}

// CanPrev reports whether an earlier selected page exists.
func (c *Controller) CanPrev() bool { return c.index > 0 }

// CanNext reports whether a later selected page exists.
func (c *Controller) CanNext() bool { return c.index < len(c.pages)-1 }

// Prev moves to the previous selected page. It reports whether it moved.
func (c *Controller) Prev() bool {
	if !c.CanPrev() {
		return false
	}
	c.index--
	return true
}

// Next moves to the next selected page. It reports whether it moved.
func (c *Controller) Next() bool {
	if !c.CanNext() {
		return false
	}
	c.index++
	return true
}

// PageLabel formats the navigation caption, e.g. "Page 3 of 10".
func (c *Controller) PageLabel() string {
	if len(c.pages) == 0 {
		return "Page -"
	}
	return fmt.Sprintf("Page %d of %d", c.CurrentPage()+1, c.doc.PageCount())
}

// Render produces the current page scaled to fit the viewport, rotated a
// quarter turn when the orientation is landscape. The returned rect is the
// centered placement inside the viewport.
func (c *Controller) Render(ctx context.Context) (image.Image, layout.Rect, error) {
	if len(c.pages) == 0 {
		return nil, layout.Rect{}, ErrNoPages
	}
	page := c.pages[c.index]

	var clip *document.Box
	if c.contentCrop {
		if box, err := c.doc.ContentBox(page); err == nil && !box.IsEmpty() {
			clip = &box
		}
	}
	raster, err := c.doc.RenderPage(ctx, page, previewDPI, document.Color, clip)
	if err != nil {
		return nil, layout.Rect{}, fmt.Errorf("render preview page %d: %w", page+1, err)
	}

	img := raster.ToImage()
	if c.orientation == layout.Landscape {
		// Rotate270 turns the image clockwise, matching the print path.
		img = imaging.Rotate270(img)
	}
	bounds := img.Bounds()
	rect := layout.FitToPage(bounds.Dx(), bounds.Dy(), c.viewW, c.viewH)
	if rect.IsEmpty() {
		return nil, layout.Rect{}, fmt.Errorf("viewport too small for preview")
	}
	fitted := imaging.Resize(img, rect.W, rect.H, imaging.Lanczos)
	c.log.Debug("preview rendered",
		observability.Int("page", page+1),
		observability.Int("width", rect.W),
		observability.Int("height", rect.H))
	return fitted, rect, nil
}
