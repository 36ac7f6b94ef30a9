// Package printjob runs a resolved page selection through the render, place,
// draw sequence onto a print surface.
package printjob

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wudi/printkit/document"
	"github.com/wudi/printkit/layout"
	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/printer"
	"github.com/wudi/printkit/recovery"
)

// ErrNoPagesSelected refuses a job whose selection resolved to nothing. The
// surface is never opened in that case.
var ErrNoPagesSelected = errors.New("no pages selected to print")

// PageRenderError reports a single page that could not be rasterized or
// drawn. Under the lenient recovery strategy the page is skipped and the job
// continues.
type PageRenderError struct {
	Page int // zero-based
	Err  error
}

func (e *PageRenderError) Error() string {
	return fmt.Sprintf("page %d: %v", e.Page+1, e.Err)
}

func (e *PageRenderError) Unwrap() error { return e.Err }

// Result summarizes a finished job.
type Result struct {
	Printed  []int
	Skipped  []int
	Duration time.Duration
}

// Executor runs print jobs against one open document. The zero value is not
// usable; fill in Doc at minimum. A nil Recovery defaults to the lenient
// skip-bad-pages strategy, a nil Log to the nop logger.
type Executor struct {
	Doc      document.Document
	Log      observability.Logger
	Recovery recovery.Strategy

	// ContentCrop renders each page clipped to its content bounding box,
	// falling back to the full page box when the reported box is degenerate.
	ContentCrop bool
}

// Run prints the given zero-based page indices, in order, onto a surface
// obtained from open. Each page is rendered at the job resolution and color
// mode, fitted to the printable area (with a quarter-turn for landscape
// jobs), and drawn centered. The surface advances to a fresh output page
// between drawn pages, never after the last one.
//
// A failed page render consults the recovery strategy: skip logs and moves
// on, fail aborts the job. A surface that cannot be opened aborts before
// anything is drawn. Panics from the draw path are converted into errors and
// the surface is closed before returning.
func (e *Executor) Run(ctx context.Context, pages []int, settings printer.Settings, open func() (printer.Surface, error)) (result Result, err error) {
	log := e.Log
	if log == nil {
		log = observability.NopLogger{}
	}
	strategy := e.Recovery
	if strategy == nil {
		strategy = recovery.NewLenientStrategy()
	}

	if len(pages) == 0 {
		return Result{}, ErrNoPagesSelected
	}
	if err := settings.Validate(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	surface, err := open()
	if err != nil {
		return Result{}, err
	}
	closed := false
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("printing failed unexpectedly: %v", r)
		}
		if !closed {
			if cerr := surface.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}()

	targetW, targetH := surface.PrintableArea()
	log = log.With(
		observability.String("printer", settings.Printer),
		observability.Int("dpi", settings.DPI))

	drawn := 0
	for _, page := range pages {
		raster, renderErr := e.renderPage(ctx, page, settings)
		if renderErr != nil {
			pageErr := &PageRenderError{Page: page, Err: renderErr}
			if strategy.OnError(ctx, pageErr, recovery.Location{Page: page, Component: "render"}) == recovery.ActionSkip {
				log.Warn("skipping page", observability.Int("page", page+1), observability.Error("err", renderErr))
				result.Skipped = append(result.Skipped, page)
				continue
			}
			return result, pageErr
		}

		if drawn > 0 {
			if aerr := surface.AdvancePage(); aerr != nil {
				return result, fmt.Errorf("advance to page %d: %w", page+1, aerr)
			}
		}
		rect := layout.FitToPage(raster.Width, raster.Height, targetW, targetH)
		if derr := surface.DrawImage(rect, raster); derr != nil {
			pageErr := &PageRenderError{Page: page, Err: derr}
			if strategy.OnError(ctx, pageErr, recovery.Location{Page: page, Component: "draw"}) == recovery.ActionSkip {
				log.Warn("skipping page", observability.Int("page", page+1), observability.Error("err", derr))
				result.Skipped = append(result.Skipped, page)
				continue
			}
			return result, pageErr
		}
		drawn++
		result.Printed = append(result.Printed, page)
	}

	closed = true
	if cerr := surface.Close(); cerr != nil {
		return result, cerr
	}
	result.Duration = time.Since(start)
	log.Info("job finished",
		observability.Int(observability.MetricPagesPrinted, len(result.Printed)),
		observability.Int(observability.MetricPagesSkipped, len(result.Skipped)),
		observability.Int64(observability.MetricJobTime, result.Duration.Milliseconds()))
	return result, nil
}

func (e *Executor) renderPage(ctx context.Context, page int, settings printer.Settings) (*document.Raster, error) {
	var clip *document.Box
	if e.ContentCrop {
		box, err := e.Doc.ContentBox(page)
		if err == nil && !box.IsEmpty() {
			clip = &box
		}
	}
	raster, err := e.Doc.RenderPage(ctx, page, settings.DPI, settings.ColorMode, clip)
	if err != nil {
		return nil, err
	}
	if raster == nil || len(raster.Samples) == 0 {
		return nil, errors.New("renderer produced no image")
	}
	if settings.Orientation == layout.Landscape {
		raster = raster.Rotate90()
	}
	return raster, nil
}
