package document

import (
	"context"
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// fitzDocument renders through MuPDF. go-fitz rasterizes at a caller-chosen
// DPI; page boxes are reported in points at 72 dpi.
type fitzDocument struct {
	doc   *fitz.Document
	pages int
}

func openFitz(path string) (Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", path, err)
	}
	return &fitzDocument{doc: doc, pages: doc.NumPage()}, nil
}

func (d *fitzDocument) PageCount() int { return d.pages }

func (d *fitzDocument) ContentBox(index int) (Box, error) {
	if index < 0 || index >= d.pages {
		return Box{}, fmt.Errorf("page %d out of range [0,%d)", index, d.pages)
	}
	bound, err := d.doc.Bound(index)
	if err != nil {
		return Box{}, fmt.Errorf("page %d bound: %w", index, err)
	}
	return Box{
		X0: float64(bound.Min.X),
		Y0: float64(bound.Min.Y),
		X1: float64(bound.Max.X),
		Y1: float64(bound.Max.Y),
	}, nil
}

func (d *fitzDocument) RenderPage(ctx context.Context, index int, dpi int, mode ColorMode, clip *Box) (*Raster, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if index < 0 || index >= d.pages {
		return nil, fmt.Errorf("page %d out of range [0,%d)", index, d.pages)
	}
	if dpi <= 0 {
		dpi = 72
	}
	img, err := d.doc.ImageDPI(index, float64(dpi))
	if err != nil {
		return nil, fmt.Errorf("render page %d: %w", index, err)
	}

	format := RGB24
	if mode == Grayscale {
		format = Gray8
	}
	raster := FromImage(img, format)

	if clip != nil && !clip.IsEmpty() {
		// The clip box is in page points; the raster is in device pixels.
		scale := float64(dpi) / 72
		cropped, err := raster.Crop(
			int(clip.X0*scale),
			int(clip.Y0*scale),
			int(clip.Width()*scale),
			int(clip.Height()*scale),
		)
		if err != nil {
			return nil, fmt.Errorf("clip page %d: %w", index, err)
		}
		raster = cropped
	}
	return raster, nil
}

func (d *fitzDocument) Close() error { return d.doc.Close() }
