package document

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// PixelFormat identifies the sample layout of a Raster.
type PixelFormat int

const (
	RGB24 PixelFormat = iota // 3 bytes per pixel, no alpha
	Gray8                    // 1 byte per pixel
)

// BytesPerPixel returns the per-pixel sample width.
func (f PixelFormat) BytesPerPixel() int {
	if f == Gray8 {
		return 1
	}
	return 3
}

// Raster is a decoded page bitmap. It is produced by a single render call and
// consumed once, by either the preview or the print path; nothing caches
// rasters across settings changes.
type Raster struct {
	Width   int
	Height  int
	Stride  int
	Format  PixelFormat
	Samples []byte
}

// FromImage converts an image into a Raster of the requested format.
// Grayscale conversion uses the standard luminance weights.
func FromImage(img image.Image, format PixelFormat) *Raster {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if format == Gray8 {
		gray := image.NewGray(image.Rect(0, 0, w, h))
		xdraw.Draw(gray, gray.Bounds(), img, bounds.Min, xdraw.Src)
		return &Raster{Width: w, Height: h, Stride: gray.Stride, Format: Gray8, Samples: gray.Pix}
	}

	rgba, ok := img.(*image.RGBA)
	if !ok || bounds.Min != (image.Point{}) {
		converted := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(converted, converted.Bounds(), img, bounds.Min, xdraw.Src)
		rgba = converted
	}
	stride := w * 3
	samples := make([]byte, stride*h)
	for y := 0; y < h; y++ {
		src := rgba.Pix[y*rgba.Stride:]
		dst := samples[y*stride:]
		for x := 0; x < w; x++ {
			dst[x*3+0] = src[x*4+0]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return &Raster{Width: w, Height: h, Stride: stride, Format: RGB24, Samples: samples}
}

// ToImage converts the raster back into a drawable image.
func (r *Raster) ToImage() image.Image {
	if r.Format == Gray8 {
		return &image.Gray{Pix: r.Samples, Stride: r.Stride, Rect: image.Rect(0, 0, r.Width, r.Height)}
	}
	rgba := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		src := r.Samples[y*r.Stride:]
		dst := rgba.Pix[y*rgba.Stride:]
		for x := 0; x < r.Width; x++ {
			dst[x*4+0] = src[x*3+0]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 0xff
		}
	}
	return rgba
}

// Rotate90 returns the raster rotated a quarter turn clockwise. Landscape
// jobs rotate the source before fitting it to the output page.
func (r *Raster) Rotate90() *Raster {
	bpp := r.Format.BytesPerPixel()
	w, h := r.Height, r.Width // rotated dimensions
	stride := w * bpp
	samples := make([]byte, stride*h)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			src := r.Samples[y*r.Stride+x*bpp:]
			// (x, y) maps to (w-1-y, x) after a clockwise quarter turn.
			dst := samples[x*stride+(w-1-y)*bpp:]
			copy(dst[:bpp], src[:bpp])
		}
	}
	return &Raster{Width: w, Height: h, Stride: stride, Format: r.Format, Samples: samples}
}

// Crop returns the sub-raster covering the given pixel rectangle, clamped to
// the raster bounds. The samples are copied, not aliased.
func (r *Raster) Crop(x, y, w, h int) (*Raster, error) {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.Width {
		w = r.Width - x
	}
	if y+h > r.Height {
		h = r.Height - y
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("crop region (%d,%d %dx%d) outside raster %dx%d", x, y, w, h, r.Width, r.Height)
	}
	bpp := r.Format.BytesPerPixel()
	stride := w * bpp
	samples := make([]byte, stride*h)
	for row := 0; row < h; row++ {
		src := r.Samples[(y+row)*r.Stride+x*bpp:]
		copy(samples[row*stride:(row+1)*stride], src[:stride])
	}
	return &Raster{Width: w, Height: h, Stride: stride, Format: r.Format, Samples: samples}, nil
}
