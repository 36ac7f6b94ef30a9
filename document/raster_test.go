package document

import (
	"image"
	"image/color"
	"testing"
)

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 0x80, A: 0xff})
		}
	}
	return img
}

func TestFromImageRGB24(t *testing.T) {
	r := FromImage(testImage(4, 3), RGB24)
	if r.Width != 4 || r.Height != 3 || r.Stride != 12 {
		t.Fatalf("unexpected geometry: %dx%d stride %d", r.Width, r.Height, r.Stride)
	}
	if len(r.Samples) != 36 {
		t.Fatalf("unexpected sample count %d", len(r.Samples))
	}
	// Pixel (2,1): R=2, G=1, B=0x80, alpha dropped.
	off := 1*r.Stride + 2*3
	if r.Samples[off] != 2 || r.Samples[off+1] != 1 || r.Samples[off+2] != 0x80 {
		t.Fatalf("pixel (2,1) = %v", r.Samples[off:off+3])
	}
}

func TestFromImageGray8(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{0, 0, 0, 0xff})
	img.SetRGBA(1, 0, color.RGBA{0xff, 0xff, 0xff, 0xff})
	r := FromImage(img, Gray8)
	if r.Format != Gray8 || r.Width != 2 || r.Height != 1 {
		t.Fatalf("unexpected raster: %+v", r)
	}
	if r.Samples[0] != 0 || r.Samples[1] != 0xff {
		t.Fatalf("gray conversion wrong: %v", r.Samples[:2])
	}
}

func TestRasterRoundTrip(t *testing.T) {
	r := FromImage(testImage(3, 2), RGB24)
	img := r.ToImage()
	rgba, ok := img.(*image.RGBA)
	if !ok {
		t.Fatalf("ToImage returned %T", img)
	}
	c := rgba.RGBAAt(1, 1)
	if c.R != 1 || c.G != 1 || c.B != 0x80 || c.A != 0xff {
		t.Fatalf("pixel (1,1) = %+v", c)
	}
}

func TestCrop(t *testing.T) {
	r := FromImage(testImage(8, 8), RGB24)
	c, err := r.Crop(2, 3, 4, 2)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if c.Width != 4 || c.Height != 2 {
		t.Fatalf("crop geometry %dx%d", c.Width, c.Height)
	}
	// Top-left of the crop is source pixel (2,3).
	if c.Samples[0] != 2 || c.Samples[1] != 3 {
		t.Fatalf("crop origin pixel = %v", c.Samples[:3])
	}
}

func TestCropClampsToBounds(t *testing.T) {
	r := FromImage(testImage(4, 4), Gray8)
	c, err := r.Crop(-2, -2, 10, 10)
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	if c.Width != 4 || c.Height != 4 {
		t.Fatalf("clamped crop = %dx%d, want full 4x4", c.Width, c.Height)
	}
	if _, err := r.Crop(10, 10, 2, 2); err == nil {
		t.Fatal("crop fully outside bounds should fail")
	}
}

func TestRotate90(t *testing.T) {
	// 2x1 gray raster [a b] becomes 1x2 [a / b] read top to bottom after a
	// clockwise turn puts the left edge on top.
	r := &Raster{Width: 2, Height: 1, Stride: 2, Format: Gray8, Samples: []byte{10, 20}}
	got := r.Rotate90()
	if got.Width != 1 || got.Height != 2 {
		t.Fatalf("rotated geometry %dx%d", got.Width, got.Height)
	}
	if got.Samples[0] != 10 || got.Samples[got.Stride] != 20 {
		t.Fatalf("rotated samples %v", got.Samples)
	}

	rgb := FromImage(testImage(3, 2), RGB24)
	rot := rgb.Rotate90()
	if rot.Width != 2 || rot.Height != 3 {
		t.Fatalf("rotated rgb geometry %dx%d", rot.Width, rot.Height)
	}
	// Source (0,0) lands at (1,0) in the rotated raster.
	off := 0*rot.Stride + 1*3
	if rot.Samples[off] != 0 || rot.Samples[off+1] != 0 {
		t.Fatalf("rotated corner pixel %v", rot.Samples[off:off+3])
	}
	// Source (2,1) lands at (0,2).
	off = 2 * rot.Stride
	if rot.Samples[off] != 2 || rot.Samples[off+1] != 1 {
		t.Fatalf("rotated far pixel %v", rot.Samples[off:off+3])
	}
}

func TestBox(t *testing.T) {
	b := Box{X0: 10, Y0: 20, X1: 110, Y1: 220}
	if b.Width() != 100 || b.Height() != 200 {
		t.Fatalf("box dims %vx%v", b.Width(), b.Height())
	}
	if b.IsEmpty() {
		t.Fatal("non-degenerate box reported empty")
	}
	if !(Box{X0: 5, Y0: 5, X1: 5, Y1: 10}).IsEmpty() {
		t.Fatal("zero-width box should be empty")
	}
}

func TestParseColorMode(t *testing.T) {
	if ParseColorMode("Grayscale") != Grayscale {
		t.Fatal("Grayscale label not recognized")
	}
	if ParseColorMode("Color") != Color {
		t.Fatal("Color label not recognized")
	}
	if ParseColorMode("cmyk") != Color {
		t.Fatal("unknown label should fall back to color")
	}
}
