// Package layout computes fit-to-page placement: the centered,
// aspect-preserving rectangle a source raster occupies inside a target area.
// The same computation serves the on-screen preview (target = viewport) and
// the print path (target = printable page area in device pixels).
package layout

// Orientation selects the output page orientation.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

func (o Orientation) String() string {
	if o == Landscape {
		return "landscape"
	}
	return "portrait"
}

// ParseOrientation maps a user-facing orientation label to its value.
// Unrecognized text falls back to Portrait.
func ParseOrientation(s string) Orientation {
	if s == "landscape" || s == "Landscape" {
		return Landscape
	}
	return Portrait
}

// Rect is an integer placement rectangle in the target's pixel space.
type Rect struct {
	X, Y, W, H int
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool { return r.W <= 0 || r.H <= 0 }

// FitToPage scales (srcW, srcH) uniformly so it fits inside (tgtW, tgtH) and
// centers the result. The scale is min(tgtW/srcW, tgtH/srcH) with no cap at
// 1.0: a source smaller than the target is scaled up to fill it. Offsets are
// truncated toward zero to whole pixels.
func FitToPage(srcW, srcH, tgtW, tgtH int) Rect {
	if srcW <= 0 || srcH <= 0 || tgtW <= 0 || tgtH <= 0 {
		return Rect{}
	}
	scale := float64(tgtW) / float64(srcW)
	if s := float64(tgtH) / float64(srcH); s < scale {
		scale = s
	}
	w := int(float64(srcW) * scale)
	h := int(float64(srcH) * scale)
	return Rect{
		X: (tgtW - w) / 2,
		Y: (tgtH - h) / 2,
		W: w,
		H: h,
	}
}

// FitToPageOriented applies the orientation before fitting: a Landscape job
// conceptually rotates the source 90° first, which swaps its axes.
func FitToPageOriented(srcW, srcH, tgtW, tgtH int, o Orientation) Rect {
	if o == Landscape {
		srcW, srcH = srcH, srcW
	}
	return FitToPage(srcW, srcH, tgtW, tgtH)
}
