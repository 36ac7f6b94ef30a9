// Package paper models physical paper sizes for print jobs.
package paper

import (
	"fmt"

	"github.com/wudi/printkit/layout"
)

// Unit is the measurement unit of a user-entered custom size.
type Unit int

const (
	Inch Unit = iota
	Millimeter
)

func (u Unit) String() string {
	if u == Millimeter {
		return "mm"
	}
	return "in"
}

// Size is a paper size in IPP units (1/100 mm).
type Size struct {
	Name          string
	Width, Height int
}

// Standard sizes offered by the print dialog, in 1/100 mm.
//
//	Letter   8.5 x 11 in    215.9 x 279.4 mm
//	Legal    8.5 x 14 in    215.9 x 355.6 mm
//	Tabloid  11 x 17 in     279.4 x 431.8 mm
var (
	Letter  = Size{"Letter", 21590, 27940}
	Legal   = Size{"Legal", 21590, 35560}
	Tabloid = Size{"Tabloid", 27940, 43180}
	A3      = Size{"A3", 29700, 42000}
	A4      = Size{"A4", 21000, 29700}
	A5      = Size{"A5", 14800, 21000}
)

// Presets lists the named sizes in the order the dialog offers them.
var Presets = []Size{Letter, A4, Legal, A3, A5, Tabloid}

// Preset looks up a named size. The second return is false for unknown names.
func Preset(name string) (Size, bool) {
	for _, s := range Presets {
		if s.Name == name {
			return s, true
		}
	}
	return Size{}, false
}

// FromInches builds a custom size from inch dimensions.
func FromInches(width, height float64) Size {
	return Size{
		Name:   "Custom",
		Width:  int(width * 2540),
		Height: int(height * 2540),
	}
}

// FromMillimeters builds a custom size from millimeter dimensions.
func FromMillimeters(width, height float64) Size {
	return Size{
		Name:   "Custom",
		Width:  int(width * 100),
		Height: int(height * 100),
	}
}

// Custom builds a size from user-entered dimensions in the given unit.
func Custom(width, height float64, unit Unit) Size {
	if unit == Millimeter {
		return FromMillimeters(width, height)
	}
	return FromInches(width, height)
}

// IsZero reports whether the size has no dimensions.
func (s Size) IsZero() bool { return s.Width <= 0 || s.Height <= 0 }

// Oriented returns the size with its axes arranged for the given orientation.
// Named sizes are portrait by definition, so Landscape swaps the axes.
func (s Size) Oriented(o layout.Orientation) Size {
	if o == layout.Landscape && s.Height > s.Width || o == layout.Portrait && s.Width > s.Height {
		return Size{Name: s.Name, Width: s.Height, Height: s.Width}
	}
	return s
}

// PixelsAt converts the size to device pixels at the given resolution.
func (s Size) PixelsAt(dpi int) (w, h int) {
	return s.Width * dpi / 2540, s.Height * dpi / 2540
}

// Media returns the CUPS media option value for the size. Named presets map
// to standard media keywords; custom sizes use the Custom.WIDTHxHEIGHTmm form.
func (s Size) Media() string {
	switch s.Name {
	case "Letter":
		return "letter"
	case "Legal":
		return "legal"
	case "Tabloid":
		return "tabloid"
	case "A3":
		return "a3"
	case "A4":
		return "a4"
	case "A5":
		return "a5"
	}
	return fmt.Sprintf("Custom.%dx%dmm", s.Width/100, s.Height/100)
}

// Less reports that s fits strictly inside s2: at least one axis is smaller
// and neither is larger.
func (s Size) Less(s2 Size) bool {
	return (s.Width < s2.Width && s.Height <= s2.Height) ||
		(s.Height < s2.Height && s.Width <= s2.Width)
}

// Classify buckets the size into Bonjour printing size classes.
func (s Size) Classify() string {
	isoC := Size{Width: 43180, Height: 55880}
	a2 := Size{Width: 42000, Height: 59400}
	switch {
	case isoC.Less(s) || a2.Less(s):
		return ">isoC-A2"
	case !s.Less(isoC) || !s.Less(a2):
		return "isoC-A2"
	case !s.Less(Tabloid) || !s.Less(A3):
		return "tabloid-A3"
	case !s.Less(Legal) || !s.Less(A4):
		return "legal-A4"
	default:
		return "<legal-A4"
	}
}
