package dialog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/wudi/printkit/document"
	"github.com/wudi/printkit/layout"
	"github.com/wudi/printkit/paper"
	"github.com/wudi/printkit/printer"
	"github.com/wudi/printkit/printjob"
)

type fakeDoc struct {
	pages int
}

func (d *fakeDoc) PageCount() int { return d.pages }

func (d *fakeDoc) RenderPage(ctx context.Context, index, dpi int, mode document.ColorMode, clip *document.Box) (*document.Raster, error) {
	return &document.Raster{Width: 10, Height: 10, Stride: 30, Format: document.RGB24, Samples: make([]byte, 300)}, nil
}

func (d *fakeDoc) ContentBox(index int) (document.Box, error) {
	return document.Box{X1: 10, Y1: 10}, nil
}

func (d *fakeDoc) Close() error { return nil }

type countingSurface struct {
	draws    int
	advances int
	closed   bool
}

func (s *countingSurface) PrintableArea() (int, int) { return 100, 100 }
func (s *countingSurface) DrawImage(layout.Rect, *document.Raster) error {
	s.draws++
	return nil
}
func (s *countingSurface) AdvancePage() error { s.advances++; return nil }
func (s *countingSurface) Close() error       { s.closed = true; return nil }

func TestSessionDefaults(t *testing.T) {
	s := NewSession(&fakeDoc{pages: 5}, AllCapabilities(), nil)
	if s.DPI() != 300 || s.Copies() != 1 {
		t.Fatalf("defaults: dpi=%d copies=%d", s.DPI(), s.Copies())
	}
	if s.Paper() != paper.Letter {
		t.Fatalf("default paper %+v", s.Paper())
	}
	if got := s.Selection(); !reflect.DeepEqual(got, []int{0, 1, 2, 3, 4}) {
		t.Fatalf("default selection %v", got)
	}
}

func TestSelectionRecomputedOnEveryChange(t *testing.T) {
	s := NewSession(&fakeDoc{pages: 10}, AllCapabilities(), nil)
	s.SetRangeText("3-5")
	if got := s.Selection(); !reflect.DeepEqual(got, []int{2, 3, 4}) {
		t.Fatalf("selection after 3-5: %v", got)
	}
	s.SetRangeText("garbage")
	if got := s.Selection(); len(got) != 0 {
		t.Fatalf("selection after garbage: %v", got)
	}
	s.SelectAllPages()
	if got := s.Selection(); len(got) != 10 {
		t.Fatalf("selection after all: %v", got)
	}
	// Preview tracks the same spec.
	if !reflect.DeepEqual(s.Preview.Pages(), s.Selection()) {
		t.Fatal("preview selection out of sync")
	}
}

func TestCapabilityGating(t *testing.T) {
	s := NewSession(&fakeDoc{pages: 3}, Capabilities{}, nil)
	s.SetOrientation(layout.Landscape)
	if s.Orientation() != layout.Portrait {
		t.Fatal("orientation changed without capability")
	}
	s.SetCustomPaper(5, 7, paper.Inch)
	if s.Paper() != paper.Letter {
		t.Fatal("custom paper applied without capability")
	}

	full := NewSession(&fakeDoc{pages: 3}, AllCapabilities(), nil)
	full.SetOrientation(layout.Landscape)
	if full.Orientation() != layout.Landscape {
		t.Fatal("orientation ignored despite capability")
	}
	full.SetCustomPaper(5, 7, paper.Inch)
	if full.Paper().Name != "Custom" {
		t.Fatalf("custom paper ignored: %+v", full.Paper())
	}
}

func TestSnapshotIsImmutable(t *testing.T) {
	s := NewSession(&fakeDoc{pages: 3}, AllCapabilities(), nil)
	s.SetPrinter("office")
	s.SetDPI(600)
	s.SetCopies(2)
	s.SetColorMode(document.Grayscale)
	snap := s.Snapshot()

	s.SetDPI(150)
	s.SetPrinter("other")
	if snap.DPI != 600 || snap.Printer != "office" || snap.Copies != 2 {
		t.Fatalf("snapshot mutated: %+v", snap)
	}
	if snap.ColorMode != document.Grayscale {
		t.Fatalf("snapshot color mode: %v", snap.ColorMode)
	}
}

func TestInvalidInputsIgnored(t *testing.T) {
	s := NewSession(&fakeDoc{pages: 3}, AllCapabilities(), nil)
	s.SetDPI(0)
	s.SetCopies(0)
	s.SetPaper(paper.Size{})
	if s.DPI() != 300 || s.Copies() != 1 || s.Paper() != paper.Letter {
		t.Fatalf("invalid inputs applied: dpi=%d copies=%d paper=%+v", s.DPI(), s.Copies(), s.Paper())
	}
}

func TestPrintRunsSelection(t *testing.T) {
	s := NewSession(&fakeDoc{pages: 10}, AllCapabilities(), nil)
	s.SetRangeText("3-5")
	surface := &countingSurface{}
	result, err := s.Print(context.Background(), func() (printer.Surface, error) {
		return surface, nil
	})
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	if len(result.Printed) != 3 || surface.draws != 3 || surface.advances != 2 {
		t.Fatalf("draws=%d advances=%d printed=%v", surface.draws, surface.advances, result.Printed)
	}
	if !surface.closed {
		t.Fatal("surface left open")
	}
}

func TestPrintRefusesEmptySelection(t *testing.T) {
	s := NewSession(&fakeDoc{pages: 10}, AllCapabilities(), nil)
	s.SetRangeText("nope")
	opened := false
	_, err := s.Print(context.Background(), func() (printer.Surface, error) {
		opened = true
		return &countingSurface{}, nil
	})
	if !errors.Is(err, printjob.ErrNoPagesSelected) {
		t.Fatalf("error = %v, want ErrNoPagesSelected", err)
	}
	if opened {
		t.Fatal("surface opened for empty selection")
	}
}
