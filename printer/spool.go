package printer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/wudi/printkit/document"
	"github.com/wudi/printkit/layout"
	"github.com/wudi/printkit/observability"
)

// SpoolFormat selects the on-disk encoding of spooled pages.
type SpoolFormat int

const (
	SpoolPNG SpoolFormat = iota
	SpoolTIFF
)

func (f SpoolFormat) ext() string {
	if f == SpoolTIFF {
		return "tiff"
	}
	return "png"
}

// SpoolSurface renders output pages into image files under a directory.
// It backs both the CUPS submission path (spool, then hand the files to lp)
// and offline "print to files" use.
type SpoolSurface struct {
	dir     string
	format  SpoolFormat
	width   int
	height  int
	canvas  *image.RGBA
	files   []string
	touched bool
	closed  bool
	bytes   int64
	log     observability.Logger
}

// OpenSpool opens a spool surface sized to the settings' printable area.
// Failure to prepare the directory is a *SurfaceOpenError.
func OpenSpool(dir string, settings Settings, format SpoolFormat, log observability.Logger) (*SpoolSurface, error) {
	if log == nil {
		log = observability.NopLogger{}
	}
	if err := settings.Validate(); err != nil {
		return nil, &SurfaceOpenError{Printer: settings.Printer, Err: err}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &SurfaceOpenError{Printer: settings.Printer, Err: err}
	}
	w, h := settings.PrintablePixels()
	if w <= 0 || h <= 0 {
		return nil, &SurfaceOpenError{Printer: settings.Printer, Err: fmt.Errorf("degenerate page area %dx%d", w, h)}
	}
	s := &SpoolSurface{dir: dir, format: format, width: w, height: h, log: log}
	s.canvas = s.blankPage()
	return s, nil
}

func (s *SpoolSurface) blankPage() *image.RGBA {
	page := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	xdraw.Draw(page, page.Bounds(), &image.Uniform{C: color.White}, image.Point{}, xdraw.Src)
	return page
}

func (s *SpoolSurface) PrintableArea() (int, int) { return s.width, s.height }

func (s *SpoolSurface) DrawImage(r layout.Rect, raster *document.Raster) error {
	if s.closed {
		return fmt.Errorf("draw on closed spool surface")
	}
	if raster == nil || len(raster.Samples) == 0 {
		return fmt.Errorf("nil or empty raster")
	}
	if r.IsEmpty() {
		return fmt.Errorf("empty placement rect")
	}
	dst := image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
	src := raster.ToImage()
	xdraw.CatmullRom.Scale(s.canvas, dst, src, src.Bounds(), xdraw.Over, nil)
	s.touched = true
	return nil
}

func (s *SpoolSurface) AdvancePage() error {
	if s.closed {
		return fmt.Errorf("advance on closed spool surface")
	}
	if err := s.flush(); err != nil {
		return err
	}
	s.canvas = s.blankPage()
	s.touched = false
	return nil
}

func (s *SpoolSurface) flush() error {
	name := filepath.Join(s.dir, fmt.Sprintf("page-%03d.%s", len(s.files)+1, s.format.ext()))
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("spool page %d: %w", len(s.files)+1, err)
	}
	defer f.Close()
	switch s.format {
	case SpoolTIFF:
		err = tiff.Encode(f, s.canvas, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(f, s.canvas)
	}
	if err != nil {
		return fmt.Errorf("encode spool page %d: %w", len(s.files)+1, err)
	}
	info, err := f.Stat()
	if err == nil {
		s.bytes += info.Size()
	}
	s.files = append(s.files, name)
	s.log.Debug("spooled page",
		observability.String("file", name),
		observability.Int("width", s.width),
		observability.Int("height", s.height))
	return nil
}

// Close flushes the in-progress page, if anything was drawn on it, and seals
// the surface.
func (s *SpoolSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.touched {
		if err := s.flush(); err != nil {
			return err
		}
	}
	s.log.Info("spool closed",
		observability.Int("pages", len(s.files)),
		observability.Int64(observability.MetricSpooledBytes, s.bytes))
	return nil
}

// Files lists the spooled page files in output order.
func (s *SpoolSurface) Files() []string { return append([]string(nil), s.files...) }
