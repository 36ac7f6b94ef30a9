// Command printdoc prints a PDF from the command line: resolve the page
// range, rasterize each page, fit it to the paper, and hand the job to CUPS
// or a spool directory.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wudi/printkit/document"
	"github.com/wudi/printkit/layout"
	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/pagerange"
	"github.com/wudi/printkit/paper"
	"github.com/wudi/printkit/printer"
	"github.com/wudi/printkit/printjob"
	"github.com/wudi/printkit/recovery"
)

type options struct {
	pdfPath      string
	printerName  string
	dpi          int
	colorMode    string
	paperName    string
	customSize   string
	unit         string
	orientation  string
	copies       int
	rangeText    string
	spoolDir     string
	crop         bool
	strict       bool
	listPrinters bool
	info         bool
	verbose      bool
}

func main() {
	opts, err := parseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "printdoc: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "printdoc: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() (options, error) {
	var opts options
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: printdoc [flags] <pdf>\n")
		flag.PrintDefaults()
	}
	flag.StringVar(&opts.printerName, "printer", "", "Destination print queue (default: system default)")
	flag.IntVar(&opts.dpi, "dpi", 0, "Print resolution (0 probes the printer, preferring 300)")
	flag.StringVar(&opts.colorMode, "color", "color", "Color mode: color or grayscale")
	flag.StringVar(&opts.paperName, "paper", "Letter", "Paper size preset: Letter, A4, Legal, A3, A5, Tabloid")
	flag.StringVar(&opts.customSize, "paper-size", "", "Custom paper size WxH (overrides -paper)")
	flag.StringVar(&opts.unit, "unit", "in", "Unit for -paper-size: in or mm")
	flag.StringVar(&opts.orientation, "orientation", "portrait", "Page orientation: portrait or landscape")
	flag.IntVar(&opts.copies, "copies", 1, "Number of copies")
	flag.StringVar(&opts.rangeText, "range", "", "Page range, e.g. 3 or 3-5 (default: all pages)")
	flag.StringVar(&opts.spoolDir, "spool", "", "Write page images to this directory instead of printing")
	flag.BoolVar(&opts.crop, "crop", false, "Crop pages to their content bounding box")
	flag.BoolVar(&opts.strict, "strict", false, "Abort the job on the first failed page instead of skipping")
	flag.BoolVar(&opts.listPrinters, "list-printers", false, "List available print queues and exit")
	flag.BoolVar(&opts.info, "info", false, "Show document information and exit")
	flag.BoolVar(&opts.verbose, "v", false, "Verbose logging")
	flag.Parse()

	if opts.listPrinters {
		return opts, nil
	}
	if flag.NArg() != 1 {
		return opts, fmt.Errorf("expected exactly one PDF path")
	}
	opts.pdfPath = flag.Arg(0)
	return opts, nil
}

func run(opts options) error {
	ctx := context.Background()
	var log observability.Logger = observability.NewTextLogger(os.Stderr)
	if opts.verbose {
		log = observability.NewDebugLogger(os.Stderr)
	}
	cups := printer.NewCUPS(log)

	if opts.listPrinters {
		names, err := cups.Printers(ctx)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	}

	if opts.info {
		info, err := document.Inspect(opts.pdfPath)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d page(s)\n", info.Path, info.PageCount)
		return nil
	}

	size, err := paperSize(opts)
	if err != nil {
		return err
	}
	dpi := opts.dpi
	if dpi <= 0 {
		dpi = printer.PreferredResolution(cups.Resolutions(ctx, opts.printerName))
	}
	settings := printer.Settings{
		Printer:     opts.printerName,
		DPI:         dpi,
		ColorMode:   document.ParseColorMode(opts.colorMode),
		Orientation: layout.ParseOrientation(opts.orientation),
		Paper:       size,
		Copies:      opts.copies,
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	doc, err := document.Open(opts.pdfPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	pages := pagerange.Resolve(rangeSpec(opts.rangeText), doc.PageCount())
	exec := &printjob.Executor{Doc: doc, Log: log, ContentCrop: opts.crop}
	if opts.strict {
		exec.Recovery = recovery.NewStrictStrategy()
	}

	if opts.spoolDir != "" {
		result, err := exec.Run(ctx, pages, settings, func() (printer.Surface, error) {
			s, oerr := printer.OpenSpool(opts.spoolDir, settings, printer.SpoolPNG, log)
			if oerr != nil {
				return nil, oerr
			}
			return s, nil
		})
		if err != nil {
			return err
		}
		fmt.Printf("spooled %d page(s) to %s\n", len(result.Printed), opts.spoolDir)
		reportSkips(result)
		return nil
	}

	result, id, err := printjob.SubmitSpooled(ctx, exec, cups, pages, settings)
	if err != nil {
		return err
	}
	fmt.Printf("sent %d page(s) to printer (job %s)\n", len(result.Printed), id)
	reportSkips(result)
	return nil
}

func reportSkips(result printjob.Result) {
	for _, page := range result.Skipped {
		fmt.Fprintf(os.Stderr, "warning: page %d could not be rendered and was skipped\n", page+1)
	}
}

func rangeSpec(text string) pagerange.Spec {
	if strings.TrimSpace(text) == "" {
		return pagerange.All()
	}
	return pagerange.Explicit(text)
}

func paperSize(opts options) (paper.Size, error) {
	if opts.customSize != "" {
		var w, h float64
		if _, err := fmt.Sscanf(opts.customSize, "%fx%f", &w, &h); err != nil {
			return paper.Size{}, fmt.Errorf("bad -paper-size %q: want WxH", opts.customSize)
		}
		unit := paper.Inch
		if opts.unit == "mm" {
			unit = paper.Millimeter
		}
		size := paper.Custom(w, h, unit)
		if size.IsZero() {
			return paper.Size{}, fmt.Errorf("bad -paper-size %q: dimensions must be positive", opts.customSize)
		}
		return size, nil
	}
	size, ok := paper.Preset(opts.paperName)
	if !ok {
		return paper.Size{}, fmt.Errorf("unknown paper size %q", opts.paperName)
	}
	return size, nil
}
