// Command printdialog opens the interactive terminal print dialog for a PDF.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wudi/printkit/dialog"
	"github.com/wudi/printkit/document"
	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/printer"
	"github.com/wudi/printkit/printjob"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "printdialog: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	noOrientation := flag.Bool("no-orientation", false, "Hide the orientation choice")
	crop := flag.Bool("crop", false, "Crop pages to their content bounding box")
	logPath := flag.String("log", "", "Append logs to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: printdialog [flags] <pdf>\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one PDF path")
	}

	var log observability.Logger = observability.NopLogger{}
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		log = observability.NewTextLogger(f)
	}

	doc, err := document.Open(flag.Arg(0))
	if err != nil {
		return err
	}

	caps := dialog.AllCapabilities()
	caps.Orientation = !*noOrientation
	caps.ContentCrop = *crop
	session := dialog.NewSession(doc, caps, log)
	defer session.Close()

	ctx := context.Background()
	cups := printer.NewCUPS(log)
	printers, err := cups.Printers(ctx)
	if err != nil {
		log.Warn("printer enumeration failed", observability.Error("err", err))
	}
	resolutions := printer.DefaultResolutions
	if len(printers) > 0 {
		session.SetPrinter(printers[0])
		resolutions = cups.Resolutions(ctx, printers[0])
	}
	session.SetDPI(printer.PreferredResolution(resolutions))

	model := dialog.NewModel(session, printers, resolutions, func(ctx context.Context, s *dialog.Session) (printjob.Result, error) {
		exec := &printjob.Executor{Doc: doc, Log: log, ContentCrop: caps.ContentCrop}
		result, _, err := printjob.SubmitSpooled(ctx, exec, cups, s.Selection(), s.Snapshot())
		return result, err
	})

	_, err = tea.NewProgram(model).Run()
	return err
}
