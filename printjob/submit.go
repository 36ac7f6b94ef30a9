package printjob

import (
	"context"
	"fmt"
	"os"

	"github.com/wudi/printkit/observability"
	"github.com/wudi/printkit/printer"
)

// Submitter hands finished spool files to a print queue.
type Submitter interface {
	Submit(ctx context.Context, settings printer.Settings, files []string) (string, error)
}

// SubmitSpooled runs the job into a temporary spool directory and submits
// the resulting page files. The spool directory is removed afterwards; CUPS
// keeps its own copy of submitted files. The returned string is the queue's
// job identifier.
func SubmitSpooled(ctx context.Context, exec *Executor, queue Submitter, pages []int, settings printer.Settings) (Result, string, error) {
	log := exec.Log
	if log == nil {
		log = observability.NopLogger{}
	}
	dir, err := os.MkdirTemp("", "printkit-spool-")
	if err != nil {
		return Result{}, "", &printer.SurfaceOpenError{Printer: settings.Printer, Err: err}
	}
	defer os.RemoveAll(dir)

	var spool *printer.SpoolSurface
	result, err := exec.Run(ctx, pages, settings, func() (printer.Surface, error) {
		s, oerr := printer.OpenSpool(dir, settings, printer.SpoolPNG, log)
		if oerr != nil {
			return nil, oerr
		}
		spool = s
		return s, nil
	})
	if err != nil {
		return result, "", err
	}
	files := spool.Files()
	if len(files) == 0 {
		return result, "", fmt.Errorf("every selected page was skipped")
	}
	id, err := queue.Submit(ctx, settings, files)
	if err != nil {
		return result, "", err
	}
	return result, id, nil
}
