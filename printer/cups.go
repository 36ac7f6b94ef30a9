package printer

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/wudi/printkit/document"
	"github.com/wudi/printkit/layout"
	"github.com/wudi/printkit/observability"
)

// DefaultResolutions is the DPI list offered when the printer does not
// report its supported resolutions.
var DefaultResolutions = []int{75, 96, 150, 300, 600}

// CUPS talks to the local print system through the lpstat/lpoptions/lp
// command-line tools.
type CUPS struct {
	log observability.Logger
	run func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewCUPS returns a client using the system commands.
func NewCUPS(log observability.Logger) *CUPS {
	if log == nil {
		log = observability.NopLogger{}
	}
	return &CUPS{
		log: log,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// Printers lists the names of available print queues.
func (c *CUPS) Printers(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "lpstat", "-e")
	if err != nil {
		return nil, fmt.Errorf("list printers: %w", err)
	}
	return parsePrinterList(string(out)), nil
}

func parsePrinterList(out string) []string {
	var names []string
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Resolutions reports the DPI values the printer supports, probed via
// lpoptions. When the probe fails or the driver reports nothing, the
// standard fallback list is returned.
func (c *CUPS) Resolutions(ctx context.Context, printerName string) []int {
	if printerName == "" {
		return append([]int(nil), DefaultResolutions...)
	}
	out, err := c.run(ctx, "lpoptions", "-p", printerName, "-l")
	if err != nil {
		c.log.Debug("lpoptions probe failed, using default resolutions",
			observability.String("printer", printerName),
			observability.Error("err", err))
		return append([]int(nil), DefaultResolutions...)
	}
	if res := parseResolutions(string(out)); len(res) > 0 {
		return res
	}
	return append([]int(nil), DefaultResolutions...)
}

// parseResolutions extracts DPI values from an lpoptions -l listing, e.g.
//
//	Resolution/Output Resolution: 150dpi *300dpi 600dpi 1200dpi
func parseResolutions(out string) []int {
	for _, line := range strings.Split(out, "\n") {
		key, values, ok := strings.Cut(line, ":")
		if !ok || !strings.HasPrefix(strings.TrimSpace(key), "Resolution") {
			continue
		}
		var dpis []int
		for _, tok := range strings.Fields(values) {
			tok = strings.TrimPrefix(tok, "*")
			tok = strings.TrimSuffix(tok, "dpi")
			// Square forms like 600x600dpi collapse to one axis.
			if x, _, ok := strings.Cut(tok, "x"); ok {
				tok = x
			}
			if n, err := strconv.Atoi(tok); err == nil && n > 0 {
				dpis = append(dpis, n)
			}
		}
		sort.Ints(dpis)
		return dpis
	}
	return nil
}

// PreferredResolution picks the default DPI from a supported list: 300 when
// available, then 600, then the first entry.
func PreferredResolution(supported []int) int {
	for _, want := range []int{300, 600} {
		for _, dpi := range supported {
			if dpi == want {
				return dpi
			}
		}
	}
	if len(supported) > 0 {
		return supported[0]
	}
	return 300
}

// Submit hands spooled page files to the print queue. It returns the CUPS
// job identifier.
func (c *CUPS) Submit(ctx context.Context, settings Settings, files []string) (string, error) {
	if err := settings.Validate(); err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no spooled pages to submit")
	}
	args := []string{
		"-n", strconv.Itoa(settings.Copies),
		"-o", "media=" + settings.Paper.Media(),
		"-o", fmt.Sprintf("Resolution=%ddpi", settings.DPI),
	}
	if settings.Printer != "" {
		args = append([]string{"-d", settings.Printer}, args...)
	}
	if settings.ColorMode == document.Grayscale {
		args = append(args, "-o", "print-color-mode=monochrome")
	} else {
		args = append(args, "-o", "print-color-mode=color")
	}
	if settings.Orientation == layout.Landscape {
		args = append(args, "-o", "orientation-requested=4")
	}
	args = append(args, files...)

	out, err := c.run(ctx, "lp", args...)
	if err != nil {
		return "", fmt.Errorf("submit job to %q: %w", settings.Printer, err)
	}
	id := parseJobID(string(out))
	c.log.Info("job submitted",
		observability.String("printer", settings.Printer),
		observability.String("job", id),
		observability.Int("files", len(files)))
	return id, nil
}

// parseJobID extracts the job id from lp output of the form
//
//	request id is office-42 (3 file(s))
func parseJobID(out string) string {
	fields := strings.Fields(out)
	for i, f := range fields {
		if f == "is" && i+1 < len(fields) {
			return fields[i+1]
		}
	}
	return strings.TrimSpace(out)
}
