package document

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Info is a lightweight summary of a document obtained without rendering.
type Info struct {
	Path      string
	PageCount int
}

// Inspect reads structural information from a PDF through pdfcpu. It is used
// by the CLI info mode and as an open-time sanity check; rendering still goes
// through the MuPDF backend.
func Inspect(path string) (Info, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("inspect %s: %w", path, err)
	}
	return Info{Path: path, PageCount: count}, nil
}
