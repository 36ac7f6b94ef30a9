// Package pagerange turns user-entered page range text into ordered
// zero-based page indices.
package pagerange

import (
	"strconv"
	"strings"
)

// Spec describes which pages of a document an operation applies to. The zero
// value selects every page.
type Spec struct {
	text     string
	explicit bool
}

// All selects every page of the document.
func All() Spec { return Spec{} }

// Explicit selects pages from user-entered text of the form "n" or "n-m"
// (1-based, inclusive). Empty text behaves like All.
func Explicit(text string) Spec { return Spec{text: text, explicit: true} }

// IsAll reports whether the spec selects every page, either because it was
// built with All or because its text is empty.
func (s Spec) IsAll() bool { return !s.explicit || strings.TrimSpace(s.text) == "" }

// Text returns the raw range text for an explicit spec.
func (s Spec) Text() string { return s.text }

// Resolve expands a spec against a page count into the ordered list of
// zero-based page indices it denotes.
//
// Malformed text resolves to an empty selection rather than an error; the
// caller treats "nothing selected" and "unparseable" identically. Endpoints
// outside [1, pageCount] are dropped silently, and an inverted range ("7-3")
// is simply empty. Resolve is a pure function of its two arguments.
func Resolve(spec Spec, pageCount int) []int {
	pages := []int{}
	if spec.IsAll() {
		for i := 0; i < pageCount; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	text := strings.TrimSpace(spec.text)
	if start, end, ok := strings.Cut(text, "-"); ok {
		lo, err1 := strconv.Atoi(strings.TrimSpace(start))
		hi, err2 := strconv.Atoi(strings.TrimSpace(end))
		if err1 != nil || err2 != nil {
			return pages
		}
		for i := lo - 1; i < hi; i++ {
			if i >= 0 && i < pageCount {
				pages = append(pages, i)
			}
		}
		return pages
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return pages
	}
	if i := n - 1; i >= 0 && i < pageCount {
		pages = append(pages, i)
	}
	return pages
}
