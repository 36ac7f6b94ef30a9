// Package recovery decides how a print job reacts to per-page failures.
package recovery

type Strategy interface {
	OnError(ctx Context, err error, location Location) Action
}

// Location pins an error to the page and pipeline stage that produced it.
type Location struct {
	Page      int // zero-based page index within the document
	Component string
}

type Action int

const (
	ActionFail Action = iota
	ActionSkip
)

type Context interface{ Done() <-chan struct{} }
