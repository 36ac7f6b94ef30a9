package recovery

import "fmt"

// StrictStrategy aborts the job on the first page failure.
type StrictStrategy struct{}

func NewStrictStrategy() *StrictStrategy {
	return &StrictStrategy{}
}

func (s *StrictStrategy) OnError(ctx Context, err error, location Location) Action {
	return ActionFail
}

// LenientStrategy skips failed pages and lets the job continue, accumulating
// the errors for later inspection. This is the default print-job policy: one
// bad page must not sink the rest of the document.
type LenientStrategy struct {
	Errors []error
}

func NewLenientStrategy() *LenientStrategy {
	return &LenientStrategy{}
}

func (s *LenientStrategy) OnError(ctx Context, err error, location Location) Action {
	s.Errors = append(s.Errors, fmt.Errorf("[%s] page %d: %w", location.Component, location.Page+1, err))
	return ActionSkip
}
