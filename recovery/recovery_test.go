package recovery

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestStrictStrategyFails(t *testing.T) {
	s := NewStrictStrategy()
	got := s.OnError(context.Background(), errors.New("render failed"), Location{Page: 0, Component: "render"})
	if got != ActionFail {
		t.Fatalf("strict strategy returned %v, want ActionFail", got)
	}
}

func TestLenientStrategySkipsAndCollects(t *testing.T) {
	s := NewLenientStrategy()
	err1 := errors.New("null raster")
	if got := s.OnError(context.Background(), err1, Location{Page: 2, Component: "render"}); got != ActionSkip {
		t.Fatalf("lenient strategy returned %v, want ActionSkip", got)
	}
	if got := s.OnError(context.Background(), errors.New("draw failed"), Location{Page: 5, Component: "draw"}); got != ActionSkip {
		t.Fatalf("lenient strategy returned %v, want ActionSkip", got)
	}
	if len(s.Errors) != 2 {
		t.Fatalf("expected 2 collected errors, got %d", len(s.Errors))
	}
	if !errors.Is(s.Errors[0], err1) {
		t.Fatalf("collected error does not wrap the original: %v", s.Errors[0])
	}
	// Messages report 1-based page numbers, matching what the user sees.
	if !strings.Contains(s.Errors[0].Error(), "page 3") {
		t.Fatalf("collected error missing page number: %v", s.Errors[0])
	}
}
