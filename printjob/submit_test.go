package printjob

import (
	"context"
	"errors"
	"testing"

	"github.com/wudi/printkit/paper"
	"github.com/wudi/printkit/printer"
)

type fakeQueue struct {
	files []string
	err   error
}

func (q *fakeQueue) Submit(ctx context.Context, settings printer.Settings, files []string) (string, error) {
	if q.err != nil {
		return "", q.err
	}
	q.files = files
	return "fake-1", nil
}

func submitSettings() printer.Settings {
	return printer.Settings{Printer: "fake", DPI: 72, Paper: paper.A5, Copies: 1}
}

func TestSubmitSpooledSendsAllPages(t *testing.T) {
	doc := newFakeDoc(5)
	queue := &fakeQueue{}
	exec := &Executor{Doc: doc}
	result, id, err := SubmitSpooled(context.Background(), exec, queue, []int{1, 2, 3}, submitSettings())
	if err != nil {
		t.Fatalf("SubmitSpooled: %v", err)
	}
	if id != "fake-1" {
		t.Fatalf("job id = %q", id)
	}
	if len(result.Printed) != 3 || len(queue.files) != 3 {
		t.Fatalf("printed %v, submitted %d files", result.Printed, len(queue.files))
	}
}

func TestSubmitSpooledRefusesEmptySelection(t *testing.T) {
	queue := &fakeQueue{}
	exec := &Executor{Doc: newFakeDoc(5)}
	_, _, err := SubmitSpooled(context.Background(), exec, queue, nil, submitSettings())
	if !errors.Is(err, ErrNoPagesSelected) {
		t.Fatalf("error = %v, want ErrNoPagesSelected", err)
	}
	if queue.files != nil {
		t.Fatal("nothing should have been submitted")
	}
}

func TestSubmitSpooledAllPagesSkipped(t *testing.T) {
	doc := newFakeDoc(5)
	doc.failPage = 2
	queue := &fakeQueue{}
	exec := &Executor{Doc: doc}
	_, _, err := SubmitSpooled(context.Background(), exec, queue, []int{2}, submitSettings())
	if err == nil {
		t.Fatal("expected error when every page is skipped")
	}
	if queue.files != nil {
		t.Fatal("nothing should have been submitted")
	}
}

func TestSubmitSpooledQueueFailure(t *testing.T) {
	queue := &fakeQueue{err: errors.New("queue rejected job")}
	exec := &Executor{Doc: newFakeDoc(5)}
	_, _, err := SubmitSpooled(context.Background(), exec, queue, []int{0}, submitSettings())
	if err == nil || !errors.Is(err, queue.err) {
		t.Fatalf("error = %v, want queue error", err)
	}
}
