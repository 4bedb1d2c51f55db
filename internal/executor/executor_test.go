package executor

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/chrisns/snapmaker-cnc-motion/internal/gcodestream"
	"github.com/chrisns/snapmaker-cnc-motion/internal/modal"
	"github.com/chrisns/snapmaker-cnc-motion/internal/primitive"
)

func TestSimulatedRecordsExecutedPrimitives(t *testing.T) {
	s := NewSimulated()
	p := primitive.NewMove(primitive.Linear, modal.Position{}, modal.Position{X: 10}, 5)
	if err := s.Execute(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Executed(); len(got) != 1 || got[0].End.X != 10 {
		t.Fatalf("expected one recorded primitive ending at X=10, got %+v", got)
	}
	if s.QueuedTime() != 0 {
		t.Errorf("expected Simulated to never queue, got %v", s.QueuedTime())
	}
	if err := s.Flush(); err != nil {
		t.Errorf("expected Flush to be a no-op, got %v", err)
	}
}

func TestSimulatedCloseIsIdempotent(t *testing.T) {
	s := NewSimulated()
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("expected second Close to be a no-op, got %v", err)
	}
}

func TestEchoMirrorsPrimitiveThenDelegates(t *testing.T) {
	var buf bytes.Buffer
	inner := NewSimulated()
	e := NewEcho(inner, gcodestream.NewBufferedWriter(&buf))

	p := primitive.NewMove(primitive.Linear, modal.Position{}, modal.Position{X: 1, Y: 2, Z: 3}, 10)
	if err := e.Execute(p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(inner.Executed()) != 1 {
		t.Fatalf("expected the delegate to receive the primitive, got %d", len(inner.Executed()))
	}
	line := buf.String()
	if !strings.Contains(line, "G1") || !strings.Contains(line, "X1.0000") {
		t.Errorf("expected echoed G1 line mentioning X1.0000, got %q", line)
	}
}

func TestEchoMirrorsDwell(t *testing.T) {
	var buf bytes.Buffer
	inner := NewSimulated()
	e := NewEcho(inner, gcodestream.NewBufferedWriter(&buf))

	d := primitive.NewDwell(modal.Position{}, 1.5)
	if err := e.Execute(d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "G4 P1.5000") {
		t.Errorf("expected echoed dwell line, got %q", buf.String())
	}
}

func TestExecutorErrorUnwrapsToBackendError(t *testing.T) {
	backend := errors.New("backend exploded")
	err := &ExecutorError{LineNumber: 7, Op: "execute", Err: backend}
	if !errors.Is(err, backend) {
		t.Errorf("expected errors.Is to find the wrapped backend error")
	}
	if !strings.Contains(err.Error(), "line 7") {
		t.Errorf("expected error message to mention the line number, got %q", err.Error())
	}
}
