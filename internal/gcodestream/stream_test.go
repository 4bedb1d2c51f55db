package gcodestream

import (
	"bytes"
	"strings"
	"testing"
)

func TestStreamerYieldsLinesInOrder(t *testing.T) {
	s := New(strings.NewReader("G0 X0\nG1 X10 F100\n; comment\n"))

	var got []Line
	for {
		line, ok := s.Next()
		if !ok {
			break
		}
		got = append(got, line)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(got))
	}
	if got[0].Number != 1 || got[0].Text != "G0 X0" {
		t.Errorf("unexpected first line: %+v", got[0])
	}
	if got[2].Number != 3 || got[2].Text != "; comment" {
		t.Errorf("unexpected third line: %+v", got[2])
	}
}

func TestStreamerEOFIsIdempotent(t *testing.T) {
	s := New(strings.NewReader("G0 X0\n"))
	if _, ok := s.Next(); !ok {
		t.Fatal("expected one line")
	}
	if _, ok := s.Next(); ok {
		t.Fatal("expected EOF on second call")
	}
	if _, ok := s.Next(); ok {
		t.Fatal("expected EOF to remain sticky on further calls")
	}
	if !s.EOF() {
		t.Error("expected EOF() true")
	}
	if s.Err() != nil {
		t.Errorf("expected no error, got %v", s.Err())
	}
}

func TestStreamerEmptyInput(t *testing.T) {
	s := New(strings.NewReader(""))
	if _, ok := s.Next(); ok {
		t.Fatal("expected immediate EOF on empty input")
	}
}

func TestBufferedWriterFlushesPeriodically(t *testing.T) {
	var buf bytes.Buffer
	w := NewBufferedWriter(&buf)
	for i := 0; i < 1000; i++ {
		if err := w.WriteLine("G0 X0"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// auto-flush should have happened at the 1000th line
	if buf.Len() == 0 {
		t.Fatal("expected auto-flush to have written data by line 1000")
	}
	if w.LineCount() != 1000 {
		t.Errorf("expected LineCount 1000, got %d", w.LineCount())
	}
}

func TestBufferedWriterFlush(t *testing.T) {
	var buf bytes.Buffer
	w := NewBufferedWriter(&buf)
	if err := w.WriteLine("G0 X0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "G0 X0") {
		t.Errorf("expected flushed content to contain line, got %q", buf.String())
	}
}
