package interp

import (
	"errors"
	"testing"

	"github.com/chrisns/snapmaker-cnc-motion/internal/coreerr"
)

func TestModalErrorUnwrapsToLineNumber(t *testing.T) {
	ip := New(DefaultConfig())
	_, err := ip.Interpret(mustParse(t, "G90 G91", 9))
	if err == nil {
		t.Fatal("expected a ModalError")
	}
	var le *coreerr.LineError
	if !errors.As(err, &le) {
		t.Fatalf("expected errors.As to recover a coreerr.LineError, got %T", err)
	}
	if le.LineNumber != 9 {
		t.Errorf("expected LineNumber 9, got %d", le.LineNumber)
	}
}

func TestArcGeometryErrorUnwrapsToLineNumber(t *testing.T) {
	ip := New(DefaultConfig())
	if _, err := ip.Interpret(mustParse(t, "G1 X0 Y0 F600", 1)); err != nil {
		t.Fatalf("setup: unexpected error: %v", err)
	}
	_, err := ip.Interpret(mustParse(t, "G2 X10 Y10 R1", 5))
	if err == nil {
		t.Fatal("expected an ArcGeometryError")
	}
	var le *coreerr.LineError
	if !errors.As(err, &le) {
		t.Fatalf("expected errors.As to recover a coreerr.LineError, got %T", err)
	}
	if le.LineNumber != 5 {
		t.Errorf("expected LineNumber 5, got %d", le.LineNumber)
	}
}
