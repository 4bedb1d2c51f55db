package coreerr

import (
	"errors"
	"testing"
)

func TestAtCarriesLineNumber(t *testing.T) {
	var le *LineError
	if !errors.As(At(42), &le) {
		t.Fatal("expected errors.As to match *LineError")
	}
	if le.LineNumber != 42 {
		t.Errorf("expected LineNumber 42, got %d", le.LineNumber)
	}
}
