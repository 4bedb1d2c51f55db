package limits

import (
	"testing"

	"github.com/chrisns/snapmaker-cnc-motion/internal/modal"
	"github.com/chrisns/snapmaker-cnc-motion/internal/primitive"
)

func TestCheckWithinBoundsPasses(t *testing.T) {
	cfg := DefaultConfig()
	p := primitive.NewMove(primitive.Linear, modal.Position{X: 1}, modal.Position{X: 2}, 10)
	if err := Check(cfg, p); err != nil {
		t.Errorf("expected no violation, got %v", err)
	}
}

func TestCheckEndOutOfBoundsFails(t *testing.T) {
	cfg := DefaultConfig()
	p := primitive.NewMove(primitive.Linear, modal.Position{X: 1}, modal.Position{X: 1000}, 10)
	err := Check(cfg, p)
	if err == nil {
		t.Fatal("expected soft limit violation")
	}
	v, ok := err.(*Violation)
	if !ok {
		t.Fatalf("expected *Violation, got %T", err)
	}
	if v.Axis != AxisX {
		t.Errorf("expected AxisX violation, got %v", v.Axis)
	}
}

func TestCheckRapidsRespectsApplyToRapids(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyToRapids = false
	p := primitive.NewMove(primitive.Rapid, modal.Position{X: 1}, modal.Position{X: 1000}, 50)
	if err := Check(cfg, p); err != nil {
		t.Errorf("expected rapids exempted, got %v", err)
	}
	cfg.ApplyToRapids = true
	if err := Check(cfg, p); err == nil {
		t.Error("expected violation once rapids are checked")
	}
}

func TestCheckDwellNeverViolates(t *testing.T) {
	cfg := DefaultConfig()
	d := primitive.NewDwell(modal.Position{X: 99999}, 1)
	if err := Check(cfg, d); err != nil {
		t.Errorf("expected dwell to be exempt, got %v", err)
	}
}
