package config

import "testing"

func TestDefaultSimulatesByDefault(t *testing.T) {
	d := Default()
	if !d.Simulate {
		t.Error("expected Simulate to default to true")
	}
	if d.EchoPath != "" {
		t.Errorf("expected EchoPath to default empty, got %q", d.EchoPath)
	}
	if d.Serial.Port == "" {
		t.Error("expected a default serial port")
	}
}

func TestLoadToleratesMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/to/config.yaml")
	if err != nil {
		t.Fatalf("expected a missing overlay to be tolerated, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults when overlay is absent, got %+v", cfg)
	}
}
