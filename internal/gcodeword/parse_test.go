package gcodeword

import "testing"

func TestParseBlank(t *testing.T) {
	for _, text := range []string{"", "   ", "; just a comment", "(also a comment)"} {
		p, err := Parse(text, 1)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", text, err)
		}
		if !p.Blank {
			t.Errorf("Parse(%q) expected Blank=true, got %+v", text, p)
		}
	}
}

func TestParseMotionAndAxisWords(t *testing.T) {
	p, err := Parse("G1 X10 Y-5.5 F300", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.GWords) != 1 || p.GWords[0].Number != 1 {
		t.Fatalf("expected one G1 word, got %+v", p.GWords)
	}
	if !p.HasParam('X') || p.Param('X') != 10 {
		t.Errorf("expected X=10, got %v (has=%v)", p.Param('X'), p.HasParam('X'))
	}
	if !p.HasParam('Y') || p.Param('Y') != -5.5 {
		t.Errorf("expected Y=-5.5, got %v", p.Param('Y'))
	}
	if !p.HasParam('F') || p.Param('F') != 300 {
		t.Errorf("expected F=300, got %v", p.Param('F'))
	}
	if !p.HasAxisWord() {
		t.Error("expected HasAxisWord true")
	}
}

func TestParseMultipleGWords(t *testing.T) {
	p, err := Parse("G90 G1 X1 Y2", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.GWords) != 2 {
		t.Fatalf("expected two G words, got %d: %+v", len(p.GWords), p.GWords)
	}
}

func TestParseMWord(t *testing.T) {
	p, err := Parse("M3 S1000", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.MWords) != 1 || p.MWords[0].Number != 3 {
		t.Fatalf("expected one M3 word, got %+v", p.MWords)
	}
	if !p.HasParam('S') || p.Param('S') != 1000 {
		t.Errorf("expected S=1000, got %v", p.Param('S'))
	}
}

func TestParseLineNumberPreserved(t *testing.T) {
	p, err := Parse("G0 X0", 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.LineNumber != 42 {
		t.Errorf("expected LineNumber 42, got %d", p.LineNumber)
	}
}

func TestHasParamFalseForAbsentLetter(t *testing.T) {
	p, err := Parse("G0 X1", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.HasParam('Z') {
		t.Error("expected HasParam('Z') false")
	}
	if p.Param('Z') != 0 {
		t.Error("expected Param('Z') zero value 0")
	}
}
