// Package gcodeword lexes a single G-code line into structured words.
package gcodeword

import (
	"fmt"

	"github.com/chrisns/snapmaker-cnc-motion/internal/coreerr"
)

// Word is a letter/value pair. Immutable once constructed. Parse does
// not build Words: it records parameter letters in ParsedLine.Params.
type Word struct {
	Letter byte
	Value  float64
}

// GWord is a G-word: the integer (or fractional, e.g. G38.2) code number
// following the G letter.
type GWord struct {
	Number float64
}

// MWord is an M-word, passed through to executor side channels untouched
// by the core interpreter.
type MWord struct {
	Number float64
}

// ParsedLine is one lexed line of G-code: the G-words in source order,
// the M-words in source order, and the last-seen value of every
// parameter letter on the line. Comments and blank tokens are stripped
// before this point.
type ParsedLine struct {
	LineNumber int
	GWords     []GWord
	MWords     []MWord
	Params     map[byte]float64

	// Blank is true when the line carried no words at all (empty line
	// or comment-only line). Its LineNumber is still meaningful for
	// diagnostics.
	Blank bool
}

// HasParam reports whether letter was seen on this line.
func (p ParsedLine) HasParam(letter byte) bool {
	_, ok := p.Params[letter]
	return ok
}

// Param returns the value of letter, or 0 if absent.
func (p ParsedLine) Param(letter byte) float64 {
	return p.Params[letter]
}

// HasAxisWord reports whether any of X, Y or Z appeared on the line.
func (p ParsedLine) HasAxisWord() bool {
	return p.HasParam('X') || p.HasParam('Y') || p.HasParam('Z')
}

// ParseError is returned for a malformed line. Column is -1 when the
// underlying lexer does not report one.
type ParseError struct {
	LineNumber int
	Column     int
	Reason     string
}

func (e *ParseError) Error() string {
	if e.Column >= 0 {
		return fmt.Sprintf("line %d, column %d: %s", e.LineNumber, e.Column, e.Reason)
	}
	return fmt.Sprintf("line %d: %s", e.LineNumber, e.Reason)
}

// Unwrap exposes the line number through the shared coreerr.LineError so
// a driver can errors.As for it without a type switch over every kind.
func (e *ParseError) Unwrap() error {
	return coreerr.At(e.LineNumber)
}
