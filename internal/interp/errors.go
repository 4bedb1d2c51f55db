package interp

import (
	"fmt"

	"github.com/chrisns/snapmaker-cnc-motion/internal/coreerr"
)

// ModalError reports conflicting G-words from the same modal group on
// one line (e.g. "G90 G91").
type ModalError struct {
	LineNumber int
	Group      string
	Detail     string
}

func (e *ModalError) Error() string {
	return fmt.Sprintf("line %d: modal conflict in %s group: %s", e.LineNumber, e.Group, e.Detail)
}

func (e *ModalError) Unwrap() error {
	return coreerr.At(e.LineNumber)
}

// ArcGeometryError reports a radius mismatch, |R| too small for the
// commanded chord, or a degenerate sweep.
type ArcGeometryError struct {
	LineNumber int
	Detail     string
}

func (e *ArcGeometryError) Error() string {
	return fmt.Sprintf("line %d: arc geometry: %s", e.LineNumber, e.Detail)
}

func (e *ArcGeometryError) Unwrap() error {
	return coreerr.At(e.LineNumber)
}

// UnresolvedFeedrateError reports an emitted linear primitive with no F
// word ever seen.
type UnresolvedFeedrateError struct {
	LineNumber int
}

func (e *UnresolvedFeedrateError) Error() string {
	return fmt.Sprintf("line %d: linear move commanded with no feedrate ever set", e.LineNumber)
}

func (e *UnresolvedFeedrateError) Unwrap() error {
	return coreerr.At(e.LineNumber)
}

// UnsupportedWord reports a G-word outside the supported set when
// Config.Strict is enabled. Outside strict mode, unsupported words are
// collected in Interpreter.Warnings instead of failing.
type UnsupportedWord struct {
	LineNumber int
	GNumber    float64
}

func (e *UnsupportedWord) Error() string {
	return fmt.Sprintf("line %d: unsupported word G%g", e.LineNumber, e.GNumber)
}
