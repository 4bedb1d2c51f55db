// Package primitive defines MotionPrimitive, the fully-resolved motion
// segment value type that the Interpreter emits and the Controller
// drives through an Executor. Arcs never reach this type — they are
// segmented into a run of linear primitives before emission.
package primitive

import (
	"math"

	"github.com/chrisns/snapmaker-cnc-motion/internal/gcodeword"
	"github.com/chrisns/snapmaker-cnc-motion/internal/modal"
)

// Kind distinguishes the handful of primitive shapes the pipeline
// emits. Arcs are never a Kind; they decompose into Linear segments.
type Kind int

const (
	Rapid Kind = iota
	Linear
	// Dwell is a zero-length, zero-travel pause (G4 P<seconds>). Not in
	// the original word list but threaded through the same ready
	// queue/pump/executor path as a move rather than a side channel.
	Dwell
)

func (k Kind) String() string {
	switch k {
	case Rapid:
		return "rapid"
	case Linear:
		return "linear"
	case Dwell:
		return "dwell"
	default:
		return "unknown"
	}
}

// MotionPrimitive is an immutable, fully-resolved motion segment.
type MotionPrimitive struct {
	Kind Kind

	Start, End modal.Position

	// LineNumber is the source line this primitive was emitted from, 0
	// if unattributed (e.g. a primitive built directly in a test). Used
	// to attach line_number to a SoftLimitViolation or ExecutorError,
	// which otherwise have no way to know where the offending move came
	// from.
	LineNumber int

	// FeedrateMMPerS is resolved and positive for Linear primitives;
	// for Rapid it carries the backend's configured rapid feedrate
	// (still explicit, never implicit). Unused (0) for Dwell.
	FeedrateMMPerS float64

	// LengthMM is the precomputed Euclidean distance between Start and
	// End. Zero only for explicitly-commanded zero-length moves or for
	// Dwell.
	LengthMM float64

	// DwellSeconds is populated only for Kind == Dwell.
	DwellSeconds float64

	// MCodes carries M-words seen on the same source line as this
	// primitive, for a driver wiring a real executor to act on. The
	// core never interprets them.
	MCodes []gcodeword.MWord
}

// Distance returns the Euclidean distance between two positions.
func Distance(a, b modal.Position) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Lerp linearly interpolates between a and b at parameter t ∈ [0,1].
func Lerp(a, b modal.Position, t float64) modal.Position {
	return modal.Position{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// NewMove builds a Rapid or Linear primitive with its length precomputed.
func NewMove(kind Kind, start, end modal.Position, feedrateMMPerS float64) MotionPrimitive {
	return MotionPrimitive{
		Kind:           kind,
		Start:          start,
		End:            end,
		FeedrateMMPerS: feedrateMMPerS,
		LengthMM:       Distance(start, end),
	}
}

// Duration returns the time in seconds this primitive occupies: travel
// time at FeedrateMMPerS for Rapid/Linear, DwellSeconds for Dwell.
func (p MotionPrimitive) Duration() float64 {
	if p.Kind == Dwell {
		return p.DwellSeconds
	}
	if p.FeedrateMMPerS <= 0 {
		return 0
	}
	return p.LengthMM / p.FeedrateMMPerS
}

// NewDwell builds a Dwell primitive at a fixed position.
func NewDwell(at modal.Position, seconds float64) MotionPrimitive {
	return MotionPrimitive{
		Kind:         Dwell,
		Start:        at,
		End:          at,
		DwellSeconds: seconds,
	}
}
