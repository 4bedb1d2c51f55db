// Package limits applies a soft-limit envelope check to resolved
// motion primitives before they reach an executor.
package limits

import (
	"fmt"

	"github.com/chrisns/snapmaker-cnc-motion/internal/coreerr"
	"github.com/chrisns/snapmaker-cnc-motion/internal/primitive"
)

// Axis identifies a machine axis bound.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Bound is an inclusive [Min, Max] envelope for one axis.
type Bound struct {
	Min, Max float64
}

func (b Bound) contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Config is the soft-limit envelope plus whether it applies to rapids.
type Config struct {
	X, Y, Z Bound

	// ApplyToRapids extends the check to Rapid primitives, not just
	// Linear. Defaults to true: a rapid that leaves the envelope is as
	// dangerous as a feed move that does.
	ApplyToRapids bool
}

// DefaultConfig returns a permissive 0..300mm cube on all three axes
// with rapids checked.
func DefaultConfig() Config {
	bound := Bound{Min: 0, Max: 300}
	return Config{X: bound, Y: bound, Z: bound, ApplyToRapids: true}
}

// Violation reports an out-of-envelope coordinate. LineNumber is 0 when
// the offending primitive was built directly (e.g. in a test) rather
// than through an Interpreter.
type Violation struct {
	Axis       Axis
	Value      float64
	Bound      Bound
	LineNumber int
}

func (v *Violation) Error() string {
	return fmt.Sprintf("line %d: soft limit: axis %s value %.4f outside [%.4f, %.4f]",
		v.LineNumber, v.Axis, v.Value, v.Bound.Min, v.Bound.Max)
}

func (v *Violation) Unwrap() error {
	return coreerr.At(v.LineNumber)
}

// Check validates both endpoints of p against cfg, in axis order X, Y,
// Z, returning the first violation found. Dwell primitives (no travel)
// are never checked.
func Check(cfg Config, p primitive.MotionPrimitive) error {
	if p.Kind == primitive.Dwell {
		return nil
	}
	if p.Kind == primitive.Rapid && !cfg.ApplyToRapids {
		return nil
	}
	for _, pos := range []struct {
		x, y, z float64
	}{
		{p.Start.X, p.Start.Y, p.Start.Z},
		{p.End.X, p.End.Y, p.End.Z},
	} {
		if !cfg.X.contains(pos.x) {
			return &Violation{Axis: AxisX, Value: pos.x, Bound: cfg.X, LineNumber: p.LineNumber}
		}
		if !cfg.Y.contains(pos.y) {
			return &Violation{Axis: AxisY, Value: pos.y, Bound: cfg.Y, LineNumber: p.LineNumber}
		}
		if !cfg.Z.contains(pos.z) {
			return &Violation{Axis: AxisZ, Value: pos.z, Bound: cfg.Z, LineNumber: p.LineNumber}
		}
	}
	return nil
}
